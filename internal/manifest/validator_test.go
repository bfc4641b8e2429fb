package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const vitePackageJSON = `{
  "name": "demo",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "@tanstack/react-query": "^5.59.0",
    "@tanstack/react-router": "^1.58.3",
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.1",
    "typescript": "^5.5.3",
    "vite": "^5.4.1"
  }
}
`

func TestValidate_ViteScaffold(t *testing.T) {
	result, err := Validate([]byte(vitePackageJSON))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("unexpected issue: %s", issue)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		keyword string
	}{
		{"missing name", `{"scripts": {"dev": "vite", "build": "vite build"}, "dependencies": {"react": "1", "react-dom": "1"}}`, "required"},
		{"missing dev script", `{"name": "x", "scripts": {"build": "vite build"}, "dependencies": {"react": "1", "react-dom": "1"}}`, "required"},
		{"missing react", `{"name": "x", "scripts": {"dev": "vite", "build": "b"}, "dependencies": {"react-dom": "1"}}`, "required"},
		{"non-string version", `{"name": "x", "scripts": {"dev": "vite", "build": "b"}, "dependencies": {"react": 18, "react-dom": "1"}}`, "type"},
		{"bad module type", `{"name": "x", "type": "esm", "scripts": {"dev": "vite", "build": "b"}, "dependencies": {"react": "1", "react-dom": "1"}}`, "enum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.json))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q in %v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"name": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestMissingDependencies(t *testing.T) {
	missing, err := MissingDependencies([]byte(vitePackageJSON), []string{
		"react-router-dom", "@tanstack/react-query", "typescript", "@tanstack/react-query-devtools",
	})
	if err != nil {
		t.Fatalf("MissingDependencies() error: %v", err)
	}
	want := "@tanstack/react-query-devtools,react-router-dom"
	if got := strings.Join(missing, ","); got != want {
		t.Errorf("missing = %q, want %q", got, want)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(vitePackageJSON), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("clean", func(t *testing.T) {
		warnings, err := Check(path, []string{"@tanstack/react-router", "@tanstack/react-query"})
		if err != nil {
			t.Fatalf("Check() error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})

	t.Run("missing feature package", func(t *testing.T) {
		warnings, err := Check(path, []string{"react-router-dom"})
		if err != nil {
			t.Fatalf("Check() error: %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "does not declare react-router-dom") {
			t.Errorf("warnings = %v", warnings)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		_, err := Check(filepath.Join(dir, "nope.json"), nil)
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
