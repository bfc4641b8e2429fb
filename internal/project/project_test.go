package project

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.ProjectName != "my-vite-app" {
		t.Errorf("ProjectName = %q, want %q", d.ProjectName, "my-vite-app")
	}
	if !d.UseTypeScript {
		t.Error("UseTypeScript should default to true")
	}
}

func TestTemplateAndExt(t *testing.T) {
	tests := []struct {
		ts           bool
		wantTemplate string
		wantExt      string
	}{
		{true, "react-ts", "tsx"},
		{false, "react", "jsx"},
	}
	for _, tt := range tests {
		c := RunConfig{ProjectName: "demo", UseTypeScript: tt.ts}
		if got := c.Template(); got != tt.wantTemplate {
			t.Errorf("Template() with ts=%v = %q, want %q", tt.ts, got, tt.wantTemplate)
		}
		if got := c.Ext(); got != tt.wantExt {
			t.Errorf("Ext() with ts=%v = %q, want %q", tt.ts, got, tt.wantExt)
		}
	}
}

func TestLayout(t *testing.T) {
	t.Run("typescript", func(t *testing.T) {
		c := RunConfig{ProjectName: "demo", UseTypeScript: true}
		want := []string{"src/App.tsx", "src/router.tsx", "src/Home.tsx"}
		assertLayout(t, c.Layout(), want)
		if c.EntryFile() != "src/App.tsx" {
			t.Errorf("EntryFile() = %q, want %q", c.EntryFile(), "src/App.tsx")
		}
	})

	t.Run("javascript", func(t *testing.T) {
		c := RunConfig{ProjectName: "demo", UseTypeScript: false}
		want := []string{"src/App.jsx", "src/router.jsx", "src/Home.jsx"}
		assertLayout(t, c.Layout(), want)
	})
}

func assertLayout(t *testing.T, got []SourceFile, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d files, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Path != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, f.Path, want[i])
		}
	}
}

func TestErrorIsKindAndCause(t *testing.T) {
	err := Wrap(ErrFileWrite, "write", fs.ErrPermission, "src/App.tsx")

	if !errors.Is(err, ErrFileWrite) {
		t.Error("errors.Is(err, ErrFileWrite) = false")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false")
	}
	if errors.Is(err, ErrExternalProcess) {
		t.Error("errors.Is(err, ErrExternalProcess) = true, want false")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "write: file write failed: src/App.tsx") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestOutputOf(t *testing.T) {
	pe := Errorf(ErrExternalProcess, "install", "npm install exited with status 1")
	pe.Output = "npm ERR! network"

	if got := OutputOf(pe); got != "npm ERR! network" {
		t.Errorf("OutputOf() = %q", got)
	}
	if got := OutputOf(errors.New("plain")); got != "" {
		t.Errorf("OutputOf(plain) = %q, want empty", got)
	}
}
