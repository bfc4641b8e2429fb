package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/create-my-app/internal/manifest"
	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/agentx-labs/create-my-app/internal/strategy"
)

// Result holds the outcome of writing a template set.
type Result struct {
	Root     string
	Files    []string // slash-separated, relative to Root, in write order
	Warnings []string
}

// templatePath returns the embedded path for a strategy's template role.
func templatePath(strategyName, role string) string {
	return path.Join("scaffolds", strategyName, role+".tmpl")
}

// Payload returns the template content written for role under strategyName.
func Payload(strategyName, role string) ([]byte, error) {
	data, err := fs.ReadFile(scaffoldFS, templatePath(strategyName, role))
	if err != nil {
		return nil, fmt.Errorf("template %s/%s not found: %w", strategyName, role, err)
	}
	return data, nil
}

// Generate writes the strategy's three files under root, overwriting any
// existing content. root must already exist. Files written before a failure
// are left in place.
func Generate(s *strategy.Strategy, cfg project.RunConfig, root string) (*Result, error) {
	layout := cfg.Layout()

	// Load every payload up front so a missing template never leaves a
	// partially written set behind.
	payloads := make([][]byte, len(layout))
	for i, f := range layout {
		data, err := Payload(s.Name, f.Role)
		if err != nil {
			return nil, err
		}
		payloads[i] = data
	}

	result := &Result{Root: root}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return result, project.Wrap(project.ErrFileWrite, "write", err, "resolving %s", root)
	}

	for i, f := range layout {
		dest, err := resolveInside(root, f.Path)
		if err != nil {
			return result, project.Wrap(project.ErrFileWrite, "write", err, "%s", f.Path)
		}
		if err := ensureDirInside(realRoot, filepath.Dir(dest)); err != nil {
			return result, project.Wrap(project.ErrFileWrite, "write", err, "%s", f.Path)
		}
		if err := writeFile(dest, payloads[i]); err != nil {
			return result, project.Wrap(project.ErrFileWrite, "write", err, "%s", f.Path)
		}
		result.Files = append(result.Files, f.Path)
	}

	pkgPath := filepath.Join(root, manifest.FileName)
	if _, err := os.Stat(pkgPath); err == nil {
		warnings, checkErr := manifest.Check(pkgPath, s.Packages)
		if checkErr != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Could not check %s: %v", manifest.FileName, checkErr))
		}
		result.Warnings = append(result.Warnings, warnings...)
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s not found in %s", manifest.FileName, root))
	}

	return result, nil
}

// resolveInside joins rel onto root and rejects results that escape root.
func resolveInside(root, rel string) (string, error) {
	dest := filepath.Join(root, filepath.FromSlash(rel))
	if err := checkInside(root, dest); err != nil {
		return "", fmt.Errorf("path %s escapes project root %s", rel, root)
	}
	return dest, nil
}

// checkInside reports an error unless target is root or below it, comparing
// the paths lexically.
func checkInside(root, target string) error {
	back, err := filepath.Rel(root, target)
	if err != nil {
		return err
	}
	if back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) || filepath.IsAbs(back) {
		return fmt.Errorf("%s is outside %s", target, root)
	}
	return nil
}

// ensureDirInside creates dir if needed, refusing when an existing ancestor
// or dir itself resolves through a symlink to somewhere outside realRoot.
func ensureDirInside(realRoot, dir string) error {
	existing := dir
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		existing = parent
	}
	if err := checkResolved(realRoot, existing); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return checkResolved(realRoot, dir)
}

func checkResolved(realRoot, p string) error {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", p, err)
	}
	if err := checkInside(realRoot, resolved); err != nil {
		return fmt.Errorf("refusing to write through symlink %s: %w", p, err)
	}
	return nil
}

// writeFile replaces dest with data. A symlink at dest is refused so the
// write cannot land outside the project.
func writeFile(dest string, data []byte) error {
	if info, err := os.Lstat(dest); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write through symlink %s", dest)
	}
	return os.WriteFile(dest, data, 0644)
}
