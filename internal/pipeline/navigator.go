package pipeline

import (
	"os"
	"path/filepath"

	"github.com/agentx-labs/create-my-app/internal/project"
)

// Navigate resolves the project root created under parent and checks that it
// is an existing directory.
func Navigate(parent, name string) (string, error) {
	root := name
	if !filepath.IsAbs(root) {
		root = filepath.Join(parent, name)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", project.Wrap(project.ErrDirectoryNotFound, "navigate", err, "%s", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", project.Wrap(project.ErrDirectoryNotFound, "navigate", err, "scaffold did not create %s", abs)
	}
	if !info.IsDir() {
		return "", project.Errorf(project.ErrDirectoryNotFound, "navigate", "%s is not a directory", abs)
	}
	return abs, nil
}
