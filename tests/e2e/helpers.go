package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// findFbrowseBinary finds the fbrowse binary under test.
// The binary is expected on PATH.
func findFbrowseBinary() (string, error) {
	path, err := exec.LookPath("fbrowse")
	if err != nil {
		return "", fmt.Errorf("could not find 'fbrowse' binary in PATH; build it into a directory on PATH first")
	}
	return path, nil
}

// writeSampleTree creates a small directory tree under name and stores its
// path in the context as "tree_dir".
func writeSampleTree(ctx *harness.Context, name string) (string, error) {
	dir := ctx.NewDir(name)
	files := map[string]string{
		"README.md":            "# sample\nhello from fbrowse\n",
		"src/main.go":          "package main\n",
		"src/internal/util.go": "package internal\n",
		"docs/guide.txt":       "guide\n",
		".secret":              "hidden\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := fs.CreateDir(filepath.Dir(path)); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := fs.WriteString(path, content); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}
	ctx.Set("tree_dir", dir)
	return dir, nil
}
