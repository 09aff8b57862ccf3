package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand expands home directory (~) and environment variables in a path.
// It returns a cleaned absolute path. Use it for configured values only;
// paths naming real files go through ExpandHome.
func Expand(path string) (string, error) {
	return ExpandHome(os.ExpandEnv(path))
}

// ExpandHome expands a leading ~ and returns a cleaned absolute path. Every
// other character, '$' included, is taken literally.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// Parent returns the parent directory of path using the host's path rules.
// The second return value is false when path is a filesystem root
// ("/", "C:\", a UNC share root), which has no parent.
func Parent(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// DisplayName returns the label shown for path: its base name, or the path
// itself for filesystem roots.
func DisplayName(path string) string {
	if _, ok := Parent(path); !ok {
		return path
	}
	return filepath.Base(path)
}
