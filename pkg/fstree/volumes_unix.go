//go:build !windows && !linux

package fstree

import (
	"os"
	"path/filepath"
	"runtime"
)

// hostVolumes reports "/" and, on macOS, the mounts under /Volumes.
func hostVolumes() ([]Volume, error) {
	volumes := []Volume{{Name: "/", Path: "/"}}
	if runtime.GOOS != "darwin" {
		return volumes, nil
	}

	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return volumes, nil
	}
	for _, e := range entries {
		p := filepath.Join("/Volumes", e.Name())
		// The boot volume shows up as a symlink back to "/".
		if target, err := filepath.EvalSymlinks(p); err == nil && target == "/" {
			continue
		}
		volumes = append(volumes, Volume{Name: e.Name(), Path: p})
	}
	return volumes, nil
}
