// Package paths provides XDG-compliant path resolution for fbrowse.
//
// Resolution order:
// 1. FBROWSE_HOME (portable root) → $FBROWSE_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/fbrowse
// 3. Platform defaults → ~/.config/fbrowse, ~/.local/state/fbrowse
package paths

import (
	"os"
	"path/filepath"
)

const appName = "fbrowse"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the fbrowse configuration directory.
// With FBROWSE_HOME set the config directory is used as is.
func ConfigDir() string {
	if home := os.Getenv("FBROWSE_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the fbrowse state directory.
// Used for log files.
func StateDir() string {
	if home := os.Getenv("FBROWSE_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// LogDir returns the directory default log files are written to.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
