package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FBROWSE_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "/ignored")

	assert.Equal(t, filepath.Join(home, "config"), ConfigDir())
	assert.Equal(t, filepath.Join(home, "state"), StateDir())
	assert.Equal(t, filepath.Join(home, "state", "logs"), LogDir())
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("FBROWSE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "fbrowse"), ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/state", "fbrowse"), StateDir())
}

func TestPlatformDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FBROWSE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, filepath.Join(home, ".config", "fbrowse"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".local", "state", "fbrowse"), StateDir())
}
