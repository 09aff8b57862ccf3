package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := Expand("~/notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), got)

	got, err = Expand("~")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(home), got)
}

func TestExpandEnvAndRelative(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FBROWSE_TEST_DIR", dir)

	got, err := Expand("$FBROWSE_TEST_DIR/sub/../file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "file.txt"), got)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = Expand("relative")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "relative"), got)
}

func TestExpandHomeLeavesDollarAlone(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FBROWSE_TEST_DIR", "/elsewhere")

	got, err := ExpandHome(filepath.Join(dir, "$FBROWSE_TEST_DIR", "a$b.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "$FBROWSE_TEST_DIR", "a$b.txt"), got)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err = ExpandHome("~/$x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "$x"), got)
}

func TestParent(t *testing.T) {
	dir := t.TempDir()
	child := filepath.Join(dir, "child")

	parent, ok := Parent(child)
	assert.True(t, ok)
	assert.Equal(t, dir, parent)

	parent, ok = Parent(child + string(filepath.Separator))
	assert.True(t, ok, "trailing separators are ignored")
	assert.Equal(t, dir, parent)

	root := filepath.VolumeName(dir) + string(filepath.Separator)
	_, ok = Parent(root)
	assert.False(t, ok, "filesystem root has no parent")

	_, ok = Parent("")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "child", DisplayName(filepath.Join(dir, "child")))

	root := filepath.VolumeName(dir) + string(filepath.Separator)
	assert.Equal(t, root, DisplayName(root))
}
