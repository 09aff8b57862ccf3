package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kanagawa", "kanagawa"},
		{"Gruvbox Dark", "gruvbox"},
		{"terminal", "terminal"},
		{"mono", "mono"},
		{"default", "kanagawa"},
		{"none", "mono"},
		{"does-not-exist", "kanagawa"},
		{"", "kanagawa"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.input).Name)
		})
	}
}

func TestApplyHonorsEnvironment(t *testing.T) {
	prev := DefaultTheme
	t.Cleanup(func() { DefaultTheme = prev })

	t.Setenv("FBROWSE_THEME", "")
	assert.Equal(t, "gruvbox", Apply("gruvbox").Name)
	assert.Equal(t, "gruvbox", DefaultTheme.Name)

	t.Setenv("FBROWSE_THEME", "mono")
	assert.Equal(t, "mono", Apply("gruvbox").Name)
}

func TestNamesAreRegistered(t *testing.T) {
	for _, name := range Names() {
		_, ok := themeRegistry[name]
		assert.True(t, ok, name)
	}
}

func TestIconSets(t *testing.T) {
	t.Cleanup(func() { UseASCIIIcons(false) })

	UseASCIIIcons(true)
	assert.Equal(t, "[d]", IconFolder)
	assert.Equal(t, "[f]", IconFile)

	t.Setenv("FBROWSE_ICONS", "")
	ApplyIcons("nerd")
	assert.Equal(t, nerdIconFolder, IconFolder)

	t.Setenv("FBROWSE_ICONS", "ascii")
	ApplyIcons("nerd")
	assert.Equal(t, asciiIconVolume, IconVolume)
}
