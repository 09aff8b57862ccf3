package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/fbrowse/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultBindings(t *testing.T) {
	km := Default()

	tests := []struct {
		key     string
		binding key.Binding
	}{
		{"k", km.Up},
		{"j", km.Down},
		{"enter", km.Open},
		{"l", km.Expand},
		{"h", km.Collapse},
		{"backspace", km.Back},
		{"b", km.Back},
		{"r", km.Refresh},
		{"/", km.Filter},
		{"tab", km.Focus},
		{"?", km.Help},
		{"q", km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.True(t, key.Matches(keyMsg(tt.key), tt.binding))
		})
	}
}

func TestEveryConfigActionHasABinding(t *testing.T) {
	actions := actionNames(Default())
	known := make(map[string]bool)
	for _, a := range actions {
		known[a] = true
	}
	for _, action := range config.KeybindingActions {
		assert.True(t, known[action], "no binding for config action %q", action)
	}
	assert.Len(t, known, len(config.KeybindingActions))
}

func TestApplyOverrides(t *testing.T) {
	km := New(config.KeybindingsConfig{
		"page_up": {"K"},
		"quit":    {"x", "ctrl+q"},
		"open":    {},
	})

	assert.Equal(t, []string{"K"}, km.PageUp.Keys())
	assert.Equal(t, "page up", km.PageUp.Help().Desc)
	assert.Equal(t, []string{"x", "ctrl+q"}, km.Quit.Keys())
	assert.Equal(t, "x/ctrl+q", km.Quit.Help().Key)
	assert.Equal(t, []string{"enter"}, km.Open.Keys(), "empty override keeps the default")
	assert.False(t, key.Matches(keyMsg("q"), km.Quit))
}

func TestApplyOverridesIgnoresNonPointers(t *testing.T) {
	km := Default()
	ApplyOverrides(km, config.KeybindingsConfig{"up": {"w"}})
	assert.Equal(t, []string{"k", "up"}, km.Up.Keys())
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"PageUp":   "page_up",
		"PageDown": "page_down",
		"Top":      "top",
		"":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, camelToSnake(in))
	}
}

func TestExport(t *testing.T) {
	sections := Export(New(config.KeybindingsConfig{"back": {"u"}}))
	require.Len(t, sections, 4)
	assert.Equal(t, SectionNavigation, sections[0].Name)

	var back *BindingInfo
	for i, b := range sections[1].Bindings {
		if b.Action == "back" {
			back = &sections[1].Bindings[i]
		}
	}
	require.NotNil(t, back)
	assert.Equal(t, []string{"u"}, back.Keys)
	assert.Equal(t, "back", back.Description)
}

func TestShortHelpIsSubsetOfSections(t *testing.T) {
	km := Default()
	all := make(map[string]bool)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			all[b.Help().Desc] = true
		}
	}
	for _, b := range km.ShortHelp() {
		assert.True(t, all[b.Help().Desc])
	}
}
