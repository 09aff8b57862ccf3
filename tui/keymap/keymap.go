// Package keymap defines the browser's key bindings and applies
// per-action overrides from configuration.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/fbrowse/config"
)

// KeyMap holds every action the browser responds to. Field names map to
// config actions in snake_case (PageUp -> page_up).
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Tree
	Open     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Back     key.Binding
	Refresh  key.Binding

	// View
	Filter key.Binding
	Focus  key.Binding

	// System
	Help key.Binding
	Quit key.Binding
}

// Default returns the built-in bindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Expand: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "collapse"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "b"),
			key.WithHelp("b/bksp", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// New returns the default bindings with overrides applied.
func New(overrides config.KeybindingsConfig) KeyMap {
	km := Default()
	ApplyOverrides(&km, overrides)
	return km
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Filter, k.Focus, k.Quit}
}

// FullHelp flattens Sections for components that expect bubbles' help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, s := range k.Sections() {
		groups = append(groups, s.Bindings)
	}
	return groups
}

// Sections groups the bindings for the help overlay.
func (k KeyMap) Sections() []Section {
	return []Section{
		NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom),
		TreeSection(k.Open, k.Expand, k.Collapse, k.Back, k.Refresh),
		ViewSection(k.Filter, k.Focus),
		SystemSection(k.Help, k.Quit),
	}
}

// GetHelp returns the binding that toggles the help overlay.
func (k KeyMap) GetHelp() key.Binding { return k.Help }

// GetQuit returns the quit binding.
func (k KeyMap) GetQuit() key.Binding { return k.Quit }
