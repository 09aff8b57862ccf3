package keymap

import "github.com/charmbracelet/bubbles/key"

// Section names used by the help overlay and `fbrowse keys`.
const (
	SectionNavigation = "Navigation"
	SectionTree       = "Tree"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section is a named group of bindings.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that group their bindings.
type SectionedKeyMap interface {
	Sections() []Section
}

// NavigationSection creates a Navigation section with the specified bindings.
func NavigationSection(bindings ...key.Binding) Section {
	return Section{Name: SectionNavigation, Bindings: bindings}
}

// TreeSection creates a Tree section with the specified bindings.
func TreeSection(bindings ...key.Binding) Section {
	return Section{Name: SectionTree, Bindings: bindings}
}

// ViewSection creates a View section with the specified bindings.
func ViewSection(bindings ...key.Binding) Section {
	return Section{Name: SectionView, Bindings: bindings}
}

// SystemSection creates a System section with the specified bindings.
func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// IsEmpty returns true if the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	for _, b := range s.Bindings {
		if b.Enabled() {
			return false
		}
	}
	return true
}
