package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// SectionInfo is a serializable representation of a keybinding section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is a serializable representation of a single keybinding.
type BindingInfo struct {
	Action      string   `json:"action"`
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
}

// Export describes km's effective bindings, with the config action name
// for each one.
func Export(km KeyMap) []SectionInfo {
	actions := actionNames(km)
	sections := km.Sections()
	out := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		info := SectionInfo{Name: s.Name}
		for _, b := range s.Bindings {
			info.Bindings = append(info.Bindings, BindingInfo{
				Action:      actions[b.Help().Desc],
				Keys:        b.Keys(),
				Description: b.Help().Desc,
			})
		}
		out = append(out, info)
	}
	return out
}

// actionNames maps each binding's help description to its config action.
func actionNames(km KeyMap) map[string]string {
	names := make(map[string]string)
	v := reflect.ValueOf(km)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if b, ok := v.Field(i).Interface().(key.Binding); ok {
			names[b.Help().Desc] = camelToSnake(t.Field(i).Name)
		}
	}
	return names
}
