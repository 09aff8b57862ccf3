package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/fbrowse/config"
)

// ApplyOverrides replaces the keys of every key.Binding field in km (a
// pointer to a struct) whose snake_case name appears in overrides. The
// help description is kept and the first key becomes the help label.
//
//	ApplyOverrides(&km, config.KeybindingsConfig{"page_up": {"K"}})
func ApplyOverrides(km interface{}, overrides config.KeybindingsConfig) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides config.KeybindingsConfig) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}
		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: PageUp -> page_up, Top -> top
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
