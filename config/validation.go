package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/grovetools/fbrowse/errors"
	"github.com/moby/patternmatcher"
)

// KeybindingActions lists the action names accepted under keybindings.
var KeybindingActions = []string{
	"up", "down", "page_up", "page_down", "top", "bottom",
	"open", "expand", "collapse", "back", "refresh",
	"filter", "focus", "help", "quit",
}

// Validate checks the configuration against the schema, then applies the
// semantic checks the schema cannot express.
func (c *Config) Validate() error {
	validator, err := NewSchemaValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(c); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	return c.ValidateSemantics()
}

// ValidateSemantics checks values whose validity depends on more than their type.
func (c *Config) ValidateSemantics() error {
	if c.MaxFileSize < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "max_file_size cannot be negative").
			WithDetail("max_file_size", c.MaxFileSize)
	}

	if len(c.Ignore) > 0 {
		if _, err := patternmatcher.New(c.Ignore); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid ignore pattern").
				WithDetail("ignore", c.Ignore)
		}
	}

	if err := validatePath("start_path", c.StartPath); err != nil {
		return err
	}

	for action, keys := range c.Keybindings {
		if !slices.Contains(KeybindingActions, action) {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown keybinding action '%s'", action)).
				WithDetail("action", action)
		}
		if len(keys) == 0 {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("keybinding '%s' lists no keys", action)).
				WithDetail("action", action)
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("keybinding '%s' contains an empty key", action)).
					WithDetail("action", action)
			}
		}
	}

	return nil
}

// validatePath validates that a path is appropriate for the current OS
func validatePath(fieldName, path string) error {
	if path == "" {
		return nil
	}

	// Check for Windows absolute paths on Unix systems
	if runtime.GOOS != "windows" && filepath.IsAbs(path) && strings.Contains(path, "\\") {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("%s contains Windows-style path on Unix system", fieldName)).
			WithDetail("path", path)
	}

	// Check for Unix absolute paths on Windows systems
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("%s contains Unix-style path on Windows system", fieldName)).
			WithDetail("path", path)
	}

	return nil
}
