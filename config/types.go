package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator/

// DefaultMaxFileSize is the read limit applied when max_file_size is unset.
const DefaultMaxFileSize int64 = 4 << 20

// DefaultTheme names the theme used when none is configured.
const DefaultTheme = "kanagawa"

// KeybindingsConfig maps action names (e.g. "open", "back", "quit") to the
// key combinations that trigger them. Listed keys replace the defaults.
type KeybindingsConfig map[string][]string

// Config is the fbrowse configuration.
type Config struct {
	// StartPath is where the browser opens when no path is given.
	// Empty starts at the volumes listing.
	StartPath string `yaml:"start_path,omitempty" toml:"start_path,omitempty" json:"start_path,omitempty" jsonschema:"description=Directory the browser opens when no path argument is given. Empty starts at the volumes listing"`

	// ShowHidden lists dotfiles. A pointer so a later layer can turn it off.
	ShowHidden *bool `yaml:"show_hidden,omitempty" toml:"show_hidden,omitempty" json:"show_hidden,omitempty" jsonschema:"description=List entries whose names start with a dot"`

	// Ignore holds .dockerignore-style patterns matched against entry names.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Patterns (.dockerignore syntax) for entries to hide from listings"`

	// MaxFileSize caps how many bytes the viewer reads from a file.
	MaxFileSize int64 `yaml:"max_file_size,omitempty" toml:"max_file_size,omitempty" json:"max_file_size,omitempty" jsonschema:"minimum=0,description=Largest file in bytes the viewer will open (default 4 MiB)"`

	// Theme selects the TUI color theme.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal,enum=mono,description=TUI color theme"`

	// Icons selects Nerd Font or plain ASCII glyphs.
	Icons string `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"enum=nerd,enum=ascii,description=Icon set used by the TUI and the tree command"`

	// Keybindings overrides TUI key bindings per action.
	Keybindings KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Key overrides keyed by action name such as open or back"`

	// Logging is decoded by the logging package.
	Logging map[string]interface{} `yaml:"logging,omitempty" toml:"logging,omitempty" json:"logging,omitempty" jsonschema:"description=Logging settings: level and report_caller and file and format"`
}

// ShowHiddenEnabled reports the effective show_hidden value.
func (c *Config) ShowHiddenEnabled() bool {
	return c.ShowHidden != nil && *c.ShowHidden
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.MaxFileSize == 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.ShowHidden == nil {
		hidden := false
		c.ShowHidden = &hidden
	}
}

// UnmarshalSection decodes a free-form section of the configuration (for
// example "logging") into target, which must be a pointer. A missing
// section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalSection("logging", &logCfg)
func (c *Config) UnmarshalSection(key string, target interface{}) error {
	var section interface{}
	switch key {
	case "logging":
		if c.Logging == nil {
			return nil
		}
		section = c.Logging
	default:
		return fmt.Errorf("unknown config section %q", key)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("failed to decode config section '%s': %w", key, err)
	}
	return nil
}

// ConfigSource identifies the origin of a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceExplicit ConfigSource = "explicit"
)

// LayeredConfig holds the raw configuration from each source file alongside
// the merged result, for `config show --layers`.
type LayeredConfig struct {
	Default   *Config                 // Config with only default values applied.
	Global    *Config                 // Raw config from the global file.
	Project   *Config                 // Raw config from the nearest .fbrowse file.
	Final     *Config                 // The fully merged and validated config.
	FilePaths map[ConfigSource]string // Maps sources to their file paths.
}
