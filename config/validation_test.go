package config

import (
	"testing"

	"github.com/grovetools/fbrowse/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults", config: Config{}},
		{name: "valid ignore", config: Config{Ignore: []string{"*.log", "!keep.log"}}},
		{name: "bad ignore pattern", config: Config{Ignore: []string{"[abc"}}, wantErr: true},
		{name: "negative max size", config: Config{MaxFileSize: -1}, wantErr: true},
		{name: "unknown theme", config: Config{Theme: "neon"}, wantErr: true},
		{name: "known action", config: Config{Keybindings: KeybindingsConfig{"open": {"enter", "o"}}}},
		{name: "unknown action", config: Config{Keybindings: KeybindingsConfig{"delete": {"d"}}}, wantErr: true},
		{name: "empty key list", config: Config{Keybindings: KeybindingsConfig{"quit": {}}}, wantErr: true},
		{name: "blank key", config: Config{Keybindings: KeybindingsConfig{"quit": {" "}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.SetDefaults()
			if tt.config.MaxFileSize != 0 {
				cfg.MaxFileSize = tt.config.MaxFileSize
			}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeConfigValidation) {
				t.Errorf("Expected ErrCodeConfigValidation, got %s", errors.GetCode(err))
			}
		})
	}
}
