package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "theme": {"type": "string", "enum": ["default", "mono"]},
    "max_file_size": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`

type sample struct {
	Theme       string `json:"theme,omitempty"`
	MaxFileSize int64  `json:"max_file_size,omitempty"`
	Extra       string `json:"extra,omitempty"`
}

func TestValidator(t *testing.T) {
	v, err := NewValidator([]byte(testSchema))
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    sample
		wantErr string
	}{
		{name: "valid", data: sample{Theme: "mono", MaxFileSize: 10}},
		{name: "empty", data: sample{}},
		{name: "bad enum", data: sample{Theme: "neon"}, wantErr: "/theme"},
		{name: "negative size", data: sample{MaxFileSize: -1}, wantErr: "/max_file_size"},
		{name: "unknown field", data: sample{Extra: "x"}, wantErr: "schema validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidatorRejectsInvalidSchema(t *testing.T) {
	_, err := NewValidator([]byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = NewValidator([]byte(`not json`))
	assert.Error(t, err)
}
