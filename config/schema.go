package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the fbrowse configuration
// by reflecting Config. Unknown top-level keys are rejected.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "fbrowse Configuration"
	schema.Description = "Schema for .fbrowse.yml, .fbrowse.toml and the global fbrowse config."

	return json.MarshalIndent(schema, "", "  ")
}
