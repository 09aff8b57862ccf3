package config

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatalf("GenerateSchema failed: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}

	if schema["title"] != "fbrowse Configuration" {
		t.Errorf("Unexpected title: %v", schema["title"])
	}
	if schema["additionalProperties"] != false {
		t.Error("Schema should reject unknown properties")
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("Schema should have properties")
	}
	for _, key := range []string{"start_path", "show_hidden", "ignore", "max_file_size", "theme", "icons", "keybindings", "logging"} {
		if _, ok := props[key]; !ok {
			t.Errorf("Schema is missing property %q", key)
		}
	}

	theme := props["theme"].(map[string]interface{})
	enum, ok := theme["enum"].([]interface{})
	if !ok || len(enum) != 4 {
		t.Errorf("Expected theme enum, got %v", theme["enum"])
	}

	if required, ok := schema["required"]; ok && len(required.([]interface{})) > 0 {
		t.Errorf("No field should be required, got %v", required)
	}
}
