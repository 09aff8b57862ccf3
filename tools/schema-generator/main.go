// Command schema-generator writes the JSON Schema for fbrowse configuration
// files so editors can validate them.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/fbrowse/config"
	flag "github.com/spf13/pflag"
)

func main() {
	output := flag.StringP("output", "o", filepath.Join("..", "schema", "fbrowse.schema.json"), "Where to write the schema")
	flag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", *output)
}
