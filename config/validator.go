package config

import (
	"sync"

	"github.com/grovetools/fbrowse/schema"
)

var (
	validatorOnce sync.Once
	validatorInst *SchemaValidator
	validatorErr  error
)

// SchemaValidator validates configuration against the schema reflected
// from Config.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator creates a new schema validator. The schema is
// generated and compiled once per process.
func NewSchemaValidator() (*SchemaValidator, error) {
	validatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			validatorErr = err
			return
		}
		v, err := schema.NewValidator(data)
		if err != nil {
			validatorErr = err
			return
		}
		validatorInst = &SchemaValidator{validator: v}
	})
	return validatorInst, validatorErr
}

// Validate validates configuration data against the schema.
func (v *SchemaValidator) Validate(configData interface{}) error {
	return v.validator.Validate(configData)
}
