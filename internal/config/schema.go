package config

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	schemavalidator "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	schemaOnce sync.Once
	schemaJSON []byte
	schemaErr  error

	compileOnce sync.Once
	compiled    *schemavalidator.Schema
	compileErr  error
)

// JSONSchema returns the JSON Schema for the Config struct.
func JSONSchema() ([]byte, error) {
	schemaOnce.Do(func() {
		r := &jsonschema.Reflector{
			FieldNameTag: "yaml",
		}
		schema := r.Reflect(&Config{})
		schemaJSON, schemaErr = json.MarshalIndent(schema, "", "  ")
	})
	return schemaJSON, schemaErr
}

// compiledSchema returns the compiled validator for the Config schema.
func compiledSchema() (*schemavalidator.Schema, error) {
	compileOnce.Do(func() {
		data, err := JSONSchema()
		if err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = schemavalidator.CompileString("perch.schema.json", string(data))
	})
	return compiled, compileErr
}
