package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidResult is returned when an encoded result does not match the
// result schema.
var ErrInvalidResult = errors.New("result does not match schema")

//go:embed schema/result.schema.json
var resultSchemaJSON []byte

const resultSchemaURL = "result.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func resultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(resultSchemaURL, bytes.NewReader(resultSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to load result schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(resultSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile result schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// SchemaJSON returns the embedded result schema.
func SchemaJSON() []byte {
	return bytes.Clone(resultSchemaJSON)
}

// Validate checks encoded result data against the result schema. data may
// be JSON or, when format is FormatYAML, YAML.
func Validate(format Format, data []byte) error {
	schema, err := resultSchema()
	if err != nil {
		return err
	}

	doc, err := decodeForValidation(format, data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return nil
}

// decodeForValidation returns data as generic JSON values. YAML goes through
// a JSON round trip so numbers and maps take the shapes the validator expects.
func decodeForValidation(format Format, data []byte) (any, error) {
	if format == FormatYAML {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("converting YAML: %w", err)
		}
		data = b
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return doc, nil
}
