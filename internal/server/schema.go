package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/olympiad/internal/problemgen"
)

const generateSchemaURL = "schema://generate-request.json"

// generateSchema describes the POST /generate body. Names are checked
// against the catalog afterwards, so only shape is enforced here.
var generateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"branch":       map[string]any{"type": "string", "minLength": 1},
		"school_level": map[string]any{"type": "string", "minLength": 1},
		"scenario":     map[string]any{"type": "string", "minLength": 1},
		"seed":         map[string]any{"type": []any{"integer", "null"}},
		"count":        map[string]any{"type": "integer", "minimum": 1, "maximum": problemgen.MaxCount},
	},
	"required": []any{"branch", "school_level", "scenario"},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects decoded JSON values, not Go literals.
	raw, err := json.Marshal(generateSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(generateSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(generateSchemaURL)
})

// validateBody checks raw JSON against the request schema.
func validateBody(body []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile request schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
