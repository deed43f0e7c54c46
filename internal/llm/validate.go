package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema used to constrain structured output. Definition
// is the schema document as a plain map so each provider can translate it
// into its own structured-output dialect.
type Schema struct {
	Name       string
	Definition map[string]any
}

// compiledCache memoizes compiled schemas keyed by their serialized form,
// since the same item schema is reused across every generation call.
var compiledCache sync.Map // string -> *jsonschema.Schema

func compileSchema(def map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	key := string(raw)
	if v, ok := compiledCache.Load(key); ok {
		return v.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(key))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	compiledCache.Store(key, compiled)
	return compiled, nil
}

// validateResponse checks that content parses as JSON and conforms to the
// schema. It returns ErrInvalidResponse on any failure so the caller can
// treat it as a failed generation attempt.
func validateResponse(content string, schema *Schema) error {
	if schema == nil {
		return nil
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(content))
	if err != nil {
		return &ErrInvalidResponse{Reason: fmt.Sprintf("not valid JSON: %v", err), Raw: truncate(content, 500)}
	}

	compiled, err := compileSchema(schema.Definition)
	if err != nil {
		return fmt.Errorf("schema setup: %w", err)
	}

	if err := compiled.Validate(inst); err != nil {
		return &ErrInvalidResponse{Reason: fmt.Sprintf("schema violation: %v", err), Raw: truncate(content, 500)}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
