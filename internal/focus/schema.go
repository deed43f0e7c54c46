package focus

import "github.com/vendysmarket/PUMiNewApp/internal/llm"

// itemSchema returns the structured-output schema for a focus item. The
// envelope fields are pinned; content stays an open object because each
// kind has its own shape and the semantic rules live in Validate, which
// gives better rejection messages than a schema error would.
func itemSchema(kind Kind) *llm.Schema {
	return &llm.Schema{
		Name: "focus_item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"schema_version":    map[string]any{"type": "string"},
				"kind":              map[string]any{"type": "string", "const": string(kind)},
				"idempotency_key":   map[string]any{"type": "string"},
				"title":             map[string]any{"type": "string"},
				"subtitle":          map[string]any{"type": "string"},
				"estimated_minutes": map[string]any{"type": "integer"},
				"difficulty":        map[string]any{"type": "string"},
				"instructions_md":   map[string]any{"type": "string"},
				"rubric_md":         map[string]any{"type": "string"},
				"content":           map[string]any{"type": "object"},
				"ui":                map[string]any{"type": "object"},
				"input":             map[string]any{"type": "object"},
				"validation":        map[string]any{"type": "object"},
				"scoring":           map[string]any{"type": "object"},
			},
			"required": []any{
				"schema_version", "kind", "idempotency_key", "title",
				"instructions_md", "content", "validation",
			},
			"additionalProperties": true,
		},
	}
}
