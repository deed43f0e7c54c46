package focus

// Item is a generated focus item. Content shape varies per kind and legacy
// clients still produce older field names, so items stay loosely typed and
// access goes through the helpers below.
type Item map[string]any

// Kind returns the item's kind, or "" when missing or not a string.
func (it Item) Kind() Kind {
	s, _ := it["kind"].(string)
	return Kind(s)
}

// Content returns the kind-specific content object, never nil.
func (it Item) Content() map[string]any {
	if m, ok := it["content"].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Validation returns the validation block, never nil.
func (it Item) Validation() map[string]any {
	if m, ok := it["validation"].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getSlice(m map[string]any, key string) []any {
	s, _ := m[key].([]any)
	return s
}

func getMap(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// getInt reads a number field; JSON decoding yields float64, but callers
// may also have set plain ints.
func getInt(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func getStrings(m map[string]any, key string) []string {
	raw := getSlice(m, key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
