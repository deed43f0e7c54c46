package focus

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		check func(t *testing.T, m map[string]any)
	}{
		{
			name:  "bare object",
			input: `{"kind": "quiz", "title": "t"}`,
			ok:    true,
			check: func(t *testing.T, m map[string]any) {
				if m["kind"] != "quiz" {
					t.Errorf("kind = %v", m["kind"])
				}
			},
		},
		{
			name:  "json fence",
			input: "```json\n{\"kind\": \"quiz\"}\n```",
			ok:    true,
		},
		{
			name:  "plain fence",
			input: "```\n{\"kind\": \"cards\"}\n```",
			ok:    true,
		},
		{
			name:  "prose around the object",
			input: "Here is your item:\n{\"kind\": \"quiz\", \"n\": 1}\nHope it helps!",
			ok:    true,
		},
		{
			name:  "nested braces",
			input: `{"content": {"questions": [{"q": "a?", "options": ["x", "y"]}]}}`,
			ok:    true,
			check: func(t *testing.T, m map[string]any) {
				if _, ok := m["content"].(map[string]any); !ok {
					t.Error("content not an object")
				}
			},
		},
		{
			name:  "braces inside strings",
			input: `{"title": "use {placeholders} like this", "kind": "quiz"}`,
			ok:    true,
		},
		{
			name:  "escaped quote inside string",
			input: `{"title": "say \"hi\" {", "kind": "quiz"}`,
			ok:    true,
		},
		{name: "no object at all", input: "sorry, I cannot do that", ok: false},
		{name: "truncated object", input: `{"kind": "quiz", "questions": [`, ok: false},
		{name: "array not object", input: `[1, 2, 3]`, ok: false},
		{name: "empty input", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ExtractJSONObject(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if tt.check != nil && ok {
				tt.check(t, m)
			}
		})
	}
}

func TestStripJSONFences(t *testing.T) {
	got := StripJSONFences("```json\n{\"a\": 1}\n```")
	if got != "{\"a\": 1}" {
		t.Errorf("got %q", got)
	}
	if got := StripJSONFences("no fences"); got != "no fences" {
		t.Errorf("got %q", got)
	}
}
