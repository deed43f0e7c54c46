package focus

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	openFenceRe  = regexp.MustCompile(`(?im)^` + "```" + `\s*(?:json)?\s*\n?`)
	closeFenceRe = regexp.MustCompile(`(?m)\n?\s*` + "```" + `\s*$`)
)

// StripJSONFences removes markdown code fences around a JSON payload.
// Models wrap output in fences despite instructions not to.
func StripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = openFenceRe.ReplaceAllString(s, "")
	s = closeFenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExtractJSONObject extracts the first top-level JSON object from
// arbitrary text. Handles fenced blocks and surrounding prose. Returns
// false when no parseable object is found.
func ExtractJSONObject(text string) (map[string]any, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, false
	}

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+7:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	s = strings.TrimSpace(s)

	// Fast path: the whole string is an object.
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		if m, ok := tryUnmarshal(s); ok {
			return m, true
		}
	}

	// Bracket matching over the first balanced object.
	start := strings.Index(s, "{")
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escape := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escape {
			escape = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return tryUnmarshal(s[start : i+1])
			}
		}
	}
	return nil, false
}

func tryUnmarshal(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	return m, true
}
