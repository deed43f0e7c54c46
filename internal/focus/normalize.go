package focus

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Forbidden phrases mark speaking/listening tasks that text input cannot
// verify. Both Hungarian and English forms are matched.
var forbiddenPatterns = []string{
	"hangosan",
	"mondd ki",
	"ismételd el",
	"mondd utánam",
	"hallgasd meg",
	"mondd fel",
	"mond ki",
	"olvasd fel",
	"speak aloud",
	"say out loud",
	"repeat after",
	"listen and repeat",
}

var genericFillerHU = []string{
	"ez egy olvasando tartalom",
	"a temaban",
	"ismerkedjunk meg",
	"attekintjuk a temat",
	"roviden osszefoglalja",
	"altalanos attekintes",
	"alapokat ismerjuk meg",
}

var genericFillerEN = []string{
	"this is a reading material",
	"about the topic",
	"let's get to know",
	"we will overview",
	"briefly summarizes",
	"general overview",
}

var placeholderOptions = map[string]bool{
	"a": true, "b": true, "c": true, "d": true,
	"1": true, "2": true, "3": true,
}

// containsForbiddenPattern returns the first forbidden phrase found in
// text, or "" when clean.
func containsForbiddenPattern(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, p := range forbiddenPatterns {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}

// normalizeForMatch lowercases and strips diacritics so "témában" matches
// the accent-free filler pattern "temaban".
func normalizeForMatch(text string) string {
	if text == "" {
		return ""
	}
	decomposed := norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(strings.ToLower(b.String()))
}

// isGenericSummary reports whether a summary is unusable filler text.
func isGenericSummary(text, lang string) bool {
	patterns := genericFillerEN
	if lang == "" || strings.HasPrefix(strings.ToLower(lang), "hu") {
		patterns = genericFillerHU
	}
	normalized := normalizeForMatch(text)
	for _, p := range patterns {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// optionsInvalid rejects quiz option sets that are not exactly three
// distinct, non-placeholder answers.
func optionsInvalid(options []string) bool {
	if len(options) != 3 {
		return true
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o == "" {
			continue
		}
		n := normalizeForMatch(o)
		if placeholderOptions[n] {
			return true
		}
		if seen[n] {
			return true
		}
		seen[n] = true
	}
	return false
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func wordCount(s string) int { return len(strings.Fields(s)) }

// isASCII reports whether the string contains only ASCII bytes, which for
// a non-Latin target language means the model answered in the wrong script.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
