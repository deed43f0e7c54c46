// Package focus implements the focus item generation pipeline: prompt
// construction, response parsing, semantic validation, retry control and
// deterministic fallbacks. Items are represented as loosely typed maps
// because content shape varies per kind and older clients still send
// legacy field names; helpers and the validator keep the chaos in check.
package focus

import "strings"

// Kind identifies the interaction model of a focus item.
type Kind string

const (
	KindContent      Kind = "content"
	KindQuiz         Kind = "quiz"
	KindChecklist    Kind = "checklist"
	KindUploadReview Kind = "upload_review"
	KindTranslation  Kind = "translation"
	KindCards        Kind = "cards"
	KindRoleplay     Kind = "roleplay"
	KindWriting      Kind = "writing"
	KindBriefing     Kind = "briefing"
	KindFeedback     Kind = "feedback"
	KindSmartLesson  Kind = "smart_lesson"
)

// ValidKinds lists every kind the validator accepts, in canonical order.
var ValidKinds = []Kind{
	KindContent, KindQuiz, KindChecklist, KindUploadReview, KindTranslation,
	KindCards, KindRoleplay, KindWriting, KindBriefing, KindFeedback, KindSmartLesson,
}

func isValidKind(k Kind) bool {
	for _, v := range ValidKinds {
		if v == k {
			return true
		}
	}
	return false
}

// kindFromPracticeType maps a practice type to the kind that renders it.
// The backend decides the kind, never the model.
var kindFromPracticeType = map[string]Kind{
	"translation":       KindTranslation,
	"exercise":          KindRoleplay, // exercise = roleplay dialogue
	"roleplay":          KindRoleplay,
	"dialogue":          KindRoleplay,
	"quiz":              KindQuiz,
	"cards":             KindCards,
	"flashcard":         KindCards,
	"writing":           KindWriting,
	"speaking":          KindChecklist, // speaking is offline, needs proof
	"practice_speaking": KindChecklist,
	"task":              KindChecklist,
}

// ResolveKind deterministically selects the kind for an item type and
// optional practice type. Unknown combinations fall back to checklist,
// the safest interactive kind.
func ResolveKind(itemType, practiceType string) Kind {
	switch strings.ToLower(strings.TrimSpace(itemType)) {
	case "briefing":
		return KindBriefing
	case "feedback":
		return KindFeedback
	case "smart_lesson":
		return KindSmartLesson
	case "quiz":
		return KindQuiz
	case "flashcard":
		return KindCards
	case "lesson":
		return KindContent // lessons are read-only, no input required
	case "task":
		return KindChecklist
	}

	if pt := strings.ToLower(strings.TrimSpace(practiceType)); pt != "" {
		if k, ok := kindFromPracticeType[pt]; ok {
			return k
		}
	}

	return KindChecklist
}

// readOnly reports whether the kind requires no learner interaction.
func (k Kind) readOnly() bool {
	return k == KindContent || k == KindBriefing || k == KindFeedback
}

// kindRule holds the per-kind validation envelope values.
type kindRule struct {
	MinChars  int
	MinItems  int
	InputType string
}

var kindRules = map[Kind]kindRule{
	KindContent:      {MinChars: 0, MinItems: 0, InputType: "none"},
	KindTranslation:  {MinChars: 10, MinItems: 1, InputType: "multi_text"},
	KindQuiz:         {MinChars: 0, MinItems: 1, InputType: "choice"},
	KindCards:        {MinChars: 0, MinItems: 3, InputType: "none"},
	KindRoleplay:     {MinChars: 80, MinItems: 1, InputType: "text"},
	KindWriting:      {MinChars: 120, MinItems: 1, InputType: "text"},
	KindChecklist:    {MinChars: 60, MinItems: 1, InputType: "text"},
	KindUploadReview: {MinChars: 0, MinItems: 1, InputType: "file"},
	KindBriefing:     {MinChars: 0, MinItems: 0, InputType: "none"},
	KindFeedback:     {MinChars: 0, MinItems: 0, InputType: "none"},
	KindSmartLesson:  {MinChars: 0, MinItems: 1, InputType: "choice"},
}

func ruleFor(k Kind) kindRule {
	if r, ok := kindRules[k]; ok {
		return r
	}
	return kindRule{MinChars: 20, MinItems: 1, InputType: "text"}
}

// IsLanguageDomain reports whether the domain uses the language-learning
// content shapes (vocabulary tables, dialogues, translation drills).
func IsLanguageDomain(domain string) bool {
	switch strings.ToLower(strings.TrimSpace(domain)) {
	case "language_learning", "language":
		return true
	}
	return false
}

// Language-only types are unsafe outside language domains: a fitness plan
// has nothing to translate. The guard downgrades them to neutral kinds.
var (
	languageOnlyTypes         = map[string]bool{"translation": true, "flashcard": true, "cards": true}
	languageOnlyPracticeTypes = map[string]bool{"translation": true, "exercise": true, "roleplay": true, "dialogue": true, "speaking": true}
)

// ApplyDomainGuard downgrades language-only item/practice types in
// non-language domains. Language-only item types become quiz; language-only
// practice types are dropped so ResolveKind picks a safe default.
func ApplyDomainGuard(domain, itemType, practiceType string) (string, string, bool) {
	if IsLanguageDomain(domain) {
		return itemType, practiceType, false
	}

	changed := false
	if languageOnlyTypes[strings.ToLower(strings.TrimSpace(itemType))] {
		itemType = "quiz"
		practiceType = ""
		changed = true
	}
	if languageOnlyPracticeTypes[strings.ToLower(strings.TrimSpace(practiceType))] {
		practiceType = ""
		changed = true
	}
	return itemType, practiceType, changed
}
