package focus

// Settings carry the learner's style preferences and plan metadata into
// prompt construction. Zero values fall back to sensible defaults.
type Settings struct {
	// Tone is "casual", "neutral" or "strict".
	Tone string `json:"tone,omitempty"`
	// Difficulty is "easy", "normal" or "hard".
	Difficulty string `json:"difficulty,omitempty"`
	// Pacing is "small_steps" or "big_blocks".
	Pacing string `json:"pacing,omitempty"`
	// ContentDepth is "short", "medium" or "substantial".
	ContentDepth string `json:"content_depth,omitempty"`
	// Track selects a themed program: "career_language",
	// "financial_basics", "foundations_language" or "".
	Track string `json:"track,omitempty"`
	// TargetLanguage is the explicit language being learned
	// ("korean", "english", ...). When empty it is inferred from titles.
	TargetLanguage string `json:"target_language,omitempty"`
	// WeekOutline scopes vocabulary per day when present.
	WeekOutline []OutlineDay `json:"week_outline,omitempty"`
}

// OutlineDay is one day of a plan outline. KeyVocab and GrammarFocus feed
// scope enforcement so lessons stay within the day's material.
type OutlineDay struct {
	Day          int      `json:"day"`
	Title        string   `json:"title"`
	Intro        string   `json:"intro"`
	KeyVocab     []string `json:"key_vocab,omitempty"`
	GrammarFocus string   `json:"grammar_focus,omitempty"`
}

// GenerationConfig bounds the generation loop.
type GenerationConfig struct {
	// MaxRetries is the number of retries after the first attempt, so the
	// total attempt budget is MaxRetries+1.
	MaxRetries int
	// Temperature overrides the per-kind default when > 0.
	Temperature float64
}

// DefaultGenerationConfig matches production: one initial attempt plus two
// retries.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{MaxRetries: 2}
}

// Per-kind output token budgets. Language lessons carry vocabulary,
// grammar, dialogues and exercises, so they get the largest budget.
func tokenBudget(kind Kind, languageLesson bool) int {
	switch kind {
	case KindContent:
		if languageLesson {
			return 3500
		}
		return 2500
	case KindFeedback:
		return 2000
	default:
		return 1500
	}
}

func temperatureFor(kind Kind) float64 {
	if kind == KindSmartLesson {
		return 0.5
	}
	return 0.3
}
