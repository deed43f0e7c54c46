package focus

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

// retryDirective is appended to the user prompt on every attempt after
// the first, so the model gets a nudge instead of an identical request.
const retryDirective = "\n\nRETRY: Be specific and concrete. Fill every required field with real content, not placeholders."

// ItemRequest describes one focus item to generate.
type ItemRequest struct {
	Topic        string
	Label        string
	ItemType     string
	PracticeType string
	Domain       string
	Level        string
	Lang         string
	DayTitle     string
	Minutes      int
	UserGoal     string
	Settings     *Settings
	// PrecedingLesson is the compacted text of the lesson this practice
	// item should drill; empty when the item is not chained.
	PrecedingLesson string
}

// Result carries the generated item plus how it was produced.
type Result struct {
	Item     Item
	Kind     Kind
	Fallback bool
	Attempts int
}

// Engine drives item generation: prompt, parse, validate, retry, and a
// deterministic fallback when the budget runs out.
type Engine struct {
	provider llm.Provider
	cfg      GenerationConfig
	log      *slog.Logger
}

func NewEngine(provider llm.Provider, cfg GenerationConfig, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{provider: provider, cfg: cfg, log: log}
}

// GenerateItem produces a validated focus item for the request. It only
// returns an error when the context is cancelled; every other failure
// mode ends in the deterministic fallback item.
func (e *Engine) GenerateItem(ctx context.Context, req ItemRequest) (*Result, error) {
	itemType, practiceType, downgraded := ApplyDomainGuard(req.Domain, req.ItemType, req.PracticeType)
	if downgraded {
		e.log.Warn("domain guard downgraded item type",
			"domain", req.Domain,
			"from_type", req.ItemType, "to_type", itemType,
			"from_practice", req.PracticeType, "to_practice", practiceType)
	}
	kind := ResolveKind(itemType, practiceType)

	targetLang := ResolveTargetLanguage(req.Settings, req.DayTitle, req.UserGoal)
	languageLesson := kind == KindContent && IsLanguageDomain(req.Domain)
	chained := req.PrecedingLesson != ""

	in := PromptInput{
		Kind:            kind,
		Lang:            req.Lang,
		Domain:          req.Domain,
		Level:           req.Level,
		DayTitle:        req.DayTitle,
		Topic:           req.Topic,
		Minutes:         req.Minutes,
		UserGoal:        req.UserGoal,
		Settings:        req.Settings,
		PrecedingLesson: req.PrecedingLesson,
	}

	ctx = llm.WithPurpose(ctx, "focus_item")
	temperature := e.cfg.Temperature
	if temperature <= 0 {
		temperature = temperatureFor(kind)
	}
	maxAttempts := e.cfg.MaxRetries + 1
	scriptRetryBudget := min(1, e.cfg.MaxRetries)
	scriptRetries := 0

	attempt := 0
	for ; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		system, user := BuildPrompt(in)
		if attempt > 0 {
			user += retryDirective
		}

		resp, err := e.provider.Generate(ctx, llm.Request{
			System:      system,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
			Schema:      itemSchema(kind),
			MaxTokens:   tokenBudget(kind, languageLesson),
			Temperature: temperature,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.log.Warn("item generation attempt failed", "kind", kind, "attempt", attempt+1, "error", err)
			continue
		}

		parsed, ok := ExtractJSONObject(resp.Content)
		if !ok {
			e.log.Warn("response is not a JSON object", "kind", kind, "attempt", attempt+1)
			continue
		}
		item := Item(parsed)
		e.normalize(item, kind, chained)

		if valid, reason := Validate(item); !valid {
			e.log.Warn("generated item rejected", "kind", kind, "attempt", attempt+1, "reason", reason)
			continue
		}

		if targetLang != "" && IsNonLatinLanguage(targetLang) && scriptMismatch(item) {
			// On the final attempt a valid item beats the fallback even in
			// the wrong script, so only retry while attempts remain.
			if scriptRetries < scriptRetryBudget && attempt < maxAttempts-1 {
				scriptRetries++
				e.log.Warn("vocabulary uses the wrong script, retrying",
					"kind", kind, "target_language", targetLang)
				continue
			}
			e.log.Warn("accepting item despite script mismatch", "kind", kind, "target_language", targetLang)
		}

		return &Result{Item: item, Kind: kind, Attempts: attempt + 1}, nil
	}

	e.log.Warn("all generation attempts failed, using fallback", "kind", kind, "topic", req.Topic, "attempts", attempt)
	fb := FallbackItem(kind, req.Topic, fallbackLabel(req.Label, req.Topic), req.Lang, req.Minutes, req.Domain)
	return &Result{Item: fb, Kind: kind, Fallback: true, Attempts: attempt}, nil
}

// normalize forces the envelope invariants the model tends to get wrong.
func (e *Engine) normalize(item Item, kind Kind, chained bool) {
	item["kind"] = string(kind)

	validation, _ := item["validation"].(map[string]any)
	if validation == nil {
		validation = map[string]any{}
		item["validation"] = validation
	}
	if kind.readOnly() {
		validation["require_interaction"] = false
		item["input"] = map[string]any{"type": "none", "placeholder": nil}
	} else {
		validation["require_interaction"] = true
		if chained {
			item["chain_version"] = "lesson_v2"
		}
	}
}

func fallbackLabel(label, topic string) string {
	if label != "" {
		return label
	}
	return topic
}

// scriptMismatch reports whether a lesson meant for a non-Latin target
// language came back written mostly in Latin script.
func scriptMismatch(item Item) bool {
	content := item.Content()
	switch getString(content, "content_type") {
	case "language_lesson":
		vocab := getSlice(content, "vocabulary_table")
		if len(vocab) == 0 {
			return false
		}
		ascii := 0
		for _, raw := range vocab {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if isASCII(getString(entry, "word")) {
				ascii++
			}
		}
		return ascii*2 > len(vocab)
	case "language_nonlatin_beginner":
		var sb strings.Builder
		for _, raw := range getSlice(content, "lesson_flow") {
			if block, ok := raw.(map[string]any); ok {
				sb.WriteString(getString(block, "body_md"))
			}
		}
		return !hasNonLatinGlyph(sb.String())
	}
	return false
}

func hasNonLatinGlyph(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII && unicode.IsLetter(r) && !unicode.In(r, unicode.Latin) {
			return true
		}
	}
	return false
}
