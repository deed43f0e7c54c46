package planner

import (
	"context"
	"fmt"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

// OutlineRequest describes the plan to sketch.
type OutlineRequest struct {
	UserGoal      string
	Lang          string
	FocusType     string
	Domain        string
	Level         string
	MinutesPerDay int
	DurationDays  int
}

const (
	outlineMaxTokens   = 800
	outlineTemperature = 0.2
)

// GenerateOutline sketches the week: day titles and intros only. It
// always returns a usable outline; generation failures produce the
// deterministic fallback. Only context cancellation is an error.
func (g *Generator) GenerateOutline(ctx context.Context, req OutlineRequest) (*Outline, error) {
	if req.DurationDays <= 0 {
		req.DurationDays = 7
	}
	if req.MinutesPerDay <= 0 {
		req.MinutesPerDay = 45
	}
	isHU := isHungarian(req.Lang)

	system, user := buildOutlinePrompt(req, isHU)
	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "focus_outline"), llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      outlineSchema,
		MaxTokens:   outlineMaxTokens,
		Temperature: outlineTemperature,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.log.Warn("outline generation failed, using fallback", "error", err)
		return g.fallbackOutline(req, isHU), nil
	}

	data, ok := focus.ExtractJSONObject(resp.Content)
	if !ok {
		g.log.Warn("outline response is not JSON, using fallback")
		return g.fallbackOutline(req, isHU), nil
	}

	outline := normalizeOutline(data, req, isHU)
	if len(outline.Days) == 0 {
		g.log.Warn("outline has no days, using fallback")
		return g.fallbackOutline(req, isHU), nil
	}
	return outline, nil
}

var outlineSchema = &llm.Schema{
	Name: "focus_outline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"days": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required":             []any{"title", "days"},
		"additionalProperties": true,
	},
}

func buildOutlinePrompt(req OutlineRequest, isHU bool) (system, user string) {
	langInstruction := "Write all text in English."
	if isHU {
		langInstruction = "MINDEN SZÖVEG MAGYARUL LEGYEN. Írj magyarul!"
	}

	system = fmt.Sprintf(`FOCUS OUTLINE GENERATION - TITLES + INTROS ONLY.
Return STRICT JSON only.
No detailed content, no items.
CRITICAL: %s
`, langInstruction)

	langNote := "Write in English."
	textNote := "English text"
	titleHint := "Plan title"
	dayTitleHint, introHint := "title", "intro"
	if isHU {
		langNote = "ALL titles and intros MUST be written in HUNGARIAN language."
		textNote = "HUNGARIAN text"
		titleHint = "Terv címe magyarul"
		dayTitleHint, introHint = "magyar cím", "magyar bevezető"
	}

	user = fmt.Sprintf(`Create a %d-day outline.

Goal: %s
IMPORTANT: %s
Mode: %s
Domain: %s
Level: %s
Minutes per day: %d

Return JSON only (%s):
{
  "title": "%s",
  "days": [
    {"dayIndex": 1, "title": "%s", "intro": "%s", "items": []}
  ]
}
`, req.DurationDays, req.UserGoal, langNote, req.FocusType, req.Domain, req.Level,
		req.MinutesPerDay, textNote, titleHint, dayTitleHint, introHint)
	return system, user
}

func normalizeOutline(data map[string]any, req OutlineRequest, isHU bool) *Outline {
	outline := &Outline{
		Title:         stringField(data, "title"),
		Domain:        req.Domain,
		Level:         req.Level,
		MinutesPerDay: req.MinutesPerDay,
		FocusType:     req.FocusType,
	}
	if outline.Title == "" {
		outline.Title = req.UserGoal
	}
	if outline.Title == "" {
		outline.Title = defaultPlanTitle(isHU)
	}

	rawDays, _ := data["days"].([]any)
	for i, raw := range rawDays {
		day, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		index := intField(day, "dayIndex")
		if index == 0 {
			index = intField(day, "day")
		}
		if index == 0 {
			index = i + 1
		}
		outline.Days = append(outline.Days, Day{
			Index: index,
			Title: orDefault(stringField(day, "title"), dayTitle(index, isHU)),
			Intro: orDefault(stringField(day, "intro"), dayIntro(isHU)),
		})
	}
	return outline
}

func (g *Generator) fallbackOutline(req OutlineRequest, isHU bool) *Outline {
	outline := &Outline{
		Title:         orDefault(req.UserGoal, defaultPlanTitle(isHU)),
		Domain:        req.Domain,
		Level:         req.Level,
		MinutesPerDay: req.MinutesPerDay,
		FocusType:     req.FocusType,
	}
	for i := 1; i <= req.DurationDays; i++ {
		outline.Days = append(outline.Days, Day{
			Index: i,
			Title: dayTitle(i, isHU),
			Intro: dayIntro(isHU),
		})
	}
	return outline
}

func defaultPlanTitle(isHU bool) string {
	if isHU {
		return "Fókusz terv"
	}
	return "Focus plan"
}

func dayTitle(index int, isHU bool) string {
	if isHU {
		return fmt.Sprintf("Nap %d", index)
	}
	return fmt.Sprintf("Day %d", index)
}

func dayIntro(isHU bool) string {
	if isHU {
		return "Rövid napi áttekintés."
	}
	return "Short daily overview."
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
