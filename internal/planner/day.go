package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

const (
	dayMaxTokens   = 1200
	dayTemperature = 0.3
)

// GenerateDay produces the item structure for one day of the outline:
// ids, types, topics and time estimates, no content. The result is
// normalized so every day carries the minimum practice mix its domain
// requires.
func (g *Generator) GenerateDay(ctx context.Context, outline *Outline, dayIndex int, lang string, settings *focus.Settings) (*Day, error) {
	if dayIndex < 1 || dayIndex > len(outline.Days) {
		return nil, fmt.Errorf("day index %d out of range (plan has %d days)", dayIndex, len(outline.Days))
	}
	isHU := isHungarian(lang)
	info := outline.Days[dayIndex-1]

	dayTitleStr := orDefault(info.Title, dayTitle(dayIndex, isHU))
	planTitle := outline.Title
	if planTitle == "" {
		planTitle = defaultPlanTitle(isHU)
	}
	minutes := outline.MinutesPerDay
	if minutes <= 0 {
		minutes = 45
	}

	system, user := buildDayPrompt(dayPromptInput{
		PlanTitle: planTitle,
		DayIndex:  dayIndex,
		DayTitle:  dayTitleStr,
		DayIntro:  info.Intro,
		FocusType: outline.FocusType,
		Domain:    outline.Domain,
		Level:     outline.Level,
		Minutes:   minutes,
	}, isHU)

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "focus_day"), llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      daySchema,
		MaxTokens:   dayMaxTokens,
		Temperature: dayTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate day structure: %w", err)
	}

	data, ok := focus.ExtractJSONObject(resp.Content)
	if !ok {
		return nil, fmt.Errorf("day structure response is not a JSON object")
	}

	day := &Day{
		Index: dayIndex,
		Title: orDefault(stringField(data, "title"), dayTitleStr),
		Intro: orDefault(stringField(data, "intro"), info.Intro),
		Items: parseDayItems(data, dayIndex),
	}
	normalizeDayItems(day, isHU, outline.Domain, settings)
	return day, nil
}

var daySchema = &llm.Schema{
	Name: "focus_day",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day":   map[string]any{"type": "integer"},
			"title": map[string]any{"type": "string"},
			"intro": map[string]any{"type": "string"},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": true,
	},
}

type dayPromptInput struct {
	PlanTitle string
	DayIndex  int
	DayTitle  string
	DayIntro  string
	FocusType string
	Domain    string
	Level     string
	Minutes   int
}

func buildDayPrompt(in dayPromptInput, isHU bool) (system, user string) {
	if isHU {
		system = fmt.Sprintf(`FÓKUSZ NAP STRUKTÚRA GENERÁLÁS - CSAK OUTLINE!

🎯 FELADAT:
Készítsd el a nap itemjeinek listáját címekkel, témákkal és időbecsléssel.
NE generálj részletes tartalmat - csak a struktúrát!

⏱️ IDŐBEOSZTÁS (%d perc):
- Tanulás (6-8 lesson): ~20 perc
  → Minden lesson: 2-3 perc olvasás
- Gyakorlás:
  → 1 quiz: ~5 perc
  → 2-3 practice: 6-10 perc each
  → 4-6 task: 1-2 perc each

%s

🔑 MINDEN ITEM-NEK KELL:
- Egyedi ID
- Type (lesson/quiz/practice/flashcard/task)
- Label (rövid cím)
- Topic (konkrét téma amit lefed)
- Estimated_minutes (időbecslés)
`, in.Minutes, domainRulesHU(in.Domain))

		user = fmt.Sprintf(`Készítsd el a(z) %d. nap STRUKTÚRÁJÁT.

**Terv:** %s
**Nap címe:** %s
**Nap célja:** %s
**Típus:** %s
**Terület:** %s
**Szint:** %s
**Napi idő:** %d perc

Csak JSON struktúra:

{
  "day": %d,
  "title": "%s",
  "intro": "%s",
  "items": [
    {"id": "d%d-lesson-1", "type": "lesson", "label": "Első téma rövid címe (2-5 szó)", "topic": "Konkrét téma amit ez a lesson tanít", "estimated_minutes": 3},
    {"id": "d%d-quiz-1", "type": "quiz", "label": "Kvíz - Mai anyag", "topic": "A nap összes témája", "estimated_minutes": 5},
    {"id": "d%d-task-1", "type": "task", "label": "Feladat címe", "topic": "Mit kell csinálni", "estimated_minutes": 2}
  ]
}

🚨 KRITIKUS:
- CSAK STRUKTÚRA, nincs részletes tartalom!
- Minden item-nek legyen 'topic' mezője
- Estimated_minutes összege: ~%d perc
- A domain (%s) szabályait KÖVESD!
- STRICT JSON!
`, in.DayIndex, in.PlanTitle, in.DayTitle, in.DayIntro, in.FocusType, in.Domain, in.Level,
			in.Minutes, in.DayIndex, in.DayTitle, in.DayIntro, in.DayIndex, in.DayIndex, in.DayIndex, in.Minutes, in.Domain)
		return system, user
	}

	system = fmt.Sprintf(`FOCUS DAY STRUCTURE GENERATION - OUTLINE ONLY!

🎯 TASK:
Create day's item list with titles, topics, and time estimates.
DON'T generate detailed content - structure only!

⏱️ TIME DISTRIBUTION (%d min):
- Learning (6-8 lessons): ~20 min
  → Each lesson: 2-3 min reading
- Practice:
  → 1 quiz: ~5 min
  → 2-3 practice: 6-10 min each
  → 4-6 tasks: 1-2 min each

%s

🔑 EVERY ITEM NEEDS:
- Unique ID
- Type (lesson/quiz/practice/flashcard/task)
- Label (short title)
- Topic (specific topic covered)
- Estimated_minutes (time estimate)
`, in.Minutes, domainRulesEN(in.Domain))

	user = fmt.Sprintf(`Create structure for day %d.

**Plan:** %s
**Day title:** %s
**Day goal:** %s
**Type:** %s
**Domain:** %s
**Level:** %s
**Daily time:** %d min

JSON structure only:

{
  "day": %d,
  "title": "%s",
  "intro": "%s",
  "items": [
    {"id": "d%d-lesson-1", "type": "lesson", "label": "First topic short title (2-5 words)", "topic": "Specific topic this lesson teaches", "estimated_minutes": 3},
    {"id": "d%d-quiz-1", "type": "quiz", "label": "Quiz - Today's material", "topic": "All today's topics summarized", "estimated_minutes": 5},
    {"id": "d%d-task-1", "type": "task", "label": "Task title", "topic": "What to do", "estimated_minutes": 2}
  ]
}

🚨 CRITICAL:
- STRUCTURE ONLY, no detailed content!
- Every item needs 'topic' field
- Estimated_minutes sum: ~%d min
- Follow the DOMAIN (%s) rules from the system prompt!
- STRICT JSON!
`, in.DayIndex, in.PlanTitle, in.DayTitle, in.DayIntro, in.FocusType, in.Domain, in.Level,
		in.Minutes, in.DayIndex, in.DayTitle, in.DayIntro, in.DayIndex, in.DayIndex, in.DayIndex, in.Minutes, in.Domain)
	return system, user
}

func parseDayItems(data map[string]any, dayIndex int) []DayItem {
	raw, _ := data["items"].([]any)
	items := make([]DayItem, 0, len(raw))
	for i, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		item := DayItem{
			ID:               stringField(m, "id"),
			Type:             strings.ToLower(stringField(m, "type")),
			Label:            stringField(m, "label"),
			Topic:            stringField(m, "topic"),
			PracticeType:     strings.ToLower(stringField(m, "practice_type")),
			EstimatedMinutes: intField(m, "estimated_minutes"),
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("d%d-item-%d", dayIndex, i+1)
		}
		items = append(items, item)
	}
	return items
}

// practiceTypeMap folds dialogue-flavoured practice names onto the two
// canonical language practice types.
var practiceTypeMap = map[string]string{
	"roleplay":     "exercise",
	"dialogue":     "exercise",
	"conversation": "exercise",
	"drill":        "translation",
}

var languageOnlyPractice = map[string]bool{
	"translation": true, "exercise": true, "roleplay": true, "dialogue": true, "speaking": true,
}

// normalizeDayItems enforces domain safety and the minimum practice mix.
// Fixed-structure tracks are left untouched.
func normalizeDayItems(day *Day, isHU bool, domain string, settings *focus.Settings) {
	if settings != nil {
		switch settings.Track {
		case "career_language", "foundations_language":
			return
		}
	}

	isLanguage := focus.IsLanguageDomain(domain)
	var hasQuiz, hasWriting, hasTask, hasExercise, hasTranslation bool

	for i := range day.Items {
		item := &day.Items[i]

		if !isLanguage {
			if languageOnlyPractice[item.PracticeType] {
				item.PracticeType = "writing"
			}
			if item.Type == "flashcard" || item.Type == "translation" {
				item.Type = "quiz"
			}
		} else if mapped, ok := practiceTypeMap[item.PracticeType]; ok {
			item.PracticeType = mapped
		}

		if item.Type == "quiz" || item.PracticeType == "quiz" {
			hasQuiz = true
		}
		switch item.PracticeType {
		case "writing":
			hasWriting = true
		case "exercise":
			hasExercise = true
		case "translation":
			hasTranslation = true
		}
		if item.Type == "task" {
			hasTask = true
		}
	}

	pickStr := func(hu, en string) string {
		if isHU {
			return hu
		}
		return en
	}

	if isLanguage {
		if !hasExercise {
			day.Items = append(day.Items, DayItem{
				ID:               fmt.Sprintf("d%d-exercise-auto", day.Index),
				Type:             "practice",
				Label:            pickStr("Párbeszéd gyakorlat", "Dialogue practice"),
				Topic:            pickStr("Interaktív párbeszéd AI-val", "Interactive dialogue with AI"),
				PracticeType:     "exercise",
				EstimatedMinutes: 8,
			})
		}
		if !hasTranslation {
			day.Items = append(day.Items, DayItem{
				ID:               fmt.Sprintf("d%d-translation-auto", day.Index),
				Type:             "practice",
				Label:            pickStr("Fordítási gyakorlat", "Translation practice"),
				Topic:            pickStr("Mondatok fordítása", "Sentence translation"),
				PracticeType:     "translation",
				EstimatedMinutes: 6,
			})
		}
		if !hasWriting {
			day.Items = append(day.Items, DayItem{
				ID:               fmt.Sprintf("d%d-writing-auto", day.Index),
				Type:             "practice",
				Label:            pickStr("Írási feladat", "Writing task"),
				Topic:            pickStr("Rövid szöveg írása", "Write a short text"),
				PracticeType:     "writing",
				EstimatedMinutes: 8,
			})
		}
		return
	}

	if !hasQuiz {
		day.Items = append(day.Items, DayItem{
			ID:               fmt.Sprintf("d%d-quiz-auto", day.Index),
			Type:             "quiz",
			Label:            pickStr("Kvíz", "Quiz"),
			Topic:            orDefault(day.Title, pickStr("Napi anyag", "Daily material")),
			EstimatedMinutes: 5,
		})
	}
	if !hasWriting {
		day.Items = append(day.Items, DayItem{
			ID:               fmt.Sprintf("d%d-writing-auto", day.Index),
			Type:             "practice",
			Label:            pickStr("Összefoglaló", "Summary"),
			Topic:            pickStr("Írd le a tanultakat", "Summarize what you learned"),
			PracticeType:     "writing",
			EstimatedMinutes: 5,
		})
	}
	if !hasTask {
		day.Items = append(day.Items, DayItem{
			ID:               fmt.Sprintf("d%d-task-auto", day.Index),
			Type:             "task",
			Label:            pickStr("Mai feladat", "Today's task"),
			Topic:            pickStr("Alkalmazd a tanultakat", "Apply what you learned"),
			EstimatedMinutes: 5,
		})
	}
}
