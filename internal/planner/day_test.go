package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

func languageOutline() *Outline {
	return &Outline{
		Title:         "Koreai alapok",
		Domain:        "language_learning",
		Level:         "beginner",
		MinutesPerDay: 45,
		FocusType:     "learning",
		Days: []Day{
			{Index: 1, Title: "Nap 1 - Hangul", Intro: "Az ábécé alapjai."},
			{Index: 2, Title: "Nap 2 - Köszönések", Intro: "Üdvözlések."},
		},
	}
}

func financeOutline() *Outline {
	o := languageOutline()
	o.Title = "Pénzügyi alapok"
	o.Domain = "finance"
	o.Days = []Day{{Index: 1, Title: "Nap 1 - Kamatos kamat", Intro: "Alapok."}}
	return o
}

func TestGenerateDay(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"day": 1,
		"title": "Nap 1 - Hangul",
		"intro": "Az ábécé alapjai.",
		"items": [
			{"id": "d1-lesson-1", "type": "lesson", "label": "Hangul alapok", "topic": "hook: első betűk", "estimated_minutes": 3},
			{"id": "d1-exercise-1", "type": "practice", "label": "Párbeszéd", "topic": "köszönés", "practice_type": "exercise", "estimated_minutes": 8},
			{"id": "d1-translation-1", "type": "practice", "label": "Fordítás", "topic": "mondatok", "practice_type": "translation", "estimated_minutes": 6},
			{"id": "d1-writing-1", "type": "practice", "label": "Írás", "topic": "bemutatkozás", "practice_type": "writing", "estimated_minutes": 8}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 1, "hu", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, day.Index)
	assert.Equal(t, "Nap 1 - Hangul", day.Title)
	require.Len(t, day.Items, 4) // full mix present, nothing injected
	assert.Equal(t, "lesson", day.Items[0].Type)
}

func TestGenerateDayInjectsMissingLanguageMix(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"items": [
			{"id": "d1-lesson-1", "type": "lesson", "label": "Lecke", "topic": "köszönések", "estimated_minutes": 3}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 1, "hu", nil)
	require.NoError(t, err)

	types := map[string]bool{}
	for _, item := range day.Items {
		if item.PracticeType != "" {
			types[item.PracticeType] = true
		}
	}
	assert.True(t, types["exercise"], "missing exercise should be injected")
	assert.True(t, types["translation"], "missing translation should be injected")
	assert.True(t, types["writing"], "missing writing should be injected")
	require.Len(t, day.Items, 4)
	assert.Equal(t, "d1-exercise-auto", day.Items[1].ID)
}

func TestGenerateDayDomainGuard(t *testing.T) {
	mock := llm.NewMockProvider()
	// The model hallucinated language items into a finance plan.
	mock.QueueResponse(`{
		"items": [
			{"id": "d1-flashcard-1", "type": "flashcard", "label": "Kártyák", "topic": "fogalmak", "estimated_minutes": 5},
			{"id": "d1-practice-1", "type": "practice", "label": "Párbeszéd", "topic": "beszélgetés", "practice_type": "roleplay", "estimated_minutes": 8},
			{"id": "d1-task-1", "type": "task", "label": "Feladat", "topic": "gyakorlás", "estimated_minutes": 2}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), financeOutline(), 1, "hu", nil)
	require.NoError(t, err)

	assert.Equal(t, "quiz", day.Items[0].Type, "flashcard downgraded to quiz")
	assert.Equal(t, "writing", day.Items[1].PracticeType, "roleplay downgraded to writing")
	for _, item := range day.Items {
		assert.NotContains(t, []string{"translation", "exercise"}, item.PracticeType,
			"no language practice in finance domain: %+v", item)
	}
}

func TestGenerateDayLanguageTypeMap(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"items": [
			{"id": "d1-p1", "type": "practice", "label": "Szerepjáték", "topic": "étterem", "practice_type": "roleplay", "estimated_minutes": 8},
			{"id": "d1-p2", "type": "practice", "label": "Drill", "topic": "szavak", "practice_type": "drill", "estimated_minutes": 6},
			{"id": "d1-p3", "type": "practice", "label": "Írás", "topic": "levél", "practice_type": "writing", "estimated_minutes": 8}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 1, "hu", nil)
	require.NoError(t, err)

	assert.Equal(t, "exercise", day.Items[0].PracticeType, "roleplay maps to exercise")
	assert.Equal(t, "translation", day.Items[1].PracticeType, "drill maps to translation")
	assert.Len(t, day.Items, 3, "full mix after mapping, nothing injected")
}

func TestGenerateDayFixedTrackUntouched(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"items": [
			{"id": "d1-b1", "type": "briefing", "label": "Briefing", "topic": "mai nap", "estimated_minutes": 2}
		]
	}`)

	settings := &focus.Settings{Track: "career_language"}
	day, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 1, "hu", settings)
	require.NoError(t, err)
	assert.Len(t, day.Items, 1, "fixed-structure track must not get injected items")
}

func TestGenerateDayNonLanguageInjection(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"items": [
			{"id": "d1-lesson-1", "type": "lesson", "label": "Lecke", "topic": "kamat", "estimated_minutes": 3}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), financeOutline(), 1, "hu", nil)
	require.NoError(t, err)

	var hasQuiz, hasWriting, hasTask bool
	for _, item := range day.Items {
		hasQuiz = hasQuiz || item.Type == "quiz"
		hasWriting = hasWriting || item.PracticeType == "writing"
		hasTask = hasTask || item.Type == "task"
	}
	assert.True(t, hasQuiz)
	assert.True(t, hasWriting)
	assert.True(t, hasTask)
}

func TestGenerateDayErrors(t *testing.T) {
	t.Run("invalid day index", func(t *testing.T) {
		_, err := testGenerator(llm.NewMockProvider()).GenerateDay(context.Background(), languageOutline(), 9, "hu", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		mock := llm.NewMockProvider()
		mock.QueueError(&llm.ErrProviderUnavailable{Provider: "anthropic", Err: errors.New("down")})
		_, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 1, "hu", nil)
		require.Error(t, err)
	})
}

func TestGenerateDayFillsMissingIDs(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(`{
		"items": [
			{"type": "lesson", "label": "Lecke", "topic": "téma", "estimated_minutes": 3},
			{"type": "practice", "label": "Gyakorlat", "topic": "téma", "practice_type": "exercise", "estimated_minutes": 8},
			{"type": "practice", "label": "Fordítás", "topic": "téma", "practice_type": "translation", "estimated_minutes": 6},
			{"type": "practice", "label": "Írás", "topic": "téma", "practice_type": "writing", "estimated_minutes": 8}
		]
	}`)

	day, err := testGenerator(mock).GenerateDay(context.Background(), languageOutline(), 2, "hu", nil)
	require.NoError(t, err)
	assert.Equal(t, "d2-item-1", day.Items[0].ID)
	assert.Equal(t, 2, day.Index)
}
