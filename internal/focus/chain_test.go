package focus

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

var errTest = errors.New("store offline")

type fakeItemStore struct {
	items []StoredItem
	err   error
}

func (f *fakeItemStore) DayItems(ctx context.Context, planID string, day int) ([]StoredItem, error) {
	return f.items, f.err
}

func lessonItem(t *testing.T) Item {
	t.Helper()
	return FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")
}

func chainReq() ItemRequest {
	return ItemRequest{
		Topic:        "köszönések",
		ItemType:     "practice",
		PracticeType: "quiz",
		Domain:       "language_learning",
		Lang:         "hu",
		Minutes:      5,
		Settings:     &Settings{TargetLanguage: "german"},
	}
}

func TestResolvePrecedingLessonFromStoredDay(t *testing.T) {
	store := &fakeItemStore{items: []StoredItem{
		{OrderIndex: 0, Kind: "briefing", Item: FallbackItem(KindBriefing, "nap", "Briefing", "hu", 2, "language_learning")},
		{OrderIndex: 1, Kind: "content", Item: lessonItem(t)},
		{OrderIndex: 2, Kind: "cards", Item: FallbackItem(KindCards, "szavak", "Kártyák", "hu", 3, "language_learning")},
	}}

	engine := testEngine(llm.NewMockProvider(), 0)
	lessonCtx, generated, err := engine.ResolvePrecedingLesson(context.Background(), store, "plan-1", 1, 3, chainReq())
	if err != nil {
		t.Fatal(err)
	}
	if generated != nil {
		t.Error("no lesson should be generated when the day has one")
	}
	if !strings.Contains(lessonCtx, "SZAVAK:") {
		t.Errorf("lesson context missing vocabulary section: %q", lessonCtx)
	}
}

func TestResolvePrecedingLessonIgnoresLaterItems(t *testing.T) {
	// The only lesson sits after the practice item and must not be used.
	store := &fakeItemStore{items: []StoredItem{
		{OrderIndex: 5, Kind: "content", Item: lessonItem(t)},
	}}

	mock := llm.NewMockProvider()
	b, _ := json.Marshal(lessonItem(t))
	mock.QueueResponse(string(b))

	engine := testEngine(mock, 0)
	lessonCtx, generated, err := engine.ResolvePrecedingLesson(context.Background(), store, "plan-1", 1, 2, chainReq())
	if err != nil {
		t.Fatal(err)
	}
	if generated == nil {
		t.Fatal("expected an auto-generated lesson")
	}
	if generated.Kind != KindContent {
		t.Errorf("generated kind = %q", generated.Kind)
	}
	if lessonCtx == "" {
		t.Error("empty lesson context from generated lesson")
	}
}

func TestResolvePrecedingLessonSkipsUnchainedKinds(t *testing.T) {
	engine := testEngine(llm.NewMockProvider(), 0)

	req := chainReq()
	req.PracticeType = ""
	req.ItemType = "briefing"
	lessonCtx, generated, err := engine.ResolvePrecedingLesson(context.Background(), &fakeItemStore{}, "plan-1", 1, 0, req)
	if err != nil || lessonCtx != "" || generated != nil {
		t.Fatalf("briefing should not chain: (%q, %v, %v)", lessonCtx, generated, err)
	}

	req = chainReq()
	req.Domain = "finance"
	lessonCtx, generated, err = engine.ResolvePrecedingLesson(context.Background(), &fakeItemStore{}, "plan-1", 1, 0, req)
	if err != nil || lessonCtx != "" || generated != nil {
		t.Fatalf("non-language domain should not chain: (%q, %v, %v)", lessonCtx, generated, err)
	}
}

func TestResolvePrecedingLessonStoreFailureIsNonFatal(t *testing.T) {
	store := &fakeItemStore{err: errTest}

	// No lesson is generated either: the practice item proceeds unchained.
	mock := llm.NewMockProvider()
	engine := testEngine(mock, 0)
	lessonCtx, generated, err := engine.ResolvePrecedingLesson(context.Background(), store, "plan-1", 1, 2, chainReq())
	if err != nil {
		t.Fatalf("store failure must not abort generation: %v", err)
	}
	if lessonCtx != "" || generated != nil {
		t.Errorf("expected unchained result, got (%q, %v)", lessonCtx, generated)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no generation calls expected, got %d", mock.CallCount())
	}
}

func TestExtractLessonContext(t *testing.T) {
	content := lessonItem(t).Content()
	got := ExtractLessonContext(content)

	for _, want := range []string{"LECKE:", "SZAVAK:", "Hello = Helló", "NYELVTAN:", "PÁRBESZÉD:", "GYAKORI HIBÁK:"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// Dialogue snippet is capped at two lines.
	if strings.Contains(got, "Nice to meet you") {
		t.Error("dialogue snippet should stop after 2 lines")
	}
}

func TestExtractLessonContextLimits(t *testing.T) {
	vocab := make([]any, 0, 30)
	for i := 0; i < 30; i++ {
		vocab = append(vocab, map[string]any{"word": "szó" + string(rune('a'+i)), "translation": "word"})
	}
	got := ExtractLessonContext(map[string]any{"vocabulary_table": vocab})
	if n := strings.Count(got, " = "); n != 15 {
		t.Errorf("vocab lines = %d, want 15", n)
	}

	if got := ExtractLessonContext(nil); got != "" {
		t.Errorf("nil content should give empty context, got %q", got)
	}
	if got := ExtractLessonContext(map[string]any{}); got != "" {
		t.Errorf("empty content should give empty context, got %q", got)
	}
}
