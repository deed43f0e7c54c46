package focus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

func testEngine(mock *llm.MockProvider, maxRetries int) *Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(mock, GenerationConfig{MaxRetries: maxRetries}, log)
}

func marshalItem(t *testing.T, item Item) string {
	t.Helper()
	b, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func quizRequest() ItemRequest {
	return ItemRequest{
		Topic:    "kamatos kamat",
		Label:    "Kvíz",
		ItemType: "quiz",
		Domain:   "finance",
		Level:    "beginner",
		Lang:     "hu",
		Minutes:  5,
	}
}

func TestGenerateItemFirstTry(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")))

	res, err := testEngine(mock, 2).GenerateItem(context.Background(), quizRequest())
	if err != nil {
		t.Fatal(err)
	}
	if res.Fallback {
		t.Error("should not be a fallback")
	}
	if res.Attempts != 1 || mock.CallCount() != 1 {
		t.Errorf("attempts = %d, calls = %d", res.Attempts, mock.CallCount())
	}
	if res.Kind != KindQuiz {
		t.Errorf("kind = %q", res.Kind)
	}
	if ok, reason := Validate(res.Item); !ok {
		t.Errorf("result invalid: %s", reason)
	}
}

func TestGenerateItemRetriesOnInvalid(t *testing.T) {
	broken := FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")
	broken.Content()["questions"] = broken.Content()["questions"].([]any)[:1]

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, broken))
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")))

	res, err := testEngine(mock, 2).GenerateItem(context.Background(), quizRequest())
	if err != nil {
		t.Fatal(err)
	}
	if res.Fallback || res.Attempts != 2 {
		t.Errorf("fallback = %v, attempts = %d", res.Fallback, res.Attempts)
	}

	// The retry prompt carries the corrective directive.
	second := mock.Calls[1]
	if !strings.Contains(second.Messages[0].Content, "RETRY:") {
		t.Error("second attempt missing retry directive")
	}
	first := mock.Calls[0]
	if strings.Contains(first.Messages[0].Content, "RETRY:") {
		t.Error("first attempt must not carry the retry directive")
	}
}

func TestGenerateItemFallsBackAfterBudget(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse("I'm sorry, I can't produce JSON right now.")

	res, err := testEngine(mock, 2).GenerateItem(context.Background(), quizRequest())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback")
	}
	// MaxRetries=2 means 3 attempts total, never more.
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
	if ok, reason := Validate(res.Item); !ok {
		t.Errorf("fallback invalid: %s", reason)
	}
	if !strings.HasPrefix(getString(res.Item, "idempotency_key"), "fallback-") {
		t.Error("fallback item should carry the fallback idempotency prefix")
	}
}

func TestGenerateItemProviderErrorsConsumeAttempts(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueError(&llm.ErrProviderUnavailable{Provider: "anthropic", Err: errors.New("boom")})
	mock.QueueError(&llm.ErrProviderUnavailable{Provider: "anthropic", Err: errors.New("boom")})
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")))

	res, err := testEngine(mock, 2).GenerateItem(context.Background(), quizRequest())
	if err != nil {
		t.Fatal(err)
	}
	if res.Fallback {
		t.Error("third attempt succeeded, should not fall back")
	}
	if res.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", res.Attempts)
	}
}

func TestGenerateItemDomainGuard(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "futás", "Gyakorlat", "hu", 5, "fitness")))

	req := quizRequest()
	req.Topic = "futás"
	req.ItemType = "translation" // language-only type in a fitness plan
	req.Domain = "fitness"

	res, err := testEngine(mock, 0).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != KindQuiz {
		t.Errorf("kind = %q, want quiz after downgrade", res.Kind)
	}
	if schema := mock.Calls[0].Schema; schema == nil || !strings.Contains(mustJSON(t, schema.Definition), "quiz") {
		t.Error("request schema should pin the downgraded kind")
	}
}

func TestGenerateItemNormalizesEnvelope(t *testing.T) {
	item := FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")
	item["kind"] = "quiz"
	item.Validation()["require_interaction"] = false // model got it wrong

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, item))

	res, err := testEngine(mock, 0).GenerateItem(context.Background(), quizRequest())
	if err != nil {
		t.Fatal(err)
	}
	if ri, _ := res.Item.Validation()["require_interaction"].(bool); !ri {
		t.Error("normalization should force require_interaction for quiz")
	}
}

func TestGenerateItemChainVersion(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "köszönések", "Kvíz", "hu", 5, "language_learning")))

	req := ItemRequest{
		Topic:           "köszönések",
		ItemType:        "quiz",
		Domain:          "language_learning",
		Lang:            "hu",
		Minutes:         5,
		Settings:        &Settings{TargetLanguage: "german"},
		PrecedingLesson: "SZAVAK:\nGuten Tag = Jó napot",
	}
	res, err := testEngine(mock, 0).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if getString(res.Item, "chain_version") != "lesson_v2" {
		t.Errorf("chain_version = %q", getString(res.Item, "chain_version"))
	}
}

func TestGenerateItemScriptMismatchRetry(t *testing.T) {
	latin := FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")
	// The fallback lesson's vocabulary is Latin-script on purpose; for a
	// Korean target this must trip the script recheck.
	korean := FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")
	korean.Content()["vocabulary_table"] = []any{
		map[string]any{"word": "안녕하세요", "translation": "Jó napot"},
		map[string]any{"word": "감사합니다", "translation": "Köszönöm"},
		map[string]any{"word": "네", "translation": "Igen"},
	}

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, latin))
	mock.QueueResponse(marshalItem(t, korean))

	req := ItemRequest{
		Topic:    "köszönések",
		ItemType: "lesson",
		Domain:   "language_learning",
		Lang:     "hu",
		Minutes:  5,
		Settings: &Settings{TargetLanguage: "korean"},
	}
	res, err := testEngine(mock, 2).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2 (one script retry)", res.Attempts)
	}
	if scriptMismatch(res.Item) {
		t.Error("accepted item still mismatches the script")
	}
}

func TestGenerateItemScriptRetryBounded(t *testing.T) {
	latin := FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, latin)) // repeated for every attempt

	req := ItemRequest{
		Topic:    "köszönések",
		ItemType: "lesson",
		Domain:   "language_learning",
		Lang:     "hu",
		Minutes:  5,
		Settings: &Settings{TargetLanguage: "korean"},
	}
	res, err := testEngine(mock, 2).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	// One script retry, then the otherwise-valid item is accepted.
	if res.Fallback {
		t.Error("valid item should be accepted despite persistent mismatch")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateItemTranslationSentencesAlias(t *testing.T) {
	// Models answering the translation prompt with the legacy "sentences"
	// field name must be accepted, not retried into the fallback.
	item := FallbackItem(KindTranslation, "köszönések", "Fordítás", "hu", 5, "language_learning")
	content := item.Content()
	content["sentences"] = content["items"]
	delete(content, "items")

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, item))

	req := ItemRequest{
		Topic:        "köszönések",
		ItemType:     "practice",
		PracticeType: "translation",
		Domain:       "language_learning",
		Lang:         "hu",
		Minutes:      5,
		Settings:     &Settings{TargetLanguage: "german"},
	}
	res, err := testEngine(mock, 2).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fallback {
		t.Fatal("sentences-shaped translation content should be accepted")
	}
	if res.Attempts != 1 || mock.CallCount() != 1 {
		t.Errorf("attempts = %d, calls = %d, want 1/1", res.Attempts, mock.CallCount())
	}
}

func TestGenerateItemTemperatureOverride(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")))
	engine := NewEngine(mock, GenerationConfig{Temperature: 0.9}, log)
	if _, err := engine.GenerateItem(context.Background(), quizRequest()); err != nil {
		t.Fatal(err)
	}
	if got := mock.Calls[0].Temperature; got != 0.9 {
		t.Errorf("temperature = %v, want configured override 0.9", got)
	}

	// Zero config falls back to the per-kind default.
	mock = llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, FallbackItem(KindQuiz, "kamatos kamat", "Kvíz", "hu", 5, "finance")))
	engine = NewEngine(mock, GenerationConfig{}, log)
	if _, err := engine.GenerateItem(context.Background(), quizRequest()); err != nil {
		t.Fatal(err)
	}
	if got := mock.Calls[0].Temperature; got != temperatureFor(KindQuiz) {
		t.Errorf("temperature = %v, want per-kind default %v", got, temperatureFor(KindQuiz))
	}
}

func TestGenerateItemScriptMismatchOnFinalAttempt(t *testing.T) {
	broken := FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")
	broken.Content()["vocabulary_table"] = []any{} // fails validation
	latin := FallbackItem(KindContent, "köszönések", "Lecke", "hu", 5, "language_learning")

	mock := llm.NewMockProvider()
	mock.QueueResponse(marshalItem(t, broken))
	mock.QueueResponse(marshalItem(t, latin))

	req := ItemRequest{
		Topic:    "köszönések",
		ItemType: "lesson",
		Domain:   "language_learning",
		Lang:     "hu",
		Minutes:  5,
		Settings: &Settings{TargetLanguage: "korean"},
	}
	// The valid-but-Latin lesson arrives on the last attempt while the
	// script-retry budget is unspent; it still beats the fallback.
	res, err := testEngine(mock, 1).GenerateItem(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fallback {
		t.Error("valid item on the final attempt should be accepted, not replaced by fallback")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateItemCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider()
	_, err := testEngine(mock, 2).GenerateItem(ctx, quizRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
