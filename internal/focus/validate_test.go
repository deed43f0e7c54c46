package focus

import (
	"strings"
	"testing"
)

// validItem returns a known-good item for the kind, built from the
// deterministic fallback which must always validate.
func validItem(t *testing.T, kind Kind, domain string) Item {
	t.Helper()
	item := FallbackItem(kind, "bemutatkozás", "Gyakorlat", "hu", 5, domain)
	if ok, reason := Validate(item); !ok {
		t.Fatalf("baseline %s item invalid: %s", kind, reason)
	}
	return item
}

func TestValidateEnvelope(t *testing.T) {
	t.Run("missing kind", func(t *testing.T) {
		ok, reason := Validate(Item{"title": "x"})
		if ok || !strings.Contains(reason, "kind") {
			t.Fatalf("got (%v, %q)", ok, reason)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ok, _ := Validate(Item{"kind": "karaoke"})
		if ok {
			t.Fatal("accepted unknown kind")
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		item := validItem(t, KindChecklist, "other")
		delete(item, "idempotency_key")
		ok, reason := Validate(item)
		if ok || !strings.Contains(reason, "idempotency_key") {
			t.Fatalf("got (%v, %q)", ok, reason)
		}
	})

	t.Run("interactive kind must require interaction", func(t *testing.T) {
		item := validItem(t, KindQuiz, "other")
		item["validation"].(map[string]any)["require_interaction"] = false
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted quiz without require_interaction")
		}
	})

	t.Run("forbidden pattern in instructions", func(t *testing.T) {
		item := validItem(t, KindChecklist, "other")
		item["instructions_md"] = "Mondd ki hangosan a szavakat!"
		ok, reason := Validate(item)
		if ok || !strings.Contains(reason, "forbidden") {
			t.Fatalf("got (%v, %q)", ok, reason)
		}
	})

	t.Run("content kind may mention pronunciation", func(t *testing.T) {
		item := validItem(t, KindContent, "language_learning")
		item["instructions_md"] = "A kiejtésről: a szóvégi hangot hangosan ejtjük."
		if ok, reason := Validate(item); !ok {
			t.Fatalf("lesson rejected: %s", reason)
		}
	})
}

func TestValidateNeverPanics(t *testing.T) {
	garbage := []Item{
		nil,
		{},
		{"kind": 42},
		{"kind": "quiz", "content": "not a map", "validation": []any{1}},
		{"kind": "quiz", "schema_version": "1.0", "idempotency_key": "k",
			"title": "t", "instructions_md": "i", "content": map[string]any{
				"questions": []any{"not an object", 7},
			}, "validation": map[string]any{"require_interaction": true}},
		{"kind": "smart_lesson", "schema_version": "1.0", "idempotency_key": "k",
			"title": "t", "instructions_md": "i",
			"content":    map[string]any{"hook": 5, "micro_task_1": "x"},
			"validation": map[string]any{"require_interaction": true}},
	}
	for i, item := range garbage {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("item %d panicked: %v", i, r)
				}
			}()
			if ok, _ := Validate(item); ok {
				t.Errorf("item %d accepted", i)
			}
		}()
	}
}

func TestValidateQuiz(t *testing.T) {
	base := func() Item { return validItem(t, KindQuiz, "other") }

	t.Run("too few questions", func(t *testing.T) {
		item := base()
		content := item.Content()
		content["questions"] = content["questions"].([]any)[:2]
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted 2-question quiz")
		}
	})

	t.Run("placeholder options rejected", func(t *testing.T) {
		item := base()
		q := item.Content()["questions"].([]any)[0].(map[string]any)
		q["options"] = []any{"a", "b", "c"}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted placeholder options")
		}
	})

	t.Run("correct_index out of range", func(t *testing.T) {
		item := base()
		q := item.Content()["questions"].([]any)[0].(map[string]any)
		delete(q, "answer_index")
		q["correct_index"] = 9
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted out-of-range correct_index")
		}
	})

	t.Run("missing explanation", func(t *testing.T) {
		item := base()
		q := item.Content()["questions"].([]any)[0].(map[string]any)
		delete(q, "explanation")
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted question without explanation")
		}
	})

	t.Run("legacy single-question format", func(t *testing.T) {
		item := base()
		item["content"] = map[string]any{
			"question":      "Melyik helyes?",
			"choices":       []any{"első", "második", "harmadik", "negyedik"},
			"correct_index": 1,
		}
		if ok, reason := Validate(item); !ok {
			t.Fatalf("legacy quiz rejected: %s", reason)
		}
	})

	t.Run("float indexes from JSON decode", func(t *testing.T) {
		item := base()
		q := item.Content()["questions"].([]any)[0].(map[string]any)
		q["answer_index"] = float64(0)
		if ok, reason := Validate(item); !ok {
			t.Fatalf("rejected float64 index: %s", reason)
		}
	})
}

func TestValidateContent(t *testing.T) {
	t.Run("generic summary rejected", func(t *testing.T) {
		item := validItem(t, KindContent, "other")
		item.Content()["summary"] = "Ez egy olvasandó tartalom a témában."
		ok, reason := Validate(item)
		if ok || !strings.Contains(reason, "generic") {
			t.Fatalf("got (%v, %q)", ok, reason)
		}
	})

	t.Run("language lesson short intro rejected", func(t *testing.T) {
		item := validItem(t, KindContent, "language_learning")
		item.Content()["introduction"] = "Rövid."
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted 1-word introduction")
		}
	})

	t.Run("language lesson needs vocabulary", func(t *testing.T) {
		item := validItem(t, KindContent, "language_learning")
		item.Content()["vocabulary_table"] = []any{}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted empty vocabulary")
		}
	})

	t.Run("nonlatin beginner lesson flow", func(t *testing.T) {
		item := validItem(t, KindContent, "language_learning")
		item["content"] = map[string]any{
			"content_type": "language_nonlatin_beginner",
			"lesson_flow": []any{
				map[string]any{"type": "letters", "title_hu": "Betűk", "body_md": "ㄱ ㄴ ㄷ"},
				map[string]any{"type": "words", "title_hu": "Szavak", "body_md": "안녕 = szia"},
			},
		}
		if ok, reason := Validate(item); !ok {
			t.Fatalf("rejected: %s", reason)
		}

		item["content"].(map[string]any)["lesson_flow"] = []any{
			map[string]any{"type": "letters", "body_md": "ㄱ"},
		}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted block without title_hu")
		}
	})
}

func TestValidateChecklist(t *testing.T) {
	t.Run("too few items", func(t *testing.T) {
		item := validItem(t, KindChecklist, "other")
		item.Content()["items"] = item.Content()["items"].([]any)[:3]
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted 3-item checklist")
		}
	})

	t.Run("steps alternative accepted", func(t *testing.T) {
		item := validItem(t, KindChecklist, "other")
		item["content"] = map[string]any{
			"steps": []any{"Első lépés leírása", "Második lépés leírása", "Harmadik lépés leírása"},
		}
		if ok, reason := Validate(item); !ok {
			t.Fatalf("rejected steps format: %s", reason)
		}
	})
}

func TestValidateRoleplay(t *testing.T) {
	item := validItem(t, KindRoleplay, "language_learning")
	delete(item.Content(), "opening_line")
	if ok, _ := Validate(item); ok {
		t.Fatal("accepted roleplay without opening_line")
	}
}

func TestValidateTranslation(t *testing.T) {
	t.Run("sentences alias accepted", func(t *testing.T) {
		item := validItem(t, KindTranslation, "language_learning")
		content := item.Content()
		content["sentences"] = content["items"]
		delete(content, "items")
		if ok, reason := Validate(item); !ok {
			t.Fatalf("rejected sentences field name: %s", reason)
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		item := validItem(t, KindTranslation, "language_learning")
		item["content"] = map[string]any{}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted translation without items")
		}
	})
}

func TestValidateBriefing(t *testing.T) {
	item := validItem(t, KindBriefing, "other")
	item.Content()["situation"] = "Túl rövid."
	if ok, _ := Validate(item); ok {
		t.Fatal("accepted short situation")
	}
}

func TestValidateFeedback(t *testing.T) {
	t.Run("placeholder passes without corrections", func(t *testing.T) {
		item := validItem(t, KindFeedback, "other")
		if ok, reason := Validate(item); !ok {
			t.Fatalf("rejected placeholder feedback: %s", reason)
		}
	})

	t.Run("real feedback needs corrections", func(t *testing.T) {
		item := validItem(t, KindFeedback, "other")
		item["content"] = map[string]any{
			"placeholder": false,
			"user_text":   "my text",
			"corrections": []any{},
		}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted feedback without corrections")
		}
	})
}

func TestValidateSmartLesson(t *testing.T) {
	base := func() Item { return validItem(t, KindSmartLesson, "smart_learning") }

	t.Run("wrong option count", func(t *testing.T) {
		item := base()
		task := item.Content()["micro_task_1"].(map[string]any)
		task["options"] = []any{"csak egy", "és még egy"}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted 2 options")
		}
	})

	t.Run("single-letter options too generic", func(t *testing.T) {
		item := base()
		task := item.Content()["micro_task_2"].(map[string]any)
		task["options"] = []any{"x", "y", "z"}
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted single-letter options")
		}
	})

	t.Run("short hook rejected", func(t *testing.T) {
		item := base()
		item.Content()["hook"] = "Rövid"
		if ok, _ := Validate(item); ok {
			t.Fatal("accepted short hook")
		}
	})
}
