package focus

import (
	"context"
	"fmt"
	"strings"
)

// chainedKinds are the practice kinds that drill a preceding lesson's
// material instead of inventing their own.
var chainedKinds = map[Kind]bool{
	KindQuiz:        true,
	KindTranslation: true,
	KindRoleplay:    true,
	KindWriting:     true,
	KindCards:       true,
}

// StoredItem is the slice of a persisted item that chaining needs.
type StoredItem struct {
	OrderIndex int
	Kind       string
	Item       Item
}

// ItemStore lists the items already generated for a day, ordered by
// their position within the day.
type ItemStore interface {
	DayItems(ctx context.Context, planID string, day int) ([]StoredItem, error)
}

// ResolvePrecedingLesson finds the lesson a practice item should be
// chained to. It scans the day's earlier items for a lesson; when the
// day has none, it generates one so the practice item still has source
// material. The generated lesson (if any) is returned so the caller can
// persist it before the practice item.
func (e *Engine) ResolvePrecedingLesson(ctx context.Context, store ItemStore, planID string, day, orderIndex int, req ItemRequest) (string, *Result, error) {
	itemType, practiceType, _ := ApplyDomainGuard(req.Domain, req.ItemType, req.PracticeType)
	kind := ResolveKind(itemType, practiceType)
	if !chainedKinds[kind] || !IsLanguageDomain(req.Domain) {
		return "", nil, nil
	}

	items, err := store.DayItems(ctx, planID, day)
	if err != nil {
		// Chaining failures must not block generation: the practice item
		// is produced unchained instead.
		e.log.Warn("listing day items for chaining failed, generating unchained", "error", err)
		return "", nil, nil
	}
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].OrderIndex >= orderIndex {
			continue
		}
		if Kind(items[i].Kind) == KindContent {
			if lessonCtx := ExtractLessonContext(items[i].Item.Content()); lessonCtx != "" {
				return lessonCtx, nil, nil
			}
		}
	}

	// No lesson on this day yet: generate one for the same topic so the
	// practice item has something to drill.
	lessonReq := req
	lessonReq.ItemType = "lesson"
	lessonReq.PracticeType = ""
	lessonReq.PrecedingLesson = ""
	res, err := e.GenerateItem(ctx, lessonReq)
	if err != nil {
		return "", nil, err
	}
	return ExtractLessonContext(res.Item.Content()), res, nil
}

// ExtractLessonContext compacts a lesson's content into the short text
// block injected into a chained practice prompt. Only the material a
// practice item can actually reuse is kept: vocabulary, the grammar
// pattern with a few examples, a dialogue snippet, and common mistakes.
func ExtractLessonContext(content map[string]any) string {
	if content == nil {
		return ""
	}
	var sections []string

	if title := getString(content, "title"); title != "" {
		sections = append(sections, "LECKE: "+title)
	}

	vocab := getSlice(content, "vocabulary_table")
	if len(vocab) > 0 {
		var lines []string
		for i, raw := range vocab {
			if i >= 15 {
				break
			}
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			word := getString(entry, "word")
			translation := getString(entry, "translation")
			if word == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s = %s", word, translation))
		}
		if len(lines) > 0 {
			sections = append(sections, "SZAVAK:\n"+strings.Join(lines, "\n"))
		}
	}

	if grammar := getMap(content, "grammar_explanation"); grammar != nil {
		var lines []string
		if rule := getString(grammar, "rule_title"); rule != "" {
			lines = append(lines, "Rule: "+rule)
		}
		if pattern := getString(grammar, "formation_pattern"); pattern != "" {
			lines = append(lines, "Pattern: "+pattern)
		}
		for i, raw := range getSlice(grammar, "examples") {
			if i >= 3 {
				break
			}
			ex, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			target := getString(ex, "target")
			hungarian := getString(ex, "hungarian")
			if target == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s (%s)", target, hungarian))
		}
		if len(lines) > 0 {
			sections = append(sections, "NYELVTAN:\n"+strings.Join(lines, "\n"))
		}
	}

	if dialogues := getSlice(content, "dialogues"); len(dialogues) > 0 {
		if first, ok := dialogues[0].(map[string]any); ok {
			var lines []string
			for i, raw := range getSlice(first, "lines") {
				if i >= 2 {
					break
				}
				line, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				text := getString(line, "text")
				if text == "" {
					continue
				}
				lines = append(lines, fmt.Sprintf("%s: %s", getString(line, "speaker"), text))
			}
			if len(lines) > 0 {
				sections = append(sections, "PÁRBESZÉD:\n"+strings.Join(lines, "\n"))
			}
		}
	}

	if mistakes := getSlice(content, "common_mistakes"); len(mistakes) > 0 {
		var lines []string
		for i, raw := range mistakes {
			if i >= 5 {
				break
			}
			if s, ok := raw.(string); ok && s != "" {
				lines = append(lines, "- "+s)
			}
		}
		if len(lines) > 0 {
			sections = append(sections, "GYAKORI HIBÁK:\n"+strings.Join(lines, "\n"))
		}
	}

	return strings.Join(sections, "\n\n")
}
