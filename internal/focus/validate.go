package focus

import "fmt"

// kindValidators holds the per-kind content check. Kinds without an entry
// only get the shared envelope checks.
var kindValidators = map[Kind]func(content map[string]any) error{
	KindQuiz:         validateQuiz,
	KindContent:      validateContent,
	KindChecklist:    validateChecklist,
	KindUploadReview: validateUploadReview,
	KindCards:        validateCards,
	KindRoleplay:     validateRoleplay,
	KindTranslation:  validateTranslation,
	KindBriefing:     validateBriefing,
	KindFeedback:     validateFeedback,
	KindSmartLesson:  validateSmartLesson,
}

var requiredItemFields = []string{
	"schema_version", "kind", "idempotency_key", "title",
	"instructions_md", "content", "validation",
}

// Validate checks an item against the canonical schema and the
// kind-specific content rules. It never panics regardless of input shape;
// a malformed item yields (false, reason).
func Validate(item Item) (bool, string) {
	kind := item.Kind()
	if kind == "" || !isValidKind(kind) {
		return false, fmt.Sprintf("invalid or missing kind: %q", kind)
	}

	// Forbidden phrases are checked on actionable kinds only; lessons may
	// mention pronunciation terms as explanatory context.
	if kind != KindContent {
		if reason := checkForbidden(item); reason != "" {
			return false, reason
		}
	}

	for _, f := range requiredItemFields {
		if _, ok := item[f]; !ok {
			return false, "missing required field: " + f
		}
	}

	validation := item.Validation()
	if !kind.readOnly() {
		if ri, _ := validation["require_interaction"].(bool); !ri {
			return false, "validation.require_interaction must be true"
		}
	}

	if check, ok := kindValidators[kind]; ok {
		if err := check(item.Content()); err != nil {
			return false, err.Error()
		}
	}

	return true, ""
}

func checkForbidden(item Item) string {
	content := item.Content()
	fields := []string{
		getString(item, "instructions_md"),
		getString(item, "title"),
		getString(item, "subtitle"),
		getString(content, "prompt"),
		getString(content, "scene_title"),
		getString(content, "proof_required"),
	}
	for _, step := range getSlice(content, "steps") {
		if s, ok := step.(string); ok {
			fields = append(fields, s)
		}
	}
	for _, f := range fields {
		if p := containsForbiddenPattern(f); p != "" {
			return fmt.Sprintf("contains forbidden pattern %q: tasks requiring speaking aloud cannot be verified", p)
		}
	}
	return ""
}

func validateQuiz(content map[string]any) error {
	questions := getSlice(content, "questions")
	if len(questions) == 0 {
		// Legacy format: single question with choices.
		choices := getSlice(content, "choices")
		if len(choices) < 3 {
			return fmt.Errorf("quiz must have at least 3 choices")
		}
		ci, ok := getInt(content, "correct_index")
		if !ok || ci < 0 || ci >= len(choices) {
			return fmt.Errorf("quiz has invalid correct_index")
		}
		return nil
	}

	if len(questions) < 4 || len(questions) > 6 {
		return fmt.Errorf("quiz must have 4-6 questions, got %d", len(questions))
	}
	for i, raw := range questions {
		q, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("question %d is not an object", i+1)
		}
		opts := getStrings(q, "options")
		if optionsInvalid(opts) {
			return fmt.Errorf("question %d has invalid options", i+1)
		}
		ci, ok := getInt(q, "correct_index")
		if !ok {
			ci, ok = getInt(q, "answer_index")
		}
		if !ok || ci < 0 || ci >= len(opts) {
			return fmt.Errorf("question %d has invalid correct_index", i+1)
		}
		if getString(q, "q") == "" && getString(q, "question") == "" {
			return fmt.Errorf("question %d missing question text", i+1)
		}
		if getString(q, "explanation") == "" {
			return fmt.Errorf("question %d missing explanation", i+1)
		}
	}
	return nil
}

func validateContent(content map[string]any) error {
	switch getString(content, "content_type") {
	case "language_nonlatin_beginner":
		return validateNonLatinLesson(content)
	case "language_lesson":
		return validateLanguageLesson(content)
	}
	return validateStandardContent(content)
}

func validateNonLatinLesson(content map[string]any) error {
	flow := getSlice(content, "lesson_flow")
	if len(flow) < 1 {
		return fmt.Errorf("non-Latin beginner lesson needs lesson_flow array")
	}
	if len(flow) > 7 {
		return fmt.Errorf("lesson_flow too long (%d), max 7", len(flow))
	}
	for i, raw := range flow {
		block, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("lesson_flow[%d] is not an object", i)
		}
		if getString(block, "title_hu") == "" {
			return fmt.Errorf("lesson_flow[%d] missing title_hu", i)
		}
		if getString(block, "body_md") == "" {
			return fmt.Errorf("lesson_flow[%d] missing body_md", i)
		}
	}
	return nil
}

func validateLanguageLesson(content map[string]any) error {
	intro := getString(content, "introduction")
	if wordCount(intro) < 15 {
		return fmt.Errorf("language lesson introduction too short (min 15 words)")
	}
	vocab := getSlice(content, "vocabulary_table")
	if len(vocab) < 3 {
		return fmt.Errorf("language lesson needs 3+ vocabulary items, got %d", len(vocab))
	}
	grammar := getMap(content, "grammar_explanation")
	if grammar == nil || getString(grammar, "explanation") == "" {
		return fmt.Errorf("language lesson missing grammar_explanation")
	}
	if len(getSlice(grammar, "examples")) < 1 {
		return fmt.Errorf("language lesson grammar needs 1+ example")
	}
	dialogues := getSlice(content, "dialogues")
	if len(dialogues) < 1 {
		return fmt.Errorf("language lesson needs at least 1 dialogue")
	}
	for _, raw := range dialogues {
		d, ok := raw.(map[string]any)
		if !ok || len(getSlice(d, "lines")) < 2 {
			return fmt.Errorf("dialogue must have 2+ lines")
		}
	}
	return nil
}

func validateStandardContent(content map[string]any) error {
	summary := getString(content, "summary")
	if summary == "" && getString(content, "body_md") == "" {
		return fmt.Errorf("content must have summary or body_md")
	}
	if summary != "" && isGenericSummary(summary, "hu") {
		return fmt.Errorf("content summary too generic")
	}
	if keyPoints := getSlice(content, "key_points"); len(keyPoints) > 0 {
		if len(keyPoints) < 3 || len(keyPoints) > 7 {
			return fmt.Errorf("content must have 3-7 key_points, got %d", len(keyPoints))
		}
		for _, kp := range keyPoints {
			if s, ok := kp.(string); ok && len(s) < 10 {
				return fmt.Errorf("content key_points too short")
			}
		}
	}
	if example := getString(content, "example"); example != "" && len(example) < 10 {
		return fmt.Errorf("content example too short")
	}
	if raw, ok := content["micro_task"]; ok && raw != nil {
		task, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("content micro_task must be an object")
		}
		if len(task) > 0 && (getString(task, "instruction") == "" || getString(task, "expected_output") == "") {
			return fmt.Errorf("content micro_task missing fields")
		}
	}
	if mistakes := getSlice(content, "common_mistakes"); len(mistakes) > 0 {
		if len(mistakes) < 3 || len(mistakes) > 5 {
			return fmt.Errorf("content common_mistakes must have 3-5 items")
		}
	}
	return nil
}

func validateChecklist(content map[string]any) error {
	items := getSlice(content, "items")
	steps := getSlice(content, "steps")
	switch {
	case len(items) > 0:
		if len(items) < 5 || len(items) > 9 {
			return fmt.Errorf("checklist must have 5-9 items")
		}
		for _, raw := range items {
			var text string
			if m, ok := raw.(map[string]any); ok {
				text = getString(m, "text")
			} else if s, ok := raw.(string); ok {
				text = s
			}
			if len(text) < 8 {
				return fmt.Errorf("checklist item too short")
			}
		}
	case len(steps) > 0:
		if len(steps) < 3 {
			return fmt.Errorf("checklist must have at least 3 steps")
		}
	default:
		return fmt.Errorf("checklist missing items")
	}
	return nil
}

func validateUploadReview(content map[string]any) error {
	if getString(content, "prompt") == "" {
		return fmt.Errorf("upload review missing prompt")
	}
	if rubric := getSlice(content, "rubric"); len(rubric) > 0 && len(rubric) < 4 {
		return fmt.Errorf("upload review rubric too short")
	}
	return nil
}

func validateCards(content map[string]any) error {
	if len(getSlice(content, "cards")) < 3 {
		return fmt.Errorf("cards must have at least 3 cards")
	}
	return nil
}

func validateRoleplay(content map[string]any) error {
	if getString(content, "opening_line") == "" {
		return fmt.Errorf("roleplay must have opening_line")
	}
	// turn_limit outside 6-12 is tolerated; the renderer clamps it
	return nil
}

// validateTranslation accepts the legacy "sentences" field name as an
// alias for "items", like the quiz q/answer_index aliases.
func validateTranslation(content map[string]any) error {
	items := getSlice(content, "items")
	if len(items) == 0 {
		items = getSlice(content, "sentences")
	}
	if len(items) < 1 {
		return fmt.Errorf("translation must have at least 1 item")
	}
	return nil
}

func validateBriefing(content map[string]any) error {
	situation := getString(content, "situation")
	if len(situation) < 20 {
		return fmt.Errorf("briefing must have situation (min 20 chars)")
	}
	if getString(content, "outcome") == "" {
		return fmt.Errorf("briefing must have outcome")
	}
	return nil
}

func validateFeedback(content map[string]any) error {
	if placeholder, _ := content["placeholder"].(bool); placeholder {
		return nil
	}
	if len(getSlice(content, "corrections")) < 1 {
		return fmt.Errorf("feedback must have at least 1 correction")
	}
	if getString(content, "improved_version") == "" {
		return fmt.Errorf("feedback must have improved_version")
	}
	return nil
}

func validateSmartLesson(content map[string]any) error {
	if len(getString(content, "hook")) < 10 {
		return fmt.Errorf("smart_lesson hook too short (min 10 chars)")
	}
	if len(getString(content, "insight")) < 10 {
		return fmt.Errorf("smart_lesson insight too short (min 10 chars)")
	}
	for _, key := range []string{"micro_task_1", "micro_task_2"} {
		raw, ok := content[key]
		if !ok {
			return fmt.Errorf("smart_lesson %s must be an object", key)
		}
		task, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("smart_lesson %s must be an object", key)
		}
		if getString(task, "instruction") == "" {
			return fmt.Errorf("smart_lesson %s missing instruction", key)
		}
		opts := getStrings(task, "options")
		if len(opts) != 3 {
			return fmt.Errorf("smart_lesson %s must have exactly 3 options, got %d", key, len(opts))
		}
		ci, ok := getInt(task, "correct_index")
		if !ok || ci < 0 || ci >= len(opts) {
			return fmt.Errorf("smart_lesson %s has invalid correct_index", key)
		}
		if getString(task, "explanation") == "" {
			return fmt.Errorf("smart_lesson %s missing explanation", key)
		}
	}
	if reason := genericSmartLessonReason(content); reason != "" {
		return fmt.Errorf("smart_lesson too generic: %s", reason)
	}
	return nil
}

// genericSmartLessonReason rejects placeholder smart lessons: an empty
// hook, or tasks whose options are single letters.
func genericSmartLessonReason(content map[string]any) string {
	if len(trimmed(getString(content, "hook"))) < 10 {
		return "hook is empty or too short"
	}
	for _, key := range []string{"micro_task_1", "micro_task_2"} {
		task, ok := content[key].(map[string]any)
		if !ok {
			return key + " must be an object"
		}
		real := 0
		for _, o := range getStrings(task, "options") {
			if len(trimmed(o)) > 3 {
				real++
			}
		}
		if real < 2 {
			return key + ".options must have at least 2 real options (not placeholders)"
		}
	}
	return ""
}
