package focus

import (
	"fmt"
	"strings"
)

// PromptInput carries everything the prompt builder needs for one item.
type PromptInput struct {
	Kind            Kind
	Lang            string
	Domain          string
	Level           string
	DayTitle        string
	Topic           string
	Minutes         int
	UserGoal        string
	Settings        *Settings
	PrecedingLesson string
}

const maxChainedLessonChars = 3000

var toneGuides = map[string]string{
	"casual":  "Use friendly, encouraging language. Add motivational touches. Be warm and supportive.",
	"neutral": "Use clear, informative language. Be professional but approachable.",
	"strict":  "Use direct, demanding language. Set high expectations. Be precise and rigorous.",
}

var difficultyGuides = map[string]string{
	"easy":   "Use simple vocabulary. Provide more examples. Break down complex concepts into smaller pieces.",
	"normal": "Use balanced complexity. Mix theory with practical examples.",
	"hard":   "Use advanced vocabulary. Include nuanced concepts. Challenge the learner with depth.",
}

var depthGuides = map[string]string{
	"short":       "Keep content brief and focused. 3-4 key points, short examples.",
	"medium":      "Provide moderate depth. 4-5 key points with solid examples.",
	"substantial": "Provide comprehensive coverage. 5-7 key points, detailed examples, deeper explanations.",
}

func guide(table map[string]string, key, fallback string) string {
	if g, ok := table[key]; ok {
		return g
	}
	return fallback
}

// BuildPrompt constructs the system and user messages for generating one
// focus item. The kind is fixed by the caller; the prompt locks the model
// onto the item schema and the kind's content spec.
func BuildPrompt(in PromptInput) (system, user string) {
	lang := in.Lang
	if lang == "" {
		lang = "hu"
	}
	domain := in.Domain
	if domain == "" {
		domain = "other"
	}
	level := in.Level
	if level == "" {
		level = "beginner"
	}
	isHU := strings.HasPrefix(strings.ToLower(lang), "hu")
	settings := in.Settings
	if settings == nil {
		settings = &Settings{}
	}

	toneGuide := guide(toneGuides, settings.Tone, toneGuides["neutral"])
	difficultyGuide := guide(difficultyGuides, settings.Difficulty, difficultyGuides["normal"])
	depthGuide := guide(depthGuides, settings.ContentDepth, depthGuides["medium"])

	rule := ruleFor(in.Kind)
	schemaDef := fmt.Sprintf(`
{
  "schema_version": "1.0",
  "kind": "%s",
  "idempotency_key": "unique-string",
  "title": "string",
  "subtitle": "string",
  "estimated_minutes": %d,
  "difficulty": "easy|normal|hard",
  "instructions_md": "string - short, actionable instructions",
  "rubric_md": "string - how user knows they did it right",
  "ui": { "primary_cta": "string", "secondary_cta": "string|null" },
  "input": { "type": "%s", "placeholder": "string|null" },
  "content": { /* kind-specific, see below */ },
  "validation": { "require_interaction": true, "min_chars": %d, "min_items": %d },
  "scoring": { "mode": "manual|auto", "max_points": 10 }
}
`, in.Kind, in.Minutes, rule.InputType, rule.MinChars, rule.MinItems)

	isLanguage := IsLanguageDomain(domain)

	var languageDirection, scopeNote string
	if isLanguage {
		targetLang := ResolveTargetLanguage(settings, in.DayTitle, in.UserGoal)
		if targetLang == "" {
			targetLang = "the target language (detect from day_title/user_goal context)"
		}
		languageDirection = buildLanguageDirection(targetLang, isHU)
		scopeNote = buildScopeNote(settings.WeekOutline, in.DayTitle)
	}

	langLine := fmt.Sprintf("All text content in %s.", nativeName(isHU))
	if isLanguage {
		langLine = "Instructions and explanations in Hungarian. See LANGUAGE LEARNING DIRECTION below for vocabulary/content direction."
	}

	langFooter := nativeCode(isHU)
	if isLanguage {
		langFooter = "Hungarian (hu) — native. Target language from user_goal."
	}

	system = fmt.Sprintf(`You are generating ONE Focus Item for a learning app.

STRICT OUTPUT RULES:
- Output MUST be valid JSON only. No markdown, no commentary, no extra text.
- Output MUST match the schema described below.
- kind is FIXED as: %s
- For kind=content: validation.require_interaction=false and input.type="none". For other kinds: validation.require_interaction=true.
- instructions_md must be short and actionable (2-3 sentences max).
- rubric_md must tell how the user knows they did it right.
- content must contain all fields required by the %s kind.
- %s
%s
%s
🎨 STYLE GUIDANCE (apply to ALL generated content):
- TONE: %s
- DIFFICULTY: %s
- DEPTH: %s

🚨 HARD RULE - FORBIDDEN TASK TYPES:
Do NOT generate tasks that require speaking aloud, listening, or pronunciation practice.
These CANNOT be verified via text input. NEVER use these phrases:
- "hangosan", "mondd ki", "ismételd el", "mondd utánam", "hallgasd meg"
- "speak aloud", "say out loud", "repeat after", "listen and repeat"
Instead: require WRITTEN responses only (typing, not speaking).

SCHEMA:
%s

CONTENT SPEC FOR kind=%s:
%s

LANGUAGE: %s
`, in.Kind, in.Kind, langLine, languageDirection, scopeNote,
		toneGuide, difficultyGuide, depthGuide,
		schemaDef, in.Kind, contentSpec(in.Kind, isLanguage, in.Minutes), langFooter)

	userGoal := in.UserGoal
	if userGoal == "" {
		userGoal = "learning"
	}
	user = fmt.Sprintf(`Generate ONE focus item.

CONTEXT:
- language: %s
- domain: %s
- level: %s
- day_title: %s
- item_topic: %s
- duration_minutes_target: %d
- user_goal: %s

KIND: %s (DO NOT CHANGE)
`, lang, domain, level, in.DayTitle, in.Topic, in.Minutes, userGoal, in.Kind)

	if in.PrecedingLesson != "" && in.Kind != KindContent {
		user += buildChainInjection(in.Kind, in.PrecedingLesson, settings)
	}

	user += "\nOutput ONLY the JSON object, nothing else.\n"

	// Track and script overrides are mutually exclusive, matching the
	// priority order: career > non-Latin > smart learning.
	switch {
	case settings.Track == "career_language" && isLanguage:
		system, user = applyCareerOverrides(in.Kind, system, user, settings)
	case isLanguage && IsNonLatinLanguage(settings.TargetLanguage):
		system, user = applyNonLatinOverrides(in.Kind, system, user, settings, in.Topic)
	case in.Kind == KindSmartLesson && domain == "smart_learning":
		system, user = applySmartLearningOverrides(system, user, settings)
	}

	return system, user
}

func nativeName(isHU bool) string {
	if isHU {
		return "Hungarian"
	}
	return "English"
}

func nativeCode(isHU bool) string {
	if isHU {
		return "Hungarian (hu)"
	}
	return "English (en)"
}

func buildLanguageDirection(targetLang string, isHU bool) string {
	scriptDesc := scriptDescription(targetLang)

	scriptRule := ""
	if IsNonLatinLanguage(targetLang) {
		scriptRule = fmt.Sprintf(`
🚨 CRITICAL SCRIPT RULE:
- The target language is %s.
- vocabulary_table.word MUST be written in the NATIVE SCRIPT of %s (NOT in English, NOT in Latin letters).
- example_sentence MUST be in the NATIVE SCRIPT of %s.
- lesson_flow letters.glyph MUST be actual %s script characters.
- If you need romanization, put it in "pronunciation" or "latin_hint" fields, NEVER in "word".
- FORBIDDEN: English words like "Hello", "Good morning" in vocabulary_table.word — use %s script instead.
- If you generate English words in target-language fields, the response will be REJECTED.`,
			scriptDesc, targetLang, targetLang, targetLang, targetLang)
	}

	return fmt.Sprintf(`
🌍 LANGUAGE LEARNING DIRECTION:
- The user's NATIVE language is %s (used for UI, instructions, explanations).
- The TARGET language the user is LEARNING is: %s
- vocabulary_table: "word" = %s script (NATIVE SCRIPT, e.g. 한국어 not "Korean word"), "translation" = Hungarian
- example_sentence: in %s NATIVE SCRIPT, example_translation: in Hungarian
- dialogues: "text" = %s NATIVE SCRIPT, "translation" = Hungarian
- grammar_explanation: explain in Hungarian, examples in %s NATIVE SCRIPT
- Quiz questions: test %s knowledge
- Translation exercises: translate FROM Hungarian TO %s
%s`, nativeName(isHU), scriptDesc, targetLang, targetLang, targetLang, targetLang, targetLang, targetLang, scriptRule)
}

// buildScopeNote restricts a day's content to the outline's vocabulary
// list when the day can be matched by its "Nap N" / "Day N" marker.
func buildScopeNote(outline []OutlineDay, dayTitle string) string {
	if dayTitle == "" {
		return ""
	}
	for _, od := range outline {
		huMark := fmt.Sprintf("Nap %d", od.Day)
		enMark := fmt.Sprintf("Day %d", od.Day)
		if !strings.Contains(dayTitle, huMark) && !strings.Contains(dayTitle, enMark) {
			continue
		}
		if len(od.KeyVocab) == 0 {
			return ""
		}
		return fmt.Sprintf(`
🔒 SCOPE ENFORCEMENT (MANDATORY):
- This day's ALLOWED vocabulary: %s
- This day's grammar focus: %s
- You MUST ONLY use words from the allowed vocabulary list above.
- Do NOT introduce new vocabulary or phrases that are not in this list.
- All examples, exercises, dialogues, quiz questions MUST stay within this vocabulary scope.
`, strings.Join(od.KeyVocab, ", "), od.GrammarFocus)
	}
	return ""
}

// buildChainInjection appends the preceding lesson's compact context plus
// kind-specific instructions so practice items test only taught material.
func buildChainInjection(kind Kind, lesson string, settings *Settings) string {
	if len(lesson) > maxChainedLessonChars {
		lesson = lesson[:maxChainedLessonChars]
	}

	chainLang := "a célnyelv"
	if t := strings.ToLower(settings.TargetLanguage); t != "" {
		if hu, ok := huLangNamesReverse[t]; ok {
			chainLang = hu
		} else {
			chainLang = settings.TargetLanguage
		}
	}

	out := fmt.Sprintf(`
IMPORTANT - CONTENT CHAINING:
The user just completed a lesson. You MUST build this item using ONLY the vocabulary,
grammar rules, and examples from THAT lesson. Do NOT introduce new material.
ONLY use the vocabulary list below (VOCABULARY section) when creating questions/tasks.
CRITICAL: The VOCABULARY section contains %s words (left side) = Hungarian translations (right side).
Quiz/practice must test the %s words (left side), not Hungarian.

--- PRECEDING LESSON CONTENT ---
%s
--- END LESSON CONTENT ---
`, chainLang, chainLang, lesson)

	switch kind {
	case KindQuiz:
		out += fmt.Sprintf(`
Generate quiz questions that test %s knowledge:
1. Vocabulary: "Hogyan mondod %sul ezt: '[magyar szó]'?" or "Mit jelent a '[%s szó]'?"
2. Grammar: test correct %s forms and patterns
3. Dialogue: comprehension of %s sentences
4. Common mistakes: identify errors in %s usage
Options should include %s words/phrases, not only Hungarian.
Include at least: 2 vocab questions, 1 grammar question, 1 dialogue/mistake question.
`, chainLang, chainLang, chainLang, chainLang, chainLang, chainLang, chainLang)
	case KindTranslation:
		out += fmt.Sprintf(`
Generate translation items: translate FROM Hungarian TO %s.
"source" = Hungarian sentence, "target_lang" = the target language code.
ONLY use vocabulary from the lesson. Keep sentences short.
`, chainLang)
	case KindRoleplay:
		out += fmt.Sprintf(`
Create a dialogue scenario IN %s.
The user practices speaking %s, not Hungarian.
Reuse lesson vocabulary and grammar structures.
`, chainLang, chainLang)
	case KindWriting:
		out += fmt.Sprintf(`
Create a short writing prompt where the user writes IN %s.
Require using the lesson's key vocabulary and grammar rule.
`, chainLang)
	case KindCards:
		out += fmt.Sprintf(`
Create flashcards from the lesson vocabulary: front = %s word, back = Hungarian translation.
`, chainLang)
	}

	return out
}
