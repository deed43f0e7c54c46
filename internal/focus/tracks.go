package focus

import (
	"fmt"
	"regexp"
	"strings"
)

// applyCareerOverrides retargets prompts for the career_language track:
// workplace communication instead of classroom exercises.
func applyCareerOverrides(kind Kind, system, user string, settings *Settings) (string, string) {
	targetLang := settings.TargetLanguage
	if targetLang == "" {
		targetLang = "English"
	}

	careerContext := fmt.Sprintf(`
🏢 CAREER LANGUAGE MODE:
This is a CAREER language learning track. The learner practices workplace communication in %s.
Focus on professional scenarios: job interviews, client meetings, email writing, presentations, negotiations.
All content should feel like real workplace situations, NOT classroom exercises.
`, targetLang)

	switch kind {
	case KindBriefing:
		system += careerContext
		user += fmt.Sprintf(`
CAREER BRIEFING: Create a specific workplace scenario briefing.
- situation: A concrete professional scenario (e.g., "Ma egy fontos ügyféltalálkozóra készülsz...")
- outcome: What they'll produce (e.g., "A nap végére képes leszel megírni egy follow-up emailt")
- key_vocabulary_preview: 3-5 key %s workplace terms relevant to today's scenario
Keep it motivating and practical. Instructions in Hungarian, vocabulary preview in %s.
`, targetLang, targetLang)

	case KindCards:
		// Phrase pack: a cheat sheet of expressions, not vocabulary drill.
		system += careerContext
		user += fmt.Sprintf(`
CAREER PHRASE PACK (not flashcards!):
Generate 8-12 workplace expressions as cards.
- front: %s expression/phrase (e.g., "I'd like to follow up on...")
- back: Hungarian translation + usage note (formal/informal, when to use)
Include a mix of:
- Polite openers/closers
- Key action phrases
- Do/Don't pairs (common mistakes with correct alternatives)
Focus on the day's workplace scenario. These are "cheat sheet" entries, not vocabulary drill.
`, targetLang)

	case KindQuiz:
		system += careerContext
		user += fmt.Sprintf(`
CAREER MICRO DRILL:
Generate 6 quick workplace communication tasks as quiz questions.
Mix these types:
- Sentence completion (fill in the blank in a %s email/message)
- Rewrite formal↔informal (given a sentence, pick the correct register)
- Tone selection (which response is appropriate for this situation?)
- Error spotting (which version is professionally correct?)
All options should be in %s. Questions/instructions in Hungarian.
Focus on practical workplace communication, not grammar theory.
`, targetLang, targetLang)

	case KindWriting:
		system += careerContext
		user += fmt.Sprintf(`
CAREER PRODUCTION TASK:
Create a specific workplace writing task.
The user should write ONE of these (pick the most relevant for the day's topic):
- A 5-sentence professional email
- A 4-line Slack/Teams message
- A 30-second pitch/introduction
- A response to a client complaint
- A meeting follow-up summary

The prompt should specify:
- The exact situation and recipient
- The tone expected (formal/casual professional)
- Key points to include
- Approximate length (in sentences, not words)

Instructions in Hungarian, the user writes in %s.
word_count_target should be 50-80.
`, targetLang)

	case KindFeedback:
		system += careerContext
		user += `
CAREER FEEDBACK:
Analyze the user's writing submission (provided in PRECEDING CONTENT).
Generate:
- corrections: 2-6 specific fixes (original → corrected + why)
- improved_version: full rewrite that sounds native and professional
- alternative_tone: same content in a different register (if original is formal → casual professional, or vice versa)
- score: 1-5 based on clarity, grammar, professionalism
- praise: what they did well

Be encouraging but specific. Focus on workplace-appropriate language.
Corrections should prioritize: register/tone errors > grammar > vocabulary > style.
`
	}

	return system, user
}

var languageLessonSpecRe = regexp.MustCompile(`(?s)CONTENT SPEC FOR kind=content:.*?(\nLANGUAGE:)`)

// applyNonLatinOverrides switches beginner non-Latin lessons from the
// vocabulary-table shape to staged lesson_flow blocks. The block type is
// encoded in the item topic by the day generator ("hook:", "pattern:",
// "meaning:").
func applyNonLatinOverrides(kind Kind, system, user string, settings *Settings, itemTopic string) (string, string) {
	targetLang := ResolveTargetLanguage(settings, itemTopic, "")
	if targetLang == "" {
		targetLang = "the target language"
	}
	scriptDesc := scriptDescription(targetLang)
	topicLower := strings.ToLower(itemTopic)

	isHook := strings.Contains(topicLower, "hook:")
	isPattern := strings.Contains(topicLower, "pattern:")
	isMeaning := strings.Contains(topicLower, "meaning:")

	if kind == KindContent && (isHook || isPattern || isMeaning) {
		// Remove the language_lesson spec so the model doesn't see two
		// competing content shapes.
		if strings.Contains(system, `"content_type": "language_lesson"`) {
			system = languageLessonSpecRe.ReplaceAllString(system,
				"CONTENT SPEC FOR kind=content:\nSee NON-LATIN BEGINNER MODE below.$1")
		}

		system += fmt.Sprintf(`
🔤 NON-LATIN BEGINNER MODE (OVERRIDES ALL PREVIOUS CONTENT SPECS):
This learner is starting %s with a NON-LATIN script.
DO NOT use vocabulary_table, grammar_explanation, dialogues, or content_type "language_lesson".
MUST return content_type: "language_nonlatin_beginner" with a lesson_flow array.
Keep it SHORT, VISUAL, and IMMEDIATE — max 3 new characters per block.
Instructions in Hungarian, target content in %s NATIVE SCRIPT (not English, not Latin).
All "glyph" fields MUST contain actual %s script characters.
If you return vocabulary_table, content_type "language_lesson", or English words, the response will be REJECTED.
`, scriptDesc, targetLang, targetLang)

		switch {
		case isHook:
			user += fmt.Sprintf(`
HOOK BLOCK — First contact with new letters/characters:
Return this EXACT JSON structure (no vocabulary_table, no grammar_explanation):
{
  "title": "descriptive title",
  "content_type": "language_nonlatin_beginner",
  "lesson_flow": [
    {
      "type": "hook",
      "title_hu": "Ismerd meg!",
      "body_md": "Short Hungarian intro (1-2 sentences max) about these letters",
      "letters": [
        {"glyph": "THE_LETTER", "latin_hint": "latin equivalent", "sound_hint_hu": "mint a magyar hang a ... szóban"}
      ]
    }
  ],
  "key_points": ["1-2 takeaways"],
  "estimated_minutes": 4
}
RULES:
- lesson_flow: exactly 1 item of type "hook"
- letters: exactly 3 new %s letters/characters
- glyph: the actual %s character (uppercase and lowercase if applicable)
- latin_hint: closest Latin letter equivalent
- sound_hint_hu: Hungarian sound comparison (e.g. "mint az 'a' az 'alma' szóban")
- body_md: max 2 sentences, Hungarian, welcoming tone
- NO vocabulary_table, NO grammar_explanation, NO dialogues
`, targetLang, targetLang)

		case isPattern:
			user += fmt.Sprintf(`
PATTERN BLOCK — Sound-to-symbol mapping practice:
Return this EXACT JSON structure:
{
  "title": "descriptive title",
  "content_type": "language_nonlatin_beginner",
  "lesson_flow": [
    {
      "type": "pattern",
      "title_hu": "Hang és betű",
      "body_md": "Short Hungarian instruction about matching sounds to letters",
      "letters": [
        {"glyph": "THE_LETTER", "latin_hint": "equivalent", "sound_hint_hu": "Hungarian sound hint"}
      ],
      "items": [
        {"prompt": "Which letter makes the sound [x]?", "answer": "THE_LETTER"}
      ]
    }
  ],
  "key_points": ["1-2 takeaways"],
  "estimated_minutes": 4
}
RULES:
- lesson_flow: exactly 1 item of type "pattern"
- letters: 3-5 %s letters (reuse today's hook letters + 1-2 from earlier)
- items: 3-5 matching exercises (prompt in Hungarian, answer = the %s character)
- NO vocabulary_table, NO grammar_explanation
`, targetLang, targetLang)

		case isMeaning:
			user += fmt.Sprintf(`
MEANING BLOCK — First words with meaning:
Return this EXACT JSON structure:
{
  "title": "descriptive title",
  "content_type": "language_nonlatin_beginner",
  "lesson_flow": [
    {
      "type": "meaning",
      "title_hu": "Első szavak",
      "body_md": "Short Hungarian intro connecting letters to real words",
      "letters": [
        {"glyph": "WORD_IN_TARGET", "latin_hint": "transliteration", "sound_hint_hu": "meaning in Hungarian"}
      ]
    }
  ],
  "key_points": ["1-2 takeaways"],
  "estimated_minutes": 4
}
RULES:
- lesson_flow: exactly 1 item of type "meaning"
- letters: 2-4 simple %s words using characters learned today
- glyph: the %s word, latin_hint: transliteration, sound_hint_hu: Hungarian meaning
- body_md: connect letters to real words, encouraging tone, Hungarian
- NO vocabulary_table, NO grammar_explanation
`, targetLang, targetLang)
		}
	} else if kind == KindQuiz && strings.Contains(topicLower, "micro:") {
		user += fmt.Sprintf(`
NON-LATIN MICRO QUIZ:
Generate 3-4 very simple character recognition questions.
Types to mix:
- "Melyik betű ez?" (show %s character, pick the sound)
- "Melyik %s betű hangzik úgy, mint...?" (pick the character)
- "Olvasd el:" (simple 2-3 letter combination, pick the correct reading)
Keep questions EASY — this is the learner's first day with these characters.
All options should show %s characters or sounds. Instructions in Hungarian.
`, targetLang, targetLang, targetLang)
	}

	return system, user
}

// applySmartLearningOverrides sharpens financial_basics micro lessons:
// every answer must name a concrete instrument and a number.
func applySmartLearningOverrides(system, user string, settings *Settings) (string, string) {
	if settings.Track != "financial_basics" {
		return system, user
	}

	system += `
💰 PÉNZÜGYI MIKRO-LECKE MÓD (financial_basics):
Te egy pénzügyi mikro-mentor vagy Gen-Z stílusban.
Minden lecke KONKRÉT, CSELEKVÉSRE FORDÍTHATÓ pénzügyi tudást ad.
NEM elég azt mondani "fektess be" — meg kell mondanod HOVA és HOGYAN.
NEM elég azt mondani "spórolj" — meg kell mondanod MENNYIT és MILYEN MÓDSZERREL.
`
	user += `
FINANCIAL_BASICS MINŐSÉGI KÖVETELMÉNYEK:

ARANYSZABÁLY: Minden válasznak meg kell felelnie az "ÉS AKKOR MIT CSINÁLJAK?" tesztnek.
Ha valaki elolvassa és nem tudja azonnal megcsinálni, az ROSSZ tartalom.

1. hook: Konkrét, hétköznapi pénzügyi helyzet SZÁMMAL (max 2 mondat).
   JÓ: "Kaptál 200k-t. MÁP+-ba (6.5%) vagy bankba (2%)?"
   ROSSZ: "Gondolkodtál már azon, mit kezdj a pénzeddel?"

2. micro_task_1: Gyors számolás KONKRÉT eszközökkel/termékekkel.
   - instruction: Nevezd meg a KONKRÉT pénzügyi eszközt (MÁP+, PEMÁP, DKJ, babakötvény, lakástakarék, stb.)
   - options: 3 konkrét, SZÁMOS válasz — mindegyik tartalmaz forintösszeget VAGY százalékot
   - explanation: Számítási lépések (pl. "200 000 × 0.065 = 13 000 Ft/év kamat a MÁP+-ban")

3. micro_task_2: Döntési szcenárió KONKRÉT feltételekkel ÉS megnevezett termékkel/módszerrel.
   - instruction: Valós döntés, ami megnevezi a lehetőségeket (nem "mit csinálnál", hanem "melyiket választod")
   - options: 3 konkrét stratégia — mindegyik tartalmaz: eszköz neve + szám + eredmény
   - explanation: Miért jobb, SZÁMOKKAL

4. insight: 1 mondatos, megjegyezhető szabály SZÁMMAL + KONKRÉT cselekvéssel.
   JÓ: "Az első 500k-t MÁP+-ba tedd — 6.5% garantált, nem kell hozzá semmi tudás."
   ROSSZ: "Mindig gondold át a döntéseidet."

KÖTELEZŐ: Minden option tartalmazzon LEGALÁBB 1 számot ÉS 1 megnevezett pénzügyi eszközt/módszert.
MAGYAR KONTEXTUS: Használj magyar eszközöket (MÁP+, PEMÁP, DKJ, babakötvény, lakástakarék, K&H/OTP/Revolut számlák, TBSZ).
`

	return system, user
}
