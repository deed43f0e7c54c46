package focus

import "fmt"

// contentSpec returns the kind-specific content requirements embedded in
// the system prompt. Kept compact: small models have limited budgets.
func contentSpec(kind Kind, isLanguage bool, minutes int) string {
	if kind == KindContent {
		if isLanguage {
			return languageLessonSpec(minutes)
		}
		return standardContentSpec
	}
	if spec, ok := contentSpecs[kind]; ok {
		return spec
	}
	return "{}"
}

func languageLessonSpec(minutes int) string {
	return fmt.Sprintf(`
"content": {
  "title": "Specific lesson title",
  "content_type": "language_lesson",
  "introduction": "1-2 paragraphs: what this lesson covers, what the learner will achieve. Min 40 words. In Hungarian.",
  "vocabulary_table": [
    { "word": "target word", "translation": "Hungarian", "pronunciation": "phonetic", "example_sentence": "full sentence", "example_translation": "Hungarian translation" }
  ],
  "grammar_explanation": {
    "rule_title": "Grammar concept name",
    "explanation": "Clear explanation of the rule, when to use it. Min 50 words. In Hungarian.",
    "formation_pattern": "e.g. Subject + verb + object",
    "examples": [
      { "target": "target language example", "hungarian": "translation", "note": "brief note" }
    ]
  },
  "dialogues": [
    {
      "title": "Scenario title in Hungarian",
      "lines": [
        { "speaker": "A", "text": "target language", "translation": "Hungarian" },
        { "speaker": "B", "text": "target language", "translation": "Hungarian" }
      ]
    }
  ],
  "practice_exercises": [
    { "type": "fill_in_blank", "instruction": "Hungarian instruction", "items": [
      { "prompt": "sentence with ___", "answer": "correct word" },
      { "prompt": "another sentence with ___", "answer": "correct word" }
    ]}
  ],
  "summary": "1-2 sentences summarizing what was learned (Hungarian)",
  "key_points": ["Takeaway 1", "Takeaway 2", "Takeaway 3"],
  "common_mistakes": ["Mistake 1 and correction", "Mistake 2 and correction", "Mistake 3 and correction"],
  "estimated_minutes": %d
}
RULES:
- vocabulary_table: 5-8 entries. "word" = TARGET language, "translation" = Hungarian
- example_sentence: in TARGET language. example_translation: Hungarian
- grammar_explanation: explain in Hungarian, examples in TARGET language with Hungarian translation
- dialogues: "text" = TARGET language, "translation" = Hungarian
- practice_exercises: REQUIRED. At least 1 exercise with 2-4 items each. Prompts in TARGET language, instructions in Hungarian
- key_points: 3-5, common_mistakes: 3-5
- introduction, instructions, explanations: Hungarian
- The TARGET language is detected from the user_goal context
`, minutes)
}

const standardContentSpec = `
"content": {
  "title": "Specific title, not equal to the day title",
  "summary": "2-4 concrete sentences explaining the topic and why it matters",
  "key_points": [
    "Concrete definition with a specific example",
    "How it works / key mechanism",
    "When to use it / real-world application",
    "Important nuance or boundary",
    "Connection to a related concept"
  ],
  "example": "One concrete worked example relevant to the topic",
  "micro_task": { "instruction": "One clear task", "expected_output": "What the user should produce" },
  "common_mistakes": [
    "First common mistake and how to avoid it",
    "Second common mistake and why it happens",
    "Third common mistake with the correct approach"
  ],
  "estimated_minutes": 5
}
QUALITY RULES:
- summary MUST be specific (no generic filler)
- key_points MUST be 4-7 concrete items
- example MUST be concrete, not placeholder
- micro_task MUST be actionable
- common_mistakes MUST be 3-5 specific warnings
`

var contentSpecs = map[Kind]string{
	KindTranslation: `
"content": {
  "items": [
    { "source": "Hungarian sentence to translate", "target_lang": "the target language being learned", "hint": "optional hint" },
    { "source": "Second Hungarian sentence", "target_lang": "the target language being learned", "hint": "optional hint" }
  ]
}
RULES:
- items: 4-6 entries
- source: Hungarian sentence (the user translates this INTO the target language)
- target_lang: code of the language being learned (en, it, de, etc.)
- hint: optional hint in the target language
- Keep sentences aligned to the lesson topic
`,
	KindQuiz: `
"content": {
  "title": "Specific quiz title",
  "questions": [
    {
      "question": "Question 1 text - tests understanding",
      "options": ["Option 1", "Option 2", "Option 3"],
      "correct_index": 0,
      "explanation": "Why this is correct (1-2 sentences)"
    },
    {
      "question": "Question 2 text - application scenario",
      "options": ["Option 1", "Option 2", "Option 3"],
      "correct_index": 1,
      "explanation": "Why this is correct"
    },
    {
      "question": "Question 3 text - compare/contrast",
      "options": ["Option 1", "Option 2", "Option 3"],
      "correct_index": 2,
      "explanation": "Why this is correct"
    },
    {
      "question": "Question 4 text - identify error",
      "options": ["Option 1", "Option 2", "Option 3"],
      "correct_index": 0,
      "explanation": "Why this is correct"
    }
  ]
}
QUALITY RULES:
- MUST have 4-6 questions
- Each question MUST have exactly 3 options
- Use "question" (not "q"), "correct_index" (not "answer_index")
- Options must be plausible, not placeholders, not repeated
- Each question MUST include explanation
`,
	KindCards: `
"content": {
  "cards": [
    { "front": "word in target language", "back": "Hungarian translation" }
  ]
}
RULES:
- 5-8 cards minimum
- front: target language word/phrase
- back: Hungarian translation
`,
	KindRoleplay: `
"content": {
  "scenario": "Description of the roleplay situation (in Hungarian)",
  "roles": { "user": "user role name", "ai": "AI partner role name" },
  "opening_line": "The first line the AI says to start the dialogue",
  "sample_exchanges": [
    { "user": "Example user message", "ai": "Example AI response" }
  ],
  "turn_limit": 8
}
RULES:
- scenario: clear description in Hungarian
- Use "ai" (not "assistant") for the AI role
- opening_line: natural opening line
- sample_exchanges: 2-3 example exchanges
- turn_limit: 6-12
`,
	KindWriting: `
"content": {
  "prompt": "Clear writing task description in Hungarian",
  "example": "Example of what good output looks like",
  "word_count_target": 50
}
RULES:
- prompt: specific, actionable writing task
- example: short example to guide the learner
`,
	KindChecklist: `
"content": {
  "steps": [
    { "instruction": "Concrete step 1" },
    { "instruction": "Concrete step 2" },
    { "instruction": "Concrete step 3" },
    { "instruction": "Concrete step 4" },
    { "instruction": "Concrete step 5" }
  ],
  "proof_prompt": "Describe how you completed the task"
}
QUALITY RULES:
- steps: 5-9 concrete items
- Use "steps" (not "items"), "instruction" (not "text")
`,
	KindUploadReview: `
"content": {
  "title": "Upload review title",
  "prompt": "What to upload",
  "rubric": ["Criterion 1", "Criterion 2", "Criterion 3", "Criterion 4"],
  "estimated_minutes": 5
}
QUALITY RULES:
- rubric MUST have 4-6 criteria
`,
	KindBriefing: `
"content": {
  "situation": "2-3 sentences describing a concrete workplace scenario (e.g. job interview, client meeting, email follow-up)",
  "outcome": "1 sentence: what the learner will produce by end of session (e.g. 'You will write a follow-up email')",
  "key_vocabulary_preview": ["key_term_1", "key_term_2", "key_term_3"]
}
RULES:
- situation: concrete, specific workplace scenario. Min 20 chars. In Hungarian.
- outcome: measurable, actionable. In Hungarian.
- key_vocabulary_preview: 3-5 key terms in the TARGET language that will appear in later exercises
`,
	KindFeedback: `
"content": {
  "user_text": "The user's original submitted text (echoed back)",
  "corrections": [
    { "original": "incorrect phrase from user", "corrected": "correct version", "explanation": "brief explanation why" }
  ],
  "improved_version": "Full improved version of the user's text",
  "alternative_tone": "Same content rewritten in a different register (formal if original was informal, or vice versa)",
  "score": 4,
  "praise": "What the learner did well (1-2 sentences)"
}
RULES:
- corrections: 2-6 specific fixes with explanations
- improved_version: complete rewrite incorporating all corrections, natural fluent text
- alternative_tone: optional but preferred, different register from original
- score: 1-5 integer
- praise: always include something positive
`,
	KindSmartLesson: `
"content": {
  "hook": "1 short question or everyday scenario that grabs attention (max 2 sentences, casual Gen-Z tone)",
  "micro_task_1": {
    "instruction": "A choice or mini calculation task (1-2 sentences)",
    "options": ["Option A", "Option B", "Option C"],
    "correct_index": 0,
    "explanation": "Why this is correct (1 sentence, casual)"
  },
  "micro_task_2": {
    "instruction": "A decision or rewrite task (1-2 sentences)",
    "options": ["Option A", "Option B", "Option C"],
    "correct_index": 1,
    "explanation": "Why this is the best choice (1 sentence, casual)"
  },
  "insight": "1 sentence takeaway — the key learning of the day"
}
QUALITY RULES:
- hook: Must be relatable, everyday scenario. NO academic intro. Max 2 sentences.
- micro_task_1 and micro_task_2: MUST have exactly 3 options each
- options: plausible, not placeholder (no "A", "B", "C"), concrete
- correct_index: 0-2 integer, vary between tasks
- explanation: casual, short, Gen-Z friendly
- insight: 1 punchy sentence, memorable takeaway
- TOTAL content must be completable in under 5 minutes
- NO essays, NO lectures, NO academic jargon
- Use everyday examples, numbers, real-life situations
- Tone: like texting a smart friend, not a textbook
- Language: Hungarian (hu)
- Example hook style: "Ha 100k jon be, mennyi a 20%? Nem kell matekzseni."
`,
}
