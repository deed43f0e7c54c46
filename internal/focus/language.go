package focus

import "strings"

// nonLatinLanguages are targets written in a non-Latin script. They get
// the beginner lesson-flow treatment and the script-mismatch recheck.
var nonLatinLanguages = map[string]bool{
	"greek": true, "korean": true, "japanese": true, "chinese": true, "mandarin": true,
	"arabic": true, "hebrew": true, "hindi": true, "thai": true, "russian": true,
	"ukrainian": true, "georgian": true, "armenian": true, "bengali": true, "tamil": true,
}

// IsNonLatinLanguage reports whether the target language uses a non-Latin
// script.
func IsNonLatinLanguage(lang string) bool {
	return nonLatinLanguages[strings.ToLower(strings.TrimSpace(lang))]
}

// huLangNames maps Hungarian language names, as they appear in plan titles
// like "Koreai - Alapozó", to English names.
var huLangNames = map[string]string{
	"koreai": "korean", "japán": "japanese", "görög": "greek", "kínai": "chinese",
	"arab": "arabic", "héber": "hebrew", "hindi": "hindi", "thai": "thai",
	"orosz": "russian", "ukrán": "ukrainian", "grúz": "georgian", "örmény": "armenian",
	"bengáli": "bengali", "tamil": "tamil", "mandarin": "mandarin",
	"angol": "english", "német": "german", "francia": "french", "olasz": "italian",
	"spanyol": "spanish", "portugál": "portuguese", "holland": "dutch", "svéd": "swedish",
	"finn": "finnish", "lengyel": "polish", "cseh": "czech", "román": "romanian",
	"török": "turkish", "norvég": "norwegian", "dán": "danish",
}

// langScriptDesc gives an unambiguous prompt description of the writing
// system, with sample glyphs, for non-Latin targets.
var langScriptDesc = map[string]string{
	"korean":    "Korean (한국어, Hangul script: 가나다)",
	"japanese":  "Japanese (日本語, Hiragana/Katakana/Kanji: あいう)",
	"chinese":   "Chinese (中文, Hanzi: 你好)",
	"mandarin":  "Mandarin Chinese (中文, Hanzi: 你好)",
	"greek":     "Greek (Ελληνικά, Greek alphabet: αβγ)",
	"arabic":    "Arabic (العربية, Arabic script: أبت)",
	"hebrew":    "Hebrew (עברית, Hebrew script: אבג)",
	"hindi":     "Hindi (हिन्दी, Devanagari script: अआइ)",
	"thai":      "Thai (ภาษาไทย, Thai script: กขค)",
	"russian":   "Russian (Русский, Cyrillic: абв)",
	"ukrainian": "Ukrainian (Українська, Cyrillic: абв)",
	"georgian":  "Georgian (ქართული, Georgian script: ა ბ გ)",
	"armenian":  "Armenian (Հայերեն, Armenian script: Ա Բ Գ)",
	"bengali":   "Bengali (বাংলা, Bengali script: অআই)",
	"tamil":     "Tamil (தமிழ், Tamil script: அஆஇ)",
}

// scriptDescription returns the script description for a language, or the
// language name itself when none is registered.
func scriptDescription(lang string) string {
	if d, ok := langScriptDesc[strings.ToLower(lang)]; ok {
		return d
	}
	return lang
}

// huLangNamesReverse gives the Hungarian name of a target language, used
// in chaining instructions ("angolul", "a koreai szó").
var huLangNamesReverse = map[string]string{
	"english": "angol", "german": "német", "spanish": "spanyol", "italian": "olasz",
	"french": "francia", "greek": "görög", "portuguese": "portugál",
	"korean": "koreai", "japanese": "japán",
}

// ResolveTargetLanguage resolves the language being learned. An explicit
// setting wins; otherwise the "Koreai - Alapozó - Nap 1" style prefix of
// the day title or user goal is mapped through the Hungarian name table.
// Returns "" when nothing matches.
func ResolveTargetLanguage(settings *Settings, dayTitle, userGoal string) string {
	if settings != nil {
		if t := strings.ToLower(strings.TrimSpace(settings.TargetLanguage)); t != "" {
			return t
		}
	}

	for _, source := range []string{dayTitle, userGoal} {
		if source == "" || !strings.Contains(source, " - ") {
			continue
		}
		prefix := strings.ToLower(strings.TrimSpace(strings.SplitN(source, " - ", 2)[0]))
		if resolved, ok := huLangNames[prefix]; ok {
			return resolved
		}
	}
	return ""
}
