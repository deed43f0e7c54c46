package planner

import "strings"

// domainRulesHU returns the Hungarian item-type rules for a domain. The
// rules tell the model which item types exist and which mix is mandatory;
// language-only types are explicitly forbidden outside language domains.
func domainRulesHU(domain string) string {
	switch strings.ToLower(domain) {
	case "language", "language_learning":
		return `📋 ITEM TÍPUSOK (NYELV DOMAIN):
- lesson: Tananyag egy konkrét témáról
- quiz: Kvíz az összes napi témából
- practice: Gyakorlati feladat (exercise/writing/speaking)
- flashcard: Memóriakártyák szavakhoz
- task: Rövid, kipipálható feladat

⚠️ PRACTICE items-nél KÖTELEZŐ practice_type mező:
  - 'exercise' = párbeszéd gyakorlat AI-val (KÖTELEZŐ!)
  - 'translation' = fordítási gyakorlat (KÖTELEZŐ!)
  - 'writing' = írási feladat
  - 'speaking' = olvasás/hangos gyakorlás

🚨 KÖTELEZŐ MIX:
  - LEGALÁBB 1 exercise (párbeszéd AI-val)
  - LEGALÁBB 1 translation (fordítás)
  - LEGALÁBB 1 writing VAGY speaking`
	case "project":
		return `📋 ITEM TÍPUSOK (PROJEKT DOMAIN):
- lesson: Elméleti háttér, koncepciók
- task: Konkrét lépés a projektben (KÖTELEZŐ!)
- checklist: Ellenőrzőlista (KÖTELEZŐ!)

⚠️ TILOS NYELV-SPECIFIKUS FELADATOK!
  - NE használj 'translation' practice_type-ot!
  - NE használj 'flashcard' típust!
  - NE kérj nyelvtanulási feladatokat!

🚨 KÖTELEZŐ MIX:
  - Több lesson (elméleti háttér)
  - Konkrét projekt lépések (task)
  - Ellenőrzőlisták (checklist)`
	case "fitness":
		return `📋 ITEM TÍPUSOK (FITNESS DOMAIN):
- lesson: Edzéselmélet, technika
- task: Edzésfeladat, gyakorlat (KÖTELEZŐ!)
- checklist: Ellenőrzőlista (KÖTELEZŐ!)

⚠️ TILOS NYELV-SPECIFIKUS FELADATOK!
  - NE használj 'translation' practice_type-ot!
  - NE használj 'flashcard' típust!

🚨 KÖTELEZŐ MIX:
  - Edzéselmélet (lesson)
  - Gyakorlatok leírása (task)
  - Napló/mérés (checklist)`
	case "programming":
		return `📋 ITEM TÍPUSOK (PROGRAMOZÁS DOMAIN):
- lesson: Koncepciók, szintaxis
- quiz: Tudásszint ellenőrzés
- practice: Kódolási feladat (practice_type='coding')
- task: Implementációs lépés

⚠️ TILOS NYELV-SPECIFIKUS FELADATOK!
  - NE használj 'translation' practice_type-ot!

🚨 KÖTELEZŐ MIX:
  - Elméleti anyag (lesson)
  - Kódolási gyakorlat (practice)
  - Quiz`
	}
	return `📋 ITEM TÍPUSOK (ÁLTALÁNOS):
- lesson: Tananyag egy konkrét témáról
- quiz: Kvíz az összes napi témából
- practice: Gyakorlati feladat
- task: Rövid, kipipálható feladat

⚠️ FONTOS:
  - NE használj 'translation' practice_type-ot (csak nyelvtanuláshoz)!
  - NE használj 'flashcard' típust (csak nyelvtanuláshoz)!

🚨 KÖTELEZŐ MIX:
  - Elméleti anyag (lesson)
  - Gyakorlat (practice/task)
  - Quiz`
}

func domainRulesEN(domain string) string {
	switch strings.ToLower(domain) {
	case "language", "language_learning":
		return `📋 ITEM TYPES (LANGUAGE DOMAIN):
- lesson: Teaching content on specific topic
- quiz: Quiz covering all daily topics
- practice: Practical exercise (exercise/writing/speaking)
- flashcard: Memory cards for vocabulary
- task: Short, checkable task

⚠️ PRACTICE items MUST have practice_type:
  - 'exercise' = dialogue practice with AI (REQUIRED!)
  - 'translation' = translation practice (REQUIRED!)
  - 'writing' = writing exercise
  - 'speaking' = pronunciation practice

🚨 REQUIRED MIX:
  - AT LEAST 1 exercise (dialogue with AI)
  - AT LEAST 1 translation
  - AT LEAST 1 writing OR speaking`
	case "project":
		return `📋 ITEM TYPES (PROJECT DOMAIN):
- lesson: Theoretical background, concepts
- task: Concrete project step (REQUIRED!)
- checklist: Verification checklist (REQUIRED!)

⚠️ LANGUAGE-SPECIFIC TASKS FORBIDDEN!
  - DO NOT use 'translation' practice_type!
  - DO NOT use 'flashcard' type!
  - DO NOT assign language learning tasks!

🚨 REQUIRED MIX:
  - Multiple lessons (theory)
  - Concrete project steps (task)
  - Checklists`
	case "fitness":
		return `📋 ITEM TYPES (FITNESS DOMAIN):
- lesson: Training theory, technique
- task: Exercise, workout task (REQUIRED!)
- checklist: Verification checklist (REQUIRED!)

⚠️ LANGUAGE-SPECIFIC TASKS FORBIDDEN!
  - DO NOT use 'translation' practice_type!
  - DO NOT use 'flashcard' type!

🚨 REQUIRED MIX:
  - Training theory (lesson)
  - Exercise descriptions (task)
  - Log/measurement (checklist)`
	case "programming":
		return `📋 ITEM TYPES (PROGRAMMING DOMAIN):
- lesson: Concepts, syntax
- quiz: Knowledge check
- practice: Coding exercise (practice_type='coding')
- task: Implementation step

⚠️ LANGUAGE-SPECIFIC TASKS FORBIDDEN!
  - DO NOT use 'translation' practice_type!

🚨 REQUIRED MIX:
  - Theory (lesson)
  - Coding practice
  - Quiz`
	}
	return `📋 ITEM TYPES (GENERAL):
- lesson: Teaching content on specific topic
- quiz: Quiz covering daily topics
- practice: Practical exercise
- task: Short, checkable task

⚠️ IMPORTANT:
  - DO NOT use 'translation' practice_type (language learning only)!
  - DO NOT use 'flashcard' type (language learning only)!

🚨 REQUIRED MIX:
  - Theory (lesson)
  - Practice (practice/task)
  - Quiz`
}
