package focus

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// hu/en picks the Hungarian or English variant.
func pick(isHU bool, hu, en string) string {
	if isHU {
		return hu
	}
	return en
}

func clampMinutes(minutes, lo, hi int) int {
	if minutes < lo {
		return lo
	}
	if minutes > hi {
		return hi
	}
	return minutes
}

// FallbackItem builds a deterministic item for when generation fails. The
// result always passes Validate for its kind, so callers can rely on the
// pipeline producing usable content even with the model down.
func FallbackItem(kind Kind, topic, label, lang string, minutes int, domain string) Item {
	isHU := lang == "" || strings.HasPrefix(strings.ToLower(lang), "hu")
	rule := ruleFor(kind)

	h := fnv.New32a()
	h.Write([]byte(topic))

	item := Item{
		"schema_version":    "1.0",
		"kind":              string(kind),
		"idempotency_key":   fmt.Sprintf("fallback-%s-%d", kind, h.Sum32()%10000),
		"title":             label,
		"subtitle":          topic,
		"estimated_minutes": minutes,
		"difficulty":        "normal",
		"instructions_md":   pick(isHU, "Végezd el a feladatot az alábbi útmutató szerint.", "Complete the task following the guide below."),
		"rubric_md":         pick(isHU, "Ellenőrizd, hogy minden lépést elvégeztél.", "Check that you completed all steps."),
		"ui": map[string]any{
			"primary_cta":   pick(isHU, "Kész", "Done"),
			"secondary_cta": nil,
		},
		"input": map[string]any{
			"type":        rule.InputType,
			"placeholder": pick(isHU, "Írd ide...", "Type here..."),
		},
		"validation": map[string]any{
			"require_interaction": true,
			"min_chars":           rule.MinChars,
			"min_items":           rule.MinItems,
		},
		"scoring": map[string]any{
			"mode":       "manual",
			"max_points": 10,
		},
	}

	switch kind {
	case KindSmartLesson:
		item["content"] = fallbackSmartLesson(topic, isHU)
	case KindContent:
		if IsLanguageDomain(domain) {
			item["content"] = fallbackLanguageLesson(topic, isHU, minutes)
		} else {
			item["content"] = fallbackStandardContent(topic, isHU, minutes)
		}
		setReadOnly(item)
	case KindQuiz:
		item["content"] = fallbackQuiz(topic, isHU, minutes)
	case KindChecklist:
		item["content"] = fallbackChecklist(topic, isHU, minutes)
	case KindUploadReview:
		item["content"] = fallbackUploadReview(topic, isHU, minutes)
		setInput(item, "file")
	case KindBriefing:
		item["content"] = map[string]any{
			"situation": pick(isHU,
				fmt.Sprintf("Ma a következő munkahelyi szituációval foglalkozunk: %s.", topic),
				fmt.Sprintf("Today we focus on this workplace scenario: %s.", topic)),
			"outcome": pick(isHU,
				"A nap végére képes leszel alkalmazni a tanultakat egy valós helyzetben.",
				"By the end you will apply what you learned in a real situation."),
			"key_vocabulary_preview": []any{},
		}
		setReadOnly(item)
	case KindFeedback:
		item["content"] = map[string]any{
			"placeholder":      true,
			"user_text":        "",
			"corrections":      []any{},
			"improved_version": "",
			"message":          pick(isHU, "Először fejezd be a szövegalkotás feladatot!", "Complete the writing task first!"),
		}
		setReadOnly(item)
	case KindTranslation:
		item["content"] = fallbackTranslation(topic, isHU)
	case KindCards:
		item["content"] = fallbackCards(isHU)
	case KindRoleplay:
		item["content"] = fallbackRoleplay(topic, isHU)
	case KindWriting:
		item["content"] = fallbackWriting(topic, isHU)
	default:
		item["content"] = map[string]any{"summary": topic}
	}

	return item
}

func setReadOnly(item Item) {
	item["validation"].(map[string]any)["require_interaction"] = false
	item["input"] = map[string]any{"type": "none", "placeholder": nil}
}

func setInput(item Item, typ string) {
	item["input"].(map[string]any)["type"] = typ
}

func fallbackSmartLesson(topic string, isHU bool) map[string]any {
	return map[string]any{
		"hook": pick(isHU,
			fmt.Sprintf("Ma a(z) **%s** témát vesszük át — egy gyors, lényegre törő leckében.", topic),
			fmt.Sprintf("Today we cover **%s** — fast, practical, and straight to the point.", topic)),
		"micro_task_1": map[string]any{
			"instruction": pick(isHU,
				fmt.Sprintf("Melyik állítás írja le legjobban a(z) %s lényegét?", topic),
				fmt.Sprintf("Which statement best describes %s?", topic)),
			"options": []any{
				pick(isHU, fmt.Sprintf("A(z) %s segít konkrét célt és lépéseket meghatározni.", topic), fmt.Sprintf("%s helps define clear goals and steps.", topic)),
				pick(isHU, "Csak általános inspiráció, konkrét lépések nélkül.", "Just general inspiration without concrete steps."),
				pick(isHU, "Elméleti tudás, amit nem lehet a gyakorlatban alkalmazni.", "Pure theory with no practical application."),
			},
			"correct_index": 0,
			"explanation":   pick(isHU, "A helyes válasz: konkrét cél + lépések = eredmény.", "Correct: clear goal + steps = results."),
		},
		"micro_task_2": map[string]any{
			"instruction": pick(isHU,
				fmt.Sprintf("Mikor érdemes a(z) %s elvét alkalmazni?", topic),
				fmt.Sprintf("When is it worth applying %s?", topic)),
			"options": []any{
				pick(isHU, "Ha konkrét, mérhető eredményt szeretnél elérni.", "When you want a concrete, measurable outcome."),
				pick(isHU, "Ha nincs szükséged semmiféle visszajelzésre.", "When you need no feedback at all."),
				pick(isHU, "Ha véletlenszerű döntést szeretnél hozni.", "When you want to make a random decision."),
			},
			"correct_index": 0,
			"explanation":   pick(isHU, "Mérhető cél és lépések — ez a kulcs.", "Measurable goal and steps — that is the key."),
		},
		"insight": pick(isHU,
			fmt.Sprintf("A(z) %s nem rakétatudomány: célt tűzöl ki, lépéseket teszel, és méred az eredményt.", topic),
			fmt.Sprintf("%s is straightforward: set a goal, take steps, measure the result.", topic)),
	}
}

func fallbackLanguageLesson(topic string, isHU bool, minutes int) map[string]any {
	return map[string]any{
		"content_type": "language_lesson",
		"title":        pick(isHU, topic+" - alaplecke", topic+" - starter lesson"),
		"introduction": pick(isHU,
			fmt.Sprintf("Ebben a rövid leckében a(z) %s témához kapcsolódó alap szókincset és mondatszerkezeteket tanulod. "+
				"A cél, hogy egyszerű helyzetekben magabiztosan tudj köszönni, bemutatkozni, és röviden válaszolni.", topic),
			fmt.Sprintf("In this short lesson you learn the core vocabulary and sentence patterns for %s. "+
				"The goal is to greet people, introduce yourself, and answer simple questions with confidence.", topic)),
		"key_points": []any{
			pick(isHU, "Köszönések és udvarias alapmondatok.", "Basic greetings and polite starter phrases."),
			pick(isHU, "Egyszerű bemutatkozás: név, származás, foglalkozás.", "Simple self-introduction: name, origin, role."),
			pick(isHU, "Rövid kérdés-válasz minták hétköznapi helyzetekre.", "Short question-answer patterns for daily situations."),
		},
		"vocabulary_table": []any{
			map[string]any{"word": "Hello", "translation": "Helló"},
			map[string]any{"word": "Good morning", "translation": "Jó reggelt"},
			map[string]any{"word": "Good afternoon", "translation": "Jó napot"},
			map[string]any{"word": "My name is", "translation": "A nevem"},
			map[string]any{"word": "Nice to meet you", "translation": "Örülök, hogy megismertelek"},
			map[string]any{"word": "How are you?", "translation": "Hogy vagy?"},
		},
		"grammar_explanation": map[string]any{
			"rule_title":        "Egyszerű bemutatkozó mondat",
			"formation_pattern": "My name is + név",
			"explanation": pick(isHU,
				"A minta segít udvariasan bemutatkozni első találkozáskor.",
				"This pattern is used to introduce yourself politely in first meetings."),
			"examples": []any{
				map[string]any{"target": "My name is Anna.", "hungarian": "A nevem Anna."},
				map[string]any{"target": "My name is Peter.", "hungarian": "A nevem Péter."},
			},
		},
		"dialogues": []any{
			map[string]any{
				"scene": pick(isHU, "Első találkozás", "First meeting"),
				"lines": []any{
					map[string]any{"speaker": "A", "text": "Hello!", "translation": "Helló!"},
					map[string]any{"speaker": "B", "text": "Good afternoon!", "translation": "Jó napot!"},
					map[string]any{"speaker": "A", "text": "My name is Anna.", "translation": "A nevem Anna."},
					map[string]any{"speaker": "B", "text": "Nice to meet you.", "translation": "Örülök, hogy megismertelek."},
				},
			},
		},
		"common_mistakes": []any{
			pick(isHU, "A 'My name is' után lemarad a név.", "Leaving out the name after 'My name is'."),
			pick(isHU, "A köszönést napszakhoz rosszul választják.", "Using a greeting that does not match the time of day."),
			pick(isHU, "Túl hosszú, bonyolult mondatok kezdő szinten.", "Using overly long, complex sentences at beginner level."),
		},
		"estimated_minutes": clampMinutes(minutes, 3, 10),
	}
}

func fallbackStandardContent(topic string, isHU bool, minutes int) map[string]any {
	return map[string]any{
		"title": pick(isHU, topic+" alapjai", topic+" essentials"),
		"summary": pick(isHU,
			fmt.Sprintf("A(z) %s lényege, hogy érthetően lásd a célt és a megvalósítás lépéseit. "+
				"Ez a rövid áttekintés segít abban, hogy mikor és hogyan használd a fogalmat a gyakorlatban.", topic),
			fmt.Sprintf("%s focuses on understanding the goal and the practical steps to apply it. "+
				"This short overview helps you decide when to use it and what to watch for in practice.", topic)),
		"key_points": []any{
			pick(isHU, fmt.Sprintf("Definíció: mi a(z) %s és mire szolgál.", topic), fmt.Sprintf("Definition: what %s is and what it is for.", topic)),
			pick(isHU, "Működés: a folyamat fő lépései röviden.", "How it works: the main steps in order."),
			pick(isHU, "Alkalmazás: egy tipikus helyzet, ahol hasznos.", "Use case: a typical scenario where it helps."),
			pick(isHU, "Korlátok: mikor nem ideális a használata.", "Limitations: when it is not ideal."),
			pick(isHU, "Kapcsolódás: hogyan illeszkedik a kapcsolódó fogalmakhoz.", "Connections: how it relates to nearby concepts."),
		},
		"example": pick(isHU,
			fmt.Sprintf("Példa: Egy konkrét helyzetben a(z) %s segít a cél elérésében, mert lépésről lépésre követhető megoldást ad.", topic),
			fmt.Sprintf("Example: In a real situation, %s guides the process by making steps clear and measurable.", topic)),
		"micro_task": map[string]any{
			"instruction":     pick(isHU, fmt.Sprintf("Írj 2–3 mondatban egy saját példát, ahol a(z) %s segítene.", topic), fmt.Sprintf("Write a 2–3 sentence example where %s would help.", topic)),
			"expected_output": pick(isHU, "2–3 mondat, konkrét helyzettel és céllal.", "2–3 sentences with a concrete situation and goal."),
		},
		"common_mistakes": []any{
			pick(isHU, "Túl általános megfogalmazás konkrétumok nélkül.", "Using vague statements without concrete details."),
			pick(isHU, "A lépések összekeverése vagy kihagyása.", "Skipping or mixing up steps."),
			pick(isHU, "A cél és a mérhető eredmény nem tiszta.", "Unclear goal or success criteria."),
		},
		"estimated_minutes": clampMinutes(minutes, 3, 10),
	}
}

func fallbackQuiz(topic string, isHU bool, minutes int) map[string]any {
	q := func(question string, opts []any, explanation string) map[string]any {
		return map[string]any{
			"q":            question,
			"options":      opts,
			"answer_index": 0,
			"explanation":  explanation,
		}
	}
	return map[string]any{
		"title": pick(isHU, topic+" kvíz", topic+" quiz"),
		"questions": []any{
			q(
				pick(isHU, fmt.Sprintf("Melyik állítás írja le legjobban a(z) %s lényegét?", topic), fmt.Sprintf("Which statement best describes %s?", topic)),
				[]any{
					pick(isHU, fmt.Sprintf("A(z) %s célja egy világos, mérhető eredmény elérése.", topic), fmt.Sprintf("%s aims for a clear, measurable outcome.", topic)),
					pick(isHU, fmt.Sprintf("A(z) %s csak általános inspiráció, lépések nélkül.", topic), fmt.Sprintf("%s is only general inspiration without steps.", topic)),
					pick(isHU, fmt.Sprintf("A(z) %s kizárólag hosszú távú elmélet, gyakorlat nélkül.", topic), fmt.Sprintf("%s is purely long-term theory with no practice.", topic)),
				},
				pick(isHU, "Az első opció köti össze a célt és a megvalósítást.", "Option one links goal and execution."),
			),
			q(
				pick(isHU, fmt.Sprintf("Mikor hasznos a(z) %s?", topic), fmt.Sprintf("When is %s useful?", topic)),
				[]any{
					pick(isHU, "Ha konkrét célt és lépéseket kell meghatározni.", "When you need a clear goal and steps."),
					pick(isHU, "Ha nincs szükség mérhető eredményre.", "When no measurable outcome is needed."),
					pick(isHU, "Ha teljesen véletlenszerűen kell dönteni.", "When decisions should be random."),
				},
				pick(isHU, "A konkrét cél és lépések a kulcs.", "Clear goals and steps are the key."),
			),
			q(
				pick(isHU, fmt.Sprintf("Mi a leggyakoribb hiba a(z) %s alkalmazásakor?", topic), fmt.Sprintf("What is a common mistake when applying %s?", topic)),
				[]any{
					pick(isHU, "A lépések kihagyása vagy összekeverése.", "Skipping or mixing up steps."),
					pick(isHU, "A cél egyértelmű megfogalmazása.", "Clearly defining the goal."),
					pick(isHU, "Az eredmény mérése.", "Measuring the result."),
				},
				pick(isHU, "A folyamat lépéseinek elhagyása torzít.", "Skipping steps causes errors."),
			),
			q(
				pick(isHU, fmt.Sprintf("Melyik kimenet jelzi, hogy a(z) %s jól működött?", topic), fmt.Sprintf("Which outcome shows that %s worked well?", topic)),
				[]any{
					pick(isHU, "Mérhetően javult az eredmény.", "The outcome measurably improved."),
					pick(isHU, "Semmi nem változott.", "Nothing changed."),
					pick(isHU, "Nem tudjuk megmondani.", "We cannot tell."),
				},
				pick(isHU, "A mérhető javulás jelzi a sikert.", "Measurable improvement indicates success."),
			),
		},
		"estimated_minutes": clampMinutes(minutes, 3, 8),
	}
}

func fallbackChecklist(topic string, isHU bool, minutes int) map[string]any {
	entry := func(hu, en string) map[string]any {
		return map[string]any{"text": pick(isHU, hu, en), "done": false}
	}
	return map[string]any{
		"title": pick(isHU, topic+" ellenőrzőlista", topic+" checklist"),
		"items": []any{
			entry(fmt.Sprintf("Fogalmazd meg a(z) %s pontos célját 1 mondatban.", topic), fmt.Sprintf("Define the exact goal for %s in one sentence.", topic)),
			entry(fmt.Sprintf("Sorolj fel 3 követelményt a(z) %s kapcsán.", topic), fmt.Sprintf("List 3 constraints for %s.", topic)),
			entry("Állíts össze egy rövid (3 lépés) tervet.", "Draft a short 3-step plan."),
			entry("Készíts egy első mérhető eredményt.", "Create a first measurable deliverable."),
			entry("Írd le a következő lépést és a határidőt.", "Write the next step and a deadline."),
		},
		"estimated_minutes": clampMinutes(minutes, 3, 10),
	}
}

func fallbackUploadReview(topic string, isHU bool, minutes int) map[string]any {
	return map[string]any{
		"title":  pick(isHU, topic+" feltöltés", topic+" upload"),
		"prompt": pick(isHU, fmt.Sprintf("Tölts fel egy fájlt, ami bemutatja: %s.", topic), fmt.Sprintf("Upload a file that demonstrates: %s.", topic)),
		"rubric": []any{
			pick(isHU, "A cél világosan látszik.", "The goal is clear."),
			pick(isHU, "A lényegi elemek benne vannak.", "Key elements are present."),
			pick(isHU, "A kimenet rendezett és olvasható.", "The output is organized and readable."),
			pick(isHU, "Azonosíthatók a hiányok.", "Gaps are identifiable."),
		},
		"estimated_minutes": clampMinutes(minutes, 3, 10),
	}
}

func fallbackTranslation(topic string, isHU bool) map[string]any {
	entry := func(source, hint string) map[string]any {
		return map[string]any{"source": source, "target_lang": "en", "hint": hint}
	}
	return map[string]any{
		"title": pick(isHU, topic+" fordítás", topic+" translation"),
		"items": []any{
			entry("Jó reggelt! Hogy vagy ma?", "greeting"),
			entry("A nevem Anna, örülök, hogy megismertelek.", "introduction"),
			entry("Kérek egy kávét, köszönöm.", "ordering"),
			entry("Hol van a legközelebbi megálló?", "asking for directions"),
		},
	}
}

func fallbackCards(isHU bool) map[string]any {
	card := func(front, back string) map[string]any {
		return map[string]any{"front": front, "back": back}
	}
	return map[string]any{
		"cards": []any{
			card("Hello", "Helló"),
			card("Thank you", "Köszönöm"),
			card("Please", "Kérem"),
			card("Good morning", "Jó reggelt"),
			card("Goodbye", "Viszlát"),
		},
	}
}

func fallbackRoleplay(topic string, isHU bool) map[string]any {
	return map[string]any{
		"scenario": pick(isHU,
			fmt.Sprintf("Rövid párbeszéd gyakorlat a(z) %s témában. Válaszolj írásban a partner üzeneteire.", topic),
			fmt.Sprintf("A short dialogue practice about %s. Reply to your partner's messages in writing.", topic)),
		"roles": map[string]any{
			"user": pick(isHU, "tanuló", "learner"),
			"ai":   pick(isHU, "beszélgetőpartner", "conversation partner"),
		},
		"opening_line": pick(isHU, "Szia! Kezdjük a mai gyakorlatot — mesélj, mi a mai téma számodra?", "Hi! Let's start today's practice — tell me, what is today's topic for you?"),
		"sample_exchanges": []any{
			map[string]any{
				"user": pick(isHU, "Szia! Ma a bemutatkozást gyakorlom.", "Hi! Today I am practicing introductions."),
				"ai":   pick(isHU, "Remek! Mutatkozz be két mondatban.", "Great! Introduce yourself in two sentences."),
			},
		},
		"turn_limit": 8,
	}
}

func fallbackWriting(topic string, isHU bool) map[string]any {
	return map[string]any{
		"prompt": pick(isHU,
			fmt.Sprintf("Írj 4-6 mondatot a(z) %s témáról. Használj konkrét példát, és zárd egy következtetéssel.", topic),
			fmt.Sprintf("Write 4-6 sentences about %s. Use a concrete example and close with a conclusion.", topic)),
		"example": pick(isHU,
			"Példa: \"A mai témám ... Egy konkrét helyzetben ... Ebből azt tanultam, hogy ...\"",
			"Example: \"My topic today is ... In one concrete situation ... What I learned is ...\""),
		"word_count_target": 50,
	}
}
