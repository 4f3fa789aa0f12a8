package fields

import (
	"strings"
	"unicode"

	"github.com/hyperjump/resumecua/internal/ner"
)

type candidate struct {
	value      string
	confidence int
}

// nameStrategy proposes name candidates. Strategies run in order and the first candidate
// with the highest confidence wins.
type nameStrategy func(text string, ents ner.Entities) []candidate

var nameStrategies = []nameStrategy{
	personEntities,
	leadingLines,
	labelledName,
}

// Name returns the candidate's full name, or "" when no strategy finds one.
func Name(text string, ents ner.Entities) string {
	best := candidate{}
	for _, strategy := range nameStrategies {
		for _, c := range strategy(text, ents) {
			if c.confidence > best.confidence {
				best = c
			}
		}
	}
	return best.value
}

// personEntities trusts the first three PERSON spans of 2-4 words.
func personEntities(_ string, ents ner.Entities) []candidate {
	var persons []string
	for _, p := range ents.Person {
		p = strings.TrimSpace(p)
		if len(strings.Fields(p)) <= 4 {
			persons = append(persons, p)
		}
	}
	if len(persons) > 3 {
		persons = persons[:3]
	}
	var out []candidate
	for _, p := range persons {
		if n := len(strings.Fields(p)); n >= 2 && n <= 4 && !nameBlacklist.MatchString(p) {
			out = append(out, candidate{p, 3})
		}
	}
	return out
}

// leadingLines looks for a capitalized 2-4 word line among the first three non-empty lines.
func leadingLines(text string, _ ner.Entities) []candidate {
	var out []candidate
	i := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if i > 2 {
			break
		}
		line = emailRE.ReplaceAllString(line, "")
		line = phoneTextRE.ReplaceAllString(line, "")
		line = nonWordRE.ReplaceAllString(line, " ")

		var words []string
		for _, w := range strings.Fields(line) {
			if !nameBlacklist.MatchString(w) {
				words = append(words, w)
			}
		}
		if len(words) >= 2 && len(words) <= 4 && allNameWords(words) {
			confidence := 1
			if i == 0 {
				confidence = 2
			}
			out = append(out, candidate{strings.Join(words, " "), confidence})
		}
		i++
	}
	return out
}

func allNameWords(words []string) bool {
	for _, w := range words {
		for j, r := range w {
			if !unicode.IsLetter(r) || (j == 0 && !unicode.IsUpper(r)) {
				return false
			}
		}
	}
	return true
}

// labelledName reads "Name:" and "Full Name:" labels.
func labelledName(text string, _ ner.Entities) []candidate {
	var out []candidate
	for _, m := range nameLabelRE.FindAllStringSubmatch(text, -1) {
		out = append(out, candidate{m[1], 2})
	}
	return out
}
