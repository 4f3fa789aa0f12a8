package ner

import (
	"strings"
)

// DefaultLabels is the label order of the common CoNLL-03 token classification heads.
var DefaultLabels = []string{"O", "B-MISC", "I-MISC", "B-PER", "I-PER", "B-ORG", "I-ORG", "B-LOC", "I-LOC"}

// WordLabels assigns each word the label predicted for its first subtoken. logits holds
// one row-major [maxTokens x len(labels)] block per window. Words without a prediction
// get "O".
func WordLabels(windows []Window, logits [][]float32, labels []string, nWords int) []string {
	out := make([]string, nWords)
	for i := range out {
		out[i] = "O"
	}
	seen := make([]bool, nWords)
	n := len(labels)
	for wi, win := range windows {
		if wi >= len(logits) {
			break
		}
		scores := logits[wi]
		for pos, word := range win.Words {
			if word < 0 || word >= nWords || seen[word] {
				continue
			}
			row := pos * n
			if row+n > len(scores) {
				break
			}
			seen[word] = true
			out[word] = labels[argmax(scores[row:row+n])]
		}
	}
	return out
}

func argmax(xs []float32) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

// Decode groups BIO-labelled words into entities. An I- tag that does not continue an
// entity of the same type starts a new one.
func Decode(words, labels []string) Entities {
	var (
		ents    Entities
		curType string
		cur     []string
	)
	flush := func() {
		if curType != "" && len(cur) > 0 {
			appendEntity(&ents, curType, joinWords(cur))
		}
		curType, cur = "", nil
	}
	for i, word := range words {
		if i >= len(labels) {
			break
		}
		prefix, typ := splitLabel(labels[i])
		switch {
		case typ == "":
			flush()
		case prefix == "B" || typ != curType:
			flush()
			curType, cur = typ, []string{word}
		default:
			cur = append(cur, word)
		}
	}
	flush()
	return ents
}

func splitLabel(label string) (prefix, typ string) {
	if label == "" || label == "O" {
		return "", ""
	}
	if i := strings.IndexByte(label, '-'); i > 0 {
		return label[:i], strings.ToUpper(label[i+1:])
	}
	return "I", strings.ToUpper(label)
}

func appendEntity(e *Entities, typ, text string) {
	switch typ {
	case "PER", "PERSON":
		e.Person = append(e.Person, text)
	case "ORG":
		e.Org = append(e.Org, text)
	case "LOC", "GPE":
		e.GPE = append(e.GPE, text)
	case "DATE":
		e.Date = append(e.Date, text)
	case "MONEY":
		e.Money = append(e.Money, text)
	case "MISC":
		e.NounChunks = append(e.NounChunks, text)
	}
}

// joinWords rebuilds span text, attaching punctuation words to their neighbours.
func joinWords(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 && !isAttached(w) && !isAttached(words[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

func isAttached(w string) bool {
	switch w {
	case ".", "-", "'", "+", "#", "/", "@":
		return true
	}
	return false
}
