// Package textnorm cleans raw text produced by document readers before field extraction.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	camelBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
	letterDigit    = regexp.MustCompile(`([a-zA-Z])(\d)`)
	digitLetter    = regexp.MustCompile(`(\d)([a-zA-Z])`)
	horizontalRuns = regexp.MustCompile(`[\p{Zs}\t\f\r\v]+`)
	blankRuns      = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// mojibake maps UTF-8 sequences that were decoded as Latin-1 back to the intended text.
// Longer sequences come first so the bare artifact markers only strip leftovers.
var mojibake = []struct{ from, to string }{
	{"â\u0080\u0099", "'"},
	{"â\u0080\u0098", "'"},
	{"â\u0080\u009c", `"`},
	{"â\u0080\u009d", `"`},
	{"â\u0080¢", "•"},
	{"â\u0080\u0093", "-"},
	{"â\u0080\u0094", "-"},
	{"â\u0080¦", "..."},
	{"Â", ""},
	{"â", ""},
}

// Normalize returns cleaned text: known mis-decoded sequences replaced, camelCase and
// letter/digit boundaries split, horizontal whitespace collapsed, every line trimmed and
// empty lines dropped. Applying it twice yields the same result as once.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ToValidUTF8(raw, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	// Replacements run before boundary splitting: removing a marker can join two
	// characters into a new boundary, which a second pass would otherwise split.
	for _, m := range mojibake {
		text = strings.ReplaceAll(text, m.from, m.to)
	}
	text = camelBoundary.ReplaceAllString(text, "$1 $2")
	text = letterDigit.ReplaceAllString(text, "$1 $2")
	text = digitLetter.ReplaceAllString(text, "$1 $2")
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
