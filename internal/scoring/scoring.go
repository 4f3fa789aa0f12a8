// Package scoring computes the 0-100 relevancy of resume text to a keyword set using
// section-weighted term frequency.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/hyperjump/resumecua/internal/section"
	"github.com/hyperjump/resumecua/pkg/utils"
)

// Section weights. Unknown sections weigh 1.0.
var sectionWeights = map[string]float64{
	"skills":     2.0,
	"experience": 1.8,
	"projects":   1.5,
	"summary":    1.3,
	"education":  1.0,
	"general":    0.8,
}

const (
	exactWeight        = 1.0
	partialWeight      = 0.5
	docExactWeight     = 0.8
	docPartialWeight   = 0.3
	emphasisTermWeight = 2.0
	termCapFactor      = 3.0
)

var scoringSegmenter = section.Segmenter{
	Headings: []section.Heading{
		{Name: "skills", Pattern: regexp.MustCompile(`(?i)^\s*(?:(?:technical\s+)?skills?|(?:technologies|tech\s*stack)\b)`)},
		{Name: "experience", Pattern: regexp.MustCompile(`(?i)^\s*(?:(?:work\s+)?experience|employment|professional\s+experience)\b`)},
		{Name: "education", Pattern: regexp.MustCompile(`(?i)^\s*(?:education|academic\s+background)\b`)},
		{Name: "projects", Pattern: regexp.MustCompile(`(?i)^\s*projects?\b`)},
		{Name: "summary", Pattern: regexp.MustCompile(`(?i)^\s*(?:(?:professional\s+)?summary|objective|profile)\b`)},
	},
	Initial: "general",
}

// Terms trims and lowercases keywords, dropping empty and repeated ones.
func Terms(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	var out []string
	for _, k := range keywords {
		t := strings.ToLower(strings.TrimSpace(k))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Sections splits text into weighted scoring sections, keeping the last occurrence of
// each name. Lines before the first heading belong to "general".
func Sections(text string) map[string]string {
	return section.Latest(scoringSegmenter.Segment(text))
}

// Weight returns the weight of a scoring section.
func Weight(name string) float64 {
	if w, ok := sectionWeights[name]; ok {
		return w
	}
	return 1.0
}

// Score rates how well text matches keywords on a 0-100 scale, rounded to two decimals.
// Matches inside a recognized section count for that section and again in the
// whole-document tally.
func Score(text string, keywords []string) float64 {
	if text == "" {
		return 0
	}
	terms := Terms(keywords)
	if len(terms) == 0 {
		return 0
	}

	content := strings.ToLower(text)
	sections := Sections(text)
	names := make([]string, 0, len(sections))
	lowered := make(map[string]string, len(sections))
	for name, body := range sections {
		names = append(names, name)
		lowered[name] = strings.ToLower(body)
	}
	sort.Strings(names)

	var total, maxPossible float64
	for _, term := range terms {
		base := 1.0
		if strings.Contains(term, "+") || strings.Contains(term, "year") || strings.Contains(term, "experience") {
			base = emphasisTermWeight
		}
		maxPossible += base

		exactRE := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		var termScore float64
		for _, name := range names {
			exact, partial := countMatches(exactRE, term, lowered[name])
			termScore += (float64(exact)*exactWeight + float64(partial)*partialWeight) * Weight(name)
		}
		exact, partial := countMatches(exactRE, term, content)
		termScore += float64(exact)*docExactWeight + float64(partial)*docPartialWeight

		total += math.Min(termScore*base, base*termCapFactor)
	}

	if maxPossible == 0 {
		return 0
	}
	return utils.Round2(math.Min(total/maxPossible*100, 100))
}

// countMatches returns word-bounded occurrences of term and the remaining substring
// occurrences.
func countMatches(exactRE *regexp.Regexp, term, s string) (exact, partial int) {
	exact = len(exactRE.FindAllStringIndex(s, -1))
	partial = strings.Count(s, term) - exact
	return exact, partial
}
