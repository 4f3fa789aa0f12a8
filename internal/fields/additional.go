package fields

import (
	"strings"

	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/section"
	"github.com/hyperjump/resumecua/pkg/utils"
)

const maxSectionLines = 5

var additionalSegmenter = section.Segmenter{
	Headings: []section.Heading{
		{Name: "Projects", Pattern: projectsHeading},
		{Name: "Certifications", Pattern: certificationsHeading},
		{Name: "Languages", Pattern: languagesHeading},
		{Name: "Awards", Pattern: awardsHeading},
	},
	Terminator:  additionalStop,
	BlankCloses: true,
	Clean: func(line string) string {
		line = bulletPrefix.ReplaceAllString(line, "")
		if utils.RuneLen(line) <= 3 {
			return ""
		}
		return line
	},
}

// Additional returns the projects, certifications, languages and awards sections, each as
// up to five lines joined by " | ". When a heading repeats, the last occurrence wins.
func Additional(text string) models.Details {
	latest := make(map[string]string)
	for _, sec := range additionalSegmenter.Segment(text) {
		lines := sec.Lines
		if len(lines) > maxSectionLines {
			lines = lines[:maxSectionLines]
		}
		latest[sec.Name] = strings.Join(lines, " | ")
	}
	return models.Details{
		Projects:       latest["Projects"],
		Certifications: latest["Certifications"],
		Languages:      latest["Languages"],
		Awards:         latest["Awards"],
	}
}

var confidenceWeights = []struct {
	field  func(models.CandidateRecord) string
	weight float64
}{
	{func(r models.CandidateRecord) string { return r.Name }, 0.2},
	{func(r models.CandidateRecord) string { return r.Email }, 0.15},
	{func(r models.CandidateRecord) string { return r.Phone }, 0.1},
	{func(r models.CandidateRecord) string { return r.Education }, 0.2},
	{func(r models.CandidateRecord) string { return r.Experience }, 0.2},
	{func(r models.CandidateRecord) string { return r.Skills }, 0.15},
}

// Confidence is a weighted tally of which core fields were extracted, rounded to two
// decimals.
func Confidence(r models.CandidateRecord) float64 {
	var total float64
	for _, w := range confidenceWeights {
		if strings.TrimSpace(w.field(r)) != "" {
			total += w.weight
		}
	}
	return utils.Round2(total)
}
