package fields

import (
	"strings"

	"github.com/hyperjump/resumecua/internal/section"
	"github.com/hyperjump/resumecua/internal/standardize"
	"github.com/hyperjump/resumecua/pkg/utils"
)

const (
	maxSkills            = 15
	minSectionSkills     = 5
	minSkillsBeforeNouns = 10
)

var skillsSegmenter = section.Segmenter{
	Headings:    []section.Heading{{Name: "skills", Pattern: skillsHeading}},
	Terminator:  skillsStop,
	BlankCloses: true,
}

// fillerPrefixes reject list debris such as "etc." or "and more". The match is a plain
// prefix, so names like "Oracle" are rejected too.
var fillerPrefixes = []string{"e.g", "etc", "and", "or", "the", "to", "for"}

// Skills collects concise technical skills. Labelled skill sections come first; a table
// of well-known technologies fills in when sections yield fewer than five, and recognizer
// noun chunks when there are still fewer than ten. At most 15 skills are returned.
func Skills(text string, nounChunks []string) []string {
	var all []string
	for _, block := range skillsSegmenter.Segment(text) {
		all = append(all, sectionSkills(block.Text())...)
	}
	if len(all) < minSectionSkills {
		all = append(all, techMentions(text)...)
	}
	if len(all) < minSkillsBeforeNouns {
		for _, chunk := range nounChunks {
			chunk = strings.TrimSpace(chunk)
			if n := utils.RuneLen(chunk); n >= 2 && n <= 30 && alnumRE.MatchString(chunk) && !nonTechnical.MatchString(chunk) {
				all = append(all, chunk)
			}
		}
	}

	out := make([]string, 0, maxSkills)
	for _, s := range standardize.Skills(all) {
		if keepSkill(s) {
			out = append(out, s)
			if len(out) == maxSkills {
				break
			}
		}
	}
	return out
}

// sectionSkills splits a skills block into short items.
func sectionSkills(block string) []string {
	var out []string
	for _, raw := range skillDelimiters.Split(block, -1) {
		item := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "-•·*()[]{}"))
		if utils.RuneLen(item) < 2 {
			continue
		}
		item = leadingNumber.ReplaceAllString(item, "")
		item = spaceRuns.ReplaceAllString(item, " ")
		if !alnumRE.MatchString(item) || utils.RuneLen(item) > 25 ||
			len(strings.Fields(item)) > 3 || descriptionVerb.MatchString(item) {
			continue
		}

		var parts []string
		switch {
		case strings.Contains(item, "/") && len(strings.Split(item, "/")) <= 3:
			parts = strings.Split(item, "/")
		case strings.Contains(item, " & ") && len(strings.Split(item, " & ")) <= 3:
			parts = strings.Split(item, " & ")
		default:
			out = append(out, item)
			continue
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if n := utils.RuneLen(p); n >= 2 && n <= 15 {
				out = append(out, p)
			}
		}
	}
	return out
}

// techMentions returns distinct technology names mentioned anywhere in text.
func techMentions(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, re := range techKeywords {
		for _, m := range re.FindAllString(text, -1) {
			key := strings.ToLower(m)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

func keepSkill(s string) bool {
	if n := utils.RuneLen(s); n < 2 || n > 20 {
		return false
	}
	if len(strings.Fields(s)) > 2 || nonSkill.MatchString(s) || skillPunct.MatchString(s) || isDigits(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
