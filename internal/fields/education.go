package fields

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hyperjump/resumecua/internal/section"
	"github.com/hyperjump/resumecua/pkg/utils"
)

const maxEducationRunes = 800

type educationEntry struct {
	degree      string
	institution string
	year        string
	gpa         string
	honors      string
}

func (e educationEntry) String() string {
	out := e.degree
	if e.institution != "" && !strings.EqualFold(e.institution, e.degree) {
		out += " - " + leadingPart(e.institution)
	}
	if e.year != "" {
		out += " (" + e.year + ")"
	}
	if e.gpa != "" {
		out += " | GPA: " + e.gpa
	}
	if e.honors != "" {
		out += " | " + e.honors
	}
	return out
}

// Education lists degree entries found in the education section, or anywhere in the text
// when there is no such heading. Entries are formatted as
// "Degree - Institution (Year) | GPA: x | Honors", newest first.
func Education(text string) string {
	lines, _ := section.Bounded(section.Lines(text), educationStart, educationStop)

	type dated struct {
		text string
		year int
	}
	var (
		entries []dated
		seen    = make(map[string]struct{})
	)
	for i, line := range lines {
		if line == "" || !degreeRE.MatchString(line) {
			continue
		}
		e := educationEntry{degree: line}
		if m := gpaRE.FindStringSubmatch(line); m != nil {
			e.gpa = m[1]
		}
		if m := honorsRE.FindStringSubmatch(line); m != nil {
			e.honors = m[1]
		}
		if m := yearRE.FindStringSubmatch(line); m != nil {
			e.year = m[1]
		}
		if universityRE.MatchString(line) {
			e.institution = line
		} else {
			for j := i + 1; j < len(lines) && j < i+4; j++ {
				next := lines[j]
				if next == "" || !universityRE.MatchString(next) {
					continue
				}
				e.institution = next
				if e.year == "" {
					if m := yearRE.FindStringSubmatch(next); m != nil {
						e.year = m[1]
					}
				}
				break
			}
		}

		formatted := e.String()
		if _, dup := seen[formatted]; dup {
			continue
		}
		seen[formatted] = struct{}{}
		year, _ := strconv.Atoi(e.year)
		entries = append(entries, dated{formatted, year})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].year > entries[j].year })
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.text
	}
	return utils.TruncateRunes(strings.Join(parts, " | "), maxEducationRunes)
}

// leadingPart keeps the text before the first pipe or dash.
func leadingPart(s string) string {
	return strings.TrimSpace(entrySplitRE.Split(s, 2)[0])
}
