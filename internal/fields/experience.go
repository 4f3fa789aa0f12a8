package fields

import (
	"strings"

	"github.com/hyperjump/resumecua/internal/section"
)

const maxExperienceEntries = 5

// Experience lists job entries as "Title at Company (Duration)". A line is an entry when
// it names a job title, or names a company together with a date. Bullet descriptions are
// not included.
func Experience(text string) string {
	lines, _ := section.Bounded(section.Lines(text), experienceStart, experienceStop)

	var entries []string
	for i, line := range lines {
		if line == "" {
			continue
		}
		hasTitle := jobTitleRE.MatchString(line)
		hasCompany := companyRE.MatchString(line)
		if !hasTitle && !(hasCompany && dateTokenRE.MatchString(line)) {
			continue
		}

		var title, company string
		if hasTitle {
			title = line
		}
		duration := findDuration(line)
		if hasCompany {
			company = line
		} else {
			for j := i + 1; j < len(lines) && j < i+3; j++ {
				if companyRE.MatchString(lines[j]) {
					company = lines[j]
					break
				}
			}
		}

		entry := title
		if company != "" && company != title {
			if entry != "" {
				entry += " at " + leadingPart(company)
			} else {
				entry = leadingPart(company)
			}
		}
		if duration != "" {
			entry += " (" + duration + ")"
		}
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return strings.Join(entries, " | ")
}

// findDuration tries month-year ranges, then year ranges, then slash-date ranges.
func findDuration(line string) string {
	for _, re := range durationREs {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}
