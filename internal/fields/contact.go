package fields

import (
	"sort"
	"strings"

	"github.com/hyperjump/resumecua/internal/standardize"
)

// Email returns the first email-shaped token in text.
func Email(text string) string {
	return strings.TrimSpace(emailRE.FindString(text))
}

// Phone picks the most plausible phone number and formats it for display. Numbers that
// follow a contact keyword win over digit runs found anywhere else.
func Phone(text string) string {
	var candidates []string
	for _, m := range phoneContext.FindAllStringSubmatch(text, -1) {
		if d := standardize.Digits(strings.TrimSpace(m[1])); plausiblePhone(d) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		for _, m := range phoneTextRE.FindAllString(text, -1) {
			if d := standardize.Digits(m); plausiblePhone(d) {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		li, fi := phoneRank(candidates[i])
		lj, fj := phoneRank(candidates[j])
		if li != lj {
			return li > lj
		}
		return fi > fj
	})
	return standardize.Phone(candidates[0])
}

func plausiblePhone(digits string) bool {
	return len(digits) >= 7 && len(digits) <= 15
}

// phoneRank favours 10-digit US numbers, then US numbers with country code, then any
// other plausible length; numbers opening with a common country code get a bonus.
func phoneRank(digits string) (length, prefix int) {
	switch n := len(digits); {
	case n == 10:
		length = 3
	case n == 11 && strings.HasPrefix(digits, "1"):
		length = 2
	case plausiblePhone(digits):
		length = 1
	}
	for _, cc := range []string{"1", "91", "44", "33", "49"} {
		if strings.HasPrefix(digits, cc) {
			prefix = 1
			break
		}
	}
	return length, prefix
}

// ProfileURLs returns the first LinkedIn and GitHub profile URLs found in text.
func ProfileURLs(text string) (linkedIn, gitHub string) {
	for _, m := range profileURLRE.FindAllString(text, -1) {
		full := strings.TrimSpace(m)
		lower := strings.ToLower(full)
		if linkedIn == "" && strings.Contains(lower, "linkedin.com") {
			linkedIn = standardize.URL(full)
		}
		if gitHub == "" && strings.Contains(lower, "github.com") {
			gitHub = standardize.URL(full)
		}
	}
	return linkedIn, gitHub
}
