package standardize

import (
	"regexp"
	"strings"
)

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// URL prefixes https:// when the value carries no http(s) scheme.
func URL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if !schemePrefix.MatchString(u) {
		u = "https://" + u
	}
	return u
}
