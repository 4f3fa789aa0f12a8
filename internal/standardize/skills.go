package standardize

import (
	"regexp"
	"strings"
)

var skillSynonyms = map[string]string{
	"js":         "JavaScript",
	"ts":         "TypeScript",
	"py":         "Python",
	"nodejs":     "Node.js",
	"reactjs":    "React",
	"vuejs":      "Vue.js",
	"angularjs":  "Angular",
	"css3":       "CSS",
	"html5":      "HTML",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"aws":        "Amazon Web Services",
	"gcp":        "Google Cloud Platform",
	"k8s":        "Kubernetes",
	"docker":     "Docker",
	"git":        "Git",
}

var versionLike = regexp.MustCompile(`^\d+[\.\d]*$`)

// Skills maps known abbreviations to canonical names and removes case-insensitive
// duplicates, keeping the first occurrence. Numeric and version-shaped tokens, single
// characters and phrases of more than four words are dropped.
func Skills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		skill := strings.TrimSpace(s)
		if skill == "" {
			continue
		}
		lower := strings.ToLower(skill)
		if canon, ok := skillSynonyms[lower]; ok {
			skill = canon
			lower = strings.ToLower(canon)
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		if len([]rune(skill)) < 2 || versionLike.MatchString(skill) || len(strings.Fields(skill)) > 4 {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// JoinList joins items with ", " for the Skills column.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
