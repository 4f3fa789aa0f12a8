package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ListResumeFiles walks dir recursively and returns the files whose extension is in exts,
// sorted by path. Extensions are compared case-insensitively and need a leading dot.
func ListResumeFiles(dir string, exts []string) ([]string, error) {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = true
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseKeywords splits a comma-separated keyword list, trimming items and dropping empty
// ones and case-insensitive repeats. The first spelling of a keyword is kept.
func ParseKeywords(s string) []string {
	return CleanKeywords(strings.Split(s, ","))
}

// CleanKeywords trims keywords and drops empty ones and case-insensitive repeats.
func CleanKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		key := strings.ToLower(k)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, k)
	}
	return out
}
