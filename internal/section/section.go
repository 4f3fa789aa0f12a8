// Package section holds the line-oriented segmentation primitives shared by the field
// extractors and the relevancy scorer. Each caller brings its own heading vocabulary and
// termination rule; the primitives never decide which headings exist.
package section

import (
	"regexp"
	"strings"
)

// Heading names a section and the pattern that opens it.
type Heading struct {
	Name    string
	Pattern *regexp.Regexp
}

// Section is a named run of non-empty lines.
type Section struct {
	Name  string
	Lines []string
}

// Text joins the section lines with newlines.
func (s Section) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Segmenter scans text line by line, opening a section whenever a line matches one of
// Headings. The heading line itself is consumed. An open section is closed by the next
// heading, by a Terminator match, or by a blank line when BlankCloses is set.
type Segmenter struct {
	Headings []Heading
	// Terminator closes the open section without opening another. Nil disables it.
	Terminator *regexp.Regexp
	// BlankCloses ends the open section at an empty line. When unset, empty lines are skipped.
	BlankCloses bool
	// Initial is the section open before any heading. Empty means lines before the first
	// heading are ignored.
	Initial string
	// Clean rewrites a content line before it is buffered; returning "" drops the line.
	Clean func(line string) string
}

// Segment returns every non-empty section in document order. A name may repeat when its
// heading does.
func (s Segmenter) Segment(text string) []Section {
	var (
		out     []Section
		current = s.Initial
		buf     []string
	)
	flush := func() {
		if current != "" && len(buf) > 0 {
			out = append(out, Section{Name: current, Lines: buf})
		}
		buf = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if s.BlankCloses {
				flush()
				current = ""
			}
			continue
		}
		if name, ok := s.match(line); ok {
			flush()
			current = name
			continue
		}
		if current == "" {
			continue
		}
		if s.Terminator != nil && s.Terminator.MatchString(line) {
			flush()
			current = ""
			continue
		}
		if s.Clean != nil {
			line = s.Clean(line)
			if line == "" {
				continue
			}
		}
		buf = append(buf, line)
	}
	flush()
	return out
}

func (s Segmenter) match(line string) (string, bool) {
	for _, h := range s.Headings {
		if h.Pattern.MatchString(line) {
			return h.Name, true
		}
	}
	return "", false
}

// Latest maps each section name to the text of its last occurrence.
func Latest(sections []Section) map[string]string {
	out := make(map[string]string, len(sections))
	for _, sec := range sections {
		out[sec.Name] = sec.Text()
	}
	return out
}

// Bounded returns the lines between a start heading and the first stop heading that
// follows it. When the start pattern matches more than once before a stop, the last match
// opens the span. The heading line is excluded. Without a start match the whole input is
// returned and found is false.
func Bounded(lines []string, start, stop *regexp.Regexp) (span []string, found bool) {
	first, end := -1, len(lines)
	for i, line := range lines {
		if start.MatchString(line) {
			first = i
		} else if first >= 0 && stop.MatchString(line) {
			end = i
			break
		}
	}
	if first < 0 {
		return lines, false
	}
	return lines[first+1 : end], true
}

// Lines splits text on newlines and trims each line, keeping empty ones so that line
// offsets stay stable.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
