// Package cli formats command output for the resumecua binary.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/pkg/utils"
)

// OutputFormat is the format for search and status output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputCompact prints one candidate per line.
	OutputCompact OutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputCompact, OutputJSON:
		return f, nil
	case "":
		return OutputText, nil
	}
	return "", fmt.Errorf("unknown output format %q; use text, compact, or json", s)
}

// WriteSearchResults writes candidate search results to w in the given format.
// Unknown formats fall back to text.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, response)
	case OutputCompact:
		for _, hit := range response.Hits {
			c := hit.Candidate
			fmt.Fprintf(w, "%d\t%.4f\t%s\t%s\t%s\n", hit.Rank, hit.Score, c.ID, orDash(c.Name), c.SourceFile)
		}
		return nil
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d candidates for %q in %dms\n\n", response.Total, response.Query, response.QueryTime)
	for _, hit := range response.Hits {
		writeOneHit(w, hit)
	}
}

func writeOneHit(w io.Writer, hit *models.SearchHit) {
	c := hit.Candidate
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | Score: %.4f\n", hit.Rank, hit.Score)
	fmt.Fprintf(w, "ID: %s\n", c.ID)
	fmt.Fprintf(w, "Name: %s\n", orDash(c.Name))
	if c.Email != "" {
		fmt.Fprintf(w, "Email: %s\n", c.Email)
	}
	if c.SourceFile != "" {
		fmt.Fprintf(w, "File: %s\n", c.SourceFile)
	}
	if c.Skills != "" {
		fmt.Fprintf(w, "Skills: %s\n", utils.Truncate(c.Skills, 200))
	}
	for _, field := range sortedKeys(hit.Highlights) {
		fmt.Fprintf(w, "  %s: %s\n", field, TruncateWords(strings.Join(hit.Highlights[field], " … "), 30))
	}
	fmt.Fprintln(w)
}

// WriteRows prints parsed rows, one block per candidate, or JSON.
func WriteRows(w io.Writer, rows []models.CandidateRecord, format OutputFormat) error {
	if format == OutputJSON {
		if rows == nil {
			rows = []models.CandidateRecord{}
		}
		return writeJSON(w, rows)
	}
	cols := models.Columns(rows)
	for i, r := range rows {
		if format == OutputCompact {
			score := r.Field(models.ColRelevancyScore)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.SourceFile, orDash(r.Name), orDash(r.Email), orDash(score))
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, col := range cols {
			if v := r.Field(col); v != "" {
				fmt.Fprintf(w, "%-15s %s\n", col+":", utils.Truncate(v, 200))
			}
		}
	}
	return nil
}

// StatusConfig holds configuration info printed by status.
type StatusConfig struct {
	DatabasePath string `json:"database_path,omitempty"`
	IndexPath    string `json:"index_path,omitempty"`
	NEREnabled   bool   `json:"ner_enabled"`
	Workers      int    `json:"workers,omitempty"`
}

// Status is the shape of GET /api/v1/status as well as the direct status report.
type Status struct {
	Formats        []string      `json:"formats,omitempty"`
	Candidates     int64         `json:"candidates"`
	Indexed        uint64        `json:"indexed"`
	DiskUsageBytes *int64        `json:"disk_usage_bytes,omitempty"`
	Config         *StatusConfig `json:"config,omitempty"`
}

// WriteStatus prints s as text or JSON.
func WriteStatus(w io.Writer, s *Status, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, s)
	}
	fmt.Fprintf(w, "Candidates:  %d\n", s.Candidates)
	fmt.Fprintf(w, "Indexed:     %d\n", s.Indexed)
	if s.DiskUsageBytes != nil {
		fmt.Fprintf(w, "Disk usage:  %s\n", FormatBytes(*s.DiskUsageBytes))
	}
	if len(s.Formats) > 0 {
		fmt.Fprintf(w, "Formats:     %s\n", strings.Join(s.Formats, ", "))
	}
	if c := s.Config; c != nil {
		if c.DatabasePath != "" {
			fmt.Fprintf(w, "Database:    %s\n", c.DatabasePath)
		}
		if c.IndexPath != "" {
			fmt.Fprintf(w, "Index:       %s\n", c.IndexPath)
		}
		fmt.Fprintf(w, "NER:         %t\n", c.NEREnabled)
	}
	return nil
}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
