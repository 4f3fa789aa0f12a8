// Package keyword provides full-text search over stored candidates.
package keyword

import (
	"context"

	"github.com/hyperjump/resumecua/internal/models"
)

// SearchOptions optional parameters for candidate search. Nil means use defaults.
type SearchOptions struct {
	// Offset skips that many hits for paging.
	Offset int
	// Fuzzy enables typo-tolerant term matching.
	Fuzzy bool
	// Fuzziness is the maximum edit distance when Fuzzy is set (1 or 2). Defaults to 1.
	Fuzziness int
	// SkillsBoost multiplies matches in the skills field. Values <= 1 disable the boost.
	SkillsBoost float64
}

// CandidateIndex defines candidate search operations.
type CandidateIndex interface {
	Index(ctx context.Context, c *models.CandidateRecord) error
	Search(ctx context.Context, query string, limit int, opts *SearchOptions) (*Results, error)
	Delete(ctx context.Context, id string) error
	Close() error
	// DocCount returns the total number of candidates in the index.
	DocCount() (uint64, error)
}

// Result is a single candidate hit.
type Result struct {
	ID    string
	Score float64
	// Highlights holds matched fragments keyed by field name.
	Highlights map[string][]string
}

// Results is one page of hits and the total number of matches.
type Results struct {
	Hits  []*Result
	Total uint64
}

// document is the indexed view of a candidate.
type document struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	SourceFile string `json:"source_file"`
}

func newDocument(c *models.CandidateRecord) document {
	return document{
		Name:       c.Name,
		Email:      c.Email,
		Skills:     c.Skills,
		Experience: c.Experience,
		Education:  c.Education,
		SourceFile: c.SourceFile,
	}
}
