package models

import "fmt"

// CandidateQuery is a keyword search over stored candidates.
type CandidateQuery struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	// Fuzzy enables typo-tolerant matching.
	Fuzzy bool `json:"fuzzy,omitempty"`
}

// Validate rejects an empty query and clamps Limit to [1,100], defaulting to 10.
func (q *CandidateQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}
