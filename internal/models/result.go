package models

// SearchHit is one candidate matched by a keyword search.
type SearchHit struct {
	Candidate  *CandidateRecord    `json:"candidate"`
	Score      float64             `json:"score"`
	Highlights map[string][]string `json:"highlights,omitempty"`
	Rank       int                 `json:"rank"`
}

// SearchResponse is the response for a candidate search.
type SearchResponse struct {
	Hits      []*SearchHit `json:"hits"`
	Total     uint64       `json:"total"`
	QueryTime int64        `json:"query_time_ms"`
	Query     string       `json:"query"`
}
