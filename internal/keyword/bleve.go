package keyword

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	keywordanalyzer "github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	blevequery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/hyperjump/resumecua/internal/models"
)

const defaultFuzziness = 1

// BleveIndex implements CandidateIndex using Bleve.
type BleveIndex struct {
	index bleve.Index
}

func buildMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so skill names like "Go" and
	// "Pandas" match as written.
	text := bleve.NewTextFieldMapping()
	text.Analyzer = standard.Name
	for _, field := range []string{"name", "skills", "experience", "education"} {
		docMapping.AddFieldMappingsAt(field, text)
	}
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keywordanalyzer.Name
	docMapping.AddFieldMappingsAt("email", exact)
	docMapping.AddFieldMappingsAt("source_file", text)

	im.AddDocumentMapping("candidate", docMapping)
	im.DefaultType = "candidate"
	im.DefaultMapping = docMapping
	return im
}

// NewBleveIndex creates or opens a Bleve index at path.
// An existing index is reopened so stored candidates stay searchable across restarts.
func NewBleveIndex(path string) (*BleveIndex, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open Bleve index: %w", openErr)
		}
		return &BleveIndex{index: index}, nil
	}

	index, err := bleve.New(path, buildMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create Bleve index: %w", err)
	}
	return &BleveIndex{index: index}, nil
}

// NewMemBleveIndex creates an in-memory index, used by tests and one-shot commands.
func NewMemBleveIndex() (*BleveIndex, error) {
	index, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create Bleve index: %w", err)
	}
	return &BleveIndex{index: index}, nil
}

// Index adds or replaces a candidate by its ID.
func (b *BleveIndex) Index(ctx context.Context, c *models.CandidateRecord) error {
	if c.ID == "" {
		return errors.New("candidate id is required")
	}
	return b.index.Index(c.ID, newDocument(c))
}

// Search runs a match (or fuzzy) query over all candidate fields and returns one page of
// hits with highlighted fragments.
func (b *BleveIndex) Search(ctx context.Context, query string, limit int, opts *SearchOptions) (*Results, error) {
	var o SearchOptions
	if opts != nil {
		o = *opts
	}
	if o.Fuzziness <= 0 {
		o.Fuzziness = defaultFuzziness
	}

	q := b.buildQuery(query, o.Fuzzy, o.Fuzziness, "")
	if o.SkillsBoost > 1 {
		// Disjunction scores sum, so a skills match ranks above the same match elsewhere.
		sq := b.buildQuery(query, o.Fuzzy, o.Fuzziness, "skills")
		if bq, ok := sq.(blevequery.BoostableQuery); ok {
			bq.SetBoost(o.SkillsBoost)
		}
		q = bleve.NewDisjunctionQuery(q, sq)
	}

	req := bleve.NewSearchRequestOptions(q, limit, o.Offset, false)
	req.Highlight = bleve.NewHighlight()
	results, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("Bleve search failed: %w", err)
	}
	out := &Results{Hits: make([]*Result, len(results.Hits)), Total: results.Total}
	for i, hit := range results.Hits {
		out.Hits[i] = &Result{ID: hit.ID, Score: hit.Score, Highlights: hit.Fragments}
	}
	return out, nil
}

// tokenizeQuery splits query into lowercase terms, filtering out empty strings.
func tokenizeQuery(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// buildQuery creates a match query, or with fuzzy set a disjunction of FuzzyQueries for
// each term. An empty field searches all fields.
func (b *BleveIndex) buildQuery(queryStr string, fuzzy bool, fuzziness int, field string) blevequery.Query {
	terms := tokenizeQuery(queryStr)
	if !fuzzy || len(terms) == 0 {
		mq := bleve.NewMatchQuery(queryStr)
		if field != "" {
			mq.SetField(field)
		}
		return mq
	}

	queries := make([]blevequery.Query, 0, len(terms))
	for _, term := range terms {
		fq := bleve.NewFuzzyQuery(term)
		fq.SetFuzziness(fuzziness)
		if field != "" {
			fq.SetField(field)
		}
		queries = append(queries, fq)
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewDisjunctionQuery(queries...)
}

// Delete removes a candidate from the index.
func (b *BleveIndex) Delete(ctx context.Context, id string) error {
	return b.index.Delete(id)
}

// Close closes the Bleve index.
func (b *BleveIndex) Close() error {
	return b.index.Close()
}

// DocCount returns the total number of candidates in the index.
func (b *BleveIndex) DocCount() (uint64, error) {
	return b.index.DocCount()
}
