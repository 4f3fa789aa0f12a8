// Package pipeline sequences reading, normalization, field extraction and relevancy
// scoring into one candidate record per resume.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/hyperjump/resumecua/internal/extract"
	"github.com/hyperjump/resumecua/internal/fields"
	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/ner"
	"github.com/hyperjump/resumecua/internal/scoring"
	"github.com/hyperjump/resumecua/internal/textnorm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// Options controls what is produced for each document.
type Options struct {
	// UseNER consults the entity recognizer for names and skill phrases.
	UseNER bool
	// Keywords enables relevancy scoring when non-empty.
	Keywords []string
	// Details attaches auxiliary sections and the extraction confidence.
	Details bool
}

// Pipeline turns resume documents into candidate records. It is safe for concurrent use.
type Pipeline struct {
	extractor  *extract.Extractor
	recognizer *ner.Provider
	workers    int
	logger     *zap.Logger // optional

	warnOnce sync.Once
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for recognizer warnings and batch progress.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithRecognizer sets the shared entity recognizer. Without one, entity lookups are empty.
func WithRecognizer(r *ner.Provider) Option {
	return func(p *Pipeline) { p.recognizer = r }
}

// WithWorkers sets how many documents ProcessFiles handles at once.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New returns a pipeline reading documents with extractor. A nil extractor uses the
// default readers.
func New(extractor *extract.Extractor, opts ...Option) *Pipeline {
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	p := &Pipeline{extractor: extractor, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractFields builds a candidate record from normalized text. Recognizer failures are
// logged once and treated as no entities.
func (p *Pipeline) ExtractFields(ctx context.Context, text string, useNER bool) models.CandidateRecord {
	var ents ner.Entities
	if useNER {
		ents = p.entities(ctx, text)
	}
	return fields.Extract(text, ents, useNER)
}

// ScoreRelevancy rates text against keywords on a 0-100 scale.
func ScoreRelevancy(text string, keywords []string) float64 {
	return scoring.Score(text, keywords)
}

func (p *Pipeline) entities(ctx context.Context, text string) ner.Entities {
	if p.recognizer == nil || text == "" {
		return ner.Entities{}
	}
	ents, err := p.recognizer.Recognize(ctx, text)
	if err != nil {
		p.warnOnce.Do(func() {
			if p.logger != nil {
				p.logger.Warn("entity recognition unavailable, continuing without it", zap.Error(err))
			}
		})
		return ner.Entities{}
	}
	return ents
}

// ProcessText normalizes raw text and extracts, details and scores it per opts.
// source becomes the record's SourceFile.
func (p *Pipeline) ProcessText(ctx context.Context, raw, source string, opts Options) models.CandidateRecord {
	text := textnorm.Normalize(raw)
	rec := p.ExtractFields(ctx, text, opts.UseNER)
	if opts.Details {
		rec.Details = fields.Details(text, rec)
	}
	if len(opts.Keywords) > 0 {
		rec = rec.WithScore(ScoreRelevancy(text, opts.Keywords))
	}
	rec.SourceFile = source
	return rec
}

// ProcessBytes reads an in-memory document with the reader for ext. A document the reader
// cannot parse is processed as empty text. Any other failure returns a record that is empty
// except for SourceFile and Error, along with the error.
func (p *Pipeline) ProcessBytes(ctx context.Context, content []byte, ext, source string, opts Options) (models.CandidateRecord, error) {
	raw, err := p.extractor.ExtractBytes(content, ext)
	if err != nil && !p.unreadable(source, err) {
		return Failed(source, err), err
	}
	return p.ProcessText(ctx, raw, source, opts), nil
}

// ProcessFile reads the file at path and returns its record, keyed by the file's base name.
// Parse failures degrade to empty text as in ProcessBytes; unsupported extensions and I/O
// errors return an error row and the error.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (models.CandidateRecord, error) {
	source := filepath.Base(path)
	raw, err := p.extractor.Extract(path)
	if err != nil && !p.unreadable(source, err) {
		return Failed(source, err), fmt.Errorf("%s: %w", source, err)
	}
	return p.ProcessText(ctx, raw, source, opts), nil
}

// unreadable reports whether err is a document parse failure, logging it when so.
func (p *Pipeline) unreadable(source string, err error) bool {
	if !errors.Is(err, extract.ErrReadFailure) {
		return false
	}
	if p.logger != nil {
		p.logger.Warn("unreadable document, continuing with empty text", zap.String("file", source), zap.Error(err))
	}
	return true
}

// ProcessFiles processes paths with bounded concurrency and returns one record per path
// in input order. A document that fails to read never stops the batch; only context
// cancellation does.
func (p *Pipeline) ProcessFiles(ctx context.Context, paths []string, opts Options) ([]models.CandidateRecord, error) {
	rows := make([]models.CandidateRecord, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := p.ProcessFile(gctx, path, opts)
			if err != nil && p.logger != nil {
				p.logger.Warn("failed to parse resume", zap.String("path", path), zap.Error(err))
			}
			rows[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if p.logger != nil {
		p.logger.Debug("batch parsed", zap.Int("files", len(paths)))
	}
	return rows, nil
}

// Failed returns the error row for a document that could not be processed.
func Failed(source string, err error) models.CandidateRecord {
	return models.CandidateRecord{SourceFile: source, Error: err.Error()}
}
