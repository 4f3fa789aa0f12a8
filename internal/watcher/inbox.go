package watcher

import (
	"context"
	"errors"

	"github.com/hyperjump/resumecua/internal/fileid"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/storage"
	"go.uber.org/zap"
)

// Inbox is a Handler that parses resumes and keeps the candidate store and search index
// in step with the watched files. Without a store it only logs what it parsed.
type Inbox struct {
	pipeline *pipeline.Pipeline
	opts     pipeline.Options
	store    storage.Storage        // optional
	index    keyword.CandidateIndex // optional
	logger   *zap.Logger            // optional
}

// InboxOption configures an Inbox.
type InboxOption func(*Inbox)

// WithStore persists parsed candidates.
func WithStore(s storage.Storage) InboxOption {
	return func(in *Inbox) { in.store = s }
}

// WithIndex keeps parsed candidates searchable.
func WithIndex(idx keyword.CandidateIndex) InboxOption {
	return func(in *Inbox) { in.index = idx }
}

// WithInboxLogger sets a logger for parse results and failures.
func WithInboxLogger(l *zap.Logger) InboxOption {
	return func(in *Inbox) { in.logger = l }
}

// NewInbox returns a handler that runs p with opts on every changed resume.
func NewInbox(p *pipeline.Pipeline, opts pipeline.Options, inboxOpts ...InboxOption) *Inbox {
	in := &Inbox{pipeline: p, opts: opts}
	for _, o := range inboxOpts {
		o(in)
	}
	return in
}

// Upsert parses the resume at path and saves it under the path's candidate ID. A resume
// that fails to read is still saved, carrying its error.
func (in *Inbox) Upsert(ctx context.Context, path string) {
	rec, err := in.pipeline.ProcessFile(ctx, path, in.opts)
	if err != nil {
		in.warn("failed to parse resume", path, err)
	}
	rec.ID = fileid.CandidateID(path)
	in.save(ctx, path, &rec)
}

func (in *Inbox) save(ctx context.Context, path string, rec *models.CandidateRecord) {
	if in.store != nil {
		if err := in.store.SaveCandidate(ctx, rec); err != nil {
			in.warn("failed to store candidate", path, err)
			return
		}
	}
	if in.index != nil {
		if err := in.index.Index(ctx, rec); err != nil {
			in.warn("failed to index candidate", path, err)
		}
	}
	if in.logger != nil {
		in.logger.Info("candidate parsed",
			zap.String("id", rec.ID),
			zap.String("file", rec.SourceFile),
			zap.String("name", rec.Name),
			zap.String("email", rec.Email),
		)
	}
}

// Remove deletes the candidate parsed from path, if any.
func (in *Inbox) Remove(ctx context.Context, path string) {
	id := fileid.CandidateID(path)
	if in.store != nil {
		if err := in.store.DeleteCandidate(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
			in.warn("failed to delete candidate", path, err)
		}
	}
	if in.index != nil {
		if err := in.index.Delete(ctx, id); err != nil {
			in.warn("failed to unindex candidate", path, err)
		}
	}
	if in.logger != nil {
		in.logger.Info("candidate removed", zap.String("id", id), zap.String("path", path))
	}
}

func (in *Inbox) warn(msg, path string, err error) {
	if in.logger != nil {
		in.logger.Warn(msg, zap.String("path", path), zap.Error(err))
	}
}
