// Package ner provides the optional named-entity recognizer used to improve name and
// skill extraction. Recognition is a capability: callers fall back to Noop when no model
// is configured or the model fails to load.
package ner

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrUnavailable is returned when no recognizer backend can be constructed.
var ErrUnavailable = errors.New("named-entity recognizer unavailable")

// Entities groups recognized spans by label. NounChunks holds miscellaneous noun phrases
// that may name technologies.
type Entities struct {
	Person     []string `json:"person,omitempty"`
	Org        []string `json:"org,omitempty"`
	GPE        []string `json:"gpe,omitempty"`
	Money      []string `json:"money,omitempty"`
	Date       []string `json:"date,omitempty"`
	NounChunks []string `json:"noun_chunks,omitempty"`
}

// Empty reports whether no entity of any label was recognized.
func (e Entities) Empty() bool {
	return len(e.Person)+len(e.Org)+len(e.GPE)+len(e.Money)+len(e.Date)+len(e.NounChunks) == 0
}

// Recognizer finds named entities in text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) (Entities, error)
	Close() error
}

// Noop recognizes nothing.
type Noop struct{}

// Recognize returns no entities.
func (Noop) Recognize(context.Context, string) (Entities, error) { return Entities{}, nil }

// Close is a no-op.
func (Noop) Close() error { return nil }

// StaticRecognizer returns fixed entities or a fixed error. It counts calls so tests can
// assert that recognition was skipped, and is safe for concurrent use.
type StaticRecognizer struct {
	Entities Entities
	Err      error
	Calls    atomic.Int64
	Closed   atomic.Bool
}

// Recognize returns the configured result.
func (s *StaticRecognizer) Recognize(ctx context.Context, _ string) (Entities, error) {
	s.Calls.Add(1)
	if err := ctx.Err(); err != nil {
		return Entities{}, err
	}
	if s.Err != nil {
		return Entities{}, s.Err
	}
	return s.Entities, nil
}

// Close marks the recognizer closed.
func (s *StaticRecognizer) Close() error {
	s.Closed.Store(true)
	return nil
}
