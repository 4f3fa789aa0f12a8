// Package storage persists parsed candidate records.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/resumecua/internal/models"
)

// ErrNotFound is returned when no candidate has the requested ID.
var ErrNotFound = errors.New("candidate not found")

// Storage defines candidate persistence operations.
type Storage interface {
	// SaveCandidate inserts the record or replaces the one with the same ID.
	SaveCandidate(ctx context.Context, c *models.CandidateRecord) error
	GetCandidate(ctx context.Context, id string) (*models.CandidateRecord, error)
	DeleteCandidate(ctx context.Context, id string) error
	// ListCandidates returns candidates, most recently saved first.
	ListCandidates(ctx context.Context, offset, limit int) ([]*models.CandidateRecord, error)
	CountCandidates(ctx context.Context) (int64, error)

	Close() error
}
