package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/resumecua/internal/models"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		github TEXT NOT NULL DEFAULT '',
		education TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '',
		relevancy_score REAL,
		source_file TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_candidates_updated_at ON candidates(updated_at);
	CREATE INDEX IF NOT EXISTS idx_candidates_source_file ON candidates(source_file);
	`
	_, err := db.Exec(schema)
	return err
}

const candidateColumns = `id, name, email, phone, linkedin, github, education, experience,
	skills, relevancy_score, source_file, error, details`

// SaveCandidate upserts a candidate by ID. created_at survives replacement.
func (s *SQLiteStorage) SaveCandidate(ctx context.Context, c *models.CandidateRecord) error {
	if c.ID == "" {
		return errors.New("candidate id is required")
	}
	var details sql.NullString
	if c.Details != nil {
		b, err := json.Marshal(c.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal details: %w", err)
		}
		details = sql.NullString{String: string(b), Valid: true}
	}
	var score sql.NullFloat64
	if v, ok := c.Score(); ok {
		score = sql.NullFloat64{Float64: v, Valid: true}
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO candidates (`+candidateColumns+`, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, email = excluded.email, phone = excluded.phone,
			linkedin = excluded.linkedin, github = excluded.github,
			education = excluded.education, experience = excluded.experience,
			skills = excluded.skills, relevancy_score = excluded.relevancy_score,
			source_file = excluded.source_file, error = excluded.error,
			details = excluded.details, updated_at = excluded.updated_at`,
		c.ID, c.Name, c.Email, c.Phone, c.LinkedIn, c.GitHub, c.Education, c.Experience,
		c.Skills, score, c.SourceFile, c.Error, details, now, now,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*models.CandidateRecord, error) {
	var (
		c       models.CandidateRecord
		score   sql.NullFloat64
		details sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.LinkedIn, &c.GitHub,
		&c.Education, &c.Experience, &c.Skills, &score, &c.SourceFile, &c.Error, &details); err != nil {
		return nil, err
	}
	if score.Valid {
		c = c.WithScore(score.Float64)
	}
	if details.Valid && details.String != "" {
		var d models.Details
		if err := json.Unmarshal([]byte(details.String), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details: %w", err)
		}
		c.Details = &d
	}
	return &c, nil
}

// GetCandidate returns a candidate by ID.
func (s *SQLiteStorage) GetCandidate(ctx context.Context, id string) (*models.CandidateRecord, error) {
	c, err := scanCandidate(s.db.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCandidate removes a candidate by ID.
func (s *SQLiteStorage) DeleteCandidate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// ListCandidates returns candidates with offset and limit, newest first.
func (s *SQLiteStorage) ListCandidates(ctx context.Context, offset, limit int) ([]*models.CandidateRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 ORDER BY updated_at DESC, id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CandidateRecord
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountCandidates returns the total number of stored candidates.
func (s *SQLiteStorage) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
