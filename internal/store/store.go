// Package store persists completed analyses to PostgreSQL so past results
// can be retrieved and compared across resume revisions.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Record is a persisted analysis.
type Record struct {
	ID         uuid.UUID       `json:"id"`
	TargetRole string          `json:"target_role"`
	MatchScore int             `json:"match_score"`
	Envelope   json.RawMessage `json:"envelope"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Summary is a lightweight view of a record for listings.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	TargetRole string    `json:"target_role"`
	MatchScore int       `json:"match_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			target_role TEXT NOT NULL,
			match_score INTEGER NOT NULL,
			envelope JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// SaveAnalysis stores a result envelope under the given ID.
func (s *Store) SaveAnalysis(ctx context.Context, id uuid.UUID, targetRole string, matchScore int, envelope any) error {
	jsonBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, target_role, match_score, envelope)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET target_role = $2, match_score = $3, envelope = $4, created_at = NOW()`,
		id, targetRole, matchScore, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", id, err)
	}
	return nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no record
// exists.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*Record, error) {
	var rec Record
	err := s.pool.QueryRow(ctx,
		`SELECT id, target_role, match_score, envelope, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.TargetRole, &rec.MatchScore, &rec.Envelope, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &rec, nil
}

// ListRecent retrieves the most recent analyses, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, target_role, match_score, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.TargetRole, &sum.MatchScore, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// DeleteAnalysis removes a stored analysis.
func (s *Store) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
