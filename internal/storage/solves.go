package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Facelets   string
	Solution   string
	MoveCount  int
	DurationMs int64
	Mode       string // "search" or "best"
}

// SolveRepository provides CRUD operations for the solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(facelets, solution string, moveCount int, duration time.Duration, mode string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, facelets, solution, move_count, duration_ms, mode)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), facelets, solution, moveCount, duration.Milliseconds(), mode)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. It returns nil when no solve matches.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms, mode
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Facelets, &s.Solution,
		&s.MoveCount, &s.DurationMs, &s.Mode,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms, mode
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Facelets, &s.Solution,
			&s.MoveCount, &s.DurationMs, &s.Mode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, nil
}

// Delete removes a solve from the history.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
