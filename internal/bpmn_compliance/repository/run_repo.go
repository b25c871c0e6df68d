package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("run not found")

type Operation string

const (
	OperationValidate Operation = "validate"
	OperationImprove  Operation = "improve"
)

// Run is one validate or improve call as recorded in the run log.
type Run struct {
	ID           string          `json:"id"`
	JobID        string          `json:"job_id"`
	Operation    Operation       `json:"operation"`
	InitialScore float64         `json:"initial_score"`
	FinalScore   float64         `json:"final_score"`
	Status       string          `json:"status"`
	Success      bool            `json:"success"`
	Iterations   int             `json:"iterations"`
	VersionID    string          `json:"version_id,omitempty"`
	Summary      json.RawMessage `json:"summary,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

const schema = `
	CREATE TABLE IF NOT EXISTS compliance_runs (
		id            UUID PRIMARY KEY,
		job_id        TEXT NOT NULL,
		operation     TEXT NOT NULL,
		initial_score DOUBLE PRECISION NOT NULL,
		final_score   DOUBLE PRECISION NOT NULL,
		status        TEXT NOT NULL,
		success       BOOLEAN NOT NULL,
		iterations    INTEGER NOT NULL DEFAULT 0,
		version_id    TEXT,
		summary       JSONB,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS compliance_runs_job_idx ON compliance_runs (job_id, created_at DESC);
`

// RunRepository handles PostgreSQL operations for the run log
type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create run schema: %w", err)
	}
	return nil
}

// Create inserts run, assigning an id when empty, and fills CreatedAt from the database.
func (r *RunRepository) Create(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `
		INSERT INTO compliance_runs (
			id, job_id, operation, initial_score, final_score,
			status, success, iterations, version_id, summary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	var versionID sql.NullString
	if run.VersionID != "" {
		versionID = sql.NullString{String: run.VersionID, Valid: true}
	}
	var summary []byte
	if len(run.Summary) > 0 {
		summary = run.Summary
	}

	err := r.db.QueryRowContext(ctx, query,
		run.ID,
		run.JobID,
		string(run.Operation),
		run.InitialScore,
		run.FinalScore,
		run.Status,
		run.Success,
		run.Iterations,
		versionID,
		summary,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id string) (*Run, error) {
	// ids are UUIDs; anything else cannot name a stored run
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrRunNotFound
	}
	query := `
		SELECT id, job_id, operation, initial_score, final_score,
		       status, success, iterations, version_id, summary, created_at
		FROM compliance_runs
		WHERE id = $1
	`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListByJob returns the newest runs of a job first.
func (r *RunRepository) ListByJob(ctx context.Context, jobID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, job_id, operation, initial_score, final_score,
		       status, success, iterations, version_id, summary, created_at
		FROM compliance_runs
		WHERE job_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, jobID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*Run, error) {
	var run Run
	var op string
	var versionID sql.NullString
	var summary []byte
	if err := s.Scan(
		&run.ID,
		&run.JobID,
		&op,
		&run.InitialScore,
		&run.FinalScore,
		&run.Status,
		&run.Success,
		&run.Iterations,
		&versionID,
		&summary,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}
	run.Operation = Operation(op)
	run.VersionID = versionID.String
	if len(summary) > 0 {
		run.Summary = json.RawMessage(summary)
	}
	return &run, nil
}
