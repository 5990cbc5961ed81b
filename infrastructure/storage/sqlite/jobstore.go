// ABOUTME: SQLite-based job store persisting extraction outcomes by job ID
// ABOUTME: Provides file-based persistence so results survive application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docextract-app-api/core/domain"
	"docextract-app-api/core/interfaces"
	_ "github.com/mattn/go-sqlite3"
)

// ErrJobNotFound is returned when a job ID has no stored outcome
var ErrJobNotFound = interfaces.ErrJobNotFound

// JobStore implements the JobStorage interface using SQLite
type JobStore struct {
	db       *sql.DB
	filePath string
}

// storedOutcome is the persisted projection of a successful outcome
type storedOutcome struct {
	Filename string           `json:"filename"`
	JobID    string           `json:"job_id"`
	Document *domain.Document `json:"document"`
	Summary  *domain.Summary  `json:"summary,omitempty"`
}

// NewJobStore creates a new SQLite job store
func NewJobStore(filePath string) (*JobStore, error) {
	if filePath == "" {
		filePath = "jobs.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &JobStore{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the jobs table if it doesn't exist
func (s *JobStore) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS jobs (
			job_id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			outcome BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save persists a successful extraction outcome under its job ID
func (s *JobStore) Save(ctx context.Context, outcome *domain.Outcome) error {
	if outcome == nil || outcome.JobID == "" {
		return errors.New("outcome must carry a job ID")
	}
	if !outcome.Succeeded() {
		return errors.New("only successful outcomes are persisted")
	}

	data, err := json.Marshal(storedOutcome{
		Filename: outcome.Filename,
		JobID:    outcome.JobID,
		Document: outcome.Document,
		Summary:  outcome.Summary,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize outcome: %w", err)
	}

	query := `INSERT OR REPLACE INTO jobs (job_id, filename, outcome, created_at) VALUES (?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, outcome.JobID, outcome.Filename, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return nil
}

// Get retrieves a stored outcome by job ID
func (s *JobStore) Get(ctx context.Context, jobID string) (*domain.Outcome, error) {
	if jobID == "" {
		return nil, errors.New("job ID cannot be empty")
	}

	var data []byte
	query := "SELECT outcome FROM jobs WHERE job_id = ?"
	err := s.db.QueryRowContext(ctx, query, jobID).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var stored storedOutcome
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to deserialize outcome: %w", err)
	}

	return &domain.Outcome{
		Filename: stored.Filename,
		JobID:    stored.JobID,
		Document: stored.Document,
		Summary:  stored.Summary,
	}, nil
}

// Close closes the database connection
func (s *JobStore) Close() error {
	return s.db.Close()
}
