// ABOUTME: Storage interfaces for persisting extraction outcomes
// ABOUTME: Defines contracts for job persistence so results can be retrieved later

package interfaces

import (
	"context"
	"errors"

	"docextract-app-api/core/domain"
)

// ErrJobNotFound is returned by Get when a job ID has no stored outcome
var ErrJobNotFound = errors.New("job not found")

// JobStorage defines the interface for persisting extraction jobs
type JobStorage interface {
	// Save persists a successful extraction outcome under its job ID
	Save(ctx context.Context, outcome *domain.Outcome) error

	// Get retrieves a stored outcome by job ID
	Get(ctx context.Context, jobID string) (*domain.Outcome, error)
}
