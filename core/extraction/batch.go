// ABOUTME: Batch orchestrator fans single-document extraction over a bounded worker pool
// ABOUTME: Per-document failures are isolated; results keep the submission order

package extraction

import (
	"context"
	"fmt"
	"sync"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
)

// BatchOptions holds tunables for batch processing
type BatchOptions struct {
	// MaxConcurrency is the worker pool size
	MaxConcurrency int

	// MaxBatchSize is the largest accepted batch; larger batches are
	// rejected before any document is processed
	MaxBatchSize int
}

// DefaultBatchOptions returns the default batch options
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		MaxConcurrency: 4,
		MaxBatchSize:   20,
	}
}

// BatchService runs the extraction service over an ordered collection of
// documents concurrently
type BatchService struct {
	service *Service
	opts    BatchOptions
}

// NewBatchService creates a new batch service instance
func NewBatchService(service *Service, opts BatchOptions) *BatchService {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultBatchOptions().MaxConcurrency
	}
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = DefaultBatchOptions().MaxBatchSize
	}
	return &BatchService{
		service: service,
		opts:    opts,
	}
}

// ProcessBatch extracts every document in the batch and returns one outcome
// per document, in submission order. The only whole-batch failure is a batch
// exceeding the size limit; after admission, failures are per-document.
func (s *BatchService) ProcessBatch(ctx context.Context, reqs []domain.DocumentRequest) ([]*domain.Outcome, error) {
	if len(reqs) == 0 {
		return []*domain.Outcome{}, nil
	}

	if len(reqs) > s.opts.MaxBatchSize {
		return nil, apperrors.New(apperrors.KindBatchTooLarge,
			fmt.Sprintf("batch of %d documents exceeds the maximum of %d", len(reqs), s.opts.MaxBatchSize))
	}

	// Results are written by index so completion order never disturbs
	// submission order.
	outcomes := make([]*domain.Outcome, len(reqs))
	semaphore := make(chan struct{}, s.opts.MaxConcurrency)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(idx int, req domain.DocumentRequest) {
			defer wg.Done()

			// Documents not yet started when the batch context ends
			// fail with a timeout instead of blocking on admission.
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				outcomes[idx] = &domain.Outcome{
					Filename: req.Filename,
					Err:      apperrors.Wrap(apperrors.KindTimeout, "batch cancelled before processing", ctx.Err()),
				}
				return
			}

			outcomes[idx] = s.service.Process(ctx, req)

			if outcomes[idx].Err != nil {
				s.service.logWarn("Document extraction failed", map[string]interface{}{
					"filename": req.Filename,
					"error":    outcomes[idx].Err.Error(),
				})
			}
		}(i, req)
	}

	wg.Wait()

	return outcomes, nil
}

// ProcessBatchStatus extracts the batch and projects each outcome into its
// lightweight status record. len(result) == len(reqs) always holds.
func (s *BatchService) ProcessBatchStatus(ctx context.Context, reqs []domain.DocumentRequest) (domain.BatchResult, error) {
	outcomes, err := s.ProcessBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	result := make(domain.BatchResult, len(outcomes))
	for i, outcome := range outcomes {
		result[i] = projectStatus(outcome)
	}
	return result, nil
}

// projectStatus converts one outcome into its batch status record
func projectStatus(outcome *domain.Outcome) domain.DocumentStatus {
	status := domain.DocumentStatus{
		Filename: outcome.Filename,
	}
	if outcome.Succeeded() {
		status.Success = true
		status.NumPages = outcome.Document.NumPages
		status.TablesCount = len(outcome.Document.Tables)
	} else if outcome.Err != nil {
		status.Error = outcome.Err.Error()
	}
	return status
}
