// ABOUTME: Extraction service drives one document through extraction and optional summarization
// ABOUTME: Owns the per-document error boundary; failures become outcome data, never faults

package extraction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
	"docextract-app-api/core/interfaces"
	"docextract-app-api/core/languages"
	"docextract-app-api/core/tables"
	"github.com/google/uuid"
)

// ServiceOptions holds tunables for the extraction service
type ServiceOptions struct {
	// PerDocumentTimeout bounds each collaborator call for one document
	PerDocumentTimeout time.Duration

	// MaxFileSizeMB is the largest accepted payload in megabytes
	MaxFileSizeMB int

	// CacheTTL is how long extraction results are cached
	CacheTTL time.Duration
}

// DefaultServiceOptions returns the default service options
func DefaultServiceOptions() ServiceOptions {
	return ServiceOptions{
		PerDocumentTimeout: 120 * time.Second,
		MaxFileSizeMB:      50,
		CacheTTL:           1 * time.Hour,
	}
}

// Service handles single-document extraction orchestration
type Service struct {
	deps       interfaces.Dependencies
	extractor  interfaces.Extractor
	summarizer interfaces.Summarizer
	storage    interfaces.JobStorage
	opts       ServiceOptions
}

// NewService creates a new extraction service instance
func NewService(deps interfaces.Dependencies, extractor interfaces.Extractor, opts ServiceOptions) *Service {
	if opts.PerDocumentTimeout <= 0 {
		opts.PerDocumentTimeout = DefaultServiceOptions().PerDocumentTimeout
	}
	if opts.MaxFileSizeMB <= 0 {
		opts.MaxFileSizeMB = DefaultServiceOptions().MaxFileSizeMB
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultServiceOptions().CacheTTL
	}
	return &Service{
		deps:      deps,
		extractor: extractor,
		opts:      opts,
	}
}

// SetSummarizer sets the optional summarization collaborator
func (s *Service) SetSummarizer(summarizer interfaces.Summarizer) {
	s.summarizer = summarizer
}

// SetJobStorage sets the optional job storage backend
func (s *Service) SetJobStorage(storage interfaces.JobStorage) {
	s.storage = storage
}

// Process drives one document through extraction and optional summarization.
// All failures are captured into the outcome; Process never panics or
// propagates an error to the caller.
func (s *Service) Process(ctx context.Context, req domain.DocumentRequest) *domain.Outcome {
	outcome := &domain.Outcome{Filename: req.Filename}

	payload, err := s.resolvePayload(ctx, req)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	doc, err := s.extract(ctx, payload, req)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Document = doc

	if req.Options.Summarize && s.summarizer != nil {
		// A summarization failure downgrades gracefully: the outcome
		// still reports extraction success with the summary absent.
		summary, err := s.summarize(ctx, doc.Text, req.Options.Language)
		if err != nil {
			s.logWarn("Summarization failed", map[string]interface{}{
				"filename": req.Filename,
				"error":    err.Error(),
			})
		} else {
			outcome.Summary = summary
		}
	}

	outcome.JobID = newJobID()
	if s.storage != nil {
		if err := s.storage.Save(ctx, outcome); err != nil {
			s.logWarn("Failed to persist job", map[string]interface{}{
				"job_id": outcome.JobID,
				"error":  err.Error(),
			})
		}
	}

	return outcome
}

// resolvePayload resolves the request to exactly one readable byte payload
func (s *Service) resolvePayload(ctx context.Context, req domain.DocumentRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "invalid document request", err)
	}

	if !languages.IsSupported(req.Options.Language) {
		return nil, apperrors.New(apperrors.KindInvalidInput,
			fmt.Sprintf("unsupported summary language %q", req.Options.Language))
	}

	payload := req.Content
	if req.URL != "" {
		fetched, err := s.fetchURL(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		payload = fetched
	}

	if len(payload) == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "document payload is empty")
	}

	if maxBytes := s.opts.MaxFileSizeMB * 1024 * 1024; len(payload) > maxBytes {
		return nil, apperrors.New(apperrors.KindInvalidInput,
			fmt.Sprintf("file too large, maximum size is %dMB", s.opts.MaxFileSizeMB))
	}

	return payload, nil
}

// fetchURL downloads a document payload from a URL
func (s *Service) fetchURL(ctx context.Context, url string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, apperrors.New(apperrors.KindInvalidInput, "HTTP client not configured for URL fetch")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "failed to download document", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, apperrors.New(apperrors.KindInvalidInput,
			fmt.Sprintf("document URL returned status %d", resp.StatusCode()))
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "failed to read document body", err)
	}

	return body, nil
}

// extract invokes the extraction engine and post-processes the document
func (s *Service) extract(ctx context.Context, payload []byte, req domain.DocumentRequest) (*domain.Document, error) {
	if cached := s.getCachedDocument(ctx, payload, req.Options); cached != nil {
		return cached, nil
	}

	extractCtx, cancel := context.WithTimeout(ctx, s.opts.PerDocumentTimeout)
	defer cancel()

	doc, err := s.extractor.Extract(extractCtx, payload, req.Filename, interfaces.ExtractOptions{
		ExtractImages: req.Options.ExtractImages,
		OCRLanguage:   req.Options.OCRLanguage,
	})
	if err != nil {
		return nil, classifyExtractionError(extractCtx, err)
	}

	// Image extraction was suppressed; never report stale counts.
	if !req.Options.ExtractImages {
		doc.ImagesExtracted = 0
	}

	// Populate derived renderings. A malformed grid is normalized by
	// padding, it never fails the outcome.
	for i := range doc.Tables {
		doc.Tables[i].Index = i
		doc.Tables[i].Grid = tables.Normalize(doc.Tables[i].Grid)
		doc.Tables[i].Markdown, doc.Tables[i].CSV = tables.Render(doc.Tables[i].Grid)
	}

	_ = s.cacheDocument(ctx, payload, req.Options, doc)

	return doc, nil
}

// summarize invokes the summarization collaborator with its own timeout
func (s *Service) summarize(ctx context.Context, text string, language string) (*domain.Summary, error) {
	summarizeCtx, cancel := context.WithTimeout(ctx, s.opts.PerDocumentTimeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(summarizeCtx, text, language)
	if err != nil {
		if summarizeCtx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(apperrors.KindTimeout, "summarization timed out", err)
		}
		return nil, err
	}
	return summary, nil
}

// classifyExtractionError converts a collaborator failure into a classified error
func classifyExtractionError(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.Wrap(apperrors.KindTimeout, "extraction timed out", err)
	}
	if kind := apperrors.KindOf(err); kind != "" {
		return err
	}
	return apperrors.Wrap(apperrors.KindExtractionFailed, "extraction engine failed", err)
}

// cacheKey derives the cache key from the payload digest and options
func cacheKey(payload []byte, opts domain.DocumentOptions) string {
	h := sha256.New()
	h.Write(payload)
	fmt.Fprintf(h, "|images=%t|ocr=%s", opts.ExtractImages, opts.OCRLanguage)
	return "extract:" + hex.EncodeToString(h.Sum(nil))
}

// getCachedDocument retrieves an extraction result from cache
func (s *Service) getCachedDocument(ctx context.Context, payload []byte, opts domain.DocumentOptions) *domain.Document {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(payload, opts))
	if err != nil || data == nil {
		return nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return &doc
}

// cacheDocument stores an extraction result in cache
func (s *Service) cacheDocument(ctx context.Context, payload []byte, opts domain.DocumentOptions, doc *domain.Document) error {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, cacheKey(payload, opts), data, s.opts.CacheTTL)
}

// logWarn logs a warning when a logger is configured
func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

// newJobID generates a short job identifier
func newJobID() string {
	return uuid.New().String()[:8]
}
