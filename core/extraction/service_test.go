package extraction

import (
	"context"
	"errors"
	"testing"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
	"docextract-app-api/core/interfaces"
)

func testService(extractor interfaces.Extractor) *Service {
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	return NewService(deps, extractor, DefaultServiceOptions())
}

func pdfRequest(content string) domain.DocumentRequest {
	return domain.DocumentRequest{
		Filename: "doc.pdf",
		Content:  []byte(content),
	}
}

func TestProcess_NoPayload(t *testing.T) {
	service := testService(&mockExtractor{})

	outcome := service.Process(context.Background(), domain.DocumentRequest{Filename: "doc.pdf"})

	if outcome.Succeeded() {
		t.Error("Process should fail when neither content nor URL is provided")
	}
	if apperrors.KindOf(outcome.Err) != apperrors.KindInvalidInput {
		t.Errorf("error kind = %v, want invalid_input", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_ContentAndURLAreExclusive(t *testing.T) {
	service := testService(&mockExtractor{})

	outcome := service.Process(context.Background(), domain.DocumentRequest{
		Filename: "doc.pdf",
		Content:  []byte("data"),
		URL:      "https://example.com/doc.pdf",
	})

	if apperrors.KindOf(outcome.Err) != apperrors.KindInvalidInput {
		t.Errorf("error kind = %v, want invalid_input", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_UnsupportedLanguage(t *testing.T) {
	service := testService(&mockExtractor{})

	req := pdfRequest("data")
	req.Options.Summarize = true
	req.Options.Language = "xx"
	outcome := service.Process(context.Background(), req)

	if outcome.Succeeded() {
		t.Error("Process should fail for an unsupported summary language")
	}
	if apperrors.KindOf(outcome.Err) != apperrors.KindInvalidInput {
		t.Errorf("error kind = %v, want invalid_input", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_PayloadTooLarge(t *testing.T) {
	opts := DefaultServiceOptions()
	opts.MaxFileSizeMB = 1
	service := NewService(interfaces.Dependencies{}, &mockExtractor{}, opts)

	outcome := service.Process(context.Background(), pdfRequest(string(make([]byte, 2*1024*1024))))

	if apperrors.KindOf(outcome.Err) != apperrors.KindInvalidInput {
		t.Errorf("error kind = %v, want invalid_input", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_FetchesURLPayload(t *testing.T) {
	var extracted []byte
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			extracted = payload
			return &domain.Document{NumPages: 3}, nil
		},
	}
	deps := interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 200, body: "pdf bytes"}, nil
			},
		},
	}
	service := NewService(deps, extractor, DefaultServiceOptions())

	outcome := service.Process(context.Background(), domain.DocumentRequest{
		Filename: "doc.pdf",
		URL:      "https://example.com/doc.pdf",
	})

	if !outcome.Succeeded() {
		t.Fatalf("Process failed: %v", outcome.Err)
	}
	if string(extracted) != "pdf bytes" {
		t.Errorf("extractor received %q, want fetched payload", extracted)
	}
}

func TestProcess_URLFetchNon200(t *testing.T) {
	deps := interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 404}, nil
			},
		},
	}
	service := NewService(deps, &mockExtractor{}, DefaultServiceOptions())

	outcome := service.Process(context.Background(), domain.DocumentRequest{
		Filename: "doc.pdf",
		URL:      "https://example.com/missing.pdf",
	})

	if apperrors.KindOf(outcome.Err) != apperrors.KindInvalidInput {
		t.Errorf("error kind = %v, want invalid_input", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_ExtractionFailureIsCaptured(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			return nil, errors.New("engine exploded")
		},
	}
	service := testService(extractor)

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if outcome.Succeeded() {
		t.Error("Process should capture extraction failure")
	}
	if apperrors.KindOf(outcome.Err) != apperrors.KindExtractionFailed {
		t.Errorf("error kind = %v, want extraction_failed", apperrors.KindOf(outcome.Err))
	}
	if outcome.Document != nil {
		t.Error("failed outcome should not carry a document")
	}
}

func TestProcess_ClassifiedEngineErrorKeepsKind(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			return nil, apperrors.New(apperrors.KindUnsupportedFormat, "no idea what this is")
		},
	}
	service := testService(extractor)

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if apperrors.KindOf(outcome.Err) != apperrors.KindUnsupportedFormat {
		t.Errorf("error kind = %v, want unsupported_format", apperrors.KindOf(outcome.Err))
	}
}

func TestProcess_SuppressedImagesReportZero(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			return &domain.Document{NumPages: 1, ImagesExtracted: 7}, nil
		},
	}
	service := testService(extractor)

	req := pdfRequest("data")
	req.Options.ExtractImages = false
	outcome := service.Process(context.Background(), req)

	if outcome.Document.ImagesExtracted != 0 {
		t.Errorf("ImagesExtracted = %d, want 0 when extraction is suppressed", outcome.Document.ImagesExtracted)
	}
}

func TestProcess_RendersTables(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			return &domain.Document{
				NumPages: 1,
				Tables: []domain.Table{
					{Page: 1, Grid: [][]string{{"a", "b"}, {"c", "d"}}},
					{Page: 2, Grid: [][]string{{"x", "y"}, {"z"}}},
				},
			}, nil
		},
	}
	service := testService(extractor)

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if !outcome.Succeeded() {
		t.Fatalf("Process failed: %v", outcome.Err)
	}
	for i, table := range outcome.Document.Tables {
		if table.Index != i {
			t.Errorf("table %d has index %d", i, table.Index)
		}
		if table.Markdown == "" || table.CSV == "" {
			t.Errorf("table %d is missing derived renderings", i)
		}
	}
	// The ragged grid is padded, never rejected.
	secondGrid := outcome.Document.Tables[1].Grid
	if len(secondGrid[1]) != 2 {
		t.Errorf("ragged row should be padded to 2 cells, got %d", len(secondGrid[1]))
	}
}

func TestProcess_SummarizationSuccess(t *testing.T) {
	service := testService(&mockExtractor{})
	service.SetSummarizer(&mockSummarizer{
		summarizeFunc: func(ctx context.Context, text string, language string) (*domain.Summary, error) {
			if language != "fr" {
				t.Errorf("summarizer called with language %q, want fr", language)
			}
			return &domain.Summary{Summary: "résumé"}, nil
		},
	})

	req := pdfRequest("data")
	req.Options.Summarize = true
	req.Options.Language = "fr"
	outcome := service.Process(context.Background(), req)

	if outcome.Summary == nil || outcome.Summary.Summary != "résumé" {
		t.Errorf("outcome summary = %+v, want populated summary", outcome.Summary)
	}
}

func TestProcess_SummarizationFailureIsNonFatal(t *testing.T) {
	logger := &mockLogger{}
	deps := interfaces.Dependencies{Logger: logger}
	service := NewService(deps, &mockExtractor{}, DefaultServiceOptions())
	service.SetSummarizer(&mockSummarizer{
		summarizeFunc: func(ctx context.Context, text string, language string) (*domain.Summary, error) {
			return nil, errors.New("llm unavailable")
		},
	})

	req := pdfRequest("data")
	req.Options.Summarize = true
	outcome := service.Process(context.Background(), req)

	if !outcome.Succeeded() {
		t.Errorf("summarization failure must not fail the outcome: %v", outcome.Err)
	}
	if outcome.Summary != nil {
		t.Error("summary should be absent after summarization failure")
	}
	if len(logger.warnings) == 0 {
		t.Error("summarization failure should be logged as a warning")
	}
}

func TestProcess_NoSummaryWhenNotRequested(t *testing.T) {
	called := false
	service := testService(&mockExtractor{})
	service.SetSummarizer(&mockSummarizer{
		summarizeFunc: func(ctx context.Context, text string, language string) (*domain.Summary, error) {
			called = true
			return &domain.Summary{}, nil
		},
	})

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if called {
		t.Error("summarizer should not be invoked when not requested")
	}
	if outcome.Summary != nil {
		t.Error("summary should be absent when not requested")
	}
}

func TestProcess_AssignsJobIDAndPersists(t *testing.T) {
	storage := newMockJobStorage()
	service := testService(&mockExtractor{})
	service.SetJobStorage(storage)

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if len(outcome.JobID) != 8 {
		t.Errorf("job ID = %q, want 8 characters", outcome.JobID)
	}
	if storage.saved[outcome.JobID] == nil {
		t.Error("outcome should be persisted under its job ID")
	}
}

func TestProcess_StorageFailureIsNonFatal(t *testing.T) {
	logger := &mockLogger{}
	storage := newMockJobStorage()
	storage.saveErr = errors.New("disk full")
	service := NewService(interfaces.Dependencies{Logger: logger}, &mockExtractor{}, DefaultServiceOptions())
	service.SetJobStorage(storage)

	outcome := service.Process(context.Background(), pdfRequest("data"))

	if !outcome.Succeeded() {
		t.Errorf("storage failure must not fail the outcome: %v", outcome.Err)
	}
	if len(logger.warnings) == 0 {
		t.Error("storage failure should be logged as a warning")
	}
}

func TestProcess_UsesCachedDocument(t *testing.T) {
	calls := 0
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			calls++
			return &domain.Document{NumPages: 5}, nil
		},
	}
	cache := newMockCache()
	service := NewService(interfaces.Dependencies{Cache: cache}, extractor, DefaultServiceOptions())

	first := service.Process(context.Background(), pdfRequest("same payload"))
	second := service.Process(context.Background(), pdfRequest("same payload"))

	if calls != 1 {
		t.Errorf("extractor called %d times, want 1 (second call served from cache)", calls)
	}
	if first.Document.NumPages != second.Document.NumPages {
		t.Error("cached document should match the original extraction")
	}
}

func TestProcess_CacheKeyedByOptions(t *testing.T) {
	calls := 0
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
			calls++
			return &domain.Document{NumPages: 1}, nil
		},
	}
	cache := newMockCache()
	service := NewService(interfaces.Dependencies{Cache: cache}, extractor, DefaultServiceOptions())

	req := pdfRequest("payload")
	req.Options.ExtractImages = true
	service.Process(context.Background(), req)

	req.Options.ExtractImages = false
	service.Process(context.Background(), req)

	if calls != 2 {
		t.Errorf("extractor called %d times, want 2 (different options must not share cache entries)", calls)
	}
}
