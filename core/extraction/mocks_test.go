package extraction

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"docextract-app-api/core/domain"
	"docextract-app-api/core/interfaces"
)

// mockExtractor is a mock implementation of the Extractor interface
type mockExtractor struct {
	extractFunc func(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error)
}

func (m *mockExtractor) Extract(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, payload, filename, opts)
	}
	return &domain.Document{NumPages: 1}, nil
}

// mockSummarizer is a mock implementation of the Summarizer interface
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, text string, language string) (*domain.Summary, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string, language string) (*domain.Summary, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, text, language)
	}
	return &domain.Summary{Summary: "mock summary"}, nil
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
	gets  int
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if data, ok := m.items[key]; ok {
		return data, nil
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger records log calls for assertions
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

// mockJobStorage is a mock implementation of the JobStorage interface
type mockJobStorage struct {
	mu       sync.Mutex
	saved    map[string]*domain.Outcome
	saveErr  error
}

func newMockJobStorage() *mockJobStorage {
	return &mockJobStorage{saved: make(map[string]*domain.Outcome)}
}

func (m *mockJobStorage) Save(ctx context.Context, outcome *domain.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[outcome.JobID] = outcome
	return nil
}

func (m *mockJobStorage) Get(ctx context.Context, jobID string) (*domain.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[jobID], nil
}
