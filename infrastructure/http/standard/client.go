// ABOUTME: HTTP client used to download URL-sourced documents
// ABOUTME: Retries transient host failures with exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"docextract-app-api/core/interfaces"
)

const (
	// downloadAttempts bounds retries for one document fetch
	downloadAttempts = 3

	// initialBackoff doubles per retry: 250ms, 500ms
	initialBackoff = 250 * time.Millisecond

	userAgent = "DocExtractAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface on net/http
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a client whose timeout caps each attempt
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get fetches a document, retrying 5xx and 429 responses. GET is
// idempotent so retrying is safe; the final failing response is handed
// back to the caller rather than swallowed, so the status can be
// reported against the document.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	var lastErr error
	backoff := initialBackoff
	for attempt := 1; attempt <= downloadAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(backoff):
				backoff *= 2
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if retryableStatus(resp.StatusCode) && attempt < downloadAttempts {
			resp.Body.Close()
			lastErr = fmt.Errorf("document host returned %d", resp.StatusCode)
			continue
		}

		return newHTTPResponse(resp), nil
	}

	return nil, lastErr
}

// Post sends a JSON request. POST is not retried.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return newHTTPResponse(resp), nil
}

// retryableStatus reports whether a document host response is worth
// retrying: server-side failures and throttling, never client errors
func retryableStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func newHTTPResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the named header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
