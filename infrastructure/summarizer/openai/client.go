// ABOUTME: Chat-completions summarizer adapter producing structured document summaries
// ABOUTME: Prompts for strict JSON output and tolerates code-fenced model replies

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
	"docextract-app-api/infrastructure/summarizer"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	// Content beyond this is truncated before prompting, for API limits.
	maxPromptChars = 15000
)

// Client implements the Summarizer interface against a chat-completions API
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Option configures the client
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests and proxies
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithModel overrides the model name
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// NewClient creates a new chat-completions summarizer
func NewClient(apiKey string, timeout time.Duration, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarize produces a structured summary of extracted text
func (c *Client) Summarize(ctx context.Context, text string, language string) (*domain.Summary, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: summarizer.BuildPrompt(text, language, maxPromptChars)},
		},
		MaxTokens:   2048,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(apperrors.KindTimeout, "summarization timed out", err)
		}
		return nil, apperrors.Wrap(apperrors.KindServiceUnavailable, "summarization service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.KindServiceUnavailable,
			fmt.Sprintf("summarization service returned %d", resp.StatusCode))
	}

	var wire chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, apperrors.Wrap(apperrors.KindServiceUnavailable, "malformed summarization response", err)
	}
	if len(wire.Choices) == 0 {
		return nil, apperrors.New(apperrors.KindServiceUnavailable, "summarization response had no choices")
	}

	return summarizer.DecodeSummary(wire.Choices[0].Message.Content)
}
