// ABOUTME: Gemini summarizer adapter built on the official genai SDK
// ABOUTME: Shares the JSON summary contract with the chat-completions adapter

package gemini

import (
	"context"
	"errors"

	genai "google.golang.org/genai"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
	"docextract-app-api/infrastructure/summarizer"
)

const (
	defaultModel   = "gemini-2.5-flash"
	maxPromptChars = 15000
)

// Client implements the Summarizer interface against the Gemini API
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a new Gemini summarizer
func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if model == "" {
		model = defaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Client{client: c, model: model}, nil
}

// Summarize produces a structured summary of extracted text
func (c *Client) Summarize(ctx context.Context, text string, language string) (*domain.Summary, error) {
	prompt := summarizer.BuildPrompt(text, language, maxPromptChars)

	res, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(apperrors.KindTimeout, "summarization timed out", err)
		}
		return nil, apperrors.Wrap(apperrors.KindServiceUnavailable, "summarization service unreachable", err)
	}

	return summarizer.DecodeSummary(res.Text())
}
