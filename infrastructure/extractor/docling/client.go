// ABOUTME: HTTP adapter for the docling document-understanding engine
// ABOUTME: Translates engine responses and transport failures into the core contracts

package docling

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
	"docextract-app-api/core/interfaces"
)

// Client implements the Extractor interface against a docling-style HTTP engine
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new extraction engine client
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("extractor base URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// extractRequest is the engine's wire request
type extractRequest struct {
	Filename      string `json:"filename"`
	Content       string `json:"content"` // base64
	ExtractImages bool   `json:"extract_images"`
	OCRLanguage   string `json:"ocr_language,omitempty"`
}

// extractResponse is the engine's wire response
type extractResponse struct {
	NumPages        int           `json:"num_pages"`
	Markdown        string        `json:"markdown"`
	Text            string        `json:"text"`
	Tables          []wireTable   `json:"tables"`
	ImagesExtracted int           `json:"images_extracted"`
	Title           string        `json:"title,omitempty"`
	Headings        []wireHeading `json:"headings"`
}

type wireTable struct {
	Page int        `json:"page"`
	Grid [][]string `json:"grid"`
}

type wireHeading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// engineError is the engine's wire error shape
type engineError struct {
	Detail string `json:"detail"`
}

// Extract converts a document payload into a structured Document
func (c *Client) Extract(ctx context.Context, payload []byte, filename string, opts interfaces.ExtractOptions) (*domain.Document, error) {
	body, err := json.Marshal(extractRequest{
		Filename:      filename,
		Content:       base64.StdEncoding.EncodeToString(payload),
		ExtractImages: opts.ExtractImages,
		OCRLanguage:   opts.OCRLanguage,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(apperrors.KindTimeout, "extraction engine timed out", err)
		}
		return nil, apperrors.Wrap(apperrors.KindExtractionFailed, "extraction engine unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp)
	}

	var wire extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, apperrors.Wrap(apperrors.KindExtractionFailed, "malformed engine response", err)
	}

	return toDomain(&wire), nil
}

// classifyStatus maps engine HTTP failures onto the error taxonomy
func classifyStatus(resp *http.Response) error {
	detail := readDetail(resp.Body)
	msg := fmt.Sprintf("engine returned %d", resp.StatusCode)
	if detail != "" {
		msg = detail
	}

	switch resp.StatusCode {
	case http.StatusUnsupportedMediaType:
		return apperrors.New(apperrors.KindUnsupportedFormat, msg)
	case http.StatusUnprocessableEntity:
		return apperrors.New(apperrors.KindCorrupt, msg)
	case http.StatusGatewayTimeout:
		return apperrors.New(apperrors.KindTimeout, msg)
	default:
		return apperrors.New(apperrors.KindExtractionFailed, msg)
	}
}

// readDetail extracts the engine's error detail, tolerating non-JSON bodies
func readDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var wire engineError
	if err := json.Unmarshal(data, &wire); err != nil {
		return ""
	}
	return wire.Detail
}

// toDomain converts the wire response into the domain model
func toDomain(wire *extractResponse) *domain.Document {
	doc := &domain.Document{
		NumPages:        wire.NumPages,
		Markdown:        wire.Markdown,
		Text:            wire.Text,
		ImagesExtracted: wire.ImagesExtracted,
		Title:           wire.Title,
		Tables:          make([]domain.Table, 0, len(wire.Tables)),
		Headings:        make([]domain.Heading, 0, len(wire.Headings)),
	}

	for i, t := range wire.Tables {
		doc.Tables = append(doc.Tables, domain.Table{
			Index: i,
			Page:  t.Page,
			Grid:  t.Grid,
		})
	}
	for _, h := range wire.Headings {
		doc.Headings = append(doc.Headings, domain.Heading{
			Level: h.Level,
			Text:  h.Text,
			Page:  h.Page,
		})
	}

	return doc
}
