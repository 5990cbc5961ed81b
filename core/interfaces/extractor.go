// ABOUTME: Collaborator interfaces for the document-understanding engine and the AI summarizer
// ABOUTME: Both are opaque external capabilities consumed by the extraction orchestrator

package interfaces

import (
	"context"

	"docextract-app-api/core/domain"
)

// ExtractOptions are the options passed to the extraction engine.
type ExtractOptions struct {
	// ExtractImages controls whether the engine extracts embedded images
	ExtractImages bool

	// OCRLanguage is the OCR language hint (e.g., "en")
	OCRLanguage string
}

// Extractor is the external document-understanding engine.
// Given a document payload it returns the structured document model.
type Extractor interface {
	// Extract converts a document payload into a structured Document.
	// The returned document's tables carry raw grids; rendering is the
	// caller's responsibility.
	Extract(ctx context.Context, payload []byte, filename string, opts ExtractOptions) (*domain.Document, error)
}

// Summarizer is the external LLM summarization service.
type Summarizer interface {
	// Summarize produces a structured summary of extracted text in the
	// requested language.
	Summarize(ctx context.Context, text string, language string) (*domain.Summary, error)
}
