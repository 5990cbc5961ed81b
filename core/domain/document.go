// ABOUTME: Document domain models represent the structured result of one extraction
// ABOUTME: Produced by the extraction engine and read-only afterwards

package domain

import "errors"

// DocumentOptions carries per-request extraction options.
type DocumentOptions struct {
	// ExtractImages controls whether image extraction is requested from the engine
	ExtractImages bool

	// Summarize requests an AI summary of the extracted text
	Summarize bool

	// Language is the target language for the summary (e.g., "en")
	Language string

	// OCRLanguage is the OCR language hint passed to the extraction engine
	OCRLanguage string
}

// DocumentRequest identifies one input document.
// Exactly one of Content or URL must be set.
type DocumentRequest struct {
	// Filename is the original name of the document
	Filename string

	// Content is the raw document payload
	Content []byte

	// URL is an alternative source location to fetch the payload from
	URL string

	// Options are the per-request extraction options
	Options DocumentOptions
}

// Validate checks that the request resolves to exactly one payload source.
func (r *DocumentRequest) Validate() error {
	if r.Filename == "" {
		return errors.New("filename cannot be empty")
	}
	if len(r.Content) == 0 && r.URL == "" {
		return errors.New("either content or url must be provided")
	}
	if len(r.Content) > 0 && r.URL != "" {
		return errors.New("content and url are mutually exclusive")
	}
	return nil
}

// Document is the structured extraction result for one document.
type Document struct {
	// NumPages is the page count reported by the extraction engine
	NumPages int

	// Markdown is the full markdown rendering of the document
	Markdown string

	// Text is the full plain-text rendering of the document
	Text string

	// Tables are the detected tables in document order
	Tables []Table

	// ImagesExtracted is the number of images extracted from the document
	ImagesExtracted int

	// Title is the document title, if the engine detected one
	Title string

	// Headings are the detected headings in document order
	Headings []Heading
}

// Table is one detected table.
// Markdown and CSV are derived from Grid and regenerable from it.
type Table struct {
	// Index is the 0-based position of the table in the document
	Index int

	// Page is the 1-based source page number
	Page int

	// Grid holds the cell values as rows of columns
	Grid [][]string

	// Markdown is the pipe-delimited rendering of Grid
	Markdown string

	// CSV is the RFC-4180 rendering of Grid
	CSV string
}

// Heading is one detected heading.
type Heading struct {
	// Level is the heading level (1 = top level)
	Level int

	// Text is the heading text
	Text string

	// Page is the 1-based page the heading appears on
	Page int
}
