// ABOUTME: Extraction handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for single, batch, and archive extraction

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"docextract-app-api/api/dto/mappers"
	"docextract-app-api/api/dto/requests"
	"docextract-app-api/api/dto/responses"
	"docextract-app-api/core/archive"
	"docextract-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ExtractionService interface defines the methods needed from the extraction service
type ExtractionService interface {
	Process(ctx context.Context, req domain.DocumentRequest) *domain.Outcome
}

// BatchExtractionService interface defines the methods needed from the batch service
type BatchExtractionService interface {
	ProcessBatch(ctx context.Context, reqs []domain.DocumentRequest) ([]*domain.Outcome, error)
}

// ExtractHandler handles extraction-related HTTP requests
type ExtractHandler struct {
	extraction    ExtractionService
	batch         BatchExtractionService
	defaultFormat domain.OutputFormat
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extraction ExtractionService, batch BatchExtractionService, defaultFormat domain.OutputFormat) *ExtractHandler {
	if defaultFormat == "" {
		defaultFormat = domain.FormatMarkdown
	}
	return &ExtractHandler{
		extraction:    extraction,
		batch:         batch,
		defaultFormat: defaultFormat,
	}
}

// RegisterRoutes registers all extraction-related routes
func (h *ExtractHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractDocument",
		Method:      http.MethodPost,
		Path:        "/extract",
		Summary:     "Extract a single document",
		Description: "Extracts text, tables, and structure from one document",
		Tags:        []string{"Extraction"},
	}, h.ExtractDocument)

	huma.Register(api, huma.Operation{
		OperationID: "extractBatch",
		Method:      http.MethodPost,
		Path:        "/extract/batch",
		Summary:     "Extract multiple documents",
		Description: "Extracts a batch of documents concurrently with per-document fault isolation",
		Tags:        []string{"Extraction"},
	}, h.ExtractBatch)

	huma.Register(api, huma.Operation{
		OperationID: "extractArchive",
		Method:      http.MethodPost,
		Path:        "/extract/archive",
		Summary:     "Extract multiple documents as a zip archive",
		Description: "Extracts a batch of documents and returns the rendered results as a zip download",
		Tags:        []string{"Extraction"},
	}, h.ExtractArchive)
}

// ExtractDocumentInput defines the input for the ExtractDocument operation
type ExtractDocumentInput struct {
	Body requests.ExtractDocumentRequest
}

// ExtractDocumentOutput defines the output for the ExtractDocument operation
type ExtractDocumentOutput struct {
	Body responses.DocumentResponse
}

// ExtractDocument handles the POST /extract endpoint
func (h *ExtractHandler) ExtractDocument(ctx context.Context, input *ExtractDocumentInput) (*ExtractDocumentOutput, error) {
	input.Body.ApplyDefaults()

	outcome := h.extraction.Process(ctx, mappers.ToDocumentRequest(&input.Body))
	if !outcome.Succeeded() {
		return nil, toHumaError(outcome.Err)
	}

	return &ExtractDocumentOutput{
		Body: *mappers.ToDocumentResponse(outcome),
	}, nil
}

// ExtractBatchInput defines the input for the ExtractBatch operation
type ExtractBatchInput struct {
	Body requests.BatchExtractRequest
}

// ExtractBatchOutput defines the output for the ExtractBatch operation
type ExtractBatchOutput struct {
	Body responses.BatchExtractResponse
}

// ExtractBatch handles the POST /extract/batch endpoint
func (h *ExtractHandler) ExtractBatch(ctx context.Context, input *ExtractBatchInput) (*ExtractBatchOutput, error) {
	input.Body.ApplyDefaults()

	outcomes, err := h.batch.ProcessBatch(ctx, mappers.ToDocumentRequests(input.Body.Documents))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractBatchOutput{
		Body: mappers.ToBatchExtractResponse(outcomes),
	}, nil
}

// ExtractArchiveInput defines the input for the ExtractArchive operation
type ExtractArchiveInput struct {
	Body requests.BatchExtractRequest
}

// ExtractArchiveOutput defines the output for the ExtractArchive operation
type ExtractArchiveOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExtractArchive handles the POST /extract/archive endpoint
func (h *ExtractHandler) ExtractArchive(ctx context.Context, input *ExtractArchiveInput) (*ExtractArchiveOutput, error) {
	input.Body.ApplyDefaults()

	format := h.defaultFormat
	if input.Body.OutputFormat != "" {
		parsed, err := domain.ParseOutputFormat(input.Body.OutputFormat)
		if err != nil {
			return nil, toHumaError(err)
		}
		format = parsed
	}

	outcomes, err := h.batch.ProcessBatch(ctx, mappers.ToDocumentRequests(input.Body.Documents))
	if err != nil {
		return nil, toHumaError(err)
	}

	data, err := archive.Assemble(outcomes, format)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractArchiveOutput{
		ContentType:        "application/zip",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", "extracted_documents.zip"),
		Body:               data,
	}, nil
}
