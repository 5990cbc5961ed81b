// ABOUTME: Document comparison handler for the Huma API
// ABOUTME: Extracts two documents and reports their line-based differences

package handlers

import (
	"context"
	"net/http"

	"docextract-app-api/api/dto/mappers"
	"docextract-app-api/api/dto/requests"
	"docextract-app-api/api/dto/responses"
	"docextract-app-api/core/compare"
	"github.com/danielgtaylor/huma/v2"
)

// CompareHandler handles document comparison HTTP requests
type CompareHandler struct {
	extraction ExtractionService
}

// NewCompareHandler creates a new comparison handler
func NewCompareHandler(extraction ExtractionService) *CompareHandler {
	return &CompareHandler{extraction: extraction}
}

// RegisterRoutes registers the comparison route
func (h *CompareHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "compareDocuments",
		Method:      http.MethodPost,
		Path:        "/compare",
		Summary:     "Compare two documents",
		Description: "Extracts both documents and computes line-based similarity and differences between their texts",
		Tags:        []string{"Compare"},
	}, h.CompareDocuments)
}

// CompareDocumentsInput defines the input for the CompareDocuments operation
type CompareDocumentsInput struct {
	Body requests.CompareRequest
}

// CompareDocumentsOutput defines the output for the CompareDocuments operation
type CompareDocumentsOutput struct {
	Body responses.CompareResponse
}

// CompareDocuments handles the POST /compare endpoint
func (h *CompareHandler) CompareDocuments(ctx context.Context, input *CompareDocumentsInput) (*CompareDocumentsOutput, error) {
	input.Body.ApplyDefaults()

	outcome1 := h.extraction.Process(ctx, mappers.ToDocumentRequest(&input.Body.Doc1))
	if !outcome1.Succeeded() {
		return nil, toHumaError(outcome1.Err)
	}
	outcome2 := h.extraction.Process(ctx, mappers.ToDocumentRequest(&input.Body.Doc2))
	if !outcome2.Succeeded() {
		return nil, toHumaError(outcome2.Err)
	}

	result := compare.Compare(
		outcome1.Document.Text, outcome2.Document.Text,
		input.Body.Doc1.Filename, input.Body.Doc2.Filename,
	)

	response := responses.CompareResponse{
		Doc1Name:          result.Doc1Name,
		Doc2Name:          result.Doc2Name,
		SimilarityPercent: result.SimilarityPercent,
		TotalLinesDoc1:    result.TotalLinesDoc1,
		TotalLinesDoc2:    result.TotalLinesDoc2,
		AddedLines:        result.AddedLines,
		RemovedLines:      result.RemovedLines,
		Diffs:             make([]responses.TextDiffResponse, 0, len(result.Diffs)),
		Summary:           result.Summary,
	}
	for _, diff := range result.Diffs {
		response.Diffs = append(response.Diffs, responses.TextDiffResponse{
			Type:       string(diff.Type),
			LineNumber: diff.LineNumber,
			Content:    diff.Content,
		})
	}

	return &CompareDocumentsOutput{Body: response}, nil
}
