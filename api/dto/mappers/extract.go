// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"docextract-app-api/api/dto/requests"
	"docextract-app-api/api/dto/responses"
	"docextract-app-api/core/domain"
	"docextract-app-api/core/errors"
)

// ToDocumentRequest converts a request DTO to a domain DocumentRequest
func ToDocumentRequest(req *requests.ExtractDocumentRequest) domain.DocumentRequest {
	out := domain.DocumentRequest{
		Filename: req.Filename,
		Content:  req.Content,
		URL:      req.URL,
	}

	if req.Options != nil {
		out.Options = domain.DocumentOptions{
			Summarize:   req.Options.Summarize,
			Language:    req.Options.Language,
			OCRLanguage: req.Options.OCRLanguage,
		}
		if req.Options.ExtractImages != nil {
			out.Options.ExtractImages = *req.Options.ExtractImages
		}
	}

	return out
}

// ToDocumentRequests converts a batch request's documents to domain requests
func ToDocumentRequests(reqs []requests.ExtractDocumentRequest) []domain.DocumentRequest {
	out := make([]domain.DocumentRequest, 0, len(reqs))
	for i := range reqs {
		out = append(out, ToDocumentRequest(&reqs[i]))
	}
	return out
}

// ToDocumentResponse converts a successful outcome to a DocumentResponse DTO
func ToDocumentResponse(outcome *domain.Outcome) *responses.DocumentResponse {
	if outcome == nil || outcome.Document == nil {
		return nil
	}
	doc := outcome.Document

	response := &responses.DocumentResponse{
		JobID:           outcome.JobID,
		Filename:        outcome.Filename,
		NumPages:        doc.NumPages,
		Markdown:        doc.Markdown,
		Text:            doc.Text,
		ImagesExtracted: doc.ImagesExtracted,
		Title:           doc.Title,
		Tables:          make([]responses.TableResponse, 0, len(doc.Tables)),
		Summary:         ToSummaryResponse(outcome.Summary),
	}

	for _, table := range doc.Tables {
		response.Tables = append(response.Tables, responses.TableResponse{
			Index:    table.Index,
			Page:     table.Page,
			Grid:     table.Grid,
			Markdown: table.Markdown,
			CSV:      table.CSV,
		})
	}
	for _, heading := range doc.Headings {
		response.Headings = append(response.Headings, responses.HeadingResponse{
			Level: heading.Level,
			Text:  heading.Text,
			Page:  heading.Page,
		})
	}

	return response
}

// ToSummaryResponse converts a domain Summary to a SummaryResponse DTO
func ToSummaryResponse(summary *domain.Summary) *responses.SummaryResponse {
	if summary == nil {
		return nil
	}

	response := &responses.SummaryResponse{
		Summary:          summary.Summary,
		KeyPoints:        summary.KeyPoints,
		ImportantNumbers: make([]responses.ImportantNumberResponse, 0, len(summary.ImportantNumbers)),
		TablesSummary:    make([]responses.TableSummaryResponse, 0, len(summary.TablesSummary)),
	}
	if response.KeyPoints == nil {
		response.KeyPoints = []string{}
	}

	for _, n := range summary.ImportantNumbers {
		response.ImportantNumbers = append(response.ImportantNumbers, responses.ImportantNumberResponse{
			Value:   n.Value,
			Context: n.Context,
		})
	}
	for _, t := range summary.TablesSummary {
		response.TablesSummary = append(response.TablesSummary, responses.TableSummaryResponse{
			Title:   t.Title,
			KeyData: t.KeyData,
		})
	}

	return response
}

// ToBatchExtractResponse converts batch outcomes to a BatchExtractResponse DTO
func ToBatchExtractResponse(outcomes []*domain.Outcome) responses.BatchExtractResponse {
	response := responses.BatchExtractResponse{
		Results: make([]responses.DocumentStatusResponse, 0, len(outcomes)),
		Total:   len(outcomes),
	}

	for _, outcome := range outcomes {
		status := responses.DocumentStatusResponse{
			Filename: outcome.Filename,
			Success:  outcome.Succeeded(),
		}
		if outcome.Succeeded() {
			status.JobID = outcome.JobID
			status.NumPages = outcome.Document.NumPages
			status.TablesCount = len(outcome.Document.Tables)
			response.Succeeded++
		} else {
			status.Error = outcome.Err.Error()
			status.ErrorKind = string(errors.KindOf(outcome.Err))
			response.Failed++
		}
		response.Results = append(response.Results, status)
	}

	return response
}
