// ABOUTME: Job retrieval handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for stored extraction results and table exports

package handlers

import (
	"context"
	"errors"
	"net/http"

	"docextract-app-api/api/dto/mappers"
	"docextract-app-api/api/dto/responses"
	"docextract-app-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// JobHandler handles stored-job HTTP requests
type JobHandler struct {
	storage interfaces.JobStorage
}

// NewJobHandler creates a new job handler
func NewJobHandler(storage interfaces.JobStorage) *JobHandler {
	return &JobHandler{storage: storage}
}

// RegisterRoutes registers all job-related routes
func (h *JobHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getJob",
		Method:      http.MethodGet,
		Path:        "/jobs/{job_id}",
		Summary:     "Retrieve a stored extraction result",
		Description: "Returns the full extraction result previously stored under a job ID",
		Tags:        []string{"Jobs"},
	}, h.GetJob)

	huma.Register(api, huma.Operation{
		OperationID: "getJobTables",
		Method:      http.MethodGet,
		Path:        "/tables/{job_id}",
		Summary:     "Retrieve the tables of a stored result",
		Description: "Returns the extracted tables of a stored job, rendered as markdown or CSV",
		Tags:        []string{"Jobs"},
	}, h.GetJobTables)
}

// GetJobInput defines the input for the GetJob operation
type GetJobInput struct {
	JobID string `path:"job_id" minLength:"1" doc:"Job identifier returned by an extraction"`
}

// GetJobOutput defines the output for the GetJob operation
type GetJobOutput struct {
	Body responses.DocumentResponse
}

// GetJob handles the GET /jobs/{job_id} endpoint
func (h *JobHandler) GetJob(ctx context.Context, input *GetJobInput) (*GetJobOutput, error) {
	outcome, err := h.storage.Get(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, interfaces.ErrJobNotFound) {
			return nil, huma.Error404NotFound("Job not found")
		}
		return nil, toHumaError(err)
	}

	return &GetJobOutput{
		Body: *mappers.ToDocumentResponse(outcome),
	}, nil
}

// GetJobTablesInput defines the input for the GetJobTables operation
type GetJobTablesInput struct {
	JobID  string `path:"job_id" minLength:"1" doc:"Job identifier returned by an extraction"`
	Format string `query:"format,omitempty" enum:"markdown,csv" default:"markdown" doc:"Table rendering format"`
}

// GetJobTablesOutput defines the output for the GetJobTables operation
type GetJobTablesOutput struct {
	Body responses.JobTablesResponse
}

// GetJobTables handles the GET /tables/{job_id} endpoint
func (h *JobHandler) GetJobTables(ctx context.Context, input *GetJobTablesInput) (*GetJobTablesOutput, error) {
	outcome, err := h.storage.Get(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, interfaces.ErrJobNotFound) {
			return nil, huma.Error404NotFound("Job not found")
		}
		return nil, toHumaError(err)
	}

	response := responses.JobTablesResponse{
		JobID:    outcome.JobID,
		Filename: outcome.Filename,
		Format:   input.Format,
		Tables:   make([]responses.TableExportResponse, 0, len(outcome.Document.Tables)),
	}
	if response.Format == "" {
		response.Format = "markdown"
	}

	for _, table := range outcome.Document.Tables {
		content := table.Markdown
		if response.Format == "csv" {
			content = table.CSV
		}
		response.Tables = append(response.Tables, responses.TableExportResponse{
			Index:   table.Index,
			Page:    table.Page,
			Content: content,
		})
	}

	return &GetJobTablesOutput{Body: response}, nil
}
