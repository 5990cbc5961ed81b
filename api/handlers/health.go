// ABOUTME: Health check handler for the Huma API
// ABOUTME: Provides a liveness endpoint for load balancers and monitoring

package handlers

import (
	"context"
	"net/http"

	"docextract-app-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	if version == "" {
		version = "1.0.0"
	}
	return &HealthHandler{version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health check",
		Tags:        []string{"Health"},
	}, h.HealthCheck)
}

// HealthCheckInput defines the input for the HealthCheck operation
type HealthCheckInput struct{}

// HealthCheckOutput defines the output for the HealthCheck operation
type HealthCheckOutput struct {
	Body responses.HealthResponse
}

// HealthCheck handles the GET /health endpoint
func (h *HealthHandler) HealthCheck(ctx context.Context, input *HealthCheckInput) (*HealthCheckOutput, error) {
	return &HealthCheckOutput{
		Body: responses.HealthResponse{
			Status:  "healthy",
			Version: h.version,
		},
	}, nil
}
