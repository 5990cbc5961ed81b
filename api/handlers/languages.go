// ABOUTME: Language catalog handler for the Huma API
// ABOUTME: Exposes the supported summary and OCR languages

package handlers

import (
	"context"
	"net/http"

	"docextract-app-api/api/dto/responses"
	"docextract-app-api/core/languages"
	"github.com/danielgtaylor/huma/v2"
)

// LanguagesHandler handles language catalog HTTP requests
type LanguagesHandler struct{}

// NewLanguagesHandler creates a new languages handler
func NewLanguagesHandler() *LanguagesHandler {
	return &LanguagesHandler{}
}

// RegisterRoutes registers the languages route
func (h *LanguagesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listLanguages",
		Method:      http.MethodGet,
		Path:        "/languages",
		Summary:     "List supported languages",
		Description: "Returns the languages available for summaries and OCR hints",
		Tags:        []string{"Languages"},
	}, h.ListLanguages)
}

// ListLanguagesInput defines the input for the ListLanguages operation
type ListLanguagesInput struct{}

// ListLanguagesOutput defines the output for the ListLanguages operation
type ListLanguagesOutput struct {
	Body responses.LanguagesResponse
}

// ListLanguages handles the GET /languages endpoint
func (h *LanguagesHandler) ListLanguages(ctx context.Context, input *ListLanguagesInput) (*ListLanguagesOutput, error) {
	catalog := languages.Supported()

	response := responses.LanguagesResponse{
		Languages: make([]responses.LanguageResponse, 0, len(catalog)),
		Default:   "en",
	}
	for _, lang := range catalog {
		response.Languages = append(response.Languages, responses.LanguageResponse{
			Code: lang.Code,
			Name: lang.Name,
		})
	}

	return &ListLanguagesOutput{Body: response}, nil
}
