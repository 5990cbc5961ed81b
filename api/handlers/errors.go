// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"net/http"

	"docextract-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	switch errors.KindOf(err) {
	case errors.KindInvalidInput:
		return huma.Error400BadRequest(err.Error())
	case errors.KindBatchTooLarge:
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.KindUnsupportedFormat, errors.KindCorrupt:
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.KindTimeout:
		return huma.Error504GatewayTimeout(err.Error())
	case errors.KindServiceUnavailable:
		return huma.Error503ServiceUnavailable(err.Error())
	case errors.KindExtractionFailed:
		return huma.Error500InternalServerError(err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
