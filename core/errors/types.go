// ABOUTME: Custom error types for the extraction pipeline
// ABOUTME: Provides a kind taxonomy so handlers and orchestrators can classify failures

package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an extraction failure.
type Kind string

const (
	// KindInvalidInput means the request had no usable payload
	KindInvalidInput Kind = "invalid_input"

	// KindUnsupportedFormat means the engine rejected the document format
	KindUnsupportedFormat Kind = "unsupported_format"

	// KindCorrupt means the engine could not parse the document
	KindCorrupt Kind = "corrupt"

	// KindExtractionFailed means the engine failed for an unclassified reason
	KindExtractionFailed Kind = "extraction_failed"

	// KindTimeout means a collaborator exceeded its time bound
	KindTimeout Kind = "timeout"

	// KindServiceUnavailable means the summarization collaborator was unreachable
	KindServiceUnavailable Kind = "service_unavailable"

	// KindBatchTooLarge means the batch exceeded the configured size limit
	KindBatchTooLarge Kind = "batch_too_large"
)

// ExtractionError is a classified failure from the extraction pipeline.
type ExtractionError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// New creates a classified extraction error.
func New(kind Kind, message string) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message}
}

// Wrap creates a classified extraction error around a cause.
func Wrap(kind Kind, message string, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of an error, or an empty kind for unclassified errors.
func KindOf(err error) Kind {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Kind
	}
	return ""
}

// IsKind checks whether an error carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
