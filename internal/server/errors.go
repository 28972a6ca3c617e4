// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
)

// ErrResumeNotFound indicates the requested resume does not exist
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrResumeNotFound
	var validation *ErrValidation
	var badCategory *analysis.ErrUnsupportedCategory
	var extraction *extract.ExtractionError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &badCategory):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
