// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"
)

// ErrSessionNotFound indicates the requested session does not exist or expired.
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpload indicates a rejected resume upload.
type ErrUpload struct {
	Message string
}

func (e *ErrUpload) Error() string {
	return fmt.Sprintf("upload rejected: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrUpload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
