// Package errors defines the SDK's error taxonomy and the mapping from HTTP
// status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound maps 404 responses and empty lookups.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized maps 401 responses (missing or rejected token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps 403 responses (wrong role or foreign data).
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRequest maps 400 responses.
	ErrInvalidRequest = errors.New("invalid request")
)

// FromStatus converts a non-2xx status code to a taxonomy error.
func FromStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}
