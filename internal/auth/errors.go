package auth

import "errors"

var (
	// ErrMissingToken is returned when the Authorization header is absent.
	ErrMissingToken = errors.New("missing Authorization header")

	// ErrInvalidToken is returned when the bearer token is malformed,
	// expired or fails signature verification.
	ErrInvalidToken = errors.New("invalid bearer token")
)
