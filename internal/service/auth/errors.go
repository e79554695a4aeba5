package auth

import "errors"

// Sentinel errors for token verification. Callers match these with
// errors.Is to pick the HTTP status and log level for a failure.
var (
	// ErrInvalidToken covers malformed tokens, bad signatures, and
	// claims that cannot be interpreted.
	ErrInvalidToken = errors.New("invalid or malformed token")

	// ErrExpiredToken is returned when the exp claim is in the past.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("token not valid yet")

	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")
)
