package domain

import (
	"errors"
	"fmt"
)

// Sentinels shared by the entity-specific validation errors. Wrapping code
// attaches detail; callers branch on these with errors.Is.
var (
	// ErrValidation marks any entity-level validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID marks a malformed identifier, typically a path or
	// payload value that does not parse as a UUID.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a validation failure for a specific field.
// It wraps an underlying sentinel error so callers can use errors.Is
// while still surfacing a field-level message to clients.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
