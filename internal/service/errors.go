package service

import "errors"

// Sentinel errors shared across service implementations. Services return
// these for expected failure conditions and wrap everything unexpected in a
// TaskServiceError; callers pick them apart with errors.Is, and the API
// layer translates them into HTTP status codes.
var (
	// ErrTaskNotOwned reports that a task exists but belongs to a different
	// user than the caller. The API layer maps it to 403 Forbidden.
	ErrTaskNotOwned = errors.New("task is owned by another user")
)
