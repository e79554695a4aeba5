package store

import (
	"errors"
	"fmt"
)

// Store errors come in two layers: generic conditions (ErrNotFound,
// ErrDuplicate) and entity-specific sentinels derived from them with %w.
// errors.Is against a specific sentinel matches exactly that entity, while
// errors.Is against the generic form matches any entity.
var (
	// ErrNotFound reports that the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate reports that the operation would violate a uniqueness
	// constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity reports that the entity failed validation before it
	// reached the database. The wrapped error carries the field detail.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound is ErrNotFound scoped to users.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTaskNotFound is ErrNotFound scoped to tasks.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrEmailExists is ErrDuplicate scoped to the users.email unique
	// constraint.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is ErrNotFound or one of its
// entity-specific derivatives.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is ErrDuplicate or one of its
// entity-specific derivatives.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
