package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// UserStore is the persistence boundary for user accounts.
type UserStore interface {
	// Create persists a new user. The user's plaintext Password is hashed
	// before storage and cleared from the struct. Returns ErrEmailExists
	// when the email is already registered, or a domain validation error
	// when the user data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID loads a user by primary key. The plaintext Password field of
	// the returned user is always empty. Returns ErrUserNotFound when no
	// row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail loads a user by email address. The lookup is exact;
	// callers are expected to normalize the email the way domain.NewUser
	// does. Returns ErrUserNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the provided transaction so
	// multiple operations can be executed atomically. The transaction is
	// created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
