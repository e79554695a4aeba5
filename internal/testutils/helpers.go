package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UniqueEmail generates an email address that cannot collide with other
// tests running against the same database.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.New().String()[:8])
}

// MustInsertUser inserts a user row directly and returns its ID. The
// password hash is computed at bcrypt.MinCost to keep tests fast.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, email string) uuid.UUID {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	id := uuid.New()
	_, err = db.ExecContext(ctx, `
		INSERT INTO users (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`, id, email, string(hashed))
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	return id
}
