package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService. With no hooks set it hands back
// the fixed Token/Claims fields, which covers most handler tests.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Fixed results returned while the hooks above are nil.
	Token       string
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

// GenerateToken returns the configured token and error.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken returns the configured claims and error.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
