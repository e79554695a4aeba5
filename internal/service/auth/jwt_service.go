package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and verifies the bearer tokens that authenticate
// API requests.
type JWTService interface {
	// GenerateToken signs a new access token for userID using the
	// configured secret and lifetime.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken parses tokenString, checks its signature and time
	// claims, and returns the embedded claims. Validation is
	// all-or-nothing: no claims come back from a token that fails any
	// check.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the verified contents of an access token. UserID
// mirrors the subject claim so callers need not parse it again.
type Claims struct {
	UserID uuid.UUID `json:"uid,omitempty"`

	// Registered claims, decoded from their numeric wire form.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
