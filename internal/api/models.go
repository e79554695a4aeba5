package api

import (
	"github.com/google/uuid"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /auth/login. Length checks are left to
// registration; any non-empty password is worth comparing against the hash.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterResponse is the body of a successful registration. The password,
// hashed or otherwise, is never echoed back.
type RegisterResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	// Token is the JWT bearer token used for API authorization
	Token string `json:"token"`
}
