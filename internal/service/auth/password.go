package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a plaintext password against a stored hash.
// Implementations return nil on a match and an error otherwise.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// BcryptVerifier is the production PasswordVerifier. It is stateless;
// bcrypt embeds the cost and salt in the stored hash itself.
type BcryptVerifier struct{}

// NewBcryptVerifier returns a bcrypt-backed verifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare returns nil when password matches hashedPassword, and
// bcrypt.ErrMismatchedHashAndPassword when it does not.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
