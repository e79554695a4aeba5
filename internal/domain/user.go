package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 72
)

// Validation errors returned by NewUser and User.Validate.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. Passwords are never serialized;
// the plaintext Password field only carries the value between registration
// and hashing.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given email and plaintext password.
// The email is normalized with NormalizeEmail so that lookups are
// case-insensitive. The caller is responsible for hashing the password
// before storage. Returns an error if validation fails.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail returns the canonical form of an email address as stored
// on users: trimmed of surrounding whitespace and lowercased. Lookups by
// email must normalize the same way.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate reports the first invalid field, if any. A user is valid with
// either a plaintext Password awaiting hashing or a stored HashedPassword,
// but not with neither.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// A plaintext password is present during registration; check its
		// length. Request DTO validation covers richer rules upstream.
		if len(u.Password) < PasswordMinLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > PasswordMaxLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// A persisted user must carry a hash when no plaintext is set.
		return ErrEmptyHashedPassword
	}

	return nil
}

// validEmailFormat performs a structural sanity check: a local part, an @,
// and a domain containing an interior dot. The request layer applies the
// stricter format validation; this guards entities constructed in code.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
