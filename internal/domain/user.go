package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// MaxPasswordBytes is bcrypt's input limit; longer passwords are rejected
// rather than silently truncated.
const MaxPasswordBytes = 72

// User represents a registered account. Email is unique and compared exactly
// as stored.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates an active User with a fresh ID. The caller hashes the
// password before calling; the plaintext never reaches this type.
func NewUser(email, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty")
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return NewValidationError("hashed_password", "cannot be empty")
	}
	return nil
}

// ValidateEmail performs a structural check: one '@' with a non-empty local
// part and a non-empty host, and no whitespace. Single-label hosts such as
// localhost are accepted.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "cannot be empty")
	}

	if strings.ContainsFunc(email, unicode.IsSpace) {
		return NewValidationError("email", "invalid email format")
	}

	local, host, ok := strings.Cut(email, "@")
	if !ok || local == "" || host == "" || strings.Contains(host, "@") {
		return NewValidationError("email", "invalid email format")
	}
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") || strings.Contains(host, "..") {
		return NewValidationError("email", "invalid email format")
	}

	return nil
}

// ValidatePassword checks a plaintext password before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return NewValidationError("password", "cannot be empty")
	}
	if len(password) > MaxPasswordBytes {
		return NewValidationError("password", "must be at most 72 bytes long")
	}
	return nil
}
