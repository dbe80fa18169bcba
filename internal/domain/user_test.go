package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("test@example.com", "$2a$10$hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if !user.IsActive {
		t.Error("Expected new user to be active")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if _, err := NewUser("", "$2a$10$hash"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty email, got %v", err)
	}
	if _, err := NewUser("test@example.com", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty hash, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@x.com", true},
		{"first.last@sub.example.org", true},
		{"Mixed@Example.COM", true},
		{"user@localhost", true},
		{"user@example", true},
		{"root@intranet-host", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@example.", false},
		{"user@.com", false},
		{"a@b@c.com", false},
		{"a b@x.com", false},
		{"ab@x.com\n", false},
		{"a@x..com", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if tt.valid && err != nil {
			t.Errorf("ValidateEmail(%q) returned %v, want nil", tt.email, err)
		}
		if !tt.valid && !errors.Is(err, ErrValidation) {
			t.Errorf("ValidateEmail(%q) returned %v, want validation error", tt.email, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("pw1"); err != nil {
		t.Errorf("Expected short password to be accepted, got %v", err)
	}
	if err := ValidatePassword(strings.Repeat("a", MaxPasswordBytes)); err != nil {
		t.Errorf("Expected 72-byte password to be accepted, got %v", err)
	}
	if err := ValidatePassword(""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty password, got %v", err)
	}
	if err := ValidatePassword(strings.Repeat("a", MaxPasswordBytes+1)); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for 73-byte password, got %v", err)
	}
}
