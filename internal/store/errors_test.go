package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"wrapped ErrTaskNotFound", fmt.Errorf("get task 3: %w", ErrTaskNotFound), true},
		{"duplicate is not not-found", ErrEmailExists, false},
		{
			name:     "store error wrapping not found",
			err:      NewStoreError("task", "delete", "no rows", ErrTaskNotFound),
			expected: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("task", "update", "failed to save", cause)

	assert.Equal(t, "update operation on task failed: failed to save: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "create", "invalid", nil)
	assert.Equal(t, "create operation on user failed: invalid", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
