package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionLog(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	log, err := NewSessionLog(userID, 25, SessionTypeFocus)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.Equal(t, userID, log.UserID)
	assert.Equal(t, 25, log.MinutesSpent)
	assert.Equal(t, SessionTypeFocus, log.SessionType)
	assert.False(t, log.CompletionTime.IsZero())

	tests := []struct {
		name        string
		userID      uuid.UUID
		minutes     int
		sessionType SessionType
		field       string
	}{
		{"zero minutes", userID, 0, SessionTypeFocus, "minutes_spent"},
		{"negative minutes", userID, -5, SessionTypeShortBreak, "minutes_spent"},
		{"unknown type", userID, 5, SessionType("nap"), "session_type"},
		{"empty type", userID, 5, SessionType(""), "session_type"},
		{"missing user", uuid.Nil, 5, SessionTypeLongBreak, "user_id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSessionLog(tt.userID, tt.minutes, tt.sessionType)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSessionTypeIsValid(t *testing.T) {
	t.Parallel()

	for _, st := range []SessionType{SessionTypeFocus, SessionTypeShortBreak, SessionTypeLongBreak} {
		assert.True(t, st.IsValid(), st)
	}
	assert.False(t, SessionType("Focus").IsValid())
}
