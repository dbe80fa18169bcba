package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionType names the kind of Pomodoro interval that was completed.
type SessionType string

// Recognised session types.
const (
	SessionTypeFocus      SessionType = "focus"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// IsValid reports whether s is one of the recognised session types.
func (s SessionType) IsValid() bool {
	switch s {
	case SessionTypeFocus, SessionTypeShortBreak, SessionTypeLongBreak:
		return true
	default:
		return false
	}
}

// SessionLog records one finished Pomodoro interval. Logs are append-only.
type SessionLog struct {
	ID             uuid.UUID   `json:"id"`
	MinutesSpent   int         `json:"minutes_spent"`
	SessionType    SessionType `json:"session_type"`
	CompletionTime time.Time   `json:"completion_time"`
	UserID         uuid.UUID   `json:"user_id"`
}

// NewSessionLog creates a log entry completed now.
func NewSessionLog(userID uuid.UUID, minutesSpent int, sessionType SessionType) (*SessionLog, error) {
	log := &SessionLog{
		ID:             uuid.New(),
		MinutesSpent:   minutesSpent,
		SessionType:    sessionType,
		CompletionTime: time.Now().UTC(),
		UserID:         userID,
	}

	if err := log.Validate(); err != nil {
		return nil, err
	}

	return log, nil
}

// Validate checks if the SessionLog has valid data.
func (l *SessionLog) Validate() error {
	if l.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty")
	}
	if l.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty")
	}
	if l.MinutesSpent <= 0 {
		return NewValidationError("minutes_spent", "must be greater than zero")
	}
	if !l.SessionType.IsValid() {
		return NewValidationError("session_type", "must be one of focus, short_break, long_break")
	}
	return nil
}
