package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,account_email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. The password digest is never included.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ContentResponse is returned by the message endpoint.
type ContentResponse struct {
	Content string `json:"content"`
}

// Timestamp accepts RFC 3339 timestamps as well as zone-less date-times and
// bare dates, which are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// Ptr returns the wrapped time, or nil for a nil receiver.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// Optional distinguishes an absent JSON field from an explicit null.
// Set is true whenever the key was present; Null is true when its value was null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys
// present in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// TaskCreateRequest defines the payload for creating a task.
type TaskCreateRequest struct {
	Title       string     `json:"title"       validate:"required,max=255"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"    validate:"max=50"`
	DueDate     *Timestamp `json:"due_date"`
}

// TaskUpdateRequest defines the payload for a partial task update. Only
// fields present in the body are changed; description and due_date may be
// cleared with null.
type TaskUpdateRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Completed   Optional[bool]      `json:"completed"`
	Priority    Optional[string]    `json:"priority"`
	DueDate     Optional[Timestamp] `json:"due_date"`
}

// ToPatch converts the request into a domain patch. A null title, completed
// or priority is rejected since those fields cannot be empty.
func (req TaskUpdateRequest) ToPatch() (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if req.Title.Set {
		if req.Title.Null {
			return patch, domain.NewValidationError("title", "cannot be null")
		}
		patch.Title = &req.Title.Value
	}
	if req.Completed.Set {
		if req.Completed.Null {
			return patch, domain.NewValidationError("completed", "cannot be null")
		}
		patch.Completed = &req.Completed.Value
	}
	if req.Priority.Set {
		if req.Priority.Null {
			return patch, domain.NewValidationError("priority", "cannot be null")
		}
		patch.Priority = &req.Priority.Value
	}
	if req.Description.Set {
		patch.Description.Set = true
		if !req.Description.Null {
			patch.Description.Value = &req.Description.Value
		}
	}
	if req.DueDate.Set {
		patch.DueDate.Set = true
		if !req.DueDate.Null {
			patch.DueDate.Value = req.DueDate.Value.Ptr()
		}
	}

	return patch, nil
}

// TaskResponse is the JSON view of a task.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     uuid.UUID  `json:"owner_id"`
}

// SessionLogRequest defines the payload for logging a Pomodoro session.
type SessionLogRequest struct {
	MinutesSpent *int   `json:"minutes_spent" validate:"required"`
	SessionType  string `json:"session_type"  validate:"required,oneof=focus short_break long_break"`
}

// SessionLogResponse is the JSON view of a session log.
type SessionLogResponse struct {
	ID             uuid.UUID          `json:"id"`
	MinutesSpent   int                `json:"minutes_spent"`
	SessionType    domain.SessionType `json:"session_type"`
	CompletionTime time.Time          `json:"completion_time"`
	UserID         uuid.UUID          `json:"user_id"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		DueDate:     t.DueDate,
		OwnerID:     t.OwnerID,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

func sessionLogToResponse(l *domain.SessionLog) SessionLogResponse {
	return SessionLogResponse{
		ID:             l.ID,
		MinutesSpent:   l.MinutesSpent,
		SessionType:    l.SessionType,
		CompletionTime: l.CompletionTime,
		UserID:         l.UserID,
	}
}

func sessionLogsToResponse(logs []*domain.SessionLog) []SessionLogResponse {
	out := make([]SessionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, sessionLogToResponse(l))
	}
	return out
}
