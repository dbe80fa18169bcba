package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultTaskPriority is applied when a task is created without a priority.
const DefaultTaskPriority = "medium"

// MaxTaskTitleLength bounds titles in characters, not bytes.
const MaxTaskTitleLength = 255

// Task is a unit of work owned by exactly one user. ID is assigned by the
// store on insert and is never reused.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     uuid.UUID  `json:"owner_id"`
}

// NewTask builds a task for ownerID. An empty priority becomes
// DefaultTaskPriority. The ID stays zero until the task is stored.
func NewTask(
	ownerID uuid.UUID,
	title string,
	description *string,
	completed bool,
	priority string,
	dueDate *time.Time,
) (*Task, error) {
	if priority == "" {
		priority = DefaultTaskPriority
	}

	task := &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
		DueDate:     normalizeTime(dueDate),
		OwnerID:     ownerID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return NewValidationError("title", "must be at most 255 characters long")
	}
	if strings.TrimSpace(t.Priority) == "" {
		return NewValidationError("priority", "cannot be empty")
	}
	return nil
}

// Nullable carries a field in a partial update. Set reports whether the
// field was supplied at all; a supplied nil Value clears the field.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf returns a set Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// TaskPatch lists the task fields a caller wants to change. Nil pointers and
// unset Nullables leave the current value alone.
type TaskPatch struct {
	Title       *string
	Description Nullable[string]
	Completed   *bool
	Priority    *string
	DueDate     Nullable[time.Time]
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && !p.Description.Set && p.Completed == nil &&
		p.Priority == nil && !p.DueDate.Set
}

// ApplyPatch overwrites the fields present in p and re-validates the result.
// ID, OwnerID and CreatedAt are never touched. On error t is left unchanged.
func (t *Task) ApplyPatch(p TaskPatch) error {
	updated := *t

	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Description.Set {
		updated.Description = p.Description.Value
	}
	if p.Completed != nil {
		updated.Completed = *p.Completed
	}
	if p.Priority != nil {
		updated.Priority = *p.Priority
	}
	if p.DueDate.Set {
		updated.DueDate = normalizeTime(p.DueDate.Value)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}

func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
