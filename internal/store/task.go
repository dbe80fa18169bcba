package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
)

// TaskUpdateFn mutates a freshly loaded task in place. Returning an error
// aborts the update and nothing is written.
type TaskUpdateFn func(task *domain.Task) error

// TaskStore defines the interface for task persistence. Every lookup is
// scoped by owner: a task that exists but belongs to someone else is
// reported as ErrTaskNotFound.
type TaskStore interface {
	// Create inserts the task and sets task.ID to the store-assigned id.
	// Ids increase monotonically and are never reused after a delete.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID returns the owner's task with the given id.
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error)

	// ListByOwner returns the owner's tasks in insertion order.
	// The result is never nil.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update loads the owner's task, applies fn, and persists the result
	// atomically with respect to other writers of the same row.
	Update(ctx context.Context, ownerID uuid.UUID, id int64, fn TaskUpdateFn) (*domain.Task, error)

	// Delete removes the owner's task.
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
}
