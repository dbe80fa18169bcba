package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
)

// SessionLogStore defines the interface for session log persistence.
// Logs are append-only, so there is no update or delete.
type SessionLogStore interface {
	// Create inserts a new log. Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, log *domain.SessionLog) error

	// ListByUser returns the user's logs ordered by completion time.
	// The result is never nil.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error)
}
