package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// MockSessionLogService implements service.SessionLogService for testing
type MockSessionLogService struct {
	LogSessionFn   func(ctx context.Context, userID uuid.UUID, minutesSpent int, sessionType domain.SessionType) (*domain.SessionLog, error)
	ListSessionsFn func(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error)

	DefaultError error
}

var _ service.SessionLogService = (*MockSessionLogService)(nil)

// LogSession implements the service.SessionLogService interface
func (m *MockSessionLogService) LogSession(
	ctx context.Context,
	userID uuid.UUID,
	minutesSpent int,
	sessionType domain.SessionType,
) (*domain.SessionLog, error) {
	if m.LogSessionFn != nil {
		return m.LogSessionFn(ctx, userID, minutesSpent, sessionType)
	}
	return nil, m.DefaultError
}

// ListSessions implements the service.SessionLogService interface
func (m *MockSessionLogService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error) {
	if m.ListSessionsFn != nil {
		return m.ListSessionsFn(ctx, userID)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return []*domain.SessionLog{}, nil
}
