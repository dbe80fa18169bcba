package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/redact"
	"github.com/workshop-app/workshop-api/internal/store"
)

// SessionLogService records completed Pomodoro intervals.
type SessionLogService interface {
	// LogSession appends a log completed now.
	LogSession(
		ctx context.Context,
		userID uuid.UUID,
		minutesSpent int,
		sessionType domain.SessionType,
	) (*domain.SessionLog, error)

	// ListSessions returns the user's logs ordered by completion time.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error)
}

type sessionLogServiceImpl struct {
	logs   store.SessionLogStore
	logger *slog.Logger
}

// NewSessionLogService creates a SessionLogService.
func NewSessionLogService(logs store.SessionLogStore, logger *slog.Logger) SessionLogService {
	return &sessionLogServiceImpl{
		logs:   logs,
		logger: logger.With("component", "session_log_service"),
	}
}

func (s *sessionLogServiceImpl) LogSession(
	ctx context.Context,
	userID uuid.UUID,
	minutesSpent int,
	sessionType domain.SessionType,
) (*domain.SessionLog, error) {
	entry, err := domain.NewSessionLog(userID, minutesSpent, sessionType)
	if err != nil {
		return nil, err
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		s.logger.Error("failed to save session log",
			"user_id", userID,
			"error", redact.Error(err))
		return nil, NewServiceError("log_session", "failed to save session log", err)
	}

	s.logger.Debug("session logged",
		"user_id", userID,
		"session_type", sessionType,
		"minutes_spent", minutesSpent)
	return entry, nil
}

func (s *sessionLogServiceImpl) ListSessions(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error) {
	logs, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list session logs",
			"user_id", userID,
			"error", redact.Error(err))
		return nil, NewServiceError("list_sessions", "failed to list session logs", err)
	}
	return logs, nil
}
