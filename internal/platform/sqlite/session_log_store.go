package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/platform/logger"
	"github.com/workshop-app/workshop-api/internal/store"
	"gorm.io/gorm"
)

// SessionLogStore implements store.SessionLogStore on SQLite.
type SessionLogStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.SessionLogStore = (*SessionLogStore)(nil)

// NewSessionLogStore creates a SessionLogStore. If logger is nil, slog.Default() is used.
func NewSessionLogStore(db *gorm.DB, logger *slog.Logger) *SessionLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionLogStore{db: db, logger: logger.With(slog.String("component", "session_log_store"))}
}

// Create implements store.SessionLogStore.Create.
func (s *SessionLogStore) Create(ctx context.Context, entry *domain.SessionLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return err
	}

	rec := newSessionLogRecord(entry)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, entry.UserID)
		}
		log.Error("failed to create session log", slog.String("error", err.Error()))
		return mapped
	}

	log.Debug("session logged",
		slog.String("session_log_id", entry.ID.String()),
		slog.String("session_type", string(entry.SessionType)))
	return nil
}

// ListByUser implements store.SessionLogStore.ListByUser.
func (s *SessionLogStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error) {
	var recs []sessionLogRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("completion_time ASC, rowid ASC").
		Find(&recs).Error
	if err != nil {
		return nil, MapError(err)
	}

	logs := make([]*domain.SessionLog, 0, len(recs))
	for _, rec := range recs {
		entry, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
