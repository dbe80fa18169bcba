package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/platform/logger"
	"github.com/workshop-app/workshop-api/internal/store"
)

// PostgresSessionLogStore implements store.SessionLogStore on PostgreSQL.
type PostgresSessionLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SessionLogStore = (*PostgresSessionLogStore)(nil)

// NewPostgresSessionLogStore creates a PostgresSessionLogStore.
func NewPostgresSessionLogStore(db store.DBTX, logger *slog.Logger) *PostgresSessionLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSessionLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_log_store")),
	}
}

// Create implements store.SessionLogStore.Create.
func (s *PostgresSessionLogStore) Create(ctx context.Context, entry *domain.SessionLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_logs (id, minutes_spent, session_type, completion_time, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`,
		entry.ID,
		entry.MinutesSpent,
		string(entry.SessionType),
		entry.CompletionTime,
		entry.UserID,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, entry.UserID)
		}
		log.Error("failed to create session log", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("session logged",
		slog.String("session_log_id", entry.ID.String()),
		slog.String("session_type", string(entry.SessionType)))
	return nil
}

// ListByUser implements store.SessionLogStore.ListByUser.
func (s *PostgresSessionLogStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SessionLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, minutes_spent, session_type, completion_time, user_id
		FROM session_logs
		WHERE user_id = $1
		ORDER BY completion_time ASC
	`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	logs := make([]*domain.SessionLog, 0)
	for rows.Next() {
		var entry domain.SessionLog
		var sessionType string
		if err := rows.Scan(
			&entry.ID,
			&entry.MinutesSpent,
			&sessionType,
			&entry.CompletionTime,
			&entry.UserID,
		); err != nil {
			return nil, MapError(err)
		}
		entry.SessionType = domain.SessionType(sessionType)
		entry.CompletionTime = entry.CompletionTime.UTC()
		logs = append(logs, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return logs, nil
}
