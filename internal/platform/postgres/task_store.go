package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/platform/logger"
	"github.com/workshop-app/workshop-api/internal/store"
)

const taskColumns = `id, title, description, completed, priority, created_at, due_date, owner_id`

// PostgresTaskStore implements store.TaskStore on PostgreSQL. Task ids come
// from an identity column, so they are unique and never reused.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a PostgresTaskStore. It needs a *sql.DB
// rather than a DBTX because Update opens its own transaction.
func NewPostgresTaskStore(db *sql.DB, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (title, description, completed, priority, created_at, due_date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.Completed,
		task.Priority,
		task.CreatedAt,
		task.DueDate,
		task.OwnerID,
	).Scan(&task.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("task owner does not exist", slog.String("owner_id", task.OwnerID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, task.OwnerID)
		}
		log.Error("failed to create task", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("owner_id", task.OwnerID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *PostgresTaskStore) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id, ownerID))
}

// ListByOwner implements store.TaskStore.ListByOwner.
func (s *PostgresTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY id ASC`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update. The row is locked with
// SELECT ... FOR UPDATE for the duration of fn.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	ownerID uuid.UUID,
	id int64,
	fn store.TaskUpdateFn,
) (*domain.Task, error) {
	var updated *domain.Task

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		task, err := s.scanOne(tx.QueryRowContext(ctx, query, id, ownerID))
		if err != nil {
			return err
		}

		if err := fn(task); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE tasks
			SET title = $1, description = $2, completed = $3, priority = $4, due_date = $5
			WHERE id = $6 AND owner_id = $7
		`,
			task.Title,
			task.Description,
			task.Completed,
			task.Priority,
			task.DueDate,
			id,
			ownerID,
		)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements store.TaskStore.Delete.
func (s *PostgresTaskStore) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresTaskStore) scanOne(row rowScanner) (*domain.Task, error) {
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, MapError(err)
	}
	return task, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.Priority,
		&task.CreatedAt,
		&task.DueDate,
		&task.OwnerID,
	); err != nil {
		return nil, err
	}

	task.CreatedAt = task.CreatedAt.UTC()
	if task.DueDate != nil {
		due := task.DueDate.UTC()
		task.DueDate = &due
	}
	return &task, nil
}
