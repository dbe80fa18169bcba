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

// TaskStore implements store.TaskStore on SQLite.
type TaskStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore. If logger is nil, slog.Default() is used.
func NewTaskStore(db *gorm.DB, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{db: db, logger: logger.With(slog.String("component", "task_store"))}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	rec := newTaskRecord(task)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("task owner does not exist", slog.String("owner_id", task.OwnerID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, task.OwnerID)
		}
		log.Error("failed to create task", slog.String("error", err.Error()))
		return mapped
	}

	task.ID = rec.ID
	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("owner_id", task.OwnerID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	rec, err := s.find(s.db.WithContext(ctx), ownerID, id)
	if err != nil {
		return nil, err
	}
	return rec.toDomain()
}

// ListByOwner implements store.TaskStore.ListByOwner.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	var recs []taskRecord
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, MapError(err)
	}

	tasks := make([]*domain.Task, 0, len(recs))
	for _, rec := range recs {
		task, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Update implements store.TaskStore.Update. The read and the write share one
// transaction; with a single connection no other writer can interleave.
func (s *TaskStore) Update(
	ctx context.Context,
	ownerID uuid.UUID,
	id int64,
	fn store.TaskUpdateFn,
) (*domain.Task, error) {
	var updated *domain.Task

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.find(tx, ownerID, id)
		if err != nil {
			return err
		}

		task, err := rec.toDomain()
		if err != nil {
			return err
		}
		if err := fn(task); err != nil {
			return err
		}

		next := newTaskRecord(task)
		res := tx.Model(&taskRecord{}).
			Where("id = ? AND owner_id = ?", id, ownerID.String()).
			Updates(map[string]any{
				"title":       next.Title,
				"description": next.Description,
				"completed":   next.Completed,
				"priority":    next.Priority,
				"due_date":    next.DueDate,
			})
		if res.Error != nil {
			return MapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return store.ErrTaskNotFound
		}

		updated, err = rec.withChanges(next).toDomain()
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID.String()).
		Delete(&taskRecord{})
	if res.Error != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete task",
			slog.String("error", res.Error.Error()),
			slog.Int64("task_id", id))
		return MapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

func (s *TaskStore) find(db *gorm.DB, ownerID uuid.UUID, id int64) (taskRecord, error) {
	var rec taskRecord
	err := db.Where("id = ? AND owner_id = ?", id, ownerID.String()).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskRecord{}, store.ErrTaskNotFound
	}
	if err != nil {
		return taskRecord{}, MapError(err)
	}
	return rec, nil
}

// withChanges copies the mutable columns of next onto r.
func (r taskRecord) withChanges(next taskRecord) taskRecord {
	r.Title = next.Title
	r.Description = next.Description
	r.Completed = next.Completed
	r.Priority = next.Priority
	r.DueDate = next.DueDate
	return r
}
