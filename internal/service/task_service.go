package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/redact"
	"github.com/workshop-app/workshop-api/internal/store"
)

// TaskInput carries the fields a caller may set when creating a task.
type TaskInput struct {
	Title       string
	Description *string
	Completed   bool
	Priority    string
	DueDate     *time.Time
}

// TaskService provides owner-scoped task operations. A task owned by someone
// else is indistinguishable from a missing one: both yield ErrTaskNotFound.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetTask(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, ownerID uuid.UUID, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID uuid.UUID, id int64) error
}

type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) TaskService {
	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}
}

func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(
		ownerID,
		input.Title,
		input.Description,
		input.Completed,
		input.Priority,
		input.DueDate,
	)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, s.storeFailure("create_task", "failed to save task", err)
	}

	s.logger.Debug("task created",
		"task_id", task.ID,
		"owner_id", ownerID)
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.storeFailure("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.storeFailure("get_task", "failed to load task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	task, err := s.tasks.Update(ctx, ownerID, id, func(task *domain.Task) error {
		return task.ApplyPatch(patch)
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, s.storeFailure("update_task", "failed to update task", err)
	}

	s.logger.Debug("task updated",
		"task_id", id,
		"owner_id", ownerID)
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if err := s.tasks.Delete(ctx, ownerID, id); err != nil {
		return s.storeFailure("delete_task", "failed to delete task", err)
	}

	s.logger.Debug("task deleted",
		"task_id", id,
		"owner_id", ownerID)
	return nil
}

// storeFailure maps a store error to ErrTaskNotFound or a logged ServiceError.
func (s *taskServiceImpl) storeFailure(operation, message string, err error) error {
	if store.IsNotFoundError(err) {
		return ErrTaskNotFound
	}
	s.logger.Error(message,
		"operation", operation,
		"error", redact.Error(err))
	return NewServiceError(operation, message, err)
}
