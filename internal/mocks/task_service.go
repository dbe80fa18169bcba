package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, ownerID uuid.UUID, input service.TaskInput) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetTaskFn    func(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, ownerID uuid.UUID, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, ownerID uuid.UUID, id int64) error

	// Default return values
	Task         *domain.Task
	DefaultError error
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, input)
	}
	return m.Task, m.DefaultError
}

// ListTasks implements the service.TaskService interface
func (m *MockTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	if m.Task != nil {
		return []*domain.Task{m.Task}, nil
	}
	return []*domain.Task{}, nil
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, ownerID, id)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, ownerID, id, patch)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, id)
	}
	return m.DefaultError
}
