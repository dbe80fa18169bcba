package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/store"
)

// TestifyMockTaskStore is a mock of store.TaskStore for use with testify/mock.
type TestifyMockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TestifyMockTaskStore)(nil)

// Create is a mock implementation of store.TaskStore.Create
func (m *TestifyMockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *TestifyMockTaskStore) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByOwner is a mock implementation of store.TaskStore.ListByOwner
func (m *TestifyMockTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	args := m.Called(ctx, ownerID)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *TestifyMockTaskStore) Update(
	ctx context.Context,
	ownerID uuid.UUID,
	id int64,
	fn store.TaskUpdateFn,
) (*domain.Task, error) {
	args := m.Called(ctx, ownerID, id, fn)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *TestifyMockTaskStore) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}
