package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// MockTaskService implements service.TaskService for testing handlers
// without a database.
type MockTaskService struct {
	// Function fields for customizable behavior
	CreateTaskFn func(ctx context.Context, userID uuid.UUID, title, description string) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, userID uuid.UUID, params store.TaskListParams) ([]*domain.Task, int64, error)
	UpdateTaskFn func(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID, taskID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Task  *domain.Task
	Tasks []*domain.Task
	Total int64
	Err   error
}

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, userID, title, description)
	}

	return m.Task, m.Err
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, userID, taskID)
	}

	return m.Task, m.Err
}

// ListTasks implements the service.TaskService interface
func (m *MockTaskService) ListTasks(
	ctx context.Context,
	userID uuid.UUID,
	params store.TaskListParams,
) ([]*domain.Task, int64, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, userID, params)
	}

	return m.Tasks, m.Total, m.Err
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, update)
	}

	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}

	return m.Err
}
