package mocks

import (
	"bytes"
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFn    func(ctx context.Context, userID uuid.UUID, params store.TaskListParams) ([]*domain.Task, int64, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by task ID
	Tasks       map[uuid.UUID]*domain.Task
	CreateError error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// List implements the TaskStore interface. The default implementation
// filters, sorts and paginates the in-memory map the same way the real
// store does, so handler and service tests see realistic pages.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	params store.TaskListParams,
) ([]*domain.Task, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, params)
	}

	filtered := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if params.Completed != nil && task.Completed != *params.Completed {
			continue
		}
		filtered = append(filtered, task)
	}

	desc := params.SortOrder == store.TaskOrderDesc
	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if desc {
			a, b = b, a
		}
		switch params.SortBy {
		case "title":
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		case "completed":
			if a.Completed != b.Completed {
				return !a.Completed
			}
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})

	total := int64(len(filtered))

	if params.Offset >= len(filtered) {
		return []*domain.Task{}, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[params.Offset:end], total, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}
