package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// Task list sorting defaults. SortBy values outside the allow-list enforced
// by implementations fall back to TaskSortDefault.
const (
	TaskSortDefault  = "id"
	TaskOrderAsc     = "asc"
	TaskOrderDesc    = "desc"
	TaskListLimitDef = 10
	TaskListLimitMax = 100
)

// TaskListParams parametrizes a task listing query. The zero value is not
// usable; callers normalize the parameters first (see api.NewTaskListParams).
type TaskListParams struct {
	// Completed filters by completion state when non-nil.
	Completed *bool

	// SortBy names the sort column: one of "id", "title", "completed".
	SortBy string

	// SortOrder is "asc" or "desc".
	SortOrder string

	// Limit caps the number of returned tasks (1..TaskListLimitMax).
	Limit int

	// Offset skips that many tasks from the start of the ordering.
	Offset int
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID regardless of owner;
	// ownership checks belong to the service layer.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves the tasks owned by userID that match params, in the
	// requested order, plus the total number of matching tasks ignoring
	// Limit and Offset. The returned slice is empty, never nil, when no
	// tasks match.
	List(ctx context.Context, userID uuid.UUID, params TaskListParams) ([]*domain.Task, int64, error)

	// Update persists the mutable fields (title, description, completed,
	// updated_at) of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction so
	// multiple operations can be executed atomically. The transaction is
	// created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
