package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/platform/logger"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// TaskService provides task-related operations scoped to the requesting user.
// Every operation verifies ownership: a task that exists but belongs to a
// different user yields ErrTaskNotOwned, never the other user's data.
type TaskService interface {
	// CreateTask creates a new task owned by userID.
	CreateTask(ctx context.Context, userID uuid.UUID, title, description string) (*domain.Task, error)

	// GetTask retrieves a task by its ID, verifying that userID owns it.
	// Returns store.ErrTaskNotFound if the task does not exist and
	// ErrTaskNotOwned if it belongs to another user.
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// ListTasks retrieves a page of the user's tasks along with the total
	// number of tasks matching the filter.
	ListTasks(
		ctx context.Context,
		userID uuid.UUID,
		params store.TaskListParams,
	) ([]*domain.Task, int64, error)

	// UpdateTask applies a partial update to a task the user owns and
	// returns the updated task. An empty update is a no-op that returns
	// the task unchanged.
	UpdateTask(
		ctx context.Context,
		userID, taskID uuid.UUID,
		update domain.TaskUpdate,
	) (*domain.Task, error)

	// DeleteTask removes a task the user owns.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskStore store.TaskStore, db *sql.DB, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		db:        db,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// isExpectedTaskError reports whether err is an expected condition that
// should be passed through to the caller unchanged rather than wrapped.
func isExpectedTaskError(err error) bool {
	return errors.Is(err, store.ErrTaskNotFound) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, ErrTaskNotOwned) ||
		errors.Is(err, domain.ErrEmptyTaskTitle) ||
		errors.Is(err, domain.ErrTaskTitleTooLong)
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(userID, title, description)
	if err != nil {
		log.Debug("rejected invalid task",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		if isExpectedTaskError(err) {
			return nil, err
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))

	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", userID.String()))
			return nil, err
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	if task.UserID != userID {
		log.Warn("user does not own task",
			slog.String("user_id", userID.String()),
			slog.String("task_id", taskID.String()),
			slog.String("owner_id", task.UserID.String()))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	userID uuid.UUID,
	params store.TaskListParams,
) ([]*domain.Task, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, total, err := s.taskStore.List(ctx, userID, params)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, 0, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	log.Debug("listed tasks",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(tasks)),
		slog.Int64("total", total))

	return tasks, total, nil
}

// UpdateTask implements TaskService.UpdateTask
// It verifies ownership and applies the update atomically.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// An empty update changes nothing, so skip the write entirely and
	// return the current task after the usual ownership check.
	if update.IsZero() {
		return s.GetTask(ctx, userID, taskID)
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		if task.UserID != userID {
			log.Warn("user does not own task",
				slog.String("user_id", userID.String()),
				slog.String("task_id", taskID.String()),
				slog.String("owner_id", task.UserID.String()))
			return ErrTaskNotOwned
		}

		if err := task.Apply(update); err != nil {
			return err
		}

		if err := txStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		if isExpectedTaskError(err) {
			return nil, err
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()),
			slog.String("user_id", userID.String()))
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
// It verifies ownership and deletes the task atomically.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		if task.UserID != userID {
			log.Warn("user does not own task",
				slog.String("user_id", userID.String()),
				slog.String("task_id", taskID.String()),
				slog.String("owner_id", task.UserID.String()))
			return ErrTaskNotOwned
		}

		return txStore.Delete(ctx, taskID)
	})
	if err != nil {
		if isExpectedTaskError(err) {
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()),
			slog.String("user_id", userID.String()))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
