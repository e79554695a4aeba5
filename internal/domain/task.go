package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskTitleMaxLength is the longest title a task may carry.
const TaskTitleMaxLength = 200

// Common validation errors for Task
var (
	ErrEmptyTaskID     = errors.New("task ID cannot be empty")
	ErrEmptyTaskUserID = errors.New("task user ID cannot be empty")
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New(
		"task title must be at most 200 characters long",
	)
)

// Task represents a single to-do item owned by a user.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskUpdate carries a partial update to a task. Nil fields leave the
// corresponding task field unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsZero reports whether the update changes nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}

// NewTask creates a Task owned by the given user. The title is trimmed of
// surrounding whitespace, the task starts out not completed, and the
// creation/update timestamps are set. Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > TaskTitleMaxLength {
		return ErrTaskTitleTooLong
	}

	return nil
}

// Apply merges the non-nil fields of the update into the task and refreshes
// the UpdatedAt timestamp. Returns an error if the resulting task fails
// validation; the task is left unmodified in that case.
func (t *Task) Apply(update TaskUpdate) error {
	updated := *t
	if update.Title != nil {
		updated.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Completed != nil {
		updated.Completed = *update.Completed
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}
