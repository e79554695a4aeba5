package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	t.Parallel() // Enable parallel execution
	userID := uuid.New()
	title := "Write the launch checklist"
	description := "Cover rollout and rollback steps."

	task, err := NewTask(userID, title, description)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != title {
		t.Errorf("Expected title %s, got %s", title, task.Title)
	}

	if task.Description != description {
		t.Errorf("Expected description %s, got %s", description, task.Description)
	}

	if task.Completed {
		t.Error("Expected new task to start not completed")
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Titles are trimmed before validation.
	task, err = NewTask(userID, "  padded title  ", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Title != "padded title" {
		t.Errorf("Expected trimmed title, got %q", task.Title)
	}

	// Test invalid userID
	_, err = NewTask(uuid.Nil, title, description)
	if err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	// Test invalid title
	_, err = NewTask(userID, "   ", description)
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	_, err = NewTask(userID, strings.Repeat("x", TaskTitleMaxLength+1), description)
	if err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Test task",
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	invalidTask = validTask
	invalidTask.Title = strings.Repeat("x", TaskTitleMaxLength+1)
	if err := invalidTask.Validate(); err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel() // Enable parallel execution
	task, err := NewTask(uuid.New(), "original", "before")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalUpdatedAt := task.UpdatedAt

	newTitle := "renamed"
	completed := true
	if err := task.Apply(TaskUpdate{Title: &newTitle, Completed: &completed}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != newTitle {
		t.Errorf("Expected title %s, got %s", newTitle, task.Title)
	}
	if task.Description != "before" {
		t.Errorf("Expected description untouched, got %s", task.Description)
	}
	if !task.Completed {
		t.Error("Expected task to be completed after update")
	}
	if task.UpdatedAt.Before(originalUpdatedAt) {
		t.Error("Expected UpdatedAt to move forward")
	}

	// An invalid update leaves the task unchanged.
	empty := "   "
	if err := task.Apply(TaskUpdate{Title: &empty}); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}
	if task.Title != newTitle {
		t.Errorf("Expected title to remain %s, got %s", newTitle, task.Title)
	}
}

func TestTaskUpdateIsZero(t *testing.T) {
	t.Parallel() // Enable parallel execution
	if !(TaskUpdate{}).IsZero() {
		t.Error("Expected empty update to be zero")
	}

	title := "t"
	if (TaskUpdate{Title: &title}).IsZero() {
		t.Error("Expected update with title to be non-zero")
	}
}
