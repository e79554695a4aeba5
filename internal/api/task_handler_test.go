package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/mocks"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// newTaskRequest builds a request with the optional authenticated user and
// chi path parameter wired into the context, the way the router and auth
// middleware would.
func newTaskRequest(method, target, body string, userID uuid.UUID, pathID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	if pathID != "" {
		rctx.URLParams.Add("id", pathID)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	if userID != uuid.Nil {
		ctx = context.WithValue(ctx, shared.UserIDContextKey, userID)
	}

	return req.WithContext(ctx)
}

func sampleTask(userID uuid.UUID, title string) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskHandlerCreateTask(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a task", func(t *testing.T) {
		var gotUserID uuid.UUID
		var gotTitle, gotDescription string

		svc := &mocks.MockTaskService{
			CreateTaskFn: func(ctx context.Context, userID uuid.UUID, title, description string) (*domain.Task, error) {
				gotUserID = userID
				gotTitle = title
				gotDescription = description

				task := sampleTask(userID, title)
				task.Description = description
				return task, nil
			},
		}
		handler := NewTaskHandler(svc, testLogger())

		body := `{"title":"Buy groceries","description":"milk, eggs"}`
		req := newTaskRequest(http.MethodPost, "/tasks", body, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Buy groceries", resp.Title)
		assert.Equal(t, "milk, eggs", resp.Description)
		assert.False(t, resp.Completed, "new tasks start not completed")
		assert.Equal(t, userID.String(), resp.UserID)

		assert.Equal(t, userID, gotUserID)
		assert.Equal(t, "Buy groceries", gotTitle)
		assert.Equal(t, "milk, eggs", gotDescription)
	})

	t.Run("rejects request without user in context", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		req := newTaskRequest(http.MethodPost, "/tasks", `{"title":"x"}`, uuid.Nil, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		req := newTaskRequest(http.MethodPost, "/tasks", `{"title":`, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Invalid request format", resp.Error)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		req := newTaskRequest(http.MethodPost, "/tasks", `{"description":"no title"}`, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects over-length title", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		longTitle := strings.Repeat("a", domain.TaskTitleMaxLength+1)
		body := `{"title":"` + longTitle + `"}`
		req := newTaskRequest(http.MethodPost, "/tasks", body, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("maps whitespace-only title to 400", func(t *testing.T) {
		// "   " passes the required tag but the domain trims it to empty
		svc := &mocks.MockTaskService{Err: domain.ErrEmptyTaskTitle}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodPost, "/tasks", `{"title":"   "}`, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Title is required", resp.Error)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			Err: service.NewTaskServiceError("create_task", "failed to create task", errors.New("boom")),
		}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodPost, "/tasks", `{"title":"x"}`, userID, "")
		rr := httptest.NewRecorder()

		handler.CreateTask(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Failed to create task", resp.Error)
	})
}

func TestTaskHandlerGetTask(t *testing.T) {
	userID := uuid.New()
	task := sampleTask(userID, "Read a book")

	tests := []struct {
		name           string
		pathID         string
		userIDInCtx    uuid.UUID
		serviceTask    *domain.Task
		serviceError   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "returns the task",
			pathID:         task.ID.String(),
			userIDInCtx:    userID,
			serviceTask:    task,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "absent task returns 404",
			pathID:         uuid.New().String(),
			userIDInCtx:    userID,
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Task not found",
		},
		{
			name:           "foreign task returns 403",
			pathID:         task.ID.String(),
			userIDInCtx:    userID,
			serviceError:   service.ErrTaskNotOwned,
			expectedStatus: http.StatusForbidden,
			expectedError:  "Access denied",
		},
		{
			name:           "invalid UUID returns 400",
			pathID:         "not-a-uuid",
			userIDInCtx:    userID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid ID format",
		},
		{
			name:           "missing user returns 401",
			pathID:         task.ID.String(),
			userIDInCtx:    uuid.Nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "service failure returns 500",
			pathID:      task.ID.String(),
			userIDInCtx: userID,
			serviceError: service.NewTaskServiceError(
				"get_task", "failed to get task", errors.New("boom"),
			),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to get task",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{Task: tc.serviceTask, Err: tc.serviceError}
			handler := NewTaskHandler(svc, testLogger())

			req := newTaskRequest(http.MethodGet, "/tasks/"+tc.pathID, "", tc.userIDInCtx, tc.pathID)
			rr := httptest.NewRecorder()

			handler.GetTask(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp TaskResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, task.ID.String(), resp.ID)
				assert.Equal(t, task.Title, resp.Title)
				return
			}

			if tc.expectedError != "" {
				resp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, tc.expectedError, resp.Error)
			}
		})
	}
}

func TestTaskHandlerListTasks(t *testing.T) {
	userID := uuid.New()

	t.Run("returns a page of tasks", func(t *testing.T) {
		taskA := sampleTask(userID, "Alpha")
		taskB := sampleTask(userID, "Bravo")

		var gotParams store.TaskListParams
		svc := &mocks.MockTaskService{
			ListTasksFn: func(ctx context.Context, userID uuid.UUID, params store.TaskListParams) ([]*domain.Task, int64, error) {
				gotParams = params
				return []*domain.Task{taskA, taskB}, 7, nil
			},
		}
		handler := NewTaskHandler(svc, testLogger())

		target := "/tasks?page=2&limit=2&completed=true&sort=title&order=desc"
		req := newTaskRequest(http.MethodGet, target, "", userID, "")
		rr := httptest.NewRecorder()

		handler.ListTasks(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskListResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, "Alpha", resp.Items[0].Title)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, int64(7), resp.Total)

		// Query parameters arrive at the service normalized
		assert.Equal(t, "title", gotParams.SortBy)
		assert.Equal(t, store.TaskOrderDesc, gotParams.SortOrder)
		assert.Equal(t, 2, gotParams.Limit)
		assert.Equal(t, 2, gotParams.Offset)
		require.NotNil(t, gotParams.Completed)
		assert.True(t, *gotParams.Completed)
	})

	t.Run("empty result serializes as an empty array", func(t *testing.T) {
		svc := &mocks.MockTaskService{Tasks: []*domain.Task{}}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodGet, "/tasks", "", userID, "")
		rr := httptest.NewRecorder()

		handler.ListTasks(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`, "items must be [] and not null")
	})

	t.Run("rejects request without user in context", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		req := newTaskRequest(http.MethodGet, "/tasks", "", uuid.Nil, "")
		rr := httptest.NewRecorder()

		handler.ListTasks(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			Err: service.NewTaskServiceError("list_tasks", "failed to list tasks", errors.New("boom")),
		}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodGet, "/tasks", "", userID, "")
		rr := httptest.NewRecorder()

		handler.ListTasks(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Failed to list tasks", resp.Error)
	})
}

func TestTaskHandlerUpdateTask(t *testing.T) {
	userID := uuid.New()
	task := sampleTask(userID, "Original title")

	t.Run("applies a partial update", func(t *testing.T) {
		var gotUpdate domain.TaskUpdate
		svc := &mocks.MockTaskService{
			UpdateTaskFn: func(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
				gotUpdate = update

				updated := *task
				require.NoError(t, updated.Apply(update))
				return &updated, nil
			},
		}
		handler := NewTaskHandler(svc, testLogger())

		body := `{"completed":true}`
		req := newTaskRequest(http.MethodPut, "/tasks/"+task.ID.String(), body, userID, task.ID.String())
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Completed)
		assert.Equal(t, "Original title", resp.Title, "unset fields stay unchanged")

		assert.Nil(t, gotUpdate.Title)
		assert.Nil(t, gotUpdate.Description)
		require.NotNil(t, gotUpdate.Completed)
		assert.True(t, *gotUpdate.Completed)
	})

	t.Run("empty object is a no-op returning the task", func(t *testing.T) {
		var gotUpdate domain.TaskUpdate
		svc := &mocks.MockTaskService{
			UpdateTaskFn: func(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
				gotUpdate = update
				return task, nil
			},
		}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodPut, "/tasks/"+task.ID.String(), `{}`, userID, task.ID.String())
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, gotUpdate.IsZero(), "empty object must decode to an all-nil update")

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, task.Title, resp.Title)
	})

	t.Run("missing body is a no-op returning the task", func(t *testing.T) {
		var gotUpdate domain.TaskUpdate
		svc := &mocks.MockTaskService{
			UpdateTaskFn: func(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
				gotUpdate = update
				return task, nil
			},
		}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(http.MethodPut, "/tasks/"+task.ID.String(), "", userID, task.ID.String())
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, gotUpdate.IsZero(), "missing body must decode to an all-nil update")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		req := newTaskRequest(http.MethodPut, "/tasks/"+task.ID.String(), `{"title":`, userID, task.ID.String())
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Invalid request format", resp.Error)
	})

	t.Run("rejects over-length title", func(t *testing.T) {
		handler := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		longTitle := strings.Repeat("a", domain.TaskTitleMaxLength+1)
		body := `{"title":"` + longTitle + `"}`
		req := newTaskRequest(http.MethodPut, "/tasks/"+task.ID.String(), body, userID, task.ID.String())
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("absent task returns 404", func(t *testing.T) {
		svc := &mocks.MockTaskService{Err: store.ErrTaskNotFound}
		handler := NewTaskHandler(svc, testLogger())

		missingID := uuid.New().String()
		req := newTaskRequest(http.MethodPut, "/tasks/"+missingID, `{"completed":true}`, userID, missingID)
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Task not found", resp.Error)
	})

	t.Run("foreign task returns 403", func(t *testing.T) {
		svc := &mocks.MockTaskService{Err: service.ErrTaskNotOwned}
		handler := NewTaskHandler(svc, testLogger())

		req := newTaskRequest(
			http.MethodPut,
			"/tasks/"+task.ID.String(),
			`{"completed":true}`,
			userID,
			task.ID.String(),
		)
		rr := httptest.NewRecorder()

		handler.UpdateTask(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
		resp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "Access denied", resp.Error)
	})
}

func TestTaskHandlerDeleteTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "deletes the task",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "absent task returns 404",
			serviceError:   store.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Task not found",
		},
		{
			name:           "foreign task returns 403",
			serviceError:   service.ErrTaskNotOwned,
			expectedStatus: http.StatusForbidden,
			expectedError:  "Access denied",
		},
		{
			name: "service failure returns 500",
			serviceError: service.NewTaskServiceError(
				"delete_task", "failed to delete task", errors.New("boom"),
			),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to delete task",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{Err: tc.serviceError}
			handler := NewTaskHandler(svc, testLogger())

			req := newTaskRequest(http.MethodDelete, "/tasks/"+taskID.String(), "", userID, taskID.String())
			rr := httptest.NewRecorder()

			handler.DeleteTask(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusNoContent {
				assert.Zero(t, rr.Body.Len(), "204 response must have no body")
				return
			}

			if tc.expectedError != "" {
				resp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, tc.expectedError, resp.Error)
			}
		})
	}
}
