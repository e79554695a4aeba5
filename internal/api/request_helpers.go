package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// getUserIDFromContext reads the authenticated user's UUID out of the
// request context, where the authentication middleware put it. A missing or
// nil value means the handler is running without authentication, which on a
// protected route is a wiring bug.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID parses the named chi path parameter as a UUID. Failures come
// back as domain validation errors so the shared error mapping turns them
// into 400 responses.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// taskSortFields is the allow-list of sort keys accepted by the task list
// endpoint. Anything else falls back to the default sort.
var taskSortFields = map[string]bool{
	"id":        true,
	"title":     true,
	"completed": true,
}

// NewTaskListParams builds normalized task listing parameters from request
// query values. Parsing is total: malformed or out-of-range values fall back
// to defaults instead of erroring, so the endpoint never rejects a request
// over its query string.
//
//   - page: 1 when missing, unparsable, or < 1
//   - limit: 10 when missing or unparsable, otherwise clamped into [1,100]
//   - sort: one of taskSortFields, otherwise "id"
//   - order: "desc" passes through, anything else means "asc"
//   - completed: strconv.ParseBool, filter dropped when unparsable
//
// Returns the store parameters and the 1-based page number they encode.
func NewTaskListParams(query url.Values) (store.TaskListParams, int) {
	page := 1
	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 1 {
			page = v
		}
	}

	limit := store.TaskListLimitDef
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
			if limit < 1 {
				limit = 1
			}
			if limit > store.TaskListLimitMax {
				limit = store.TaskListLimitMax
			}
		}
	}

	params := store.TaskListParams{
		SortBy:    store.TaskSortDefault,
		SortOrder: store.TaskOrderAsc,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	if raw := query.Get("sort"); taskSortFields[raw] {
		params.SortBy = raw
	}

	if query.Get("order") == store.TaskOrderDesc {
		params.SortOrder = store.TaskOrderDesc
	}

	if raw := query.Get("completed"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			params.Completed = &v
		}
	}

	return params, page
}
