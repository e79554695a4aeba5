// Package api provides the HTTP handlers for the TaskFlow API: auth
// endpoints (register, login) and the task CRUD endpoints. Handlers decode
// and validate request DTOs, delegate to the service and store layers, and
// translate errors into sanitized JSON responses.
package api
