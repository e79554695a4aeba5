// Package shared holds helpers used by the API handlers and middleware:
// request context keys, trace IDs, JSON decoding, and response writing.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the type for all context values this package stores, so
// they can never collide with keys from other packages.
type ContextKey string

const (
	// UserIDContextKey holds the authenticated user's uuid.UUID, set by the
	// authentication middleware.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey holds the request's trace ID string.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the trace ID's size in random bytes, before hex
	// encoding doubles it.
	TraceIDLength = 16
)

// SetTraceID derives a context carrying a fresh trace ID, used to
// correlate log entries and error responses for one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the context's trace ID, or "" when none was set.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// generateTraceID returns a 32-character hex string from crypto/rand.
// If the random source fails it degrades to a clock-based ID instead of
// a constant.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate secure random trace ID", "error", err)
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// generateFallbackTraceID builds a trace ID from two clock samples. Two
// requests only collide when both samples land on the same nanosecond.
func generateFallbackTraceID() string {
	b := make([]byte, TraceIDLength)
	binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint64(b[8:], uint64(time.Now().UnixNano()))
	return hex.EncodeToString(b)
}
