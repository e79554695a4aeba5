// Package store defines interfaces for data persistence operations.
// These interfaces keep the application's core logic independent of the
// concrete database technology; implementations live under
// internal/platform.
package store
