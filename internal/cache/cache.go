// Package cache provides the storage backends for HTTP response caching:
// an in-process TTL map for single-instance deployments and a Redis-backed
// variant for deployments running multiple API replicas.
package cache

import "context"

// Cache stores serialized responses under opaque string keys for a fixed
// TTL chosen by the backend. Implementations must be safe for concurrent
// use by multiple goroutines.
type Cache interface {
	// Get returns the value stored under key and whether a live entry was
	// found. Expired entries are treated as absent.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for the backend's TTL, replacing any
	// existing entry.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the entry under key, if present.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
