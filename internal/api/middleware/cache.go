package middleware

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/cache"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
)

// cacheRecorder captures the status and body a handler writes so that a
// successful response can be stored for replay.
type cacheRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
	body       bytes.Buffer
}

func (cr *cacheRecorder) WriteHeader(code int) {
	if !cr.written {
		cr.statusCode = code
		cr.written = true
	}
	cr.ResponseWriter.WriteHeader(code)
}

func (cr *cacheRecorder) Write(b []byte) (int, error) {
	if !cr.written {
		cr.statusCode = http.StatusOK
		cr.written = true
	}
	// Only successful bodies are worth keeping
	if cr.statusCode == http.StatusOK {
		cr.body.Write(b)
	}
	return cr.ResponseWriter.Write(b)
}

// ResponseCache serves repeated GET requests from a fixed-TTL cache. Writes
// do not invalidate entries; a cached response may be stale for up to the
// backend's TTL, which callers observe through the X-Cache header.
type ResponseCache struct {
	cache     cache.Cache
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewResponseCache creates a ResponseCache backed by the given cache.
func NewResponseCache(c cache.Cache, collector *metrics.Collector) *ResponseCache {
	if c == nil {
		panic("cache cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if collector == nil {
		panic("collector cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}

	return &ResponseCache{
		cache:     c,
		collector: collector,
		logger:    slog.Default().With(slog.String("component", "response_cache")),
	}
}

// Serve is the middleware that answers GET requests from the cache when a
// live entry exists and records fresh 200 responses otherwise. It must run
// after authentication: cache keys embed the acting user so one user's
// responses are never replayed to another.
func (rc *ResponseCache) Serve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
		if !ok {
			// No authenticated user means no safe cache key
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(userID, r)

		if body, found := rc.cache.Get(r.Context(), key); found {
			rc.collector.RecordCacheHit()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(body); err != nil {
				rc.logger.Warn("failed to write cached response",
					slog.String("error", err.Error()))
			}
			return
		}

		rc.collector.RecordCacheMiss()
		w.Header().Set("X-Cache", "MISS")

		rec := &cacheRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.statusCode == http.StatusOK && rec.body.Len() > 0 {
			if err := rc.cache.Set(r.Context(), key, rec.body.Bytes()); err != nil {
				rc.logger.Warn("failed to store response in cache",
					slog.String("error", err.Error()))
			}
		}
	})
}

// cacheKey builds the key a request is cached under. The user ID prefix
// isolates users from each other, and the query string is re-encoded so
// parameter order does not split otherwise identical requests into
// separate entries.
func cacheKey(userID uuid.UUID, r *http.Request) string {
	return userID.String() + ":" + r.Method + ":" + r.URL.Path + "?" + r.URL.Query().Encode()
}
