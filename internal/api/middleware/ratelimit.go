package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
)

// visitor tracks one client's current fixed window.
type visitor struct {
	windowStart time.Time
	count       int
	lastSeen    time.Time
}

// RateLimiter enforces a fixed-window request limit per client IP. Each
// client gets at most limit requests per window; the counter resets in full
// when the window elapses. Every response carries X-RateLimit-Limit,
// X-RateLimit-Remaining and X-RateLimit-Reset headers, and rejected
// requests additionally carry Retry-After.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor

	collector *metrics.Collector
	logger    *slog.Logger
	stopCh    chan struct{}
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window
// for each client IP and starts a background goroutine that evicts idle
// clients. Stop must be called to release it.
func NewRateLimiter(limit int, window time.Duration, collector *metrics.Collector) *RateLimiter {
	if collector == nil {
		panic("collector cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}

	rl := &RateLimiter{
		limit:     limit,
		window:    window,
		visitors:  make(map[string]*visitor),
		collector: collector,
		logger:    slog.Default().With(slog.String("component", "rate_limiter")),
		stopCh:    make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop stops the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Limit is the middleware that applies the rate limit. It runs before
// routing and authentication, so rejected requests never reach a handler.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		key := clientIP(r)
		allowed, remaining, reset := rl.allow(key, now)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			retryAfter := int(math.Ceil(reset.Sub(now).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			rl.collector.RecordRateLimitRejection()
			rl.logger.Warn("rate limit exceeded",
				slog.String("client_ip", key),
				slog.String("path", r.URL.Path))

			shared.RespondWithError(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// VisitorCount returns the number of clients currently tracked. It is
// intended for tests and diagnostics.
func (rl *RateLimiter) VisitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// allow counts one request against key's window and reports whether it is
// within the limit, how many requests remain, and when the window resets.
// The check and increment happen atomically under the lock so concurrent
// requests from one client cannot both claim the last slot.
func (rl *RateLimiter) allow(key string, now time.Time) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{}
		rl.visitors[key] = v
	}

	if !exists || now.Sub(v.windowStart) >= rl.window {
		v.windowStart = now
		v.count = 0
	}

	v.lastSeen = now
	v.count++

	reset := v.windowStart.Add(rl.window)
	if v.count > rl.limit {
		return false, 0, reset
	}
	return true, rl.limit - v.count, reset
}

// cleanupLoop periodically evicts clients that have gone idle.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup removes visitors not seen for two full windows. Their window has
// long expired, so dropping them cannot change any rate limit decision.
func (rl *RateLimiter) cleanup() {
	idleAfter := rl.window * 2
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > idleAfter {
			delete(rl.visitors, key)
		}
	}
}

// clientIP resolves the address a request is limited under. Proxy headers
// take precedence over the connection address so limits apply to the
// original caller rather than the proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// The first entry is the original client when proxies append
		if i := strings.Index(forwarded, ","); i >= 0 {
			forwarded = forwarded[:i]
		}
		return strings.TrimSpace(forwarded)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
