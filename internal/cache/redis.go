package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskflowhq/taskflow-api/internal/redact"
)

// Redis is a Cache backed by a shared Redis instance, so that replicas of
// the API serve and invalidate the same cached responses. Read failures
// degrade to cache misses instead of surfacing errors to the request path.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis connects to the Redis instance described by redisURL
// (redis://[user:password@]host:port[/db]) and returns a Cache whose
// entries live for ttl. The connection is verified with a ping before the
// cache is returned.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{
		client: client,
		ttl:    ttl,
		logger: slog.Default().With(slog.String("component", "redis_cache")),
	}, nil
}

// Ensure Redis implements the Cache interface
var _ Cache = (*Redis)(nil)

// Get implements Cache.Get. Errors other than a missing key are logged and
// reported as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis cache read failed",
				slog.String("error", redact.Error(err)))
		}
		return nil, false
	}
	return value, true
}

// Set implements Cache.Set.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Delete implements Cache.Delete.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close implements Cache.Close.
func (r *Redis) Close() error {
	return r.client.Close()
}
