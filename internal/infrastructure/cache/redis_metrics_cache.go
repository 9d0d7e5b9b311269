package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMetricsCache implements MetricsCache on Redis. Suitable for
// deployments where several instances serve the same dashboard and
// should share computed payloads.
type RedisMetricsCache struct {
	client *redis.Client
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisMetricsCache creates a Redis-backed metrics cache and verifies
// the connection before returning.
func NewRedisMetricsCache(cfg RedisConfig) (*RedisMetricsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisMetricsCache{client: client}, nil
}

// NewRedisMetricsCacheWithClient wraps an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisMetricsCacheWithClient(client *redis.Client) *RedisMetricsCache {
	return &RedisMetricsCache{client: client}
}

// Get fetches a cached payload. A missing key is a miss, not an error.
func (c *RedisMetricsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return payload, true, nil
}

// Set stores a payload with a TTL
func (c *RedisMetricsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate removes a key
func (c *RedisMetricsCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache key %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisMetricsCache) Close() error {
	return c.client.Close()
}

// Ensure RedisMetricsCache implements MetricsCache
var _ MetricsCache = (*RedisMetricsCache)(nil)
