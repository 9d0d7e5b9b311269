package cache

import (
	"fmt"

	"github.com/ledgerview/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// MetricsCacheFactory creates metrics caches based on configuration
type MetricsCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// MetricsCacheFactoryOption is a functional option for configuring the factory
type MetricsCacheFactoryOption func(*MetricsCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) MetricsCacheFactoryOption {
	return func(f *MetricsCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) MetricsCacheFactoryOption {
	return func(f *MetricsCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewMetricsCacheFactory creates a new factory
func NewMetricsCacheFactory(cfg config.RedisConfig, opts ...MetricsCacheFactoryOption) *MetricsCacheFactory {
	f := &MetricsCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a metrics cache, preferring Redis and falling back
// to in-memory when Redis is unavailable and fallback is allowed.
func (f *MetricsCacheFactory) CreateCache() (MetricsCache, error) {
	cache, err := NewRedisMetricsCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err == nil {
		f.logger.Info("using Redis metrics cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for metrics cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory metrics cache. "+
		"Cached dashboard payloads will not be shared across instances.",
		zap.Error(err),
	)
	return NewInMemoryMetricsCache(), nil
}
