package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MetricsCache stores pre-computed dashboard payloads keyed by tenant and
// fiscal-year label. Values are opaque JSON; the application layer owns
// the shape. A miss is (nil, false, nil), never an error.
type MetricsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Close() error
}

// MetricsKey builds the cache key for a tenant's fiscal-year summary.
// The Pending/Outstanding split moves with the reference day, so the
// day is part of the key and a stale day can never be served.
func MetricsKey(tenantID uuid.UUID, label string, day time.Time) string {
	return fmt.Sprintf("dashboard:metrics:%s:%s:%s", tenantID, label, day.Format("2006-01-02"))
}

// SeriesKey builds the cache key for a tenant's monthly series
func SeriesKey(tenantID uuid.UUID, label string) string {
	return fmt.Sprintf("dashboard:series:%s:%s", tenantID, label)
}
