package cache

import (
	"context"
	"time"
)

// Cache stores upstream response bodies for a bounded time
type Cache interface {
	// Get retrieves a value. A miss and a backend failure both report false.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error

	// Close releases background resources
	Close() error
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
	Size      int64
	MaxSize   int64
	Items     int
}

// StatsProvider is implemented by caches that track their own statistics
type StatsProvider interface {
	Stats() Stats
}
