package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value cache with per-item expiry.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
	Stats() Stats
}

// Stats counts lookups since the cache was created or last flushed.
type Stats struct {
	Hits   int64
	Misses int64
	Items  int
}
