package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache loads missing values with fn and stores them in cache.
// Errors from fn are returned and never cached.
type ReadThroughCache[K comparable, V any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, key K) (V, error)
	ttl             time.Duration
	shouldSkipCache bool
}

func NewReadThroughCache[K comparable, V any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, key K) (V, error),
	ttl time.Duration,
	shouldSkipCache bool,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:           cache,
		fn:              fn,
		ttl:             ttl,
		shouldSkipCache: shouldSkipCache,
	}
}

func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	return r.load(ctx, key)
}

func (r *ReadThroughCache[K, V]) GetWithRefresh(ctx context.Context, key K) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, key)
	}

	if value, ok := r.cache.GetWithRefresh(ctx, key, r.ttl); ok {
		return value, nil
	}

	return r.load(ctx, key)
}

// Stats exposes the underlying cache counters.
func (r *ReadThroughCache[K, V]) Stats() Stats {
	return r.cache.Stats()
}

func (r *ReadThroughCache[K, V]) load(ctx context.Context, key K) (V, error) {
	value, err := r.fn(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)

	return value, nil
}
