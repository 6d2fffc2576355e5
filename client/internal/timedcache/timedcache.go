// Package timedcache holds a single best-effort value with an absolute
// freshness window. Used for aggregate reads (admin counts, flagged items)
// where a short staleness is acceptable.
package timedcache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the freshness window observed by the aggregate consumers.
const DefaultTTL = 30 * time.Second

// Fetcher loads the value from the backend.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Cache caches one value for ttl after a successful fetch. Concurrent
// misses are not deduplicated: each caller in the stale window performs its
// own fetch. The freshness contract only promises that a value younger than
// ttl is served locally.
type Cache[T any] struct {
	mu        sync.Mutex
	value     T
	fetchedAt time.Time
	populated bool

	fetch Fetcher[T]
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithClock overrides the time source. Tests use this to step through the
// freshness window.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Cache[T]) { c.now = now }
}

func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(c *Cache[T]) { c.ttl = ttl }
}

func New[T any](fetch Fetcher[T], opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{fetch: fetch, ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value when it is younger than ttl and force is
// false; otherwise it fetches, stores the result with the current timestamp
// and returns it. A failed fetch leaves the previous value and its
// timestamp untouched.
func (c *Cache[T]) Get(ctx context.Context, force bool) (T, error) {
	c.mu.Lock()
	if c.populated && !force && c.now().Sub(c.fetchedAt) < c.ttl {
		v := c.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := c.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.value = v
	c.fetchedAt = c.now()
	c.populated = true
	c.mu.Unlock()
	return v, nil
}

// Cached returns the last stored value without any backend call.
func (c *Cache[T]) Cached() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.populated
}
