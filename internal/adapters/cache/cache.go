// Package cache implements an in-memory expiring key-value cache.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultTTL is the lifetime of an entry when none is configured.
const DefaultTTL = 5 * time.Minute

const meterName = "go.trai.ch/brief/cache"

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache implements ports.Cache with a fixed time to live.
// Expired entries are purged lazily on read.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry

	hits      metric.Int64Counter
	misses    metric.Int64Counter
	evictions metric.Int64Counter
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	now   func() time.Time
	meter metric.Meter
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithMeter records cache metrics on the given meter instead of the global one.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// New creates a Cache whose entries live for ttl. A non-positive ttl selects DefaultTTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	o := options{now: time.Now, meter: otel.Meter(meterName)}
	for _, opt := range opts {
		opt(&o)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		ttl:     ttl,
		now:     o.now,
		entries: make(map[string]entry),
	}
	c.initMetrics(o.meter)
	return c
}

func (c *Cache) initMetrics(m metric.Meter) {
	fallback := noop.NewMeterProvider().Meter(meterName)
	counter := func(name, desc string) metric.Int64Counter {
		ctr, err := m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			ctr, _ = fallback.Int64Counter(name)
		}
		return ctr
	}

	c.hits = counter("brief.cache.hits", "Number of cache reads served from a live entry")
	c.misses = counter("brief.cache.misses", "Number of cache reads that found no live entry")
	c.evictions = counter("brief.cache.evictions", "Number of entries removed by expiry or invalidation")
}

// Get returns the value stored under key if it has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(context.Background(), 1)
		return nil, false
	}

	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		c.evictions.Add(context.Background(), 1)
		c.misses.Add(context.Background(), 1)
		return nil, false
	}

	c.hits.Add(context.Background(), 1)
	return e.value, true
}

// Set stores value under key and restarts its lifetime.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, insertedAt: c.now()}
}

// Invalidate removes every entry whose key starts with prefix.
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.evictions.Add(context.Background(), int64(removed))
	}
	return removed
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
