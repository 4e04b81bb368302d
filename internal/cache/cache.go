package cache

import (
	"math"
	"time"
)

// Cache maps string keys to values with an absolute expiry per entry.
//
// Entries is exported so the whole cache serializes as a single JSON object
// of the form {"entries": {"key": {"value": ..., "expiry": ...}}}, which is
// the snapshot format the persistence layer writes to disk.
type Cache[T any] struct {
	Entries map[string]Entry[T] `json:"entries"`
}

// New returns an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{Entries: make(map[string]Entry[T])}
}

// Insert stores value under key with an expiry of now + ttl, overwriting any
// existing entry for key. TTLs are truncated to whole seconds, so a
// sub-second TTL expires on the next check; negative TTLs behave like zero.
func (c *Cache[T]) Insert(key string, value T, ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	c.InsertSeconds(key, value, uint64(ttl/time.Second))
}

// InsertSeconds is Insert with the TTL given directly in whole seconds.
// It carries the full uint64 range, so TTLs beyond time.Duration's
// int64-nanosecond ceiling (~292 years) are still inserted as live entries;
// an expiry past the uint64 epoch range saturates instead of wrapping.
func (c *Cache[T]) InsertSeconds(key string, value T, ttlSeconds uint64) {
	if c.Entries == nil {
		c.Entries = make(map[string]Entry[T])
	}
	expiry := unixNow() + ttlSeconds
	if expiry < ttlSeconds {
		expiry = math.MaxUint64
	}
	c.Entries[key] = Entry[T]{Value: value, Expiry: expiry}
}

// Get returns the value stored under key if it is present and not yet
// expired. An expired entry is removed as a side effect of the lookup and
// reported as absent.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	entry, ok := c.Entries[key]
	if !ok {
		return zero, false
	}
	if entry.IsExpired(unixNow()) {
		delete(c.Entries, key)
		return zero, false
	}
	return entry.Value, true
}

// Invalidate removes the entry for key, expired or not. Removing an absent
// key is a no-op.
func (c *Cache[T]) Invalidate(key string) {
	delete(c.Entries, key)
}

// Len returns the number of resident entries, including any that are past
// expiry but have not been touched by a Get yet.
func (c *Cache[T]) Len() int {
	return len(c.Entries)
}

// Contains reports whether key is resident, without checking expiry and
// without triggering lazy removal.
func (c *Cache[T]) Contains(key string) bool {
	_, ok := c.Entries[key]
	return ok
}
