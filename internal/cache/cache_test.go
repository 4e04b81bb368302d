package cache_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/kvcache/internal/cache"
)

// TestCache_InsertThenGet verifies that a freshly inserted value is returned
// before its TTL elapses.
func TestCache_InsertThenGet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		ttl   time.Duration
	}{
		{name: "simple entry", key: "session", value: "abc123", ttl: 60 * time.Second},
		{name: "empty value", key: "empty", value: "", ttl: 30 * time.Second},
		{name: "unicode value", key: "greeting", value: "héllo wörld", ttl: time.Hour},
		{name: "long ttl", key: "api_key", value: "secret123", ttl: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.New[string]()
			c.Insert(tt.key, tt.value, tt.ttl)

			got, ok := c.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

// TestCache_GetMissing verifies that looking up an absent key reports a miss.
func TestCache_GetMissing(t *testing.T) {
	c := cache.New[string]()

	got, ok := c.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, got)
}

// TestCache_ZeroTTLExpiresImmediately verifies the strict expiry boundary:
// an entry inserted with ttl=0 has expiry == insertion time, and now >= expiry
// counts as expired.
func TestCache_ZeroTTLExpiresImmediately(t *testing.T) {
	c := cache.New[string]()
	c.Insert("ephemeral", "gone", 0)

	got, ok := c.Get("ephemeral")
	assert.False(t, ok)
	assert.Empty(t, got)
}

// TestCache_SubSecondTTLTruncates verifies that TTLs below one second round
// down to zero and expire on the next check.
func TestCache_SubSecondTTLTruncates(t *testing.T) {
	c := cache.New[string]()
	c.Insert("blip", "x", 500*time.Millisecond)

	_, ok := c.Get("blip")
	assert.False(t, ok)
}

// TestCache_NegativeTTL verifies that a negative TTL behaves like zero rather
// than wrapping into the far future.
func TestCache_NegativeTTL(t *testing.T) {
	c := cache.New[string]()
	c.Insert("past", "x", -5*time.Second)

	_, ok := c.Get("past")
	assert.False(t, ok)
	assert.False(t, c.Contains("past"))
}

// TestCache_Invalidate verifies unconditional removal, including the
// no-error path for absent keys.
func TestCache_Invalidate(t *testing.T) {
	c := cache.New[string]()
	c.Insert("temp", "data", time.Hour)

	c.Invalidate("temp")
	_, ok := c.Get("temp")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("never-existed")
	assert.Equal(t, 0, c.Len())
}

// TestCache_OverwriteReplacesValueAndExpiry verifies that a second insert for
// the same key replaces both the value and the controlling expiry.
func TestCache_OverwriteReplacesValueAndExpiry(t *testing.T) {
	c := cache.New[string]()

	// First insert is already expired; the overwrite must revive the key
	// with the new TTL.
	c.Insert("k", "v1", 0)
	c.Insert("k", "v2", 60*time.Second)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", got)

	now := uint64(time.Now().Unix())
	entry := c.Entries["k"]
	assert.GreaterOrEqual(t, entry.Expiry, now+59)
	assert.Equal(t, 1, c.Len())
}

// TestCache_LazyRemovalSideEffect verifies that a single Get on an expired
// key both reports a miss and evicts the entry from the mapping.
func TestCache_LazyRemovalSideEffect(t *testing.T) {
	c := cache.New[string]()
	c.Insert("stale", "old", 0)

	// Expired entries stay resident until touched.
	require.Equal(t, 1, c.Len())
	require.True(t, c.Contains("stale"))

	_, ok := c.Get("stale")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains("stale"))
}

// TestCache_LargeTTLSeconds verifies that TTLs beyond time.Duration's
// int64-nanosecond range stay in the uint64 seconds domain instead of
// overflowing into an already-expired entry.
func TestCache_LargeTTLSeconds(t *testing.T) {
	tests := []struct {
		name       string
		ttlSeconds uint64
	}{
		{name: "beyond duration range", ttlSeconds: 10_000_000_000},
		{name: "centuries out", ttlSeconds: 1 << 40},
		{name: "max ttl saturates", ttlSeconds: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.New[string]()
			c.InsertSeconds("k", "v", tt.ttlSeconds)

			got, ok := c.Get("k")
			require.True(t, ok)
			assert.Equal(t, "v", got)

			now := uint64(time.Now().Unix())
			assert.Greater(t, c.Entries["k"].Expiry, now)
		})
	}
}

// TestCache_GenericValues verifies the cache works with non-string value
// types.
func TestCache_GenericValues(t *testing.T) {
	type point struct{ X, Y int }

	c := cache.New[point]()
	c.Insert("origin", point{X: 1, Y: 2}, time.Minute)

	got, ok := c.Get("origin")
	require.True(t, ok)
	assert.Equal(t, point{X: 1, Y: 2}, got)
}

// TestCache_JSONShape verifies the on-disk JSON shape of entries and of the
// cache as a whole.
func TestCache_JSONShape(t *testing.T) {
	data, err := json.Marshal(cache.Entry[string]{Value: "v", Expiry: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"v","expiry":42}`, string(data))

	c := cache.New[string]()
	c.Entries["k"] = cache.Entry[string]{Value: "v", Expiry: 42}
	data, err = json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":{"k":{"value":"v","expiry":42}}}`, string(data))
}

// TestCache_InsertIntoZeroValue verifies that inserting into a zero-value
// cache (for example one decoded from an empty snapshot) allocates the
// mapping instead of panicking.
func TestCache_InsertIntoZeroValue(t *testing.T) {
	var c cache.Cache[string]
	c.Insert("k", "v", time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
