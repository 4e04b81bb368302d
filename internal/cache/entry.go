package cache

import "time"

// Entry holds a cached value together with its absolute expiry timestamp.
type Entry[T any] struct {
	// Value is the cached value.
	Value T `json:"value"`

	// Expiry is the unix-seconds timestamp at which the entry stops being
	// valid. The entry is live while the current time is strictly before it.
	Expiry uint64 `json:"expiry"`
}

// IsExpired reports whether the entry is past its expiry at time now.
func (e Entry[T]) IsExpired(now uint64) bool {
	return now >= e.Expiry
}

// unixNow returns the current time as unsigned unix seconds.
// A clock set before the Unix epoch is an environment fault, not a
// recoverable error.
func unixNow() uint64 {
	now := time.Now().Unix()
	if now < 0 {
		panic("cache: system clock is set before the Unix epoch")
	}
	return uint64(now)
}
