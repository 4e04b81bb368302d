// Package cache provides an in-memory key-value cache with per-entry TTL
// expiration.
//
// Expiration is entirely lazy: an entry past its expiry stays resident until
// the next Get on its key, which removes it as a side effect. There is no
// background sweep, no capacity bound, and no eviction policy beyond TTL.
// Expiry timestamps are unsigned 64-bit unix seconds, so validity has
// whole-second granularity: an entry is live while now < expiry.
//
// The cache is not safe for concurrent use; callers in this repository run it
// from a single-threaded, single-shot process.
package cache
