// Package store persists cache state as a single JSON snapshot file.
//
// Every run rewrites the whole file; there is no append log and no
// incremental diff. Concurrent processes sharing one snapshot race with
// last-writer-wins semantics, which is an accepted limitation of the tool.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/kvcache/internal/cache"
)

// DefaultPath is the snapshot file used by the CLI, relative to the working
// directory.
const DefaultPath = "cache_state.json"

// ErrCorruptState marks a snapshot file that exists but does not contain
// valid cache state. A missing file is not corrupt; it is the first-run path.
var ErrCorruptState = errors.New("cache state file is corrupt")

// Store reads and writes cache snapshots at a fixed path. The path is
// injected so tests can point the store at a temporary location.
type Store struct {
	path string
}

// New returns a store over the snapshot file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Default returns a store over DefaultPath in the current working directory.
func Default() *Store {
	return New(DefaultPath)
}

// Path returns the snapshot file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot and reconstructs the cache.
//
// A missing file is the documented first-run path: Load creates an empty
// cache, eagerly writes it so the file exists for the next run, and returns
// it. Any other read failure, and any malformed content, is an error;
// malformed content wraps ErrCorruptState so callers can tell "corrupt" from
// "unreadable".
func (s *Store) Load() (*cache.Cache[string], error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read cache state from %s: %w", s.path, err)
		}
		c := cache.New[string]()
		if saveErr := s.Save(c); saveErr != nil {
			return nil, saveErr
		}
		return c, nil
	}

	c := cache.New[string]()
	if unmarshalErr := json.Unmarshal(data, c); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, unmarshalErr)
	}
	if c.Entries == nil {
		// A snapshot with "entries": null decodes to a nil map.
		c.Entries = make(map[string]cache.Entry[string])
	}
	return c, nil
}

// Save serializes the full cache contents to the snapshot file, replacing it
// entirely. Entries past their expiry that have not been lazily evicted yet
// are written out as-is.
//
// The snapshot is written to a temporary file and renamed into place so a
// failed write never truncates the previous state.
func (s *Store) Save(c *cache.Cache[string]) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize cache state: %w", err)
	}

	tempPath := s.path + ".tmp"
	if writeErr := os.WriteFile(tempPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write cache state to %s: %w", s.path, writeErr)
	}
	if renameErr := os.Rename(tempPath, s.path); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace cache state at %s: %w", s.path, renameErr)
	}
	return nil
}
