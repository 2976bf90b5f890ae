// Package kv implements the key-value backing store for Worktop.
// Each key holds one opaque value (a JSON-encoded collection); the store
// knows nothing about entity semantics.
package kv

import "errors"

// Key-value store errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrClosed      = errors.New("store is closed")
)

// Store is the backing key-value store interface. Implementations must be
// safe for use from a single goroutine; Worktop is single-threaded and
// event-driven, so no operation overlaps another.
type Store interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op success.
	Delete(key string) error

	// Keys returns every key currently present, in unspecified order.
	Keys() ([]string, error)

	// Close releases backend resources. Close is idempotent; after Close,
	// all operations return ErrClosed.
	Close() error
}
