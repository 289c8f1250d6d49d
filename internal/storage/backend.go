// Package storage provides the per-client persistent key-value store that
// backs favorites, view history and session state.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when the key is absent.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a raw key-value store partitioned by client scope.
// Implementations must be safe for concurrent use. Writes to the same key
// are last-write-wins.
type Backend interface {
	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context, scope, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, scope, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, scope, key string) error
}
