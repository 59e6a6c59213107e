package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store persists named, immutable blobs (snapshots).
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a blob atomically, replacing any existing blob of that name.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the full contents of a blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
