// Package blobstore provides storage abstraction for seglist snapshots.
//
// Store is the interface for reading and writing named, immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests
//   - LocalStore: local filesystem, atomic writes, mmap reads
//   - CachingStore: LRU read cache in front of any Store
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with multipart uploads
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Get(ctx, name) ([]byte, error)     // ErrNotFound if missing
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
