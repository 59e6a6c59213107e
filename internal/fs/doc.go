// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, rename, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]).
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: 1024}) // fail temp files after 1KB
//	store := blobstore.NewLocalStore(dir, blobstore.WithFileSystem(ffs))
//
// Operations take no context.Context. Local file calls are not interruptible
// at the syscall level; callers check the context between calls.
package fs
