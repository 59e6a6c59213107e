// Package mmap provides read-only memory-mapped file access.
//
// blobstore.LocalStore reads snapshot files through a mapping so that
// decoding works on the page cache directly instead of an intermediate copy.
//
// # Usage
//
//	m, err := mmap.Open("list.sgl")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // valid until Close
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), with a sequential madvise(2) hint
//   - Windows: CreateFileMapping/MapViewOfFile
//
// A File may be read concurrently. Callers must not touch Bytes() after
// Close returns.
package mmap
