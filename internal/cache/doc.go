// Package cache provides a byte-bounded LRU used by blobstore.CachingStore
// to keep recently loaded snapshots in memory.
//
// Cached bytes can optionally be charged against a resource.Controller so
// that a cache shares one memory budget with the lists it feeds.
package cache
