package blobstore

import (
	"context"

	"github.com/hupe1980/seglist/internal/cache"
	"github.com/hupe1980/seglist/internal/resource"
)

// CachingStore wraps a Store and keeps recently read blobs in memory.
// Writes and deletes go straight to the inner store and invalidate the entry.
type CachingStore struct {
	inner Store
	cache *cache.LRU
}

// CachingOption configures a CachingStore.
type CachingOption func(*cachingOptions)

type cachingOptions struct {
	memoryLimit int64
}

// WithCacheMemoryLimit charges cached bytes against a memory budget in
// addition to the cache capacity.
func WithCacheMemoryLimit(bytes int64) CachingOption {
	return func(o *cachingOptions) {
		o.memoryLimit = bytes
	}
}

// NewCachingStore creates a new CachingStore holding at most capacityBytes.
func NewCachingStore(inner Store, capacityBytes int64, opts ...CachingOption) *CachingStore {
	var o cachingOptions
	for _, opt := range opts {
		opt(&o)
	}
	var rc *resource.Controller
	if o.memoryLimit > 0 {
		rc = resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacityBytes, rc),
	}
}

// Put implements Store.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Remove(name)
	return s.inner.Put(ctx, name, data)
}

// Get implements Store. Callers must treat the returned slice as read-only:
// it is shared with later Gets of the same blob.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if b, ok := s.cache.Get(name); ok {
		return b, nil
	}
	b, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, b)
	return b, nil
}

// Delete implements Store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Remove(name)
	return s.inner.Delete(ctx, name)
}

// List implements Store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
