package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/seglist/internal/resource"
)

// LRU is a byte-bounded least-recently-used cache of immutable blobs.
// It is safe for concurrent use.
type LRU struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List
	rc        *resource.Controller

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	key   string
	value []byte
}

// NewLRU creates a new LRU cache with the given capacity in bytes.
// If rc is provided, cached bytes are also charged against its memory budget.
func NewLRU(capacity int64, rc *resource.Controller) *LRU {
	return &LRU{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		rc:        rc,
	}
}

// Get returns a cached value. The slice must be treated as read-only.
func (c *LRU) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

// Set caches a value. Values larger than the capacity, or refused by the
// resource controller, are not cached.
func (c *LRU) Set(key string, b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
	}

	itemSize := int64(len(b))
	if itemSize > c.capacity {
		return
	}

	// Evict first so the controller sees the released bytes.
	for c.size+itemSize > c.capacity {
		ent := c.evictList.Back()
		if ent == nil {
			break
		}
		c.removeElement(ent)
	}

	if err := c.rc.AcquireMemory(itemSize); err != nil {
		return
	}

	c.items[key] = c.evictList.PushFront(&entry{key, b})
	c.size += itemSize
}

// Remove drops key if present.
func (c *LRU) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
	}
}

// Stats returns hit and miss counts.
func (c *LRU) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Size returns the current size of the cache in bytes.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *LRU) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
	itemSize := int64(len(kv.value))
	c.size -= itemSize
	c.rc.ReleaseMemory(itemSize)
}
