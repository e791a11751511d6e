// Package namecache memoizes derived forms of font family names.
//
// Every name the selection layer sees passes through the same
// derivation: requested families, engine results and fallback rankings
// are all reduced to a case-folded identity, and the same handful of
// names recurs for the lifetime of a process. The cache is sharded so
// concurrent lookups do not serialize on one lock, and bounded so
// generated name sets cannot grow it without limit.
package namecache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	shardCount = 16

	// shardMask is used for fast shard selection (shardCount - 1).
	shardMask = shardCount - 1

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256
)

// Cache memoizes one string derivation. It is safe for concurrent use.
type Cache struct {
	derive   func(string) string
	capacity int // per shard
	shards   [shardCount]shard

	// Statistics (atomic for zero-allocation reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard is a single shard of the cache.
// Each shard has its own mutex for reduced contention.
type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
	lru     lruList
}

// entry holds a memoized value with its LRU node.
type entry struct {
	value string
	node  *lruNode
}

// New creates a cache over the given derivation. Capacity is per
// shard; total capacity is approximately capacity * 16. If capacity
// <= 0, DefaultCapacity (256) is used.
func New(capacity int, derive func(string) string) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &Cache{
		derive:   derive,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]*entry)
	}
	return c
}

// Get returns the derived form of name, computing and memoizing it on
// first request. When a shard is full the least recently used entry
// makes room.
func (c *Cache) Get(name string) string {
	s := &c.shards[hash(name)&shardMask]

	// Fast path: read lock to check existence
	s.mu.RLock()
	_, exists := s.entries[name]
	s.mu.RUnlock()

	if exists {
		// Update LRU (requires write lock)
		s.mu.Lock()
		if e, ok := s.entries[name]; ok {
			s.lru.moveToFront(e.node)
			value := e.value
			s.mu.Unlock()
			c.hits.Add(1)
			return value
		}
		s.mu.Unlock()
		// Evicted between the checks; recompute below.
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring write lock
	if e, ok := s.entries[name]; ok {
		s.lru.moveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := c.derive(name)

	// Evict if at capacity
	for s.lru.len >= c.capacity {
		oldest, ok := s.lru.removeOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
	}

	s.entries[name] = &entry{value: value, node: s.lru.pushFront(name)}
	return value
}

// Len returns the number of memoized names across all shards.
func (c *Cache) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns the hit and miss counts.
// This operation is lock-free (atomic counters).
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// hash computes the FNV-1a hash of a name for shard selection.
func hash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}
