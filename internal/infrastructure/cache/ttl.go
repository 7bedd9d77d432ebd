package cache

import (
	"container/list"
	"errors"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// Cache is a bounded in-memory key/value store with a shared per-entry TTL.
//
// Eviction is insertion-order: writing a new key at capacity drops the
// least-recently-inserted entry. Get does not refresh recency, so this is not
// an LRU. Expiry is lazy: an expired entry is removed the next time it is
// read, and Len counts entries that have expired but not yet been purged.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[K]*list.Element
	order    *list.List // front is the oldest insertion

	now func() time.Time
}

// New builds a cache. Capacity must be at least 1; a zero TTL makes every
// entry expire immediately, which is still valid (caching disabled).
func New[K comparable, V any](capacity int, ttl time.Duration) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, errors.New("cache: capacity must be at least 1")
	}
	if ttl < 0 {
		return nil, errors.New("cache: ttl must not be negative")
	}
	return &Cache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[K]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}, nil
}

// Get returns the value stored for key. An entry past its expiry is removed
// and reported absent.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	ent := el.Value.(*entry[K, V])
	if !c.now().Before(ent.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return zero, false
	}
	return ent.value, true
}

// Set stores value under key with a fresh expiry. Overwriting an existing key
// moves it to the back of the insertion order, keeping the order aligned with
// expiry times. Inserting a new key at capacity evicts exactly one entry, the
// oldest-inserted one.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.entries[key]; ok {
		ent := el.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToBack(el)
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[K, V]).key)
		}
	}
	c.entries[key] = c.order.PushBack(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*list.Element)
	c.order.Init()
}

// Len reports the number of stored entries, including expired ones that have
// not been read since expiring.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity reports the configured maximum entry count.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// TTL reports the configured entry lifetime.
func (c *Cache[K, V]) TTL() time.Duration { return c.ttl }
