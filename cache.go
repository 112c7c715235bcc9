// Package cache provides a generic, in-process bounded key-value cache
// whose eviction behavior is supplied by a pluggable policy from the
// eviction subpackage. The Cache is the single synchronization point
// between the backing Store and the EvictionPolicy: every Set, Get and
// Remove is mirrored to the policy, and a Set of a new key into a full
// store first removes the victim the policy's Evict returns. If Evict
// returns no victim (for example KLRU holding k or fewer keys), the new
// key is inserted anyway and the store grows past capacity. Policies that
// drop keys from their own bookkeeping during OnInsert or OnAccess (SLRU,
// SFIFO and ARC) leave those keys resident in the store.
package cache

import "github.com/merrick-voss/evictcache/eviction"

// Cache is a bounded key-value container backed by a Store and an owned
// EvictionPolicy. It is not safe for concurrent use; wrap it in an
// external mutex if multiple goroutines need access.
type Cache[K comparable, V any] struct {
	store    *Store[K, V]
	policy   eviction.EvictionPolicy[K]
	capacity int
}

// New creates a Cache with the given eviction policy and capacity. It
// panics if capacity is not positive.
func New[K comparable, V any](policy eviction.EvictionPolicy[K], capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic("cache: New requires a positive capacity")
	}
	return &Cache[K, V]{
		store:    NewStore[K, V](),
		policy:   policy,
		capacity: capacity,
	}
}

// Set inserts or updates key with value. If the store is full and key is
// not already resident, the policy picks a victim to evict first; an
// update to an already-resident key never evicts.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.store.Len() >= c.capacity && !c.store.Contains(key) {
		if evicted, ok := c.policy.Evict(); ok {
			c.store.Remove(evicted)
		}
	}
	c.store.Insert(key, value)
	c.policy.OnInsert(key)
}

// Get returns the value for key and records an access with the policy, if
// key is resident.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.policy.OnAccess(key)
	return v, true
}

// Remove deletes key from both the policy and the store, and returns its
// value if it was resident.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.policy.OnRemove(key)
	return c.store.Remove(key)
}

// Len returns the number of resident keys.
func (c *Cache[K, V]) Len() int {
	return c.store.Len()
}
