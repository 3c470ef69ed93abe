package silo

import "github.com/TheBitDrifter/bark"

// Cache is a string-keyed, densely-indexed store with a fixed capacity —
// useful for registries built on top of silo (prefab templates, asset
// handles) that want O(1) lookup by both name and integer index. It isn't
// part of the entity/component/archetype core; it's a standalone utility
// the core never depends on.
type Cache[T any] interface {
	Register(key string, item T) (int, error)
	GetIndex(key string) (int, bool)
	GetItem(index int) T
	GetItem32(index uint32) T
	Clear()
}

var _ Cache[any] = &SimpleCache[any]{}

// SimpleCache is the sole Cache implementation. Index 0 is reserved as a
// sentinel (never returned by Register) so callers can use 0 to mean "no
// entry" without it colliding with a real registration.
type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

// NewSimpleCache returns an empty cache that can hold up to capacity items.
func NewSimpleCache[T any](capacity int) *SimpleCache[T] {
	c := &SimpleCache[T]{maxCapacity: capacity}
	c.reset()
	return c
}

func (c *SimpleCache[T]) reset() {
	var zero T
	c.items = append(c.items[:0], zero)
	c.itemIndices = make(map[string]int, c.maxCapacity)
}

// GetIndex returns the index item was registered under.
func (c *SimpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

// GetItem returns the item at index, as returned by Register or GetIndex.
// Panics if index is out of range — a caller holding an index it didn't
// get from this cache is a programmer error.
func (c *SimpleCache[T]) GetItem(index int) T {
	if index <= 0 || index >= len(c.items) {
		panic(bark.AddTrace(CacheIndexError{Index: index, Len: len(c.items)}))
	}
	return c.items[index]
}

// GetItem32 is GetItem for callers that naturally carry a uint32 index.
func (c *SimpleCache[T]) GetItem32(index uint32) T {
	return c.GetItem(int(index))
}

// Register stores item under key and returns its index, or CacheFullError
// once maxCapacity distinct keys have been registered. Re-registering an
// existing key overwrites its item and returns the existing index.
func (c *SimpleCache[T]) Register(key string, item T) (int, error) {
	if idx, ok := c.itemIndices[key]; ok {
		c.items[idx] = item
		return idx, nil
	}
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, CacheFullError{Capacity: c.maxCapacity}
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

// Clear removes every registration, leaving capacity unchanged.
func (c *SimpleCache[T]) Clear() {
	c.reset()
}
