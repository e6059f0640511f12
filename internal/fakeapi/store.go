package fakeapi

import (
	"slices"
	"sync"
)

// Collection is an insertion-ordered in-memory table keyed by id.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Put inserts item or replaces the one stored under id in place.
func (c *Collection[T]) Put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// Update replaces the item under id with fn's result while holding the write
// lock. fn receives the current item and whether it existed.
func (c *Collection[T]) Update(id string, fn func(T, bool) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, exists := c.items[id]
	next, err := fn(current, exists)
	if err != nil {
		return current, err
	}
	if !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = next
	return next, nil
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
	return true
}

// Find returns the first item, in insertion order, that match accepts.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List returns a snapshot of the items match accepts; nil match keeps all.
func (c *Collection[T]) List(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
