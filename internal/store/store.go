// Package store holds the portal's process-lifetime entity collections.
// Each collection issues its own monotonically increasing integer ids and
// guards its state with a mutex so concurrent inserts cannot race on the
// counter. Nothing is persisted across restarts.
package store

import "sync"

// Collection is a keyed in-memory table for one entity kind. Ids start at 1,
// increment by 1, and are never reused. Scans return entities in insertion
// order.
type Collection[T any] struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]T
	order  []int
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		items:  make(map[int]T),
	}
}

// Get returns the entity with the given id. Absence is a normal outcome,
// not an error.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Insert assigns the next id for this collection and stores the entity
// returned by build. Computed fields belong in build, not in the caller.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

// Update applies a merge function to the stored entity. The second return
// is false when the id is absent, even for a merge that changes nothing.
func (c *Collection[T]) Update(id int, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	item = apply(item)
	c.items[id] = item
	return item, true
}

// Scan returns all entities satisfying match, in insertion order.
func (c *Collection[T]) Scan(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []T
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			result = append(result, item)
		}
	}
	return result
}

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result
}

// Find returns the first entity satisfying match, in insertion order.
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

// Count returns the number of entities satisfying match.
func (c *Collection[T]) Count(match func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, id := range c.order {
		if match(c.items[id]) {
			n++
		}
	}
	return n
}

// UpdateWhere applies a merge function to every entity satisfying match and
// returns how many were updated. A zero count is a valid outcome.
func (c *Collection[T]) UpdateWhere(match func(T) bool, apply func(T) T) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			c.items[id] = apply(item)
			n++
		}
	}
	return n
}

// Len reports the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
