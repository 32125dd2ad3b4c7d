package store

import (
	"slices"
	"sync"

	"clinic-crm/internal/filter"
)

// Collection holds one entity list. Every mutation swaps in a new slice, so a
// snapshot taken by a reader is never changed underneath it.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(v T) bool { return c.id(v) == id })
}

func (c *Collection[T]) Add(v T) error {
	id := c.id(v)
	if id == "" {
		return ErrMissingID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(id) >= 0 {
		return ErrExists
	}
	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.items = append(next, v)
	return nil
}

func (c *Collection[T]) Update(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(c.id(v))
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Clone(c.items)
	next[i] = v
	c.items = next
	return nil
}

// Upsert replaces the item with the same ID or appends it. It reports
// whether a new item was created.
func (c *Collection[T]) Upsert(v T) (bool, error) {
	id := c.id(v)
	if id == "" {
		return false, ErrMissingID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next := slices.Clone(c.items)
	if i := c.index(id); i >= 0 {
		next[i] = v
		c.items = next
		return false, nil
	}
	c.items = append(next, v)
	return true, nil
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	c.items = append(next, c.items[i+1:]...)
	return nil
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// List returns every item in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the items matching p in insertion order.
func (c *Collection[T]) Find(p filter.Predicate[T]) []T {
	c.mu.RLock()
	items := c.items
	c.mu.RUnlock()
	return filter.Apply(items, p)
}

// Replace swaps the whole collection. IDs must be present and unique.
func (c *Collection[T]) Replace(items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, v := range items {
		id := c.id(v)
		if id == "" {
			return ErrMissingID
		}
		if _, dup := seen[id]; dup {
			return ErrExists
		}
		seen[id] = struct{}{}
	}
	next := slices.Clone(items)
	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
