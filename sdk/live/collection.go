// Package live implements a reusable client-side cache that stays
// consistent with a remote change feed: a bulk fetch seeds an ordered
// in-memory collection, feed events are merged in with idempotent rules,
// and optimistic writes apply locally only after the remote write
// succeeds. The merge rules tolerate at-least-once delivery and
// out-of-order arrival relative to optimistic updates.
package live

import (
	"fmt"
	"sync"
)

// Config parameterizes a Collection for one resource type.
type Config[ID comparable, T any] struct {
	// IDOf extracts the row identifier. Required.
	IDOf func(T) ID
	// Less orders the collection. Nil means feed inserts are prepended
	// and bulk-fetch order is otherwise preserved.
	Less func(a, b T) bool
	// Terminal reports rows whose updates should remove them from the
	// active collection instead of replacing in place. Nil means none.
	Terminal func(T) bool
}

// Collection is an ordered set of rows keyed by identifier. Apply rules:
//
//   - insert: no-op when the id is already present, so optimistic
//     duplicates and redelivered events are safe.
//   - update: replace in place when present, no-op when absent so stale
//     updates never resurrect deleted rows. Terminal rows are removed.
//   - delete: remove when present, silent no-op otherwise.
//
// All methods are safe for concurrent use.
type Collection[ID comparable, T any] struct {
	mu    sync.RWMutex
	cfg   Config[ID, T]
	items []T
}

func NewCollection[ID comparable, T any](cfg Config[ID, T]) (*Collection[ID, T], error) {
	if cfg.IDOf == nil {
		return nil, fmt.Errorf("live: Config.IDOf is required")
	}
	return &Collection[ID, T]{cfg: cfg}, nil
}

// Replace swaps the whole collection for a bulk fetch result. When Less
// is set the rows are assumed already ordered by the fetch.
func (c *Collection[ID, T]) Replace(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items[:0:0], rows...)
}

// ApplyInsert merges an inserted row.
func (c *Collection[ID, T]) ApplyInsert(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.cfg.IDOf(row)
	if c.indexOf(id) >= 0 {
		return
	}
	c.insertOrdered(row)
}

// ApplyUpdate merges an updated row.
func (c *Collection[ID, T]) ApplyUpdate(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.cfg.IDOf(row)
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}

	if c.cfg.Terminal != nil && c.cfg.Terminal(row) {
		c.removeAt(idx)
		return
	}

	// Without a comparator rows keep their position; only sorted
	// collections re-place the row.
	if c.cfg.Less == nil {
		c.items[idx] = row
		return
	}

	c.removeAt(idx)
	c.insertOrdered(row)
}

// ApplyDelete removes the row with the given identifier.
func (c *Collection[ID, T]) ApplyDelete(id ID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.removeAt(idx)
}

// Items returns a copy of the collection in order.
func (c *Collection[ID, T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(c.items[:0:0], c.items...)
}

// Get returns the row with the given identifier.
func (c *Collection[ID, T]) Get(id ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return c.items[idx], true
}

// Len returns the number of rows.
func (c *Collection[ID, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[ID, T]) indexOf(id ID) int {
	for i, item := range c.items {
		if c.cfg.IDOf(item) == id {
			return i
		}
	}
	return -1
}

// insertOrdered places a row at its sort position, or prepends when no
// ordering is configured.
func (c *Collection[ID, T]) insertOrdered(row T) {
	if c.cfg.Less == nil {
		c.items = append([]T{row}, c.items...)
		return
	}

	pos := len(c.items)
	for i, item := range c.items {
		if c.cfg.Less(row, item) {
			pos = i
			break
		}
	}

	c.items = append(c.items, row)
	copy(c.items[pos+1:], c.items[pos:])
	c.items[pos] = row
}

func (c *Collection[ID, T]) removeAt(idx int) {
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}
