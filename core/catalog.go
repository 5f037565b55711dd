// File: catalog.go
// Role: Insertion-ordered map used by every Model collection.
//
// Determinism:
//   - keys() enumerates in first-insertion order.
//   - put() on an existing key replaces the value in place (position unchanged).
//
// Mutation:
//   - removal compacts the key slice once per call; bulk removals go through
//     removeWhere so a cascade costs a single O(n) pass.
package core

// catalog is an insertion-ordered map.
type catalog[K comparable, V any] struct {
	order []K
	pos   map[K]int // key → index into order
	vals  map[K]V
}

// newCatalog returns an empty catalog.
func newCatalog[K comparable, V any]() *catalog[K, V] {
	return &catalog[K, V]{
		pos:  make(map[K]int),
		vals: make(map[K]V),
	}
}

// put inserts or replaces the value for k.
// Complexity: O(1) amortized.
func (c *catalog[K, V]) put(k K, v V) {
	if _, ok := c.pos[k]; !ok {
		c.pos[k] = len(c.order)
		c.order = append(c.order, k)
	}
	c.vals[k] = v
}

// get returns the value for k and whether it exists.
func (c *catalog[K, V]) get(k K) (V, bool) {
	v, ok := c.vals[k]

	return v, ok
}

// has reports whether k is present.
func (c *catalog[K, V]) has(k K) bool {
	_, ok := c.pos[k]

	return ok
}

// len returns the number of entries.
func (c *catalog[K, V]) len() int { return len(c.order) }

// keys returns a snapshot of the keys in insertion order.
// The caller owns the returned slice.
func (c *catalog[K, V]) keys() []K {
	out := make([]K, len(c.order))
	copy(out, c.order)

	return out
}

// each calls fn for every entry in insertion order. fn must not mutate c.
func (c *catalog[K, V]) each(fn func(k K, v V)) {
	var k K
	for _, k = range c.order {
		fn(k, c.vals[k])
	}
}

// remove deletes k if present and reports whether it was removed.
// Complexity: O(n) for compaction.
func (c *catalog[K, V]) remove(k K) bool {
	if !c.has(k) {
		return false
	}

	return c.removeWhere(func(key K, _ V) bool { return key == k }) == 1
}

// removeWhere deletes every entry for which pred returns true and returns the
// number of removed entries. Keys are snapshotted before any deletion.
// Complexity: O(n).
func (c *catalog[K, V]) removeWhere(pred func(k K, v V) bool) int {
	kept := c.order[:0]
	removed := 0
	var k K
	for _, k = range c.keys() {
		if pred(k, c.vals[k]) {
			delete(c.vals, k)
			delete(c.pos, k)
			removed++
			continue
		}
		c.pos[k] = len(kept)
		kept = append(kept, k)
	}
	// Release references held by the tail of the backing array.
	var zero K
	for i := len(kept); i < len(c.order); i++ {
		c.order[i] = zero
	}
	c.order = kept

	return removed
}

// clone returns an independent copy; values are copied by assignment.
func (c *catalog[K, V]) clone() *catalog[K, V] {
	out := &catalog[K, V]{
		order: c.keys(),
		pos:   make(map[K]int, len(c.pos)),
		vals:  make(map[K]V, len(c.vals)),
	}
	var (
		k K
		i int
	)
	for i, k = range out.order {
		out.pos[k] = i
		out.vals[k] = c.vals[k]
	}

	return out
}
