// SPDX-License-Identifier: MIT

// Package core - nested lookup tables over the sparse edge set.
package core

// Entry is one inner cell of a Table: the ID on the other side of the edge
// and its coefficient.
type Entry struct {
	ID          string
	Coefficient float64
}

// Table is an ordered two-level view of the stoichiometry, either
// metabolite → reaction → coefficient or reaction → metabolite → coefficient.
// A Table is a snapshot: later model mutations are not reflected.
type Table struct {
	keys []string
	rows map[string][]Entry
}

func newTable(keys []string) *Table {
	t := &Table{keys: keys, rows: make(map[string][]Entry, len(keys))}
	for _, k := range keys {
		t.rows[k] = nil
	}

	return t
}

// append adds an inner entry; outer keys unknown to the table are ignored.
func (t *Table) append(outer, inner string, c float64) {
	row, ok := t.rows[outer]
	if !ok {
		return
	}
	t.rows[outer] = append(row, Entry{ID: inner, Coefficient: c})
}

// Keys returns the outer IDs in model order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)

	return out
}

// Len returns the number of outer rows.
func (t *Table) Len() int { return len(t.keys) }

// Has reports whether the table has a row for id.
func (t *Table) Has(id string) bool {
	_, ok := t.rows[id]

	return ok
}

// Row returns the entries of one outer row in edge insertion order.
// The caller must not modify the returned slice.
func (t *Table) Row(id string) []Entry { return t.rows[id] }

// Coefficient returns the coefficient at (outer, inner).
func (t *Table) Coefficient(outer, inner string) (float64, bool) {
	for _, e := range t.rows[outer] {
		if e.ID == inner {
			return e.Coefficient, true
		}
	}

	return 0, false
}

// Map converts the table to plain nested maps (order is lost).
func (t *Table) Map() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(t.keys))
	for _, k := range t.keys {
		inner := make(map[string]float64, len(t.rows[k]))
		for _, e := range t.rows[k] {
			inner[e.ID] = e.Coefficient
		}
		out[k] = inner
	}

	return out
}
