// File: methods_bounds.go
// Role: Flux-bounds layer.
//
// Every method here requires WithFluxBounds (ErrNoFluxBounds otherwise).
// Full updates for unknown reactions are no-ops, mirroring the add-path policy
// for unresolved references (strict mode reports them). Partial updates need
// an existing pair and fail with ErrBoundsNotFound.
package core

import "fmt"

// SetFluxBounds replaces the bound pair of an existing reaction.
func (m *Model) SetFluxBounds(id string, b Bounds) error {
	if m.bounds == nil {
		return ErrNoFluxBounds
	}
	if !m.reactions.has(id) {
		return m.unresolved("bounds for reaction %q", id)
	}
	m.bounds.put(id, b)

	return nil
}

// SetBounds applies SetFluxBounds to each entry in order, stopping at the first error.
func (m *Model) SetBounds(entries []BoundsEntry) error {
	for _, e := range entries {
		if err := m.SetFluxBounds(e.Reaction, e.Bounds); err != nil {
			return err
		}
	}

	return nil
}

// SetLowerBound updates only the lower side of an existing bound pair.
// Unlike full updates this is never a silent no-op: there is no pair to patch.
//
// Errors:
//   - ErrNoFluxBounds if the model has no bounds layer.
//   - ErrBoundsNotFound if the reaction has no bounds entry (or is unknown).
func (m *Model) SetLowerBound(id string, lower Limit) error {
	return m.updateBounds(id, func(b *Bounds) { b.Lower = lower })
}

// SetUpperBound updates only the upper side of an existing bound pair.
// Errors mirror SetLowerBound.
func (m *Model) SetUpperBound(id string, upper Limit) error {
	return m.updateBounds(id, func(b *Bounds) { b.Upper = upper })
}

func (m *Model) updateBounds(id string, mutate func(*Bounds)) error {
	if m.bounds == nil {
		return ErrNoFluxBounds
	}
	b, ok := m.bounds.get(id)
	if !ok {
		return fmt.Errorf("reaction %q: %w", id, ErrBoundsNotFound)
	}
	mutate(&b)
	m.bounds.put(id, b)

	return nil
}

// FluxBounds returns the bound pair of a reaction. ok is false when the model
// has no bounds layer or the reaction has no entry.
func (m *Model) FluxBounds(id string) (Bounds, bool) {
	if m.bounds == nil {
		return Bounds{}, false
	}

	return m.bounds.get(id)
}

// BoundsEntries returns every bounds entry in insertion order (nil without
// the bounds layer).
func (m *Model) BoundsEntries() []BoundsEntry {
	if m.bounds == nil {
		return nil
	}
	out := make([]BoundsEntry, 0, m.bounds.len())
	m.bounds.each(func(id string, b Bounds) {
		out = append(out, BoundsEntry{Reaction: id, Bounds: b})
	})

	return out
}
