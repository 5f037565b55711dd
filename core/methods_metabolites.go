// File: methods_metabolites.go
// Role: Metabolite and compartment lifecycle & queries.
//
// Determinism:
//   - MetaboliteIDs() and CompartmentIDs() return insertion order.
//
// Invariants:
//   - A metabolite's Compartment is empty or names an existing compartment at
//     insertion time.
//   - Removing a metabolite removes every incident stoichiometric edge.
package core

import "fmt"

// AddMetabolite inserts or replaces a metabolite.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyID).
//   - Stage 2: Resolve the compartment reference; an unknown compartment skips
//     the insert (or fails with ErrUnresolvedReference in strict mode).
//   - Stage 3: Insert-or-replace, keeping the original position on replace.
//
// Complexity: O(1) amortized.
func (m *Model) AddMetabolite(met Metabolite) error {
	if met.ID == "" {
		return ErrEmptyID
	}
	if met.Compartment != "" && !m.compartments.has(met.Compartment) {
		return m.unresolved("metabolite %q: compartment %q", met.ID, met.Compartment)
	}
	m.metabolites.put(met.ID, met)

	return nil
}

// AddMetabolites adds each metabolite in order, stopping at the first error.
func (m *Model) AddMetabolites(mets ...Metabolite) error {
	for _, met := range mets {
		if err := m.AddMetabolite(met); err != nil {
			return err
		}
	}

	return nil
}

// Metabolite returns the metabolite with the given ID.
func (m *Model) Metabolite(id string) (Metabolite, bool) { return m.metabolites.get(id) }

// HasMetabolite reports whether the metabolite exists.
func (m *Model) HasMetabolite(id string) bool { return m.metabolites.has(id) }

// MetaboliteIDs returns metabolite IDs in insertion order.
func (m *Model) MetaboliteIDs() []string { return m.metabolites.keys() }

// Metabolites returns the metabolite records in insertion order.
func (m *Model) Metabolites() []Metabolite {
	out := make([]Metabolite, 0, m.metabolites.len())
	m.metabolites.each(func(_ string, v Metabolite) { out = append(out, v) })

	return out
}

// MetaboliteCount returns the number of metabolites.
func (m *Model) MetaboliteCount() int { return m.metabolites.len() }

// RemoveMetabolites deletes the given metabolites and every edge touching them.
// Unknown IDs are ignored.
//
// Complexity: O(M + E) for one pass over each catalog.
func (m *Model) RemoveMetabolites(ids ...string) {
	set := toSet(ids)
	m.metabolites.removeWhere(func(id string, _ Metabolite) bool {
		_, hit := set[id]
		return hit
	})
	m.stoichiometry.removeWhere(func(k edgeKey, _ float64) bool {
		_, hit := set[k.metabolite]
		return hit
	})
}

// RemoveMetabolite deletes one metabolite and its edges.
func (m *Model) RemoveMetabolite(id string) { m.RemoveMetabolites(id) }

// AddCompartment inserts or replaces a compartment.
func (m *Model) AddCompartment(c Compartment) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	m.compartments.put(c.ID, c)

	return nil
}

// AddCompartments adds each compartment in order, stopping at the first error.
func (m *Model) AddCompartments(cs ...Compartment) error {
	for _, c := range cs {
		if err := m.AddCompartment(c); err != nil {
			return err
		}
	}

	return nil
}

// Compartment returns the compartment with the given ID.
func (m *Model) Compartment(id string) (Compartment, bool) { return m.compartments.get(id) }

// CompartmentIDs returns compartment IDs in insertion order.
func (m *Model) CompartmentIDs() []string { return m.compartments.keys() }

// RemoveCompartment deletes a compartment. With cascade, every metabolite
// assigned to it is removed as well (together with its edges); without
// cascade those metabolites keep their now-dangling compartment ID.
// Unknown IDs are ignored.
func (m *Model) RemoveCompartment(id string, cascade bool) {
	if !m.compartments.remove(id) || !cascade {
		return
	}
	var doomed []string
	m.metabolites.each(func(mid string, met Metabolite) {
		if met.Compartment == id {
			doomed = append(doomed, mid)
		}
	})
	m.RemoveMetabolites(doomed...)
}

// unresolved reports a skipped reference: nil in lenient mode, a wrapped
// ErrUnresolvedReference in strict mode.
func (m *Model) unresolved(format string, args ...any) error {
	if !m.strict {
		return nil
	}

	return fmt.Errorf("%w: "+format, append([]any{ErrUnresolvedReference}, args...)...)
}

// toSet builds a membership set from ids.
func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
