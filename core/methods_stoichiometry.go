// File: methods_stoichiometry.go
// Role: Stoichiometric edges and their bulk views.
//
// Determinism:
//   - Edges() and both lookup tables follow edge insertion order within a row
//     and model insertion order across rows.
//   - StoichiometricMatrix() rows follow metabolite order, columns reaction order.
//
// Complexity:
//   - Views are computed on demand in O(M + R + E); cache a Table when you need
//     repeated lookups (FormatReaction accepts one for that reason).
package core

// AddStoichiometry installs edges whose endpoints both exist. An edge for an
// existing (metabolite, reaction) pair replaces its coefficient in place.
// Edges with a missing endpoint are skipped (strict mode: the first one fails
// with ErrUnresolvedReference and later edges are not applied).
//
// Complexity: O(len(edges)).
func (m *Model) AddStoichiometry(edges ...Edge) error {
	for _, e := range edges {
		if !m.metabolites.has(e.Metabolite) || !m.reactions.has(e.Reaction) {
			if err := m.unresolved("edge (%q, %q)", e.Metabolite, e.Reaction); err != nil {
				return err
			}
			continue
		}
		m.stoichiometry.put(edgeKey{metabolite: e.Metabolite, reaction: e.Reaction}, e.Coefficient)
	}

	return nil
}

// Coefficient returns the stoichiometric coefficient of a (metabolite,
// reaction) pair; ok is false when no edge exists (coefficient zero).
func (m *Model) Coefficient(metabolite, reaction string) (float64, bool) {
	return m.stoichiometry.get(edgeKey{metabolite: metabolite, reaction: reaction})
}

// Edges returns every stoichiometric edge in insertion order.
func (m *Model) Edges() []Edge {
	out := make([]Edge, 0, m.stoichiometry.len())
	m.stoichiometry.each(func(k edgeKey, c float64) {
		out = append(out, Edge{Metabolite: k.metabolite, Reaction: k.reaction, Coefficient: c})
	})

	return out
}

// EdgeCount returns the number of stoichiometric edges.
func (m *Model) EdgeCount() int { return m.stoichiometry.len() }

// MetaboliteReactionTable groups edges as metabolite → reaction → coefficient.
// Every metabolite has a row, possibly empty.
func (m *Model) MetaboliteReactionTable() *Table {
	t := newTable(m.metabolites.keys())
	m.stoichiometry.each(func(k edgeKey, c float64) {
		t.append(k.metabolite, k.reaction, c)
	})

	return t
}

// ReactionMetaboliteTable groups edges as reaction → metabolite → coefficient.
// Every reaction has a row, possibly empty.
func (m *Model) ReactionMetaboliteTable() *Table {
	t := newTable(m.reactions.keys())
	m.stoichiometry.each(func(k edgeKey, c float64) {
		t.append(k.reaction, k.metabolite, c)
	})

	return t
}

// StoichiometricMatrix returns the dense metabolites × reactions matrix with
// zeros for missing edges.
//
// Implementation:
//   - Stage 1: Index reactions by column in insertion order.
//   - Stage 2: Allocate one zeroed row per metabolite.
//   - Stage 3: Scatter every edge into its (row, column) cell.
//
// Complexity: O(M·R + E) time and O(M·R) memory.
func (m *Model) StoichiometricMatrix() [][]float64 {
	col := make(map[string]int, m.reactions.len())
	for j, rid := range m.reactions.keys() {
		col[rid] = j
	}
	row := make(map[string]int, m.metabolites.len())
	out := make([][]float64, m.metabolites.len())
	for i, mid := range m.metabolites.keys() {
		row[mid] = i
		out[i] = make([]float64, m.reactions.len())
	}
	m.stoichiometry.each(func(k edgeKey, c float64) {
		out[row[k.metabolite]][col[k.reaction]] = c
	})

	return out
}
