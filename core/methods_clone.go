// File: methods_clone.go
// Role: Cloning model instances.
//
// Analyses that knock out reactions or rewrite bounds work on a clone so the
// caller's model stays the single source of truth.
package core

// Clone returns a deep copy of the Model: configuration, every catalog and
// every layer. Compiled rules are immutable and shared between the copies.
//
// Complexity: O(M + R + C + E + G).
func (m *Model) Clone() *Model {
	out := &Model{
		id:            m.id,
		strict:        m.strict,
		metabolites:   m.metabolites.clone(),
		reactions:     m.reactions.clone(),
		compartments:  m.compartments.clone(),
		stoichiometry: m.stoichiometry.clone(),
	}
	if m.bounds != nil {
		out.bounds = m.bounds.clone()
	}
	if m.genes != nil {
		out.genes = &geneLayer{
			genes: m.genes.genes.clone(),
			rules: m.genes.rules.clone(),
		}
	}

	return out
}

// CloneEmpty returns a Model with the same id and layers but no content.
func (m *Model) CloneEmpty() *Model {
	opts := make([]ModelOption, 0, 3)
	if m.bounds != nil {
		opts = append(opts, WithFluxBounds())
	}
	if m.genes != nil {
		opts = append(opts, WithGeneRules())
	}
	if m.strict {
		opts = append(opts, WithStrictReferences())
	}

	return NewModel(m.id, opts...)
}
