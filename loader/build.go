// SPDX-License-Identifier: MIT

// Package loader - conversion between Document and *core.Model.
//
// Build adds entities in the order the model's reference rules require:
// compartments, metabolites, genes, reactions (with bounds and rules), then
// stoichiometry. FromModel is its inverse.
package loader

import (
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
)

// Build validates doc and constructs a model of the resolved kind.
// opts are forwarded to the model constructor (e.g. core.WithStrictReferences).
//
// Errors:
//   - ErrInvalidDocument, ErrUnknownKind.
//   - core errors (ErrNoGeneRules for rules in a non-GPR document, ErrInvalidRule, ...).
func Build(doc *Document, opts ...core.ModelOption) (*core.Model, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	kind, _ := doc.ResolveKind()

	var m *core.Model
	switch kind {
	case KindGPR:
		m = core.NewGPRModel(doc.ID, opts...)
	case KindConstraintBased:
		m = core.NewConstraintBasedModel(doc.ID, opts...)
	default:
		m = core.NewStoichiometricModel(doc.ID, opts...)
	}

	for _, c := range doc.Compartments {
		if err := m.AddCompartment(core.Compartment{ID: c.ID, Name: c.Name}); err != nil {
			return nil, fmt.Errorf("compartment %q: %w", c.ID, err)
		}
	}
	for _, met := range doc.Metabolites {
		if err := m.AddMetabolite(core.Metabolite{ID: met.ID, Name: met.Name, Compartment: met.Compartment}); err != nil {
			return nil, fmt.Errorf("metabolite %q: %w", met.ID, err)
		}
	}
	for _, g := range doc.Genes {
		if err := m.AddGene(core.Gene{ID: g.ID, Name: g.Name}); err != nil {
			return nil, fmt.Errorf("gene %q: %w", g.ID, err)
		}
	}

	for _, r := range doc.Reactions {
		var ropts []core.ReactionOption
		if m.HasFluxBounds() {
			ropts = append(ropts, core.WithBounds(core.LimitFromPtr(r.LowerBound), core.LimitFromPtr(r.UpperBound)))
		}
		if r.Rule != "" {
			ropts = append(ropts, core.WithRule(r.Rule))
		}
		rxn := core.Reaction{ID: r.ID, Name: r.Name, Reversible: r.IsReversible()}
		if err := m.AddReaction(rxn, ropts...); err != nil {
			return nil, fmt.Errorf("reaction %q: %w", r.ID, err)
		}
	}

	for _, r := range doc.Reactions {
		edges := make([]core.Edge, 0, len(r.Stoichiometry))
		for _, c := range r.Stoichiometry {
			edges = append(edges, core.Edge{Metabolite: c.Metabolite, Reaction: r.ID, Coefficient: c.Value})
		}
		if err := m.AddStoichiometry(edges...); err != nil {
			return nil, fmt.Errorf("stoichiometry of %q: %w", r.ID, err)
		}
	}

	return m, nil
}

// FromModel captures m as a Document. Bounds and rules are written only for
// the layers m carries; reversible reactions leave Reversible nil.
func FromModel(m *core.Model) *Document {
	doc := &Document{ID: m.ID(), Kind: KindStoichiometric}
	switch {
	case m.HasGeneRules():
		doc.Kind = KindGPR
	case m.HasFluxBounds():
		doc.Kind = KindConstraintBased
	}

	for _, id := range m.CompartmentIDs() {
		c, _ := m.Compartment(id)
		doc.Compartments = append(doc.Compartments, CompartmentDoc{ID: c.ID, Name: c.Name})
	}
	for _, met := range m.Metabolites() {
		doc.Metabolites = append(doc.Metabolites, MetaboliteDoc{ID: met.ID, Name: met.Name, Compartment: met.Compartment})
	}
	for _, id := range m.GeneIDs() {
		g, _ := m.Gene(id)
		doc.Genes = append(doc.Genes, GeneDoc{ID: g.ID, Name: g.Name})
	}

	table := m.ReactionMetaboliteTable()
	for _, r := range m.Reactions() {
		rd := ReactionDoc{ID: r.ID, Name: r.Name}
		if !r.Reversible {
			irreversible := false
			rd.Reversible = &irreversible
		}
		if b, ok := m.FluxBounds(r.ID); ok {
			rd.LowerBound, rd.UpperBound = b.Lower.Ptr(), b.Upper.Ptr()
		}
		if text, ok := m.Rule(r.ID); ok {
			rd.Rule = text
		}
		for _, e := range table.Row(r.ID) {
			rd.Stoichiometry = append(rd.Stoichiometry, Coefficient{Metabolite: e.ID, Value: e.Coefficient})
		}
		doc.Reactions = append(doc.Reactions, rd)
	}

	return doc
}
