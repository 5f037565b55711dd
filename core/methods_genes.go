// File: methods_genes.go
// Role: Gene layer: genes, GPR rules and their evaluation.
//
// Invariants:
//   - rules holds, per reaction, the raw text and the predicate compiled from
//     it in a single entry, so text and predicate can never drift apart.
//   - Every reaction added while the gene layer is enabled has a rule entry
//     (blank text = always active).
package core

import "github.com/katalvlaran/fluxnet/gpr"

// geneLayer is the optional gene/rule sub-structure of a Model.
type geneLayer struct {
	genes *catalog[string, Gene]
	rules *catalog[string, rule] // reaction ID → rule
}

// rule couples raw rule text with its compiled form.
type rule struct {
	text string
	expr *gpr.Expr
}

// AddGene inserts or replaces a gene.
func (m *Model) AddGene(g Gene) error {
	if m.genes == nil {
		return ErrNoGeneRules
	}
	if g.ID == "" {
		return ErrEmptyID
	}
	m.genes.genes.put(g.ID, g)

	return nil
}

// AddGenes adds each gene in order, stopping at the first error.
func (m *Model) AddGenes(gs ...Gene) error {
	for _, g := range gs {
		if err := m.AddGene(g); err != nil {
			return err
		}
	}

	return nil
}

// Gene returns the gene with the given ID.
func (m *Model) Gene(id string) (Gene, bool) {
	if m.genes == nil {
		return Gene{}, false
	}

	return m.genes.genes.get(id)
}

// GeneIDs returns gene IDs in insertion order (nil without the gene layer).
func (m *Model) GeneIDs() []string {
	if m.genes == nil {
		return nil
	}

	return m.genes.genes.keys()
}

// SetRule stores rule text for an existing reaction and recompiles its
// predicate. Blank text clears the rule (the reaction becomes always active).
// Unknown reactions are a no-op (strict mode: ErrUnresolvedReference).
//
// Errors:
//   - ErrNoGeneRules, ErrInvalidRule (the previous rule is kept).
func (m *Model) SetRule(id, text string) error {
	if m.genes == nil {
		return ErrNoGeneRules
	}
	if !m.reactions.has(id) {
		return m.unresolved("rule for reaction %q", id)
	}
	compiled, err := compileRule(id, text)
	if err != nil {
		return err
	}
	m.genes.rules.put(id, compiled)

	return nil
}

// RuleEntry pairs a reaction ID with its rule text for bulk updates.
type RuleEntry struct {
	Reaction string
	Rule     string
}

// SetRules applies SetRule to each entry in order, stopping at the first error.
func (m *Model) SetRules(entries []RuleEntry) error {
	for _, e := range entries {
		if err := m.SetRule(e.Reaction, e.Rule); err != nil {
			return err
		}
	}

	return nil
}

// Rule returns the raw rule text of a reaction. ok is false without the gene
// layer or without a rule entry.
func (m *Model) Rule(id string) (string, bool) {
	if m.genes == nil {
		return "", false
	}
	r, ok := m.genes.rules.get(id)

	return r.text, ok
}

// RuleExpr returns the compiled rule of a reaction.
func (m *Model) RuleExpr(id string) (*gpr.Expr, bool) {
	if m.genes == nil {
		return nil, false
	}
	r, ok := m.genes.rules.get(id)

	return r.expr, ok
}

// EvalGPR returns the reactions (insertion order) whose rule holds when exactly
// the given genes are active. Reactions without a rule are always active.
//
// Implementation:
//   - Stage 1: Build the gene-state map over all known genes
//     (true iff the gene is in active).
//   - Stage 2: Evaluate each compiled rule against that map.
//
// Notes:
//   - Identifiers in a rule that are not declared genes evaluate as inactive.
//
// Complexity: O(G + Σ|rule|).
func (m *Model) EvalGPR(active []string) ([]string, error) {
	if m.genes == nil {
		return nil, ErrNoGeneRules
	}
	on := toSet(active)
	state := make(map[string]bool, m.genes.genes.len())
	m.genes.genes.each(func(id string, _ Gene) {
		_, isOn := on[id]
		state[id] = isOn
	})

	var out []string
	m.genes.rules.each(func(id string, r rule) {
		if r.expr.Eval(state) {
			out = append(out, id)
		}
	})

	return out, nil
}

// KnockoutReactions returns the reactions (insertion order) that become
// inactive when the given genes are deleted and every other gene is active.
// These are the reactions a gene-deletion analysis constrains to zero flux.
func (m *Model) KnockoutReactions(deleted ...string) ([]string, error) {
	if m.genes == nil {
		return nil, ErrNoGeneRules
	}
	gone := toSet(deleted)
	active := make([]string, 0, m.genes.genes.len())
	for _, g := range m.genes.genes.keys() {
		if _, ko := gone[g]; !ko {
			active = append(active, g)
		}
	}
	on, err := m.EvalGPR(active)
	if err != nil {
		return nil, err
	}
	alive := toSet(on)

	var out []string
	for _, id := range m.reactions.keys() {
		if _, ok := alive[id]; !ok {
			out = append(out, id)
		}
	}

	return out, nil
}

// UndeclaredGenes lists identifiers used by rules that are not declared genes,
// in order of first appearance. Useful to validate a freshly loaded model.
func (m *Model) UndeclaredGenes() []string {
	if m.genes == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	m.genes.rules.each(func(_ string, r rule) {
		for _, g := range r.expr.Genes() {
			if _, dup := seen[g]; dup || m.genes.genes.has(g) {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	})

	return out
}
