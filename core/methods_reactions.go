// File: methods_reactions.go
// Role: Reaction lifecycle & queries.
//
// Layering:
//   - Base layer: the reaction record only.
//   - Bounds layer: AddReaction always installs a bounds entry (default unbounded).
//   - Gene layer: AddReaction always installs a rule entry (default: no rule).
//
// Invariants:
//   - RemoveReaction cascades to edges, bounds and rules, so no catalog keeps a
//     reference to a removed reaction.
package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fluxnet/gpr"
)

// ReactionOption configures the layered data installed with a reaction.
type ReactionOption func(*reactionConfig)

type reactionConfig struct {
	bounds    Bounds
	hasBounds bool
	rule      string
	hasRule   bool
}

// WithBounds sets the initial flux bounds. Requires the bounds layer.
func WithBounds(lower, upper Limit) ReactionOption {
	return func(c *reactionConfig) {
		c.bounds = Bounds{Lower: lower, Upper: upper}
		c.hasBounds = true
	}
}

// WithRule sets the initial GPR rule. Requires the gene layer.
func WithRule(text string) ReactionOption {
	return func(c *reactionConfig) {
		c.rule = text
		c.hasRule = true
	}
}

// AddReaction inserts or replaces a reaction together with its layered data.
//
// Implementation:
//   - Stage 1: Validate the ID and gather options.
//   - Stage 2: Reject options for layers the model does not carry.
//   - Stage 3: Compile the rule (gene layer) before any mutation so a bad rule
//     leaves the model untouched.
//   - Stage 4: Insert the reaction, then its bounds entry and rule entry.
//
// Errors:
//   - ErrEmptyID, ErrNoFluxBounds, ErrNoGeneRules, ErrInvalidRule.
//
// Complexity: O(len(rule)) for compilation, O(1) otherwise.
func (m *Model) AddReaction(r Reaction, opts ...ReactionOption) error {
	if r.ID == "" {
		return ErrEmptyID
	}
	var cfg reactionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasBounds && m.bounds == nil {
		return fmt.Errorf("reaction %q: %w", r.ID, ErrNoFluxBounds)
	}
	if cfg.hasRule && m.genes == nil {
		return fmt.Errorf("reaction %q: %w", r.ID, ErrNoGeneRules)
	}

	var compiled rule
	if m.genes != nil {
		var err error
		if compiled, err = compileRule(r.ID, cfg.rule); err != nil {
			return err
		}
	}

	m.reactions.put(r.ID, r)
	if m.bounds != nil {
		m.bounds.put(r.ID, cfg.bounds)
	}
	if m.genes != nil {
		m.genes.rules.put(r.ID, compiled)
	}

	return nil
}

// AddReactions adds each reaction with default layered data, stopping at the
// first error.
func (m *Model) AddReactions(rs ...Reaction) error {
	for _, r := range rs {
		if err := m.AddReaction(r); err != nil {
			return err
		}
	}

	return nil
}

// Reaction returns the reaction with the given ID.
func (m *Model) Reaction(id string) (Reaction, bool) { return m.reactions.get(id) }

// HasReaction reports whether the reaction exists.
func (m *Model) HasReaction(id string) bool { return m.reactions.has(id) }

// ReactionIDs returns reaction IDs in insertion order.
func (m *Model) ReactionIDs() []string { return m.reactions.keys() }

// Reactions returns the reaction records in insertion order.
func (m *Model) Reactions() []Reaction {
	out := make([]Reaction, 0, m.reactions.len())
	m.reactions.each(func(_ string, v Reaction) { out = append(out, v) })

	return out
}

// ReactionCount returns the number of reactions.
func (m *Model) ReactionCount() int { return m.reactions.len() }

// RemoveReactions deletes the given reactions with all edges, bounds and rules
// that reference them. Unknown IDs are ignored.
//
// Implementation:
//   - Stage 1: Snapshot the target IDs into a set.
//   - Stage 2: One removeWhere pass per catalog (reactions, edges, bounds, rules).
//
// Complexity: O(R + E).
func (m *Model) RemoveReactions(ids ...string) {
	set := toSet(ids)
	hit := func(id string) bool {
		_, ok := set[id]
		return ok
	}
	m.reactions.removeWhere(func(id string, _ Reaction) bool { return hit(id) })
	m.stoichiometry.removeWhere(func(k edgeKey, _ float64) bool { return hit(k.reaction) })
	if m.bounds != nil {
		m.bounds.removeWhere(func(id string, _ Bounds) bool { return hit(id) })
	}
	if m.genes != nil {
		m.genes.rules.removeWhere(func(id string, _ rule) bool { return hit(id) })
	}
}

// RemoveReaction deletes one reaction and everything that references it.
func (m *Model) RemoveReaction(id string) { m.RemoveReactions(id) }

// DetectBiomassReaction returns the first reaction (insertion order) whose ID
// contains "biomass", compared case-insensitively.
//
// This is a naming heuristic, not a classifier: models that name their growth
// reaction differently (e.g. "R_Ec_core_w_GAM") are not detected, and a
// reaction such as "biomass_export" would be picked if it comes first.
func (m *Model) DetectBiomassReaction() (string, bool) {
	for _, id := range m.reactions.keys() {
		if strings.Contains(strings.ToLower(id), "biomass") {
			return id, true
		}
	}

	return "", false
}

// compileRule parses rule text for reaction id.
func compileRule(id, text string) (rule, error) {
	expr, err := gpr.Parse(text)
	if err != nil {
		return rule{}, fmt.Errorf("%w: reaction %q: %w", ErrInvalidRule, id, err)
	}

	return rule{text: text, expr: expr}, nil
}
