// File: format.go
// Role: Text rendering of reactions and models.
//
// Format:
//
//	"<id>: <reactants> <-> <products>"   reversible
//	"<id>: <reactants> --> <products>"   irreversible
//
// Reactant terms come from negative coefficients (printed sign-flipped),
// product terms from positive ones; a coefficient of exactly 1 is omitted and
// terms are joined by " + " in edge insertion order. Models with the bounds
// layer append " [lo, hi]" unless the pair is the default for the reaction's
// direction (see Bounds.IsDefault).
package core

import (
	"fmt"
	"strings"
)

// FormatOption tweaks reaction rendering.
type FormatOption func(*formatConfig)

type formatConfig struct {
	reactionNames   bool
	metaboliteNames bool
}

// WithReactionNames prints reaction names instead of IDs.
func WithReactionNames() FormatOption {
	return func(c *formatConfig) { c.reactionNames = true }
}

// WithMetaboliteNames prints metabolite names instead of IDs.
func WithMetaboliteNames() FormatOption {
	return func(c *formatConfig) { c.metaboliteNames = true }
}

// FormatReaction renders one reaction. table may be nil, in which case the
// reaction→metabolite table is computed; pass a cached table from
// ReactionMetaboliteTable when formatting many reactions.
//
// Errors:
//   - ErrReactionNotFound if id is unknown.
func (m *Model) FormatReaction(id string, table *Table, opts ...FormatOption) (string, error) {
	r, ok := m.reactions.get(id)
	if !ok {
		return "", fmt.Errorf("format %q: %w", id, ErrReactionNotFound)
	}
	var cfg formatConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if table == nil {
		table = m.ReactionMetaboliteTable()
	}

	label := r.ID
	if cfg.reactionNames {
		label = r.Name
	}
	metLabel := func(mid string) string {
		if cfg.metaboliteNames {
			if met, ok := m.metabolites.get(mid); ok {
				return met.Name
			}
		}
		return mid
	}

	var reactants, products []string
	for _, e := range table.Row(id) {
		switch {
		case e.Coefficient < 0:
			reactants = append(reactants, term(-e.Coefficient, metLabel(e.ID)))
		case e.Coefficient > 0:
			products = append(products, term(e.Coefficient, metLabel(e.ID)))
		}
	}

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(reactants, " + "))
	if r.Reversible {
		sb.WriteString(" <-> ")
	} else {
		sb.WriteString(" --> ")
	}
	sb.WriteString(strings.Join(products, " + "))

	if b, ok := m.FluxBounds(id); ok && !b.IsDefault(r.Reversible) {
		sb.WriteByte(' ')
		sb.WriteString(b.String())
	}

	return sb.String(), nil
}

// term renders "<coeff> <name>", dropping a unit coefficient.
func term(coeff float64, name string) string {
	if coeff == 1 {
		return name
	}

	return formatNumber(coeff) + " " + name
}

// ToString renders every reaction in insertion order, one per line.
func (m *Model) ToString(opts ...FormatOption) string {
	table := m.ReactionMetaboliteTable()
	lines := make([]string, 0, m.reactions.len())
	for _, id := range m.reactions.keys() {
		// id comes from the catalog, so the lookup cannot fail.
		line, _ := m.FormatReaction(id, table, opts...)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (m *Model) String() string { return m.ToString() }
