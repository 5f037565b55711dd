// File: irreversible.go
// Role: Split every reversible reaction into two irreversible halves.
//
// Implementation:
//   - Stage 1: Validate input and options.
//   - Stage 2: Snapshot reaction ids and the reaction→metabolite table once.
//   - Stage 3: For each reversible reaction: add halves, install ±c edges,
//     derive bounds, copy the rule, remove the original.
//
// Complexity: O(R + E) lookups, where E counts incident edges of split reactions.
package transform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fluxnet/core"
)

// MakeIrreversible rewrites net in place so that it contains no reversible
// reactions. For every reversible reaction r:
//
//	r_f: irreversible, same name, coefficients  c, bounds (0, ub)
//	r_b: irreversible, same name, coefficients -c, bounds (0, -lb) or (0, +inf) when lb is unbounded
//
// Bounds are only written when net is a BoundedNetwork whose layer is present;
// a reaction without a bounds entry counts as unbounded on both sides.
// The rule text is copied to both halves when net is a RuledNetwork with rules.
// The original is then removed, cascading to its edges, bounds and rule.
// Irreversible reactions are untouched and absent from the returned Mapping.
// A half whose id already exists replaces that reaction in place.
//
// The context is checked between reactions. On cancellation the returned
// Mapping describes the splits already applied.
//
// Errors:
//   - ErrNilNetwork, ErrOptionViolation.
//   - ctx.Err() wrapped with the id of the next reaction.
//   - errors from the network's add/set primitives, wrapped with the reaction id.
func MakeIrreversible(ctx context.Context, net Network, opts ...Option) (Mapping, error) {
	// Stage 1: validation
	if net == nil {
		return Mapping{}, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Mapping{}, o.err
	}

	bounded, hasBounds := net.(BoundedNetwork)
	hasBounds = hasBounds && bounded.HasFluxBounds()
	ruled, hasRules := net.(RuledNetwork)
	hasRules = hasRules && ruled.HasGeneRules()

	// Stage 2: snapshot
	ids := net.ReactionIDs()
	table := net.ReactionMetaboliteTable()
	mapping := newMapping(len(ids))

	// Stage 3: split
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return mapping, fmt.Errorf("transform: before %q: %w", id, err)
		}
		r, ok := net.Reaction(id)
		if !ok || !r.Reversible {
			continue
		}
		s := Split{Forward: id + o.ForwardSuffix, Backward: id + o.BackwardSuffix}

		if err := addHalves(net, r, s, table.Row(id)); err != nil {
			return mapping, fmt.Errorf("transform: split %q: %w", id, err)
		}
		if hasBounds {
			if err := splitBounds(bounded, id, s); err != nil {
				return mapping, fmt.Errorf("transform: bounds of %q: %w", id, err)
			}
		}
		if hasRules {
			if err := copyRule(ruled, id, s); err != nil {
				return mapping, fmt.Errorf("transform: rule of %q: %w", id, err)
			}
		}
		net.RemoveReaction(id)

		mapping.add(id, s)
		o.Logger.Debug("split reversible reaction",
			slog.String("reaction", id),
			slog.String("forward", s.Forward),
			slog.String("backward", s.Backward),
			slog.Int("edges", len(table.Row(id))))
		o.OnSplit(id, s)
	}

	return mapping, nil
}

// addHalves creates both irreversible reactions and their mirrored edges.
func addHalves(net Network, r core.Reaction, s Split, row []core.Entry) error {
	for _, hid := range []string{s.Forward, s.Backward} {
		if err := net.AddReaction(core.Reaction{ID: hid, Name: r.Name}); err != nil {
			return err
		}
	}
	edges := make([]core.Edge, 0, 2*len(row))
	for _, e := range row {
		edges = append(edges,
			core.Edge{Metabolite: e.ID, Reaction: s.Forward, Coefficient: e.Coefficient},
			core.Edge{Metabolite: e.ID, Reaction: s.Backward, Coefficient: -e.Coefficient},
		)
	}

	return net.AddStoichiometry(edges...)
}

// splitBounds maps (lb, ub) to (0, ub) forward and (0, -lb) backward.
func splitBounds(net BoundedNetwork, id string, s Split) error {
	b, _ := net.FluxBounds(id)
	zero := core.Finite(0)
	if err := net.SetFluxBounds(s.Forward, core.Bounds{Lower: zero, Upper: b.Upper}); err != nil {
		return err
	}

	return net.SetFluxBounds(s.Backward, core.Bounds{Lower: zero, Upper: b.Lower.Neg()})
}

// copyRule installs the original rule text on both halves.
func copyRule(net RuledNetwork, id string, s Split) error {
	text, ok := net.Rule(id)
	if !ok {
		return nil
	}
	if err := net.SetRule(s.Forward, text); err != nil {
		return err
	}

	return net.SetRule(s.Backward, text)
}
