// File: problem.go
// Role: Backend-neutral snapshot of a constraint-based model.
//
// A Problem freezes reaction and metabolite order, the stoichiometric matrix
// and numeric flux bounds (±Inf for unbounded) so a backend can translate it
// into its own structures without touching the live model.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fluxnet/core"
	"github.com/katalvlaran/fluxnet/matrix"
)

// Network is the read surface a Problem is built from. *core.Model implements it.
// Without the bounds layer every reaction is unbounded.
type Network interface {
	matrix.Source
	HasFluxBounds() bool
	FluxBounds(id string) (core.Bounds, bool)
}

// Constraints override flux bounds per reaction id.
type Constraints map[string]core.Bounds

// Problem is the snapshot consumed by Solver.BuildProblem.
type Problem struct {
	Reactions   []string
	Metabolites []string
	Lower       []float64
	Upper       []float64
	S           *matrix.StoichiometricMatrix
}

// NewProblem snapshots net and applies constraints on top of its bounds.
//
// Implementation:
//   - Stage 1: Build the labelled stoichiometric matrix.
//   - Stage 2: Read bounds (±Inf when absent or unbounded).
//   - Stage 3: Apply constraints via WithConstraints.
//
// Errors:
//   - ErrNilNetwork, ErrInvalidConstraint, errors from matrix.Stoichiometric.
func NewProblem(net Network, constraints Constraints) (*Problem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	s, err := matrix.Stoichiometric(net)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	p := &Problem{
		Reactions:   s.Reactions,
		Metabolites: s.Metabolites,
		Lower:       make([]float64, len(s.Reactions)),
		Upper:       make([]float64, len(s.Reactions)),
		S:           s,
	}
	bounded := net.HasFluxBounds()
	for j, id := range p.Reactions {
		b := core.Bounds{}
		if bounded {
			b, _ = net.FluxBounds(id)
		}
		p.Lower[j], p.Upper[j] = b.Interval()
	}
	if len(constraints) == 0 {
		return p, nil
	}

	return p.WithConstraints(constraints)
}

// WithConstraints returns a copy of p with the given bounds overrides. The
// stoichiometric matrix is shared.
//
// Errors:
//   - ErrInvalidConstraint for unknown reactions or lower > upper.
func (p *Problem) WithConstraints(constraints Constraints) (*Problem, error) {
	out := &Problem{
		Reactions:   p.Reactions,
		Metabolites: p.Metabolites,
		Lower:       append([]float64(nil), p.Lower...),
		Upper:       append([]float64(nil), p.Upper...),
		S:           p.S,
	}
	for id, b := range constraints {
		j, ok := p.S.ReactionIndex(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown reaction %q", ErrInvalidConstraint, id)
		}
		lo, hi := b.Interval()
		if lo > hi {
			return nil, fmt.Errorf("%w: reaction %q has lower %g > upper %g", ErrInvalidConstraint, id, lo, hi)
		}
		out.Lower[j], out.Upper[j] = lo, hi
	}

	return out, nil
}

// Bounds returns the numeric interval of a reaction.
func (p *Problem) Bounds(id string) (lo, hi float64, ok bool) {
	j, ok := p.S.ReactionIndex(id)
	if !ok {
		return 0, 0, false
	}

	return p.Lower[j], p.Upper[j], true
}

// Residual computes S·v for per-reaction values, in metabolite order.
// Missing reactions count as zero flux.
func (p *Problem) Residual(values map[string]float64) ([]float64, error) {
	return p.S.MulVec(p.S.FluxVector(values))
}

// Violation describes a flux value outside its bounds or an unbalanced metabolite.
type Violation struct {
	ID    string
	Value float64
	Kind  string // "lower", "upper" or "balance"
}

// Check lists every bound and steady-state violation of values beyond tol.
// An empty result means values is a feasible flux distribution.
func (p *Problem) Check(values map[string]float64, tol float64) ([]Violation, error) {
	v := p.S.FluxVector(values)
	var out []Violation
	for j, id := range p.Reactions {
		if v[j] < p.Lower[j]-tol {
			out = append(out, Violation{ID: id, Value: v[j], Kind: "lower"})
		}
		if v[j] > p.Upper[j]+tol {
			out = append(out, Violation{ID: id, Value: v[j], Kind: "upper"})
		}
	}
	r, err := p.S.MulVec(v)
	if err != nil {
		return nil, err
	}
	for i, id := range p.Metabolites {
		if math.Abs(r[i]) > tol {
			out = append(out, Violation{ID: id, Value: r[i], Kind: "balance"})
		}
	}

	return out, nil
}
