package solver

import "context"

// LPRequest describes a linear program over the reactions of a Problem.
// The sense is maximization unless Minimize is set.
type LPRequest struct {
	// Objective maps reaction ids to objective coefficients.
	Objective map[string]float64
	Minimize  bool

	// Problem, if non-nil, replaces the problem stored by BuildProblem.
	Problem *Problem

	// Constraints override bounds for this solve only.
	Constraints Constraints

	ShadowPrices bool
	ReducedCosts bool
}

// ReactionPair keys a quadratic objective coefficient.
type ReactionPair struct {
	A, B string
}

// QPRequest describes a quadratic program: minimize or maximize
// Σ Quadratic[a,b]·v_a·v_b + Σ Linear[r]·v_r.
type QPRequest struct {
	Quadratic map[ReactionPair]float64
	Linear    map[string]float64
	Minimize  bool

	Problem     *Problem
	Constraints Constraints

	ShadowPrices bool
	ReducedCosts bool
}

// Solver is implemented by optimization backends.
//
// BuildProblem stores backend-specific structures for p so later solves can
// omit the problem. SolveLP and SolveQP return a Solution whose Status tells
// the outcome class; an error means the solve could not be attempted at all.
type Solver interface {
	BuildProblem(p *Problem) error
	SolveLP(ctx context.Context, req LPRequest) (*Solution, error)
	SolveQP(ctx context.Context, req QPRequest) (*Solution, error)
}

// Unimplemented is embedded by backends that only implement part of Solver.
// It stores the built problem and reports ErrNotImplemented for both solves.
type Unimplemented struct {
	problem *Problem
}

var _ Solver = (*Unimplemented)(nil)

// BuildProblem stores p.
func (u *Unimplemented) BuildProblem(p *Problem) error {
	if p == nil {
		return ErrNoProblem
	}
	u.problem = p

	return nil
}

// Problem returns the last problem passed to BuildProblem.
func (u *Unimplemented) Problem() *Problem { return u.problem }

// Resolve picks the problem for a solve: the request's own problem if set,
// otherwise the stored one, with constraints applied.
//
// Errors:
//   - ErrNoProblem, ErrInvalidConstraint.
func (u *Unimplemented) Resolve(p *Problem, constraints Constraints) (*Problem, error) {
	if p == nil {
		p = u.problem
	}
	if p == nil {
		return nil, ErrNoProblem
	}
	if len(constraints) == 0 {
		return p, nil
	}

	return p.WithConstraints(constraints)
}

// SolveLP always fails with ErrNotImplemented.
func (u *Unimplemented) SolveLP(context.Context, LPRequest) (*Solution, error) {
	return NewFailedSolution(), ErrNotImplemented
}

// SolveQP always fails with ErrNotImplemented.
func (u *Unimplemented) SolveQP(context.Context, QPRequest) (*Solution, error) {
	return NewFailedSolution(), ErrNotImplemented
}
