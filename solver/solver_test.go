// SPDX-License-Identifier: MIT
// Package solver_test verifies the solver contract and problem snapshots.

package solver_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/core"
	"github.com/katalvlaran/fluxnet/solver"
)

// linearModel builds  EX_A: -> A (0, 10);  R: A -> B (0, 1000);  EX_B: B -> (0, unbounded).
func linearModel(t *testing.T) *core.Model {
	t.Helper()
	m := core.NewConstraintBasedModel("linear")
	require.NoError(t, m.AddMetabolites(core.Metabolite{ID: "A"}, core.Metabolite{ID: "B"}))
	require.NoError(t, m.AddReaction(core.Reaction{ID: "EX_A"}, core.WithBounds(core.Finite(0), core.Finite(10))))
	require.NoError(t, m.AddReaction(core.Reaction{ID: "R"}, core.WithBounds(core.Finite(0), core.Finite(1000))))
	require.NoError(t, m.AddReaction(core.Reaction{ID: "EX_B"}, core.WithBounds(core.Finite(0), core.Unbounded)))
	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: "A", Reaction: "EX_A", Coefficient: 1},
		core.Edge{Metabolite: "A", Reaction: "R", Coefficient: -1},
		core.Edge{Metabolite: "B", Reaction: "R", Coefficient: 1},
		core.Edge{Metabolite: "B", Reaction: "EX_B", Coefficient: -1},
	))

	return m
}

// chainBackend solves LPs on a single linear pathway: every flux equals the
// tightest upper bound along the chain. It only exists to exercise the contract.
type chainBackend struct {
	solver.Unimplemented
}

func (c *chainBackend) SolveLP(ctx context.Context, req solver.LPRequest) (*solver.Solution, error) {
	if err := ctx.Err(); err != nil {
		return solver.NewFailedSolution(), err
	}
	p, err := c.Resolve(req.Problem, req.Constraints)
	if err != nil {
		return solver.NewFailedSolution(), err
	}
	flux := math.Inf(1)
	for j := range p.Reactions {
		flux = math.Min(flux, p.Upper[j])
		if p.Lower[j] > p.Upper[j] {
			return &solver.Solution{Status: solver.Infeasible}, nil
		}
	}
	if math.IsInf(flux, 1) {
		return &solver.Solution{Status: solver.Unbounded}, nil
	}
	values := make(map[string]float64, len(p.Reactions))
	obj := 0.0
	for _, id := range p.Reactions {
		values[id] = flux
		obj += req.Objective[id] * flux
	}

	return &solver.Solution{Status: solver.Optimal, Objective: &obj, Values: values}, nil
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "optimal", solver.Optimal.String())
	assert.Equal(t, "unknown", solver.Unknown.String())
	assert.Equal(t, "unbounded", solver.Unbounded.String())
	assert.Equal(t, "infeasible", solver.Infeasible.String())
	assert.Equal(t, "status(7)", solver.Status(7).String())
	assert.Equal(t, 1, int(solver.Optimal))
	assert.Equal(t, -2, int(solver.Infeasible))
}

func TestNewFailedSolution(t *testing.T) {
	s := solver.NewFailedSolution()
	require.Equal(t, solver.Unknown, s.Status)
	_, ok := s.ObjectiveValue()
	require.False(t, ok)
	require.Nil(t, s.Values)
	require.Nil(t, s.ShadowPrices)
	require.Nil(t, s.ReducedCosts)
	require.Equal(t, "status: unknown", s.String())
}

func TestUnimplemented(t *testing.T) {
	var u solver.Unimplemented
	sol, err := u.SolveLP(context.Background(), solver.LPRequest{})
	require.ErrorIs(t, err, solver.ErrNotImplemented)
	require.Equal(t, solver.Unknown, sol.Status)
	_, err = u.SolveQP(context.Background(), solver.QPRequest{})
	require.ErrorIs(t, err, solver.ErrNotImplemented)
	require.EqualError(t, err, "solver: not implemented for this solver")

	require.ErrorIs(t, u.BuildProblem(nil), solver.ErrNoProblem)
	_, err = u.Resolve(nil, nil)
	require.ErrorIs(t, err, solver.ErrNoProblem)
}

func TestNewProblem(t *testing.T) {
	p, err := solver.NewProblem(linearModel(t), nil)
	require.NoError(t, err)

	require.Equal(t, []string{"EX_A", "R", "EX_B"}, p.Reactions)
	require.Equal(t, []string{"A", "B"}, p.Metabolites)
	require.Equal(t, []float64{0, 0, 0}, p.Lower)
	require.Equal(t, 10.0, p.Upper[0])
	require.True(t, math.IsInf(p.Upper[2], 1))

	_, err = solver.NewProblem(nil, nil)
	require.ErrorIs(t, err, solver.ErrNilNetwork)
}

func TestNewProblem_WithoutBoundsLayer(t *testing.T) {
	m := core.NewStoichiometricModel("s")
	require.NoError(t, m.AddReaction(core.NewReaction("r", "")))
	p, err := solver.NewProblem(m, nil)
	require.NoError(t, err)
	lo, hi, ok := p.Bounds("r")
	require.True(t, ok)
	require.True(t, math.IsInf(lo, -1))
	require.True(t, math.IsInf(hi, 1))
}

func TestProblem_Constraints(t *testing.T) {
	base, err := solver.NewProblem(linearModel(t), nil)
	require.NoError(t, err)

	p, err := base.WithConstraints(solver.Constraints{"R": core.NewBounds(1, 2)})
	require.NoError(t, err)
	lo, hi, _ := p.Bounds("R")
	require.Equal(t, []float64{1, 2}, []float64{lo, hi})
	lo, hi, _ = base.Bounds("R")
	require.Equal(t, []float64{0, 1000}, []float64{lo, hi}, "base is not mutated")

	_, err = base.WithConstraints(solver.Constraints{"nope": core.NewBounds(0, 1)})
	require.ErrorIs(t, err, solver.ErrInvalidConstraint)
	_, err = base.WithConstraints(solver.Constraints{"R": core.NewBounds(5, 1)})
	require.ErrorIs(t, err, solver.ErrInvalidConstraint)
	_, err = solver.NewProblem(linearModel(t), solver.Constraints{"nope": {}})
	require.ErrorIs(t, err, solver.ErrInvalidConstraint)

	_, _, ok := base.Bounds("nope")
	require.False(t, ok)
}

func TestProblem_ResidualAndCheck(t *testing.T) {
	p, err := solver.NewProblem(linearModel(t), nil)
	require.NoError(t, err)

	r, err := p.Residual(map[string]float64{"EX_A": 5, "R": 5, "EX_B": 5})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, r)

	v, err := p.Check(map[string]float64{"EX_A": 5, "R": 5, "EX_B": 5}, 1e-9)
	require.NoError(t, err)
	require.Empty(t, v)

	v, err = p.Check(map[string]float64{"EX_A": 12, "R": 5, "EX_B": -1}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []solver.Violation{
		{ID: "EX_A", Value: 12, Kind: "upper"},
		{ID: "EX_B", Value: -1, Kind: "lower"},
		{ID: "A", Value: 7, Kind: "balance"},
		{ID: "B", Value: 6, Kind: "balance"},
	}, v)
}

func TestBackend_EmbeddingUnimplemented(t *testing.T) {
	m := linearModel(t)
	p, err := solver.NewProblem(m, nil)
	require.NoError(t, err)

	var s solver.Solver = &chainBackend{}
	require.NoError(t, s.BuildProblem(p))

	sol, err := s.SolveLP(context.Background(), solver.LPRequest{Objective: map[string]float64{"EX_B": 1}})
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, sol.Status)
	obj, ok := sol.ObjectiveValue()
	require.True(t, ok)
	require.Equal(t, 10.0, obj)

	viol, err := p.Check(sol.Values, 1e-9)
	require.NoError(t, err)
	require.Empty(t, viol)

	sol, err = s.SolveLP(context.Background(), solver.LPRequest{
		Objective:   map[string]float64{"EX_B": 1},
		Constraints: solver.Constraints{"R": core.NewBounds(0, 4)},
	})
	require.NoError(t, err)
	obj, _ = sol.ObjectiveValue()
	require.Equal(t, 4.0, obj)
	require.Equal(t, "status: optimal\nobjective: 4\nEX_A\t4\nEX_B\t4\nR\t4", sol.String())

	_, err = s.SolveQP(context.Background(), solver.QPRequest{})
	require.ErrorIs(t, err, solver.ErrNotImplemented)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SolveLP(ctx, solver.LPRequest{})
	require.ErrorIs(t, err, context.Canceled)
}
