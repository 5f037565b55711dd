// Package solver is the boundary between fluxnet models and optimization
// backends (LP/QP solvers). No backend ships with this module.
//
// A backend implements Solver, usually by embedding Unimplemented and
// overriding the entry points it supports:
//
//	type glpk struct {
//		solver.Unimplemented
//	}
//
//	func (g *glpk) SolveLP(ctx context.Context, req solver.LPRequest) (*solver.Solution, error) {
//		p, err := g.Resolve(req.Problem, req.Constraints)
//		if err != nil {
//			return solver.NewFailedSolution(), err
//		}
//		// translate p.S, p.Lower, p.Upper and req.Objective ...
//	}
//
// Problem snapshots a model: the labelled stoichiometric matrix, bounds as
// float64 intervals (±Inf for unbounded) and reaction/metabolite order.
// Problem.Residual and Problem.Check validate a flux distribution
// against steady state and bounds without a backend.
package solver
