// Package solver defines the contract between metabolic models and
// optimization backends: result status, solution records, the problem
// snapshot a backend consumes and the Solver interface itself.
package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the solver boundary.
var (
	// ErrNotImplemented is returned by backends that do not provide an
	// optimization entry point.
	ErrNotImplemented = errors.New("solver: not implemented for this solver")

	// ErrNilNetwork is returned if a nil network is passed to NewProblem.
	ErrNilNetwork = errors.New("solver: network is nil")

	// ErrNoProblem is returned when a solve reuses a problem that was never built.
	ErrNoProblem = errors.New("solver: no problem built")

	// ErrInvalidConstraint is returned for constraints on unknown reactions or
	// with lower > upper.
	ErrInvalidConstraint = errors.New("solver: invalid constraint")
)

// Status is the outcome class of an optimization.
type Status int

// Status values. The numeric codes are stable and may be persisted.
const (
	Infeasible Status = -2
	Unbounded  Status = -1
	Unknown    Status = 0
	Optimal    Status = 1
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unknown:
		return "unknown"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Solution stores the results of an optimization. Every field except Status
// is optional: nil means the backend did not report it.
type Solution struct {
	Status       Status
	Objective    *float64
	Values       map[string]float64
	ShadowPrices map[string]float64
	ReducedCosts map[string]float64
}

// NewFailedSolution returns an empty Solution representing a failed optimization.
func NewFailedSolution() *Solution {
	return &Solution{Status: Unknown}
}

// ObjectiveValue returns the objective value, if reported.
func (s *Solution) ObjectiveValue() (float64, bool) {
	if s == nil || s.Objective == nil {
		return 0, false
	}

	return *s.Objective, true
}

// String renders the status, the objective and the flux values sorted by id.
func (s *Solution) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("status: ")
	b.WriteString(s.Status.String())
	if v, ok := s.ObjectiveValue(); ok {
		fmt.Fprintf(&b, "\nobjective: %g", v)
	}
	ids := make([]string, 0, len(s.Values))
	for id := range s.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "\n%s\t%g", id, s.Values[id])
	}

	return b.String()
}
