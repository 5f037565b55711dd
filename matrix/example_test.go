package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
	"github.com/katalvlaran/fluxnet/matrix"
)

// ExampleStoichiometric shows the labelled matrix of a two-step pathway and a
// steady-state check.
func ExampleStoichiometric() {
	m := core.NewStoichiometricModel("pathway")
	_ = m.AddMetabolites(core.Metabolite{ID: "x"}, core.Metabolite{ID: "y"})
	_ = m.AddReactions(core.NewReaction("in", ""), core.NewReaction("conv", ""), core.NewReaction("out", ""))
	_ = m.AddStoichiometry(
		core.Edge{Metabolite: "x", Reaction: "in", Coefficient: 1},
		core.Edge{Metabolite: "x", Reaction: "conv", Coefficient: -1},
		core.Edge{Metabolite: "y", Reaction: "conv", Coefficient: 1},
		core.Edge{Metabolite: "y", Reaction: "out", Coefficient: -1},
	)

	s, _ := matrix.Stoichiometric(m)
	fmt.Print(s)
	residual, _ := s.MulVec([]float64{3, 3, 3})
	fmt.Println("S·v =", residual)

	// Output:
	// [1, -1, 0]
	// [0, 1, -1]
	// S·v = [0 0]
}
