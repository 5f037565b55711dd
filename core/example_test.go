package core_test

import (
	"fmt"

	"github.com/katalvlaran/fluxnet/core"
)

// ExampleModel demonstrates building a small constraint-based network.
func ExampleModel() {
	// 1) A model with flux bounds and GPR rules:
	m := core.NewGPRModel("demo")

	// 2) Compartments before the metabolites that live in them:
	_ = m.AddCompartment(core.Compartment{ID: "c", Name: "cytosol"})
	_ = m.AddMetabolites(
		core.Metabolite{ID: "glc", Compartment: "c"},
		core.Metabolite{ID: "g6p", Compartment: "c"},
	)
	_ = m.AddGenes(core.Gene{ID: "hxk1"}, core.Gene{ID: "hxk2"})

	// 3) Reactions before their edges, bounds and rules:
	_ = m.AddReaction(core.Reaction{ID: "HEX", Name: "hexokinase"},
		core.WithBounds(core.Finite(0), core.Finite(20)),
		core.WithRule("hxk1 or hxk2"))
	_ = m.AddStoichiometry(
		core.Edge{Metabolite: "glc", Reaction: "HEX", Coefficient: -1},
		core.Edge{Metabolite: "g6p", Reaction: "HEX", Coefficient: 1},
	)

	fmt.Println(m)
	active, _ := m.EvalGPR([]string{"hxk2"})
	fmt.Println("active:", active)
	off, _ := m.KnockoutReactions("hxk1", "hxk2")
	fmt.Println("knocked out:", off)

	// Output:
	// HEX: glc --> g6p [0, 20]
	// active: [HEX]
	// knocked out: [HEX]
}

// ExampleModel_StoichiometricMatrix shows the dense view.
func ExampleModel_StoichiometricMatrix() {
	m := core.NewStoichiometricModel("chain")
	_ = m.AddMetabolites(core.Metabolite{ID: "a"}, core.Metabolite{ID: "b"})
	_ = m.AddReactions(core.NewReaction("r1", ""), core.NewReaction("r2", ""))
	_ = m.AddStoichiometry(
		core.Edge{Metabolite: "a", Reaction: "r1", Coefficient: -1},
		core.Edge{Metabolite: "b", Reaction: "r1", Coefficient: 1},
		core.Edge{Metabolite: "b", Reaction: "r2", Coefficient: -1},
	)
	for _, row := range m.StoichiometricMatrix() {
		fmt.Println(row)
	}

	// Output:
	// [-1 0]
	// [1 -1]
}
