package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/fluxnet/bfs"
	"github.com/katalvlaran/fluxnet/core"
)

// ExampleBFS traces how lactate is reached from extracellular glucose.
func ExampleBFS() {
	m := core.NewStoichiometricModel("toy")
	_ = m.AddMetabolites(
		core.Metabolite{ID: "glc_e"}, core.Metabolite{ID: "glc"},
		core.Metabolite{ID: "pyr"}, core.Metabolite{ID: "lac"},
	)
	_ = m.AddReactions(core.Reaction{ID: "GLCt"}, core.Reaction{ID: "GLYC"}, core.NewReaction("LDH", ""))
	_ = m.AddStoichiometry(
		core.Edge{Metabolite: "glc_e", Reaction: "GLCt", Coefficient: -1},
		core.Edge{Metabolite: "glc", Reaction: "GLCt", Coefficient: 1},
		core.Edge{Metabolite: "glc", Reaction: "GLYC", Coefficient: -1},
		core.Edge{Metabolite: "pyr", Reaction: "GLYC", Coefficient: 2},
		core.Edge{Metabolite: "pyr", Reaction: "LDH", Coefficient: -1},
		core.Edge{Metabolite: "lac", Reaction: "LDH", Coefficient: 1},
	)

	res, err := bfs.BFS(m, []string{"glc_e"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mets, rxns, _ := res.PathTo("lac")
	fmt.Println(res.Order)
	fmt.Println(mets)
	fmt.Println(rxns)
	// Output:
	// [glc_e glc pyr lac]
	// [glc_e glc pyr lac]
	// [GLCt GLYC LDH]
}
