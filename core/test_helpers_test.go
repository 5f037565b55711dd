// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Provide a small, deterministic two-compartment network covering every
//     layer (stoichiometry, bounds, genes, rules).
//   - Keep literal IDs in constants so failures print compact, stable names.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/core"
)

// Compartment, metabolite, reaction and gene IDs of the toy network.
const (
	CompCyto = "c"
	CompExt  = "e"

	MetAe = "A_e"
	MetA  = "A"
	MetB  = "B"
	MetC  = "C"

	RxnExA    = "EX_A"
	RxnTransA = "T_A"
	RxnR1     = "R1"
	RxnR2     = "R2"
	RxnGrowth = "Biomass_core"

	G1 = "g1"
	G2 = "g2"
	G3 = "g3"
	G4 = "g4"
)

// NewToyModel BUILDS the toy network with every layer enabled.
//
// Topology:
//
//	EX_A:         A_e <->             [-10, 1000]
//	T_A:          A_e --> A           rule g1
//	R1:           A <-> B             rule g2 or g3
//	R2:           2 B --> C           rule g2 and g4
//	Biomass_core: C -->               no rule
func NewToyModel(t *testing.T, opts ...core.ModelOption) *core.Model {
	t.Helper()
	m := core.NewGPRModel("toy", opts...)

	require.NoError(t, m.AddCompartments(
		core.Compartment{ID: CompCyto, Name: "cytosol"},
		core.Compartment{ID: CompExt, Name: "extracellular"},
	))
	require.NoError(t, m.AddMetabolites(
		core.Metabolite{ID: MetAe, Name: "A external", Compartment: CompExt},
		core.Metabolite{ID: MetA, Name: "A internal", Compartment: CompCyto},
		core.Metabolite{ID: MetB, Name: "B", Compartment: CompCyto},
		core.Metabolite{ID: MetC, Name: "C", Compartment: CompCyto},
	))
	require.NoError(t, m.AddGenes(
		core.Gene{ID: G1}, core.Gene{ID: G2}, core.Gene{ID: G3}, core.Gene{ID: G4},
	))

	require.NoError(t, m.AddReaction(core.NewReaction(RxnExA, "A exchange"),
		core.WithBounds(core.Finite(-10), core.Finite(1000))))
	require.NoError(t, m.AddReaction(core.Reaction{ID: RxnTransA, Name: "A transport"},
		core.WithBounds(core.Finite(0), core.Finite(1000)), core.WithRule("g1")))
	require.NoError(t, m.AddReaction(core.NewReaction(RxnR1, "A isomerase"),
		core.WithBounds(core.Finite(-1000), core.Finite(1000)), core.WithRule("g2 or g3")))
	require.NoError(t, m.AddReaction(core.Reaction{ID: RxnR2, Name: "B ligase"},
		core.WithBounds(core.Finite(0), core.Finite(1000)), core.WithRule("g2 and g4")))
	require.NoError(t, m.AddReaction(core.Reaction{ID: RxnGrowth, Name: "growth"},
		core.WithBounds(core.Finite(0), core.Unbounded)))

	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: MetAe, Reaction: RxnExA, Coefficient: -1},
		core.Edge{Metabolite: MetAe, Reaction: RxnTransA, Coefficient: -1},
		core.Edge{Metabolite: MetA, Reaction: RxnTransA, Coefficient: 1},
		core.Edge{Metabolite: MetA, Reaction: RxnR1, Coefficient: -1},
		core.Edge{Metabolite: MetB, Reaction: RxnR1, Coefficient: 1},
		core.Edge{Metabolite: MetB, Reaction: RxnR2, Coefficient: -2},
		core.Edge{Metabolite: MetC, Reaction: RxnR2, Coefficient: 1},
		core.Edge{Metabolite: MetC, Reaction: RxnGrowth, Coefficient: -1},
	))

	return m
}

// NewPairModel BUILDS the two-metabolite network A <-> B with bounds (-10, 10).
func NewPairModel(t *testing.T) *core.Model {
	t.Helper()
	m := core.NewConstraintBasedModel("pair")
	require.NoError(t, m.AddMetabolites(core.Metabolite{ID: "A"}, core.Metabolite{ID: "B"}))
	require.NoError(t, m.AddReaction(core.NewReaction("R", ""),
		core.WithBounds(core.Finite(-10), core.Finite(10))))
	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: "A", Reaction: "R", Coefficient: -1},
		core.Edge{Metabolite: "B", Reaction: "R", Coefficient: 1},
	))

	return m
}
