// SPDX-License-Identifier: MIT
// Package core_test verifies the textual rendering of reactions and models.

package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/core"
)

// TestFormatReaction VERIFIES term rendering, arrows and bounds suffixes.
func TestFormatReaction(t *testing.T) {
	m := NewToyModel(t)
	table := m.ReactionMetaboliteTable()

	cases := []struct {
		id   string
		want string
	}{
		{RxnExA, "EX_A: A_e <->  [-10, 1000]"},
		{RxnTransA, "T_A: A_e --> A [0, 1000]"},
		{RxnR1, "R1: A <-> B [-1000, 1000]"},
		{RxnR2, "R2: 2 B --> C [0, 1000]"},
		{RxnGrowth, "Biomass_core: C --> "},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			got, err := m.FormatReaction(tc.id, table)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// Without a cached table the result is identical.
			got, err = m.FormatReaction(tc.id, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := m.FormatReaction("nope", table)
	require.ErrorIs(t, err, core.ErrReactionNotFound)
}

// TestFormatReaction_Names VERIFIES name substitution options.
func TestFormatReaction_Names(t *testing.T) {
	m := NewToyModel(t)

	got, err := m.FormatReaction(RxnTransA, nil, core.WithReactionNames(), core.WithMetaboliteNames())
	require.NoError(t, err)
	require.Equal(t, "A transport: A external --> A internal [0, 1000]", got)
}

// TestFormatReaction_NoBoundsLayer VERIFIES that plain stoichiometric models print no suffix.
func TestFormatReaction_NoBoundsLayer(t *testing.T) {
	m := core.NewStoichiometricModel("s")
	require.NoError(t, m.AddMetabolites(core.Metabolite{ID: "x"}, core.Metabolite{ID: "y"}))
	require.NoError(t, m.AddReaction(core.NewReaction("r", "")))
	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: "x", Reaction: "r", Coefficient: -0.5},
		core.Edge{Metabolite: "y", Reaction: "r", Coefficient: 1.5},
	))

	got, err := m.FormatReaction("r", nil)
	require.NoError(t, err)
	require.Equal(t, "r: 0.5 x <-> 1.5 y", got)
}

// TestModel_String VERIFIES one line per reaction in insertion order.
func TestModel_String(t *testing.T) {
	m := NewPairModel(t)
	require.Equal(t, "R: A <-> B [-10, 10]", m.String())

	toy := NewToyModel(t)
	lines := strings.Split(toy.ToString(), "\n")
	require.Len(t, lines, toy.ReactionCount())
	require.True(t, strings.HasPrefix(lines[0], RxnExA+":"))
	require.True(t, strings.HasPrefix(lines[4], RxnGrowth+":"))

	require.Equal(t, "", core.NewStoichiometricModel("empty").String())
}
