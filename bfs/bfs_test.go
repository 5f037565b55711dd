package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/bfs"
	"github.com/katalvlaran/fluxnet/core"
)

// glycolysis builds a short pathway plus one disconnected reaction:
//
//	EX:  glc_e <->
//	T:   glc_e --> glc
//	R1:  glc <-> g6p
//	R2:  g6p --> 2 pyr
//	R3:  pyr --> lac
//	ISO: X --> Y
func glycolysis(t *testing.T) *core.Model {
	t.Helper()
	m := core.NewStoichiometricModel("glycolysis")
	for _, id := range []string{"glc_e", "glc", "g6p", "pyr", "lac", "X", "Y"} {
		require.NoError(t, m.AddMetabolite(core.Metabolite{ID: id}))
	}
	require.NoError(t, m.AddReactions(
		core.NewReaction("EX", ""),
		core.Reaction{ID: "T"},
		core.NewReaction("R1", ""),
		core.Reaction{ID: "R2"},
		core.Reaction{ID: "R3"},
		core.Reaction{ID: "ISO"},
	))
	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: "glc_e", Reaction: "EX", Coefficient: -1},
		core.Edge{Metabolite: "glc_e", Reaction: "T", Coefficient: -1},
		core.Edge{Metabolite: "glc", Reaction: "T", Coefficient: 1},
		core.Edge{Metabolite: "glc", Reaction: "R1", Coefficient: -1},
		core.Edge{Metabolite: "g6p", Reaction: "R1", Coefficient: 1},
		core.Edge{Metabolite: "g6p", Reaction: "R2", Coefficient: -1},
		core.Edge{Metabolite: "pyr", Reaction: "R2", Coefficient: 2},
		core.Edge{Metabolite: "pyr", Reaction: "R3", Coefficient: -1},
		core.Edge{Metabolite: "lac", Reaction: "R3", Coefficient: 1},
		core.Edge{Metabolite: "X", Reaction: "ISO", Coefficient: -1},
		core.Edge{Metabolite: "Y", Reaction: "ISO", Coefficient: 1},
	))

	return m
}

func TestBFS_Errors(t *testing.T) {
	m := glycolysis(t)

	_, err := bfs.BFS(nil, []string{"glc"})
	assert.ErrorIs(t, err, bfs.ErrNetworkNil)

	_, err = bfs.BFS(m, nil)
	assert.ErrorIs(t, err, bfs.ErrNoSeeds)

	_, err = bfs.BFS(m, []string{"glc", "atp"})
	assert.ErrorIs(t, err, bfs.ErrSeedNotFound)

	_, err = bfs.BFS(m, []string{"glc"}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Forward(t *testing.T) {
	res, err := bfs.BFS(glycolysis(t), []string{"glc_e"})
	require.NoError(t, err)

	assert.Equal(t, []string{"glc_e", "glc", "g6p", "pyr", "lac"}, res.Order)
	assert.Equal(t, map[string]int{"glc_e": 0, "glc": 1, "g6p": 2, "pyr": 3, "lac": 4}, res.Depth)
	assert.Equal(t, "R2", res.Via["pyr"])
	assert.False(t, res.Reached("Y"))

	mets, rxns, err := res.PathTo("lac")
	require.NoError(t, err)
	assert.Equal(t, []string{"glc_e", "glc", "g6p", "pyr", "lac"}, mets)
	assert.Equal(t, []string{"T", "R1", "R2", "R3"}, rxns)

	mets, rxns, err = res.PathTo("glc_e")
	require.NoError(t, err)
	assert.Equal(t, []string{"glc_e"}, mets)
	assert.Empty(t, rxns)

	_, _, err = res.PathTo("Y")
	assert.Error(t, err)
}

func TestBFS_Direction(t *testing.T) {
	// R1 is reversible and carries g6p back to glc; T is not and stops there.
	res, err := bfs.BFS(glycolysis(t), []string{"g6p"})
	require.NoError(t, err)
	assert.Equal(t, []string{"g6p", "glc", "pyr", "lac"}, res.Order)
	assert.False(t, res.Reached("glc_e"))
}

func TestBFS_Options(t *testing.T) {
	m := glycolysis(t)

	res, err := bfs.BFS(m, []string{"glc_e"}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"glc_e", "glc", "g6p"}, res.Order)

	res, err = bfs.BFS(m, []string{"glc_e"}, bfs.WithoutReactions("R1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"glc_e", "glc"}, res.Order)

	res, err = bfs.BFS(m, []string{"X", "glc_e", "X"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "glc_e", "Y", "glc", "g6p", "pyr", "lac"}, res.Order)

	var enqueued []string
	res, err = bfs.BFS(m, []string{"glc_e"}, bfs.WithOnEnqueue(func(id string, _ int) {
		enqueued = append(enqueued, id)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, enqueued)
}

func TestBFS_Abort(t *testing.T) {
	m := glycolysis(t)
	stop := errors.New("stop")

	res, err := bfs.BFS(m, []string{"glc_e"}, bfs.WithOnVisit(func(id string, _ int) error {
		if id == "g6p" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"glc_e", "glc", "g6p"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(m, []string{"glc_e"}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Knockout(t *testing.T) {
	m := core.NewGPRModel("ko")
	require.NoError(t, m.AddGenes(core.Gene{ID: "g1"}, core.Gene{ID: "g2"}))
	require.NoError(t, m.AddMetabolites(core.Metabolite{ID: "A"}, core.Metabolite{ID: "B"}))
	require.NoError(t, m.AddReaction(core.Reaction{ID: "R"}, core.WithRule("g1 and g2")))
	require.NoError(t, m.AddStoichiometry(
		core.Edge{Metabolite: "A", Reaction: "R", Coefficient: -1},
		core.Edge{Metabolite: "B", Reaction: "R", Coefficient: 1},
	))

	off, err := m.KnockoutReactions("g2")
	require.NoError(t, err)
	res, err := bfs.BFS(m, []string{"A"}, bfs.WithoutReactions(off...))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func BenchmarkBFS_Chain(b *testing.B) {
	const n = 2000
	m := core.NewStoichiometricModel("chain")
	ids := make([]string, n+1)
	for i := range ids {
		ids[i] = "m" + strconv.Itoa(i)
		_ = m.AddMetabolite(core.Metabolite{ID: ids[i]})
	}
	for i := 0; i < n; i++ {
		r := "r" + strconv.Itoa(i)
		_ = m.AddReaction(core.Reaction{ID: r})
		_ = m.AddStoichiometry(
			core.Edge{Metabolite: ids[i], Reaction: r, Coefficient: -1},
			core.Edge{Metabolite: ids[i+1], Reaction: r, Coefficient: 1},
		)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, []string{"m0"})
	}
}
