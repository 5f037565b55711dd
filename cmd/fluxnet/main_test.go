package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/loader"
)

const toyYAML = `id: toy
kind: gpr
metabolites:
  - {id: A_e}
  - {id: A}
  - {id: B}
genes:
  - {id: g1}
  - {id: g2}
reactions:
  - id: EX_A
    lower_bound: -10
    upper_bound: 10
    stoichiometry: {A_e: -1}
  - id: T_A
    reversible: false
    lower_bound: 0
    upper_bound: 10
    rule: g1
    stoichiometry: {A_e: -1, A: 1}
  - id: R1
    lower_bound: -10
    upper_bound: 10
    rule: g1 or g2
    stoichiometry: {A: -1, B: 1}
  - id: Biomass
    reversible: false
    rule: g2
    stoichiometry: {B: -1}
`

// writeToy stores the fixture model in a temp dir and returns its path.
func writeToy(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyYAML), 0o600))

	return path
}

// run executes the root command with args, capturing both streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestShow(t *testing.T) {
	path := writeToy(t)
	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	assert.Equal(t, "EX_A: A_e <->  [-10, 10]\n"+
		"T_A: A_e --> A [0, 10]\n"+
		"R1: A <-> B [-10, 10]\n"+
		"Biomass: B --> \n", out)
}

func TestMatrix(t *testing.T) {
	path := writeToy(t)
	out, _, err := run(t, "matrix", path, "--dof")
	require.NoError(t, err)
	assert.Equal(t, "\tEX_A\tT_A\tR1\tBiomass\n"+
		"A_e\t-1\t-1\t0\t0\n"+
		"A\t0\t1\t-1\t0\n"+
		"B\t0\t0\t1\t-1\n"+
		"degrees of freedom: 1\n", out)
}

func TestGPRAndKnockout(t *testing.T) {
	path := writeToy(t)

	out, _, err := run(t, "gpr", path, "--active", "g1")
	require.NoError(t, err)
	assert.Equal(t, "EX_A\nT_A\nR1\n", out)

	out, _, err = run(t, "knockout", path, "--genes", "g1")
	require.NoError(t, err)
	assert.Equal(t, "T_A\n", out)

	out, _, err = run(t, "biomass", path)
	require.NoError(t, err)
	assert.Equal(t, "Biomass\n", out)
}

func TestReach(t *testing.T) {
	path := writeToy(t)

	out, _, err := run(t, "reach", path, "--from", "A_e")
	require.NoError(t, err)
	assert.Equal(t, "0\tA_e\t\n1\tA\tT_A\n2\tB\tR1\n", out)

	out, _, err = run(t, "reach", path, "--from", "A_e", "--knockout", "g1")
	require.NoError(t, err)
	assert.Equal(t, "0\tA_e\t\n", out)

	out, _, err = run(t, "reach", path, "--from", "B", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\tB\t\n1\tA\tR1\n", out)

	_, _, err = run(t, "reach", path)
	assert.Error(t, err, "--from is required")
}

func TestCheck(t *testing.T) {
	path := writeToy(t)

	out, _, err := run(t, "check", path, "--flux", "EX_A=-4,T_A=4,R1=4,Biomass=4")
	require.NoError(t, err)
	assert.Equal(t, "feasible\n", out)

	out, _, err = run(t, "check", path, "--flux", "T_A=20")
	require.ErrorIs(t, err, errInfeasible)
	assert.Equal(t, "upper\tT_A\t20\nbalance\tA_e\t-20\nbalance\tA\t20\n", out)

	_, _, err = run(t, "check", path, "--flux", "T_A=lots")
	assert.Error(t, err)
}

func TestIrreversible(t *testing.T) {
	path := writeToy(t)

	out, _, err := run(t, "irreversible", path)
	require.NoError(t, err)
	assert.Contains(t, out, "R1_f: A --> B [0, 10]")
	assert.Contains(t, out, "R1_b: B --> A [0, 10]")
	assert.Contains(t, out, "EX_A_b:  --> A_e [0, 10]")
	assert.NotContains(t, out, "R1:")

	dst := filepath.Join(t.TempDir(), "split.hcl")
	out, stderr, err := run(t, "--log-level", "info", "--log-format", "json",
		"irreversible", path, "-o", dst, "--forward-suffix", "_fwd", "--backward-suffix", "_rev")
	require.NoError(t, err)
	assert.Equal(t, "split 2 reactions, wrote "+dst+"\n", out)
	assert.Contains(t, stderr, `"msg":"model loaded"`)

	m, err := loader.Load(dst)
	require.NoError(t, err)
	assert.True(t, m.HasReaction("R1_fwd"))
	assert.True(t, m.HasReaction("EX_A_rev"))
	assert.False(t, m.HasReaction("R1"))
	rule, ok := m.Rule("R1_rev")
	require.True(t, ok)
	assert.Equal(t, "g1 or g2", rule)
}

func TestConvert(t *testing.T) {
	path := writeToy(t)
	dst := filepath.Join(t.TempDir(), "toy.hcl")

	_, _, err := run(t, "convert", path, dst)
	require.NoError(t, err)

	src, err := loader.Load(path)
	require.NoError(t, err)
	back, err := loader.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, src.String(), back.String())

	_, _, err = run(t, "convert", path, filepath.Join(t.TempDir(), "toy.json"))
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestStrictFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: g\nreactions:\n  - id: R\n    stoichiometry: {ghost: 1}\n"), 0o600))

	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	assert.Equal(t, "R:  <-> \n", out)

	_, _, err = run(t, "--strict", "show", path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	l := newLogger("debug", "text", &buf)
	assert.True(t, l.Enabled(ctx, slog.LevelDebug))

	l = newLogger("", "text", &buf)
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelWarn))

	l = newLogger("error", "json", &buf)
	l.Error("boom", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"boom"`)
}
