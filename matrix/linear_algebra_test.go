// SPDX-License-Identifier: MIT
// Package matrix_test verifies the eager kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxnet/matrix"
)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// rawRows flattens any Matrix into [][]float64 for comparisons.
func rawRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestAddSubScale(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, rawRows(t, sum))

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}, {27, 36}}, rawRows(t, diff))

	sc, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, -4}, {-6, -8}}, rawRows(t, sc))

	_, err = matrix.Add(a, mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeMul(t *testing.T) {
	s := mustDense(t, [][]float64{{-1, 0, 1}, {1, -1, 0}})

	st, err := matrix.Transpose(s)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 1}, {0, -1}, {1, 0}}, rawRows(t, st))

	sst, err := matrix.Mul(s, st)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -1}, {-1, 2}}, rawRows(t, sst))

	_, err = matrix.Mul(s, s)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	s := mustDense(t, [][]float64{{-1, 0, 1}, {1, -1, 0}})

	y, err := matrix.MatVec(s, []float64{2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, y)

	y, err = s.MulVec([]float64{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 1}, y)

	_, err = matrix.MatVec(s, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(s, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}, 1},
		{"zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]float64{{-1, 0, 1}, {1, -1, 0}}, 2},
		{"cycle", [][]float64{{-1, 0, 1}, {1, -1, 0}, {0, 1, -1}}, 2},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := matrix.Rank(mustDense(t, tc.rows), 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}

	_, err := matrix.Rank(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
