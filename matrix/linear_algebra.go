// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Eager, allocation-per-call kernels over Matrix: Add, Sub, Scale,
//     Transpose, Mul, MatVec and Rank.
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with the same fixed i→j loop order.
//
// Determinism:
//   - Fixed loop orders; results never depend on map iteration.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags used in error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opRank      = "Rank"
)

// DefaultRankTolerance is the pivot magnitude below which Rank treats a
// column as dependent, relative to the largest absolute entry.
const DefaultRankTolerance = 1e-10

// matrixErrorf formats "<tag>: <underlying>" and keeps the sentinel matchable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range res.data {
			res.data[k] = da.data[k] + sign*db.data[k]
		}
		return res, nil
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Shapes must match.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			res.data[k] = alpha * v
		}
		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; zero-sized shapes are preserved
// (0×N becomes N×0).
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul returns the product a*b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate r×c result.
//   - Stage 2: *Dense fast path in i→k→j order, skipping zero a[i,k]
//     (stoichiometric matrices are mostly zeros); generic fallback i→j→k.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	var acc float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if xv = x[j]; xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Rank returns the numerical rank of m via Gaussian elimination with partial
// pivoting on a private copy. tol <= 0 selects DefaultRankTolerance; the
// effective threshold is tol * max|m[i,j]|.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c*min(r,c)) time, O(r*c) space.
func Rank(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if tol <= 0 {
		tol = DefaultRankTolerance
	}
	rows, cols := m.Rows(), m.Cols()
	work := make([]float64, rows*cols)
	maxAbs := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opRank, err)
			}
			work[i*cols+j] = v
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if maxAbs == 0 {
		return 0, nil
	}
	eps := tol * maxAbs

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		// Stage 1: pick the largest pivot in this column at or below row `rank`.
		pivot, best := -1, eps
		for i := rank; i < rows; i++ {
			if a := math.Abs(work[i*cols+col]); a > best {
				pivot, best = i, a
			}
		}
		if pivot < 0 {
			continue
		}
		// Stage 2: swap it into place.
		if pivot != rank {
			for j := 0; j < cols; j++ {
				work[pivot*cols+j], work[rank*cols+j] = work[rank*cols+j], work[pivot*cols+j]
			}
		}
		// Stage 3: eliminate below.
		p := work[rank*cols+col]
		for i := rank + 1; i < rows; i++ {
			f := work[i*cols+col] / p
			if f == 0 {
				continue
			}
			for j := col; j < cols; j++ {
				work[i*cols+j] -= f * work[rank*cols+j]
			}
		}
		rank++
	}

	return rank, nil
}
