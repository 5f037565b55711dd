// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with a method tag)
// and tests check them via errors.Is. No function panics on user-triggered
// error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are invalid
	// (non-positive for NewDense, negative for internal zero-size constructors).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver, argument or vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilSource indicates that a nil network was passed into the stoichiometric adapter.
	ErrNilSource = errors.New("matrix: source is nil")

	// ErrUnknownID indicates that a metabolite or reaction id is absent from the
	// index of a StoichiometricMatrix.
	ErrUnknownID = errors.New("matrix: unknown id")
)
