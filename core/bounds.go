// SPDX-License-Identifier: MIT

// Package core - flux bound values.
//
// A flux bound side is either a finite number or "no value", which stands for
// -Inf on the lower side and +Inf on the upper side. Limit keeps that
// distinction explicit so formatting and transformations can tell an explicit
// bound from an absent one.
package core

import (
	"math"
	"strconv"
)

// Limit is one side of a flux bound. The zero value is Unbounded.
type Limit struct {
	value  float64
	finite bool
}

// Unbounded is the absent limit (±Inf depending on the side).
var Unbounded = Limit{}

// Finite returns a Limit holding v. Infinite or NaN inputs yield Unbounded,
// so callers can pass solver-style ±Inf values directly.
func Finite(v float64) Limit {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Unbounded
	}

	return Limit{value: v, finite: true}
}

// LimitFromPtr converts a nullable float into a Limit (nil → Unbounded).
func LimitFromPtr(v *float64) Limit {
	if v == nil {
		return Unbounded
	}

	return Finite(*v)
}

// Value returns the numeric value and whether the limit is finite.
func (l Limit) Value() (float64, bool) { return l.value, l.finite }

// IsUnbounded reports whether the limit has no value.
func (l Limit) IsUnbounded() bool { return !l.finite }

// Ptr returns a pointer to a copy of the value, or nil when unbounded.
func (l Limit) Ptr() *float64 {
	if !l.finite {
		return nil
	}
	v := l.value

	return &v
}

// Neg returns the negated limit; an unbounded limit stays unbounded.
func (l Limit) Neg() Limit {
	if !l.finite {
		return Unbounded
	}

	return Limit{value: -l.value, finite: true}
}

// Or returns the value when finite, otherwise def.
func (l Limit) Or(def float64) float64 {
	if !l.finite {
		return def
	}

	return l.value
}

// String renders the value with the shortest exact representation, or the
// empty string when unbounded.
func (l Limit) String() string {
	if !l.finite {
		return ""
	}

	return formatNumber(l.value)
}

// Bounds is the lower/upper flux bound pair of a reaction.
// The zero value is fully unbounded.
type Bounds struct {
	Lower Limit
	Upper Limit
}

// NewBounds is shorthand for Bounds{Finite(lo), Finite(hi)}.
func NewBounds(lo, hi float64) Bounds {
	return Bounds{Lower: Finite(lo), Upper: Finite(hi)}
}

// Interval returns the bounds as floats, mapping unbounded sides to -Inf/+Inf.
func (b Bounds) Interval() (lo, hi float64) {
	return b.Lower.Or(math.Inf(-1)), b.Upper.Or(math.Inf(1))
}

// IsDefault reports whether the pair adds nothing to the reaction's direction:
// fully unbounded for reversible reactions, and (0 or unbounded, unbounded)
// for irreversible ones.
func (b Bounds) IsDefault(reversible bool) bool {
	if !b.Upper.IsUnbounded() {
		return false
	}
	lo, finite := b.Lower.Value()
	if !finite {
		return true
	}

	return !reversible && lo == 0
}

// String renders the pair as "[lo, hi]" with empty text for unbounded sides.
func (b Bounds) String() string {
	return "[" + b.Lower.String() + ", " + b.Upper.String() + "]"
}

// BoundsEntry pairs a reaction ID with its bounds for bulk updates.
type BoundsEntry struct {
	Reaction string
	Bounds   Bounds
}

// formatNumber renders v with the shortest representation that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
