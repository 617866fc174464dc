// Package vmath provides dimension- and precision-generic vector math for
// contact resolution. All types are small value structs parameterized over
// the scalar type; float32 instantiations stay in single precision
// throughout (math32 for transcendental calls).
package vmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for all vmath types
type Float interface {
	constraints.Float
}

// Sqrt returns the square root in the precision of S
// float32 dispatches to math32 to avoid a double-precision round trip
func Sqrt[S Float](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Sqrt(v))
	default:
		return S(math.Sqrt(float64(x)))
	}
}

// Sin returns sine in the precision of S
func Sin[S Float](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Sin(v))
	default:
		return S(math.Sin(float64(x)))
	}
}

// Cos returns cosine in the precision of S
func Cos[S Float](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Cos(v))
	default:
		return S(math.Cos(float64(x)))
	}
}

// Abs returns absolute value
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b
func Min[S Float](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max[S Float](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// IsNaN reports whether x is not-a-number
func IsNaN[S Float](x S) bool {
	return x != x
}

// IsInf reports whether x is positive or negative infinity
func IsInf[S Float](x S) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither infinite nor NaN
func IsFinite[S Float](x S) bool {
	return !IsInf(x) && !IsNaN(x)
}
