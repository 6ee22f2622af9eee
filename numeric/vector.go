// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a read-only, index-addressable numeric sequence.
type Vector[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to Vector.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// MatVec adapts a gonum mat.Vector (e.g. *mat.VecDense) to Vector[float64].
type MatVec struct {
	v mat.Vector
}

// FromMat wraps v. A nil v yields a MatVec of length 0.
func FromMat(v mat.Vector) MatVec { return MatVec{v: v} }

func (m MatVec) Len() int {
	if m.v == nil {
		return 0
	}

	return m.v.Len()
}

func (m MatVec) At(i int) float64 { return m.v.AtVec(i) }

// FromFloats converts xs into the backend representation.
// Every value must be finite (see CheckFinite).
func FromFloats[T any](ops Ops[T], xs []float64) Slice[T] {
	out := make(Slice[T], len(xs))
	for i, v := range xs {
		out[i] = ops.FromFloat(v)
	}

	return out
}

// Convert copies a float64 Vector into the backend representation.
// Every value must be finite (see CheckFinite).
func Convert[T any](ops Ops[T], v Vector[float64]) Slice[T] {
	out := make(Slice[T], v.Len())
	for i := range out {
		out[i] = ops.FromFloat(v.At(i))
	}

	return out
}

// Floats copies v back into a []float64 (lossy for high-precision backends).
func Floats[T any](ops Ops[T], v Vector[T]) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = ops.Float64(v.At(i))
	}

	return out
}

// ValidatePair checks that x and y are non-nil and of equal length.
//
// Errors: ErrNilVector, ErrLengthMismatch (wrapped with both lengths).
func ValidatePair[T any](x, y Vector[T]) error {
	if x == nil || y == nil {
		return ErrNilVector
	}
	if x.Len() != y.Len() {
		return fmt.Errorf("%w: len(X)=%d, len(Y)=%d", ErrLengthMismatch, x.Len(), y.Len())
	}

	return nil
}

// CheckFinite returns ErrNonFinite (with the first offending index) when xs
// holds a NaN or ±Inf.
func CheckFinite(xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: [%d] = %v", ErrNonFinite, i, v)
		}
	}

	return nil
}
