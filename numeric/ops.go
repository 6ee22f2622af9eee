// SPDX-License-Identifier: MIT

package numeric

// Ops is the numeric-operations abstraction. All formula arithmetic is routed
// through it so that the precision backend is swappable.
//
// Contract:
//   - Methods never mutate their arguments.
//   - Quo by an exact zero is backend-defined (±Inf for Float64 and BigFloat,
//     panic for Decimal); callers validate divisors beforehand.
//   - PowInt requires n ≥ 0.
//   - FromFloat requires a finite v: Decimal panics on NaN/±Inf and
//     BigFloat on NaN. CheckFinite screens float64 input.
//   - Arithmetic on non-finite values is backend-defined (BigFloat panics on
//     Inf−Inf); engines reject samples that fail Finite before computing.
//   - Equal is the backend's tolerant equality; it is the ONLY comparison
//     used to match sample offsets.
type Ops[T any] interface {
	// FromFloat converts a float64 into the backend representation.
	FromFloat(v float64) T
	// FromInt converts an integer (coefficients, counts) exactly.
	FromInt(v int) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(a T) T
	Abs(a T) T
	PowInt(a T, n int) T

	// Equal reports whether a and b are equal within the backend tolerance.
	Equal(a, b T) bool
	// Sign returns -1, 0 or +1.
	Sign(a T) int
	// Finite reports whether a is neither infinite nor NaN.
	Finite(a T) bool

	// Float64 returns the nearest float64 (lossy for high-precision backends).
	Float64(a T) float64
	// String formats a for reports without losing backend precision.
	String(a T) string
}

// Zero returns the additive identity of ops.
func Zero[T any](ops Ops[T]) T { return ops.FromInt(0) }
