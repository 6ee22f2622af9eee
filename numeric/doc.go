// SPDX-License-Identifier: MIT

// Package numeric is the arithmetic backend shared by the derivative and
// quadrature packages.
//
// 🚀 What is it?
//
//	Every add, subtract, multiply, divide, power, absolute value and
//	tolerant equality performed by a finite-difference formula or a
//	quadrature rule goes through a single Ops[T] value. Swapping the
//	backend swaps the precision of the whole computation without touching
//	formula code.
//
// ✨ Backends:
//   - Float64  — IEEE-754 doubles; Equal via gonum floats/scalar
//     (absolute OR relative tolerance).
//   - BigFloat — math/big.Float at a configurable binary precision; the
//     default tolerance scales with it.
//   - Decimal  — arbitrary-precision decimals (shopspring/decimal) with a
//     configurable number of division digits.
//
// Sequences are read through Vector[T] (Len + At). Slice[T] adapts a plain
// slice, MatVec adapts any gonum mat.Vector.
//
// ⚙️ Usage:
//
//	ops := numeric.NewFloat64(numeric.WithRelTol(1e-10))
//	x := numeric.Slice[float64]{0.79, 0.8, 0.81}
//	ok := ops.Equal(ops.Abs(ops.Sub(x.At(1), x.At(0))), 0.01) // true
//
// Backends are immutable values and safe for concurrent use. Values
// returned by BigFloat are always freshly allocated; inputs are never
// mutated.
package numeric
