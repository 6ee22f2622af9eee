// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float64 is the IEEE-754 double backend.
//
// Equal(a, b) holds when |a-b| ≤ absTol or |a-b| ≤ relTol·max(|a|,|b|),
// as decided by scalar.EqualWithinAbsOrRel.
type Float64 struct {
	absTol float64
	relTol float64
}

var _ Ops[float64] = Float64{}

// NewFloat64 returns a Float64 backend. Honoured options: WithAbsTol, WithRelTol.
func NewFloat64(opts ...Option) Float64 {
	o := gatherOptions(Options{
		absTol: DefaultFloat64AbsTol,
		relTol: DefaultFloat64RelTol,
	}, opts)

	return Float64{absTol: o.absTol, relTol: o.relTol}
}

func (Float64) FromFloat(v float64) float64 { return v }
func (Float64) FromInt(v int) float64       { return float64(v) }
func (Float64) Add(a, b float64) float64    { return a + b }
func (Float64) Sub(a, b float64) float64    { return a - b }
func (Float64) Mul(a, b float64) float64    { return a * b }
func (Float64) Quo(a, b float64) float64    { return a / b }
func (Float64) Neg(a float64) float64       { return -a }
func (Float64) Abs(a float64) float64       { return math.Abs(a) }
func (Float64) Float64(a float64) float64   { return a }

// PowInt returns a**n by repeated multiplication, so small integer powers
// of h are exact products rather than math.Pow approximations.
func (Float64) PowInt(a float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= a
	}

	return r
}

// Equal reports tolerant equality (see type doc).
func (f Float64) Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, f.absTol, f.relTol)
}

// Sign returns -1, 0 or +1; NaN reports 0.
func (Float64) Sign(a float64) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

func (Float64) Finite(a float64) bool { return !math.IsNaN(a) && !math.IsInf(a, 0) }

// String uses the shortest representation that round-trips.
func (Float64) String(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
