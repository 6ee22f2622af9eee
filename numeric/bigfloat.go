// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// BigFloat is the math/big.Float backend.
//
// All results are new *big.Float values rounded to the configured precision
// (ToNearestEven). Equal uses the same absolute-or-relative policy as
// Float64, evaluated in big arithmetic.
type BigFloat struct {
	prec   uint
	absTol *big.Float
	relTol *big.Float
}

var _ Ops[*big.Float] = BigFloat{}

// NewBigFloat returns a BigFloat backend.
// Honoured options: WithPrecision, WithAbsTol, WithRelTol.
func NewBigFloat(opts ...Option) BigFloat {
	o := gatherOptions(Options{precision: DefaultBigFloatPrecision}, opts)

	relTol := new(big.Float).SetPrec(o.precision)
	if o.relTolSet {
		relTol.SetFloat64(o.relTol)
	} else {
		relTol.SetMantExp(big.NewFloat(1), -precisionTolExp(o.precision))
	}

	return BigFloat{
		prec:   o.precision,
		absTol: new(big.Float).SetPrec(o.precision).SetFloat64(o.absTol),
		relTol: relTol,
	}
}

// precisionTolExp is the default tolerance exponent for prec mantissa bits.
func precisionTolExp(prec uint) int {
	return int(prec - prec/BigFloatSlackDivisor)
}

// RelTol returns the relative tolerance used by Equal.
func (b BigFloat) RelTol() *big.Float { return new(big.Float).Set(b.relTol) }

// Precision returns the mantissa size in bits.
func (b BigFloat) Precision() uint { return b.prec }

func (b BigFloat) alloc() *big.Float { return new(big.Float).SetPrec(b.prec) }

// FromFloat panics on NaN (big.Float has no NaN), like big.Float.SetFloat64.
// ±Inf converts to an infinite value that Finite reports.
func (b BigFloat) FromFloat(v float64) *big.Float { return b.alloc().SetFloat64(v) }
func (b BigFloat) FromInt(v int) *big.Float       { return b.alloc().SetInt64(int64(v)) }

func (b BigFloat) Add(x, y *big.Float) *big.Float { return b.alloc().Add(x, y) }
func (b BigFloat) Sub(x, y *big.Float) *big.Float { return b.alloc().Sub(x, y) }
func (b BigFloat) Mul(x, y *big.Float) *big.Float { return b.alloc().Mul(x, y) }
func (b BigFloat) Quo(x, y *big.Float) *big.Float { return b.alloc().Quo(x, y) }
func (b BigFloat) Neg(x *big.Float) *big.Float    { return b.alloc().Neg(x) }
func (b BigFloat) Abs(x *big.Float) *big.Float    { return b.alloc().Abs(x) }

func (b BigFloat) PowInt(x *big.Float, n int) *big.Float {
	r := b.FromInt(1)
	for i := 0; i < n; i++ {
		r.Mul(r, x)
	}

	return r
}

// Equal reports |x-y| ≤ absTol or |x-y| ≤ relTol·max(|x|,|y|).
func (b BigFloat) Equal(x, y *big.Float) bool {
	if x.Cmp(y) == 0 {
		return true
	}
	diff := b.Abs(b.Sub(x, y))
	if diff.Cmp(b.absTol) <= 0 {
		return true
	}
	scale := b.Abs(x)
	if ay := b.Abs(y); ay.Cmp(scale) > 0 {
		scale = ay
	}

	return diff.Cmp(scale.Mul(scale, b.relTol)) <= 0
}

func (BigFloat) Sign(x *big.Float) int { return x.Sign() }

// Finite reports false for nil and ±Inf.
func (BigFloat) Finite(x *big.Float) bool { return x != nil && !x.IsInf() }

func (BigFloat) Float64(x *big.Float) float64 {
	f, _ := x.Float64()

	return f
}

// String prints enough decimal digits to represent the precision.
func (BigFloat) String(x *big.Float) string {
	if x == nil {
		return "<nil>"
	}

	return x.Text('g', -1)
}
