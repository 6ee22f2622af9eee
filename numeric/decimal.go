// SPDX-License-Identifier: MIT

package numeric

import "github.com/shopspring/decimal"

// Decimal is the arbitrary-precision decimal backend.
//
// Add, Sub, Mul, Neg, Abs and PowInt are exact. Quo rounds half-up to the
// configured number of fractional digits. Float inputs enter through
// decimal.NewFromFloat, which keeps the shortest round-tripping decimal
// (0.79 stays exactly 0.79), so grid offsets compare exactly.
type Decimal struct {
	digits int32
	absTol decimal.Decimal
	relTol decimal.Decimal
}

var _ Ops[decimal.Decimal] = Decimal{}

// NewDecimal returns a Decimal backend.
// Honoured options: WithDivisionDigits, WithAbsTol, WithRelTol.
func NewDecimal(opts ...Option) Decimal {
	o := gatherOptions(Options{
		digits: DefaultDecimalDigits,
		relTol: DefaultDecimalRelTol,
	}, opts)

	return Decimal{
		digits: o.digits,
		absTol: decimal.NewFromFloat(o.absTol),
		relTol: decimal.NewFromFloat(o.relTol),
	}
}

// Digits returns the number of fractional digits kept by Quo.
func (d Decimal) Digits() int32 { return d.digits }

// FromFloat panics on NaN and ±Inf (decimal.NewFromFloat behaviour);
// screen inputs with CheckFinite first.
func (Decimal) FromFloat(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
func (Decimal) FromInt(v int) decimal.Decimal       { return decimal.NewFromInt(int64(v)) }

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (Decimal) Abs(a decimal.Decimal) decimal.Decimal    { return a.Abs() }

// Quo panics on division by zero (shopspring/decimal behaviour).
func (d Decimal) Quo(a, b decimal.Decimal) decimal.Decimal { return a.DivRound(b, d.digits) }

func (Decimal) PowInt(a decimal.Decimal, n int) decimal.Decimal {
	r := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		r = r.Mul(a)
	}

	return r
}

// Equal reports |a-b| ≤ absTol or |a-b| ≤ relTol·max(|a|,|b|).
func (d Decimal) Equal(a, b decimal.Decimal) bool {
	if a.Equal(b) {
		return true
	}
	diff := a.Sub(b).Abs()
	if diff.LessThanOrEqual(d.absTol) {
		return true
	}

	return diff.LessThanOrEqual(decimal.Max(a.Abs(), b.Abs()).Mul(d.relTol))
}

func (Decimal) Sign(a decimal.Decimal) int        { return a.Sign() }
func (Decimal) Finite(decimal.Decimal) bool       { return true }
func (Decimal) Float64(a decimal.Decimal) float64 { return a.InexactFloat64() }
func (Decimal) String(a decimal.Decimal) string   { return a.String() }
