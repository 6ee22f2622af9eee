// SPDX-License-Identifier: MIT

// Package numeric: functional configuration of the backends.
//
// Every backend accepts the same ...Option list; options that do not apply
// to a backend are ignored by it (e.g. WithPrecision on Float64).
// Constructors panic only on nonsensical values (programmer error).
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFloat64AbsTol is the absolute tolerance of Float64.Equal
	// (machine epsilon of float64).
	DefaultFloat64AbsTol = 2.220446049250313e-16

	// DefaultFloat64RelTol is the relative tolerance of Float64.Equal.
	DefaultFloat64RelTol = 1e-12

	// DefaultBigFloatPrecision is the mantissa size, in bits, of BigFloat values.
	DefaultBigFloatPrecision uint = 128

	// BigFloatSlackDivisor sets the default relative tolerance of
	// BigFloat.Equal from the precision: relTol = 2^-(prec - prec/4), i.e. the
	// low quarter of the mantissa is ignored (≈1e-12 at 53 bits, ≈1e-29 at 128).
	BigFloatSlackDivisor uint = 4

	// DefaultDecimalDigits is the number of fractional digits kept by Decimal.Quo.
	DefaultDecimalDigits int32 = 32

	// DefaultDecimalRelTol is the relative tolerance of Decimal.Equal.
	DefaultDecimalRelTol = 1e-24
)

// ---------- Internal panic messages ----------

const (
	panicTolInvalid       = "numeric: tolerance must be finite and non-negative"
	panicPrecisionInvalid = "numeric: WithPrecision: bits must be > 0"
	panicDigitsInvalid    = "numeric: WithDivisionDigits: digits must be > 0"
)

// Option mutates backend options. Last writer wins.
type Option func(*Options)

// Options holds the effective backend configuration. Fields are unexported;
// build it through the WithX setters.
type Options struct {
	absTol    float64
	relTol    float64
	relTolSet bool
	precision uint
	digits    int32
}

// WithAbsTol sets the absolute tolerance used by Equal.
// Panics if tol is negative, NaN or Inf.
func WithAbsTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance used by Equal.
// Panics if tol is negative, NaN or Inf.
func WithRelTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) {
		o.relTol = tol
		o.relTolSet = true
	}
}

// WithPrecision sets the BigFloat mantissa size in bits.
func WithPrecision(bits uint) Option {
	if bits == 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = bits }
}

// WithDivisionDigits sets how many fractional digits Decimal.Quo keeps.
func WithDivisionDigits(digits int32) Option {
	if digits <= 0 {
		panic(panicDigitsInvalid)
	}

	return func(o *Options) { o.digits = digits }
}

func checkTol(tol float64) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicTolInvalid)
	}
}

// gatherOptions applies opts over base and returns the result.
func gatherOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}
