// Package quadrature approximates definite integrals with the composite
// Trapezoidal and composite Simpson rules.
//
// 🚀 Rules (h is the subinterval width):
//
//	Trapezium: h = (b−a)/M
//	           ∫ ≈ h·(f(a)+f(b))/2 + h·Σ_{k=1..M−1} f(a+kh)          M+1 evaluations
//	Simpson:   h = (b−a)/(2M), M odd
//	           ∫ ≈ h/3·(f(a) + f(b) + 4·Σ_{k=1..M} f(a+(2k−1)h)
//	                              + 2·Σ_{k=1..M−1} f(a+2kh))          2M+1 evaluations
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return 2 + math.Sin(2*math.Sqrt(x)) }
//	v, err := quadrature.Integrate(f, 1, 6, 5, quadrature.Simpson) // ≈ 8.18301550
//
// Generic integrators run over any numeric backend:
//
//	q := quadrature.New[decimal.Decimal](numeric.NewDecimal(), quadrature.WithConcurrency(4))
//
// With WithConcurrency the evaluations of f run on a bounded pool, but the
// weighted sums are always accumulated in ascending node order, so results
// are bit-identical to the serial path. f must be pure.
//
// Errors: ErrUnknownMethod, ErrInvalidPartitionCount, ErrNilFunction.
package quadrature
