// Package derivative estimates 1st..4th derivatives of a sampled function at
// one of its sample points using centered finite differences.
//
// 🚀 What does it do?
//
//	Given abscissas X, ordinates Y, a target index, a derivative order,
//	a step h and an accuracy order (O(h²) or O(h⁴)), the engine
//	  1. locates the samples lying exactly ±h, ±2h, ±3h away from
//	     X[position] (X may be unsorted and non-uniform),
//	  2. collects their ordinates into a 7-slot Stencil Window,
//	  3. applies the matching closed-form centered-difference formula.
//
// ✨ Formula bank (numerator / divisor):
//
//	O(h²)  1st: f₁ − f₋₁                                   / 2h
//	       2nd: f₁ − 2f₀ + f₋₁                             / h²
//	       3rd: f₂ − 2f₁ + 2f₋₁ − f₋₂                      / 2h³
//	       4th: f₂ − 4f₁ + 6f₀ − 4f₋₁ + f₋₂                / h⁴
//	O(h⁴)  1st: −f₂ + 8f₁ − 8f₋₁ + f₋₂                     / 12h
//	       2nd: −f₂ + 16f₁ − 30f₀ + 16f₋₁ − f₋₂            / 12h²
//	       3rd: −f₃ + 8f₂ − 13f₁ + 13f₋₁ − 8f₋₂ + f₋₃      / 8h³
//	       4th: −f₃ + 12f₂ − 39f₁ + 56f₀ − 39f₋₁ + 12f₋₂ − f₋₃ / 6h⁴
//
// Neighbor matching compares |X[position] − X[i]| against k·h with the
// backend's tolerant equality (numeric.Ops.Equal); samples that do not match
// the next expected offset are skipped, not fatal.
//
// ⚙️ Usage:
//
//	x := []float64{0.79, 0.8, 0.81}
//	y := []float64{math.Cos(0.79), math.Cos(0.8), math.Cos(0.81)}
//	d, err := derivative.Derivate(x, y, 1, 1, 0.01, derivative.H2) // ≈ −0.71734415
//
// For other precisions build an engine over any numeric backend:
//
//	eng := derivative.New[decimal.Decimal](numeric.NewDecimal())
//	d, err := eng.Derivate(X, Y, pos, order, h, derivative.H4)
//
// Errors (match with errors.Is):
//   - ErrInvalidPosition        — position outside [0, len(Y)).
//   - ErrInvalidFormula         — accuracy not in {2, 4}.
//   - ErrInvalidDerivativeOrder — order not in {1, 2, 3, 4}.
//   - ErrMissingNeighbors       — a required ±kh sample is absent.
//   - ErrInvalidStep            — h ≤ 0, NaN or ±Inf.
//   - numeric.ErrNonFinite      — a scanned X or stored Y is NaN or ±Inf.
//
// Missing-neighbor policy: by default any absent required slot fails the
// call. WithZeroFill restores the permissive rule: fail only when every
// required slot is absent and read absent slots as zero.
//
// Engines are immutable and safe for concurrent use.
package derivative
