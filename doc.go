// Package lvnum is a small numerical-analysis toolkit: derivatives of sampled
// functions and definite integrals of continuous ones, over interchangeable
// numeric backends.
//
// 🚀 What is inside?
//
//	numeric/    — Ops[T] arithmetic backends (float64, math/big.Float,
//	              shopspring decimal) and the Vector[T] sequence view
//	derivative/ — centered finite differences, orders 1..4, O(h²) and O(h⁴),
//	              with a neighbor locator for unsorted, non-uniform grids
//	quadrature/ — composite Trapezoidal and Simpson rules
//	cmd/lvnum   — command line front end and YAML/TOML/JSON batch runner
//
// ✨ Why lvnum?
//
//   - One formula bank, any precision: every arithmetic step goes through Ops[T]
//   - Explicit failures: sentinel errors for every rejected input, no panics on data
//   - Deterministic: optional concurrency never changes summation order
//
// Quick taste:
//
//	x := []float64{0.79, 0.8, 0.81}
//	y := []float64{math.Cos(0.79), math.Cos(0.8), math.Cos(0.81)}
//	d, _ := derivative.Derivate(x, y, 1, 1, 0.01, derivative.H2)      // ≈ −0.71734415
//	v, _ := quadrature.Integrate(f, 1, 6, 5, quadrature.Simpson)      // composite Simpson
//
//	go get github.com/katalvlaran/lvnum
package lvnum
