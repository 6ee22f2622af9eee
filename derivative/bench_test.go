package derivative_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/numeric"
)

// sineGrid returns n samples of sin on a grid of step h.
func sineGrid(n int, h float64) (numeric.Slice[float64], numeric.Slice[float64]) {
	x := make(numeric.Slice[float64], n)
	y := make(numeric.Slice[float64], n)
	for i := range x {
		x[i] = float64(i) * h
		y[i] = math.Sin(x[i])
	}

	return x, y
}

// benchmarkDerivate measures a single evaluation in the middle of an n-point grid.
// The locator scan is linear in n, so this tracks grid size.
func benchmarkDerivate(b *testing.B, n int, acc derivative.Accuracy) {
	x, y := sineGrid(n, 0.01)
	e := derivative.New[float64](numeric.NewFloat64())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Derivate(x, y, n/2, 2, 0.01, acc); err != nil {
			b.Fatalf("Derivate failed: %v", err)
		}
	}
}

func BenchmarkDerivate_H2_Small(b *testing.B) { benchmarkDerivate(b, 16, derivative.H2) }
func BenchmarkDerivate_H4_Small(b *testing.B) { benchmarkDerivate(b, 16, derivative.H4) }
func BenchmarkDerivate_H4_Large(b *testing.B) { benchmarkDerivate(b, 10_000, derivative.H4) }

// benchmarkDerivateAll measures the whole-grid sweep with the given worker limit.
func benchmarkDerivateAll(b *testing.B, n, workers int) {
	x, y := sineGrid(n, 0.01)
	e := derivative.New[float64](numeric.NewFloat64(), derivative.WithConcurrency(workers))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.DerivateAll(x, y, 1, 0.01, derivative.H4); err != nil {
			b.Fatalf("DerivateAll failed: %v", err)
		}
	}
}

func BenchmarkDerivateAll_Serial(b *testing.B)   { benchmarkDerivateAll(b, 2_000, 1) }
func BenchmarkDerivateAll_Parallel(b *testing.B) { benchmarkDerivateAll(b, 2_000, 8) }
