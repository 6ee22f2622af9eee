package derivative_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/shopspring/decimal"
)

// ExampleDerivate differentiates cos at x = 0.8 on a 0.01-spaced grid with
// both accuracy orders. The exact value is −sin(0.8) ≈ −0.7173561.
func ExampleDerivate() {
	x := []float64{0.78, 0.79, 0.8, 0.81, 0.82}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Cos(v)
	}

	h2, _ := derivative.Derivate(x, y, 2, 1, 0.01, derivative.H2)
	h4, _ := derivative.Derivate(x, y, 2, 1, 0.01, derivative.H4)
	fmt.Printf("O(h^2): %.7f\nO(h^4): %.7f\n", h2, h4)
	// Output:
	// O(h^2): -0.7173441
	// O(h^4): -0.7173561
}

// ExampleDerivate_missingNeighbors shows the strict presence policy: a
// 3-point grid cannot feed the 5-point fourth-derivative stencil.
func ExampleDerivate_missingNeighbors() {
	x := []float64{0.79, 0.8, 0.81}
	y := []float64{math.Cos(0.79), math.Cos(0.8), math.Cos(0.81)}

	_, err := derivative.Derivate(x, y, 1, 4, 0.01, derivative.H2)
	fmt.Println(errors.Is(err, derivative.ErrMissingNeighbors))
	fmt.Println(err)
	// Output:
	// true
	// derivative: required neighbors not defined: f(-2), f(+2) for h = 0.01
}

// ExampleEngine_Derivate runs the engine on the decimal backend, where
// grid offsets compare exactly.
func ExampleEngine_Derivate() {
	ops := numeric.NewDecimal()
	e := derivative.New[decimal.Decimal](ops)

	x := numeric.Slice[decimal.Decimal]{
		decimal.RequireFromString("1.0"),
		decimal.RequireFromString("1.1"),
		decimal.RequireFromString("1.2"),
	}
	y := make(numeric.Slice[decimal.Decimal], len(x))
	for i, v := range x {
		y[i] = v.Mul(v) // f(x) = x²
	}

	d1, _ := e.Derivate(x, y, 1, 1, decimal.RequireFromString("0.1"), derivative.H2)
	d2, _ := e.Derivate(x, y, 1, 2, decimal.RequireFromString("0.1"), derivative.H2)
	fmt.Println(d1.String(), d2.String())
	// Output:
	// 2.2 2
}

// ExampleLookup prints the O(h⁴) first-derivative formula.
func ExampleLookup() {
	f, _ := derivative.Lookup(1, derivative.H4)
	fmt.Println(f.Accuracy, f)
	// Output:
	// O(h^4) (1·f(-2h) + -8·f(-1h) + 8·f(+1h) + -1·f(+2h)) / (12·h^1)
}
