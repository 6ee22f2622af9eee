// Package expr compiles one-variable JavaScript expressions into Go
// functions. Expressions see their argument as x, every Math member, and the
// short aliases sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, exp, log,
// sqrt, cbrt, abs, pow, floor, ceil, PI and E. Note that ^ is JavaScript XOR;
// write pow(x, 2) or x*x.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

var (
	// ErrCompile indicates the source is not a valid expression.
	ErrCompile = errors.New("expr: compile failed")

	// ErrNotNumeric indicates an evaluation produced a non-number or a non-finite number.
	ErrNotNumeric = errors.New("expr: result is not a finite number")
)

const prelude = `var sin = Math.sin, cos = Math.cos, tan = Math.tan,
	asin = Math.asin, acos = Math.acos, atan = Math.atan,
	sinh = Math.sinh, cosh = Math.cosh, tanh = Math.tanh,
	exp = Math.exp, log = Math.log, sqrt = Math.sqrt, cbrt = Math.cbrt,
	abs = Math.abs, pow = Math.pow, floor = Math.floor, ceil = Math.ceil,
	PI = Math.PI, E = Math.E;`

// Expr is a compiled expression bound to its own goja runtime.
// Eval is serialized; goja runtimes are single-goroutine.
type Expr struct {
	src string
	mu  sync.Mutex
	vm  *goja.Runtime
	fn  goja.Callable
}

// Compile parses src as the body of f(x).
func Compile(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrCompile)
	}
	vm := goja.New()
	vm.Set("require", goja.Undefined())
	if _, err := vm.RunString(prelude); err != nil {
		return nil, fmt.Errorf("%w: prelude: %v", ErrCompile, err)
	}

	v, err := vm.RunString("(function (x) { return (" + src + "\n); })")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not callable", ErrCompile, src)
	}

	return &Expr{src: src, vm: vm, fn: fn}, nil
}

// String returns the source expression.
func (e *Expr) String() string { return e.src }

// Eval returns f(x).
//
// Errors: ErrNotNumeric, or the wrapped JavaScript exception.
func (e *Expr) Eval(x float64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.fn(goja.Undefined(), e.vm.ToValue(x))
	if err != nil {
		return 0, fmt.Errorf("expr: %q at x=%g: %w", e.src, x, err)
	}

	var v float64
	switch r := res.Export().(type) {
	case float64:
		v = r
	case int64:
		v = float64(r)
	default:
		return 0, fmt.Errorf("%w: %q at x=%g gave %v", ErrNotNumeric, e.src, x, res)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q at x=%g gave %g", ErrNotNumeric, e.src, x, v)
	}

	return v, nil
}

// Func adapts e for callers that cannot return errors, such as quadrature
// integrands. A failed evaluation yields 0; check returns the first failure.
func (e *Expr) Func() (f func(float64) float64, check func() error) {
	var (
		mu    sync.Mutex
		first error
	)
	f = func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil {
			mu.Lock()
			if first == nil {
				first = err
			}
			mu.Unlock()

			return 0
		}

		return v
	}
	check = func() error {
		mu.Lock()
		defer mu.Unlock()

		return first
	}

	return f, check
}
