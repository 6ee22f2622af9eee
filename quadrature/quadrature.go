package quadrature

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Integrator applies composite quadrature rules over a numeric backend.
type Integrator[T any] struct {
	ops  numeric.Ops[T]
	opts options
}

// New returns an Integrator over ops. Panics if ops is nil.
func New[T any](ops numeric.Ops[T], opts ...Option) *Integrator[T] {
	if ops == nil {
		panic("quadrature: New: nil numeric backend")
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Integrator[T]{ops: ops, opts: o}
}

// Integrate approximates ∫_a^b f with m subintervals using method.
//
// Errors: ErrUnknownMethod, then those of Trapezoidal / Simpson.
func (q *Integrator[T]) Integrate(f Func[T], a, b T, m int, method Method) (T, error) {
	switch method {
	case Trapezium:
		return q.Trapezoidal(f, a, b, m)
	case Simpson:
		return q.Simpson(f, a, b, m)
	default:
		var zero T

		return zero, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// Trapezoidal applies the composite Trapezoidal rule with m ≥ 1 subintervals.
//
// Errors: ErrNilFunction, ErrInvalidPartitionCount, numeric.ErrNonFinite
// (bounds or integrand values).
func (q *Integrator[T]) Trapezoidal(f Func[T], a, b T, m int) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFunction
	}
	if m < 1 {
		return zero, fmt.Errorf("%w: M must be >= 1, got %d", ErrInvalidPartitionCount, m)
	}
	if err := q.checkBounds(a, b); err != nil {
		return zero, err
	}

	ops := q.ops
	h := ops.Quo(ops.Sub(b, a), ops.FromInt(m))
	v, err := q.sample(f, m+1, func(k int) T {
		switch k {
		case 0:
			return a
		case m:
			return b
		}

		return ops.Add(a, ops.Mul(h, ops.FromInt(k)))
	})
	if err != nil {
		return zero, err
	}

	sum := numeric.Zero(ops)
	for k := 1; k < m; k++ {
		sum = ops.Add(sum, v[k])
	}
	ends := ops.Quo(ops.Mul(h, ops.Add(v[0], v[m])), ops.FromInt(2))
	res := ops.Add(ends, ops.Mul(h, sum))
	q.trace(Trapezium, m, len(v), res)

	return res, nil
}

// Simpson applies the composite Simpson rule on 2m subintervals; m must be
// odd and ≥ 1.
//
// Errors: ErrNilFunction, ErrInvalidPartitionCount, numeric.ErrNonFinite.
func (q *Integrator[T]) Simpson(f Func[T], a, b T, m int) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFunction
	}
	if m < 1 {
		return zero, fmt.Errorf("%w: M must be >= 1, got %d", ErrInvalidPartitionCount, m)
	}
	if m%2 == 0 {
		return zero, fmt.Errorf("%w: simpson requires an odd number of subintervals, got %d",
			ErrInvalidPartitionCount, m)
	}
	if err := q.checkBounds(a, b); err != nil {
		return zero, err
	}

	ops := q.ops
	n := 2 * m
	h := ops.Quo(ops.Sub(b, a), ops.FromInt(n))
	v, err := q.sample(f, n+1, func(j int) T {
		switch j {
		case 0:
			return a
		case n:
			return b
		}

		return ops.Add(a, ops.Mul(h, ops.FromInt(j)))
	})
	if err != nil {
		return zero, err
	}

	odd, even := numeric.Zero(ops), numeric.Zero(ops)
	for k := 1; k <= m; k++ {
		odd = ops.Add(odd, v[2*k-1])
	}
	for k := 1; k < m; k++ {
		even = ops.Add(even, v[2*k])
	}
	total := ops.Add(ops.Add(v[0], v[n]), ops.Add(
		ops.Mul(ops.FromInt(4), odd),
		ops.Mul(ops.FromInt(2), even),
	))
	res := ops.Quo(ops.Mul(h, total), ops.FromInt(3))
	q.trace(Simpson, m, len(v), res)

	return res, nil
}

func (q *Integrator[T]) checkBounds(a, b T) error {
	if !q.ops.Finite(a) || !q.ops.Finite(b) {
		return fmt.Errorf("quadrature: %w: bounds [%s, %s]",
			numeric.ErrNonFinite, q.ops.String(a), q.ops.String(b))
	}

	return nil
}

// sample returns f(node(k)) for k = 0..n-1, index-addressed. A non-finite
// value fails the call with the lowest offending node.
func (q *Integrator[T]) sample(f Func[T], n int, node func(k int) T) ([]T, error) {
	out := make([]T, n)
	if q.opts.workers == 1 {
		for k := range out {
			out[k] = f(node(k))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(q.opts.workers)
		for k := range out {
			g.Go(func() error {
				out[k] = f(node(k))

				return nil
			})
		}
		_ = g.Wait()
	}

	for k, v := range out {
		if !q.ops.Finite(v) {
			return nil, fmt.Errorf("quadrature: %w: f(x_%d) = %s",
				numeric.ErrNonFinite, k, q.ops.String(v))
		}
	}

	return out, nil
}

func (q *Integrator[T]) trace(method Method, m, evals int, res T) {
	q.opts.logger.Debug("integral evaluated",
		zap.Stringer("method", method),
		zap.Int("m", m),
		zap.Int("evaluations", evals),
		zap.String("value", q.ops.String(res)),
	)
}

// Integrate is the float64 shortcut of Integrator.Integrate.
func Integrate(f func(float64) float64, a, b float64, m int, method Method) (float64, error) {
	return New[float64](numeric.NewFloat64()).Integrate(f, a, b, m, method)
}
