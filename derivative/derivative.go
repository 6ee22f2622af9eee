package derivative

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine evaluates centered finite differences over a numeric backend.
// It holds only immutable configuration.
type Engine[T any] struct {
	ops  numeric.Ops[T]
	opts options
}

// New returns an Engine over ops. Panics if ops is nil.
func New[T any](ops numeric.Ops[T], opts ...Option) *Engine[T] {
	if ops == nil {
		panic("derivative: New: nil numeric backend")
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Engine[T]{ops: ops, opts: o}
}

// Ops returns the engine's numeric backend.
func (e *Engine[T]) Ops() numeric.Ops[T] { return e.ops }

// Derivate returns the order-th derivative at X[position] using the
// centered formula of accuracy acc.
//
// Errors: ErrInvalidFormula when acc ∉ {H2, H4}; otherwise those of
// CenteredDifferencesH2 / CenteredDifferencesH4.
func (e *Engine[T]) Derivate(x, y numeric.Vector[T], position, order int, h T, acc Accuracy) (T, error) {
	switch acc {
	case H2:
		return e.CenteredDifferencesH2(x, y, position, order, h)
	case H4:
		return e.CenteredDifferencesH4(x, y, position, order, h)
	default:
		var zero T
		err := fmt.Errorf("%w: O(h^%d)", ErrInvalidFormula, int(acc))

		return zero, e.reject(err, position, order, acc)
	}
}

// CenteredDifferencesH2 applies the O(h²) formula bank.
//
// Errors, in detection order: numeric.ErrNilVector / ErrLengthMismatch,
// ErrInvalidPosition, ErrInvalidStep, numeric.ErrNonFinite,
// ErrInvalidDerivativeOrder, ErrMissingNeighbors.
func (e *Engine[T]) CenteredDifferencesH2(x, y numeric.Vector[T], position, order int, h T) (T, error) {
	return e.centered(x, y, position, order, h, H2)
}

// CenteredDifferencesH4 applies the O(h⁴) formula bank.
// Same validation sequence as CenteredDifferencesH2.
func (e *Engine[T]) CenteredDifferencesH4(x, y numeric.Vector[T], position, order int, h T) (T, error) {
	return e.centered(x, y, position, order, h, H4)
}

func (e *Engine[T]) centered(x, y numeric.Vector[T], position, order int, h T, acc Accuracy) (T, error) {
	var zero T
	w, err := e.Locate(x, y, position, h)
	if err != nil {
		return zero, e.reject(err, position, order, acc)
	}
	f, err := lookup(order, acc)
	if err != nil {
		return zero, e.reject(err, position, order, acc)
	}
	v, err := e.Apply(f, &w, h)
	if err != nil {
		return zero, e.reject(err, position, order, acc)
	}
	e.opts.logger.Debug("derivative evaluated",
		zap.Int("position", position),
		zap.Int("order", order),
		zap.Stringer("accuracy", acc),
		zap.String("h", e.ops.String(h)),
		zap.Int("neighbors", w.Count()-1),
		zap.String("value", e.ops.String(v)),
	)

	return v, nil
}

// Apply evaluates formula f on window w with step h.
//
// The presence check follows the engine policy: strict (any required slot
// absent fails) unless WithZeroFill was given, in which case only a window
// with every required slot absent fails and absent slots contribute zero.
//
// Errors: ErrInvalidStep, ErrMissingNeighbors, numeric.ErrNonFinite.
func (e *Engine[T]) Apply(f Formula, w *Window[T], h T) (T, error) {
	var zero T
	if err := e.checkStep(h); err != nil {
		return zero, err
	}
	req := f.Required()
	if missing := w.Missing(req...); len(missing) > 0 {
		if !e.opts.zeroFill || len(missing) == len(req) {
			return zero, fmt.Errorf("%w: %s for h = %s",
				ErrMissingNeighbors, formatOffsets(missing), e.ops.String(h))
		}
	}

	num := numeric.Zero(e.ops)
	for _, p := range f.Stencil {
		v, ok := w.At(p.Offset)
		if !ok {
			continue // zero-filled hole
		}
		if !e.ops.Finite(v) {
			return zero, fmt.Errorf("derivative: %w: f(%+d) = %s",
				numeric.ErrNonFinite, p.Offset, e.ops.String(v))
		}
		num = e.ops.Add(num, e.ops.Mul(e.ops.FromInt(p.Coeff), v))
	}
	den := e.ops.Mul(e.ops.FromInt(f.Scale), e.ops.PowInt(h, f.Order))

	return e.ops.Quo(num, den), nil
}

// DerivateAll evaluates the derivative at every sample index.
//
// Call-level problems (bad accuracy/order, mismatched lengths, h ≤ 0) are
// returned as the error; per-index problems (typically ErrMissingNeighbors
// near the ends of the grid) are reported in Result.Err. Indices are
// processed by up to WithConcurrency workers; out[i] always describes i.
func (e *Engine[T]) DerivateAll(x, y numeric.Vector[T], order int, h T, acc Accuracy) ([]Result[T], error) {
	if _, err := lookup(order, acc); err != nil {
		return nil, err
	}
	if err := numeric.ValidatePair(x, y); err != nil {
		return nil, fmt.Errorf("derivative: %w", err)
	}
	if err := e.checkStep(h); err != nil {
		return nil, err
	}

	out := make([]Result[T], y.Len())
	var g errgroup.Group
	g.SetLimit(e.opts.workers)
	for i := range out {
		g.Go(func() error {
			v, err := e.Derivate(x, y, i, order, h, acc)
			out[i] = Result[T]{Position: i, Value: v, Err: err}

			return nil
		})
	}
	_ = g.Wait() // workers never fail; errors live in out

	return out, nil
}

func (e *Engine[T]) reject(err error, position, order int, acc Accuracy) error {
	e.opts.logger.Debug("derivative rejected",
		zap.Int("position", position),
		zap.Int("order", order),
		zap.Int("accuracy", int(acc)),
		zap.Error(err),
	)

	return err
}

// formatOffsets renders offsets as "f(-2), f(+1)".
func formatOffsets(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, off := range offsets {
		parts[i] = fmt.Sprintf("f(%+d)", off)
	}

	return strings.Join(parts, ", ")
}

// Derivate is the float64 shortcut of Engine.Derivate with default options.
func Derivate(x, y []float64, position, order int, h float64, acc Accuracy) (float64, error) {
	return New[float64](numeric.NewFloat64()).Derivate(
		numeric.Slice[float64](x), numeric.Slice[float64](y), position, order, h, acc)
}
