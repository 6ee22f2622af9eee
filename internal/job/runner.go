package job

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/expr"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/quadrature"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Runner executes job files on the backend named by its configuration.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRunner returns a Runner. Nil arguments select config.Default() and a
// no-op logger.
func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, logger: logger}
}

// Run executes every task of f: derivatives first, then integrals, each in
// file order. Task failures are recorded in their Outcome; the returned error
// is reserved for an unusable backend or a cancelled ctx.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	switch r.cfg.Backend {
	case config.BackendFloat64:
		ops := numeric.NewFloat64()

		return run[float64](ctx, r, ops, ops.FromFloat, f)
	case config.BackendBigFloat:
		var opts []numeric.Option
		if r.cfg.Precision > 0 {
			opts = append(opts, numeric.WithPrecision(r.cfg.Precision))
		}
		ops := numeric.NewBigFloat(opts...)

		return run[*big.Float](ctx, r, ops, liftBig(ops.Precision()), f)
	case config.BackendDecimal:
		var opts []numeric.Option
		if r.cfg.Precision > 0 {
			opts = append(opts, numeric.WithDivisionDigits(int32(r.cfg.Precision)))
		}
		ops := numeric.NewDecimal(opts...)

		return run[decimal.Decimal](ctx, r, ops, ops.FromFloat, f)
	default:
		return nil, fmt.Errorf("%w: backend %q", config.ErrInvalidConfig, r.cfg.Backend)
	}
}

// liftBig converts through the shortest decimal form of v, so 0.79 becomes
// the 128-bit (or wider) rounding of 79/100 rather than the float64 binary
// value. Grid offsets then match h at the backend's tolerance.
func liftBig(prec uint) func(float64) *big.Float {
	return func(v float64) *big.Float {
		z, ok := new(big.Float).SetPrec(prec).SetString(strconv.FormatFloat(v, 'g', -1, 64))
		if !ok {
			return new(big.Float).SetPrec(prec).SetFloat64(v)
		}

		return z
	}
}

func run[T any](ctx context.Context, r *Runner, ops numeric.Ops[T], lift func(float64) T, f *File) (*Report, error) {
	eng := derivative.New(ops,
		derivative.WithLogger(r.logger),
		derivative.WithConcurrency(r.cfg.Concurrency))
	quad := quadrature.New(ops,
		quadrature.WithLogger(r.logger),
		quadrature.WithConcurrency(r.cfg.Concurrency))

	rep := &Report{Backend: r.cfg.Backend}
	for _, t := range f.Derivatives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := derive(eng, lift, t, derivative.Accuracy(r.cfg.Accuracy))
		r.log(out)
		rep.Outcomes = append(rep.Outcomes, out)
	}
	for _, t := range f.Integrals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := integrate(quad, ops, lift, t, r.cfg.Method)
		r.log(out)
		rep.Outcomes = append(rep.Outcomes, out)
	}

	return rep, nil
}

func (r *Runner) log(o Outcome) {
	if o.Error != "" {
		r.logger.Warn("task failed",
			zap.String("name", o.Name), zap.String("kind", o.Kind), zap.String("error", o.Error))

		return
	}
	r.logger.Info("task done",
		zap.String("name", o.Name), zap.String("kind", o.Kind), zap.String("value", o.Value))
}

func derive[T any](e *derivative.Engine[T], lift func(float64) T, t DerivativeTask, acc derivative.Accuracy) Outcome {
	out := Outcome{Name: t.Name, Kind: KindDerivative}
	if err := t.Validate(); err != nil {
		out.Error = err.Error()

		return out
	}
	if t.Accuracy != 0 {
		acc = derivative.Accuracy(t.Accuracy)
	}

	ys := t.Y
	if t.Fn != "" {
		var err error
		if ys, err = sample(t.Fn, t.X); err != nil {
			out.Error = err.Error()

			return out
		}
	}
	x, y, h := liftAll(lift, t.X), liftAll(lift, ys), lift(t.H)
	ops := e.Ops()

	if t.All {
		res, err := e.DerivateAll(x, y, t.Order, h, acc)
		if err != nil {
			out.Error = err.Error()

			return out
		}
		out.Series = make([]Point, len(res))
		for i, p := range res {
			out.Series[i] = Point{Position: p.Position}
			if p.Err != nil {
				out.Series[i].Error = p.Err.Error()

				continue
			}
			out.Series[i].Value = ops.String(p.Value)
		}

		return out
	}

	v, err := e.Derivate(x, y, t.Position, t.Order, h, acc)
	if err != nil {
		out.Error = err.Error()

		return out
	}
	out.Value, out.Float = ops.String(v), ops.Float64(v)

	return out
}

func integrate[T any](q *quadrature.Integrator[T], ops numeric.Ops[T], lift func(float64) T, t IntegralTask, method string) Outcome {
	out := Outcome{Name: t.Name, Kind: KindIntegral}
	if err := t.Validate(); err != nil {
		out.Error = err.Error()

		return out
	}
	if t.Method != "" {
		method = t.Method
	}
	m, err := quadrature.ParseMethod(method)
	if err != nil {
		out.Error = err.Error()

		return out
	}
	ex, err := expr.Compile(t.Fn)
	if err != nil {
		out.Error = err.Error()

		return out
	}

	fn, check := ex.Func()
	v, err := q.Integrate(func(x T) T {
		return ops.FromFloat(fn(ops.Float64(x)))
	}, lift(t.A), lift(t.B), t.M, m)
	if err == nil {
		err = check()
	}
	if err != nil {
		out.Error = err.Error()

		return out
	}
	out.Value, out.Float = ops.String(v), ops.Float64(v)

	return out
}

// sample evaluates src at every x.
func sample(src string, xs []float64) ([]float64, error) {
	ex, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		if ys[i], err = ex.Eval(x); err != nil {
			return nil, err
		}
	}

	return ys, nil
}

func liftAll[T any](lift func(float64) T, vs []float64) numeric.Slice[T] {
	out := make(numeric.Slice[T], len(vs))
	for i, v := range vs {
		out[i] = lift(v)
	}

	return out
}
