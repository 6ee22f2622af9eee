package main

import (
	"github.com/katalvlaran/lvnum/internal/job"
	"github.com/spf13/cobra"
)

func newDerivateCmd(a *app) *cobra.Command {
	var t job.DerivativeTask
	cmd := &cobra.Command{
		Use:   "derivate",
		Short: "Differentiate sampled data at one index (or every index with --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &job.File{Derivatives: []job.DerivativeTask{t}})
		},
	}

	f := cmd.Flags()
	f.StringVar(&t.Name, "name", "derivative", "label used in the report")
	f.Float64SliceVar(&t.X, "x", nil, "abscissas, comma separated")
	f.Float64SliceVar(&t.Y, "y", nil, "ordinates, comma separated (or use --fn)")
	f.StringVar(&t.Fn, "fn", "", "JavaScript expression of x sampled at every abscissa")
	f.IntVar(&t.Position, "position", 0, "index of the target sample")
	f.BoolVar(&t.All, "all", false, "differentiate at every index")
	f.IntVar(&t.Order, "order", 1, "derivative order, 1..4")
	f.Float64Var(&t.H, "h", 0, "step between neighboring samples")
	f.IntVar(&t.Accuracy, "accuracy", 0, "accuracy order 2 or 4; 0 uses LVNUM_ACCURACY")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("h")

	return cmd
}

func newIntegrateCmd(a *app) *cobra.Command {
	var t job.IntegralTask
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate an expression with the composite Trapezoidal or Simpson rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &job.File{Integrals: []job.IntegralTask{t}})
		},
	}

	f := cmd.Flags()
	f.StringVar(&t.Name, "name", "integral", "label used in the report")
	f.StringVar(&t.Fn, "fn", "", "JavaScript expression of x")
	f.Float64Var(&t.A, "a", 0, "lower bound")
	f.Float64Var(&t.B, "b", 1, "upper bound")
	f.IntVar(&t.M, "m", 1, "partition count (odd for simpson)")
	f.StringVar(&t.Method, "method", "", "trapezium or simpson; empty uses LVNUM_METHOD")
	_ = cmd.MarkFlagRequired("fn")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a YAML, TOML or JSON job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := job.Load(args[0])
			if err != nil {
				return err
			}

			return a.execute(cmd, f)
		},
	}
}
