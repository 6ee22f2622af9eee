package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/job"
	"github.com/katalvlaran/lvnum/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errTasksFailed = errors.New("one or more tasks failed")

// app carries state resolved by the root PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	output string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	var (
		backend     string
		precision   uint
		concurrency int
		logLevel    string
		logDev      bool
	)

	root := &cobra.Command{
		Use:          "lvnum",
		Short:        "Finite-difference derivatives and composite quadrature",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("backend") {
				cfg.Backend = backend
			}
			if flags.Changed("precision") {
				cfg.Precision = precision
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-dev") {
				cfg.Log.Development = logDev
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := job.ParseFormat(a.output); err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			a.logger.Debug("configuration resolved",
				zap.String("backend", cfg.Backend),
				zap.Uint("precision", cfg.Precision),
				zap.Int("concurrency", cfg.Concurrency))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&backend, "backend", config.BackendFloat64, "numeric backend: float64, bigfloat or decimal (env LVNUM_BACKEND)")
	pf.UintVar(&precision, "precision", 0, "bigfloat mantissa bits or decimal division digits; 0 keeps the default (env LVNUM_PRECISION)")
	pf.IntVar(&concurrency, "concurrency", 1, "worker goroutines per evaluation (env LVNUM_CONCURRENCY)")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (env LVNUM_LOG_LEVEL)")
	pf.BoolVar(&logDev, "log-dev", false, "human-readable console logs (env LVNUM_LOG_DEV)")
	pf.StringVarP(&a.output, "output", "o", string(job.FormatJSON), "report format: json, yaml or toml")

	root.AddCommand(newDerivateCmd(a), newIntegrateCmd(a), newRunCmd(a))

	return root
}

// execute runs f and writes the report to stdout.
func (a *app) execute(cmd *cobra.Command, f *job.File) error {
	format, err := job.ParseFormat(a.output)
	if err != nil {
		return err
	}
	rep, err := job.NewRunner(a.cfg, a.logger).Run(cmd.Context(), f)
	if err != nil {
		return err
	}
	if err := job.Encode(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}
	if rep.Failed() {
		return errTasksFailed
	}

	return nil
}
