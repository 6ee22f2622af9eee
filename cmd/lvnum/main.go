// Command lvnum evaluates finite-difference derivatives and composite
// quadratures from the command line or from YAML/TOML/JSON job files.
//
//	lvnum derivate --x 0.79,0.8,0.81 --fn "Math.cos(x)" --position 1 --order 1 --h 0.01
//	lvnum integrate --fn "2 + sin(2*sqrt(x))" --a 1 --b 6 --m 5 --method simpson
//	lvnum run jobs.yaml --backend decimal --output yaml
//
// Defaults come from LVNUM_* environment variables; flags override them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
