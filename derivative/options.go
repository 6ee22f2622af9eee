package derivative

import "go.uber.org/zap"

// DefaultConcurrency is the worker limit used by DerivateAll (serial).
const DefaultConcurrency = 1

const panicConcurrencyInvalid = "derivative: WithConcurrency: workers must be >= 1"

// Option configures an Engine. Last writer wins.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	zeroFill bool
	workers  int
}

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		workers: DefaultConcurrency,
	}
}

// WithLogger routes dispatch and rejection events to l at Debug level.
// A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithZeroFill switches the missing-neighbor policy to the permissive rule:
// a call fails only when ALL required slots are absent, and absent slots
// read as zero. Note that a genuinely absent neighbor then biases the result.
func WithZeroFill() Option {
	return func(o *options) { o.zeroFill = true }
}

// WithConcurrency bounds the number of goroutines DerivateAll uses.
// Panics if workers < 1.
func WithConcurrency(workers int) Option {
	if workers < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *options) { o.workers = workers }
}
