package quadrature

import "go.uber.org/zap"

// DefaultConcurrency evaluates the integrand serially.
const DefaultConcurrency = 1

const panicConcurrencyInvalid = "quadrature: WithConcurrency: workers must be >= 1"

// Option configures an Integrator.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), workers: DefaultConcurrency}
}

// WithLogger sets the debug logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency bounds the goroutines evaluating the integrand.
// Panics if workers < 1.
func WithConcurrency(workers int) Option {
	if workers < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *options) { o.workers = workers }
}
