package clock

import (
	"go.uber.org/zap"

	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

// Option configures a guarded clock.
type Option func(*options)

type options struct {
	name    string
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

// WithName sets the source label used in logs and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger that reports clock regressions.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables regression and read counters.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
