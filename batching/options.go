package batching

import (
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-batchqueue/logs/logrimp"
)

// Option configures a Batcher.
type Option func(*options) *options

type options struct {
	logger  logr.Logger
	metrics *Metrics
}

func defaultOptions() *options {
	return &options{logger: logrimp.NewNoopLogger()}
}

// WithLogger sets the logger the Batcher reports failures and lifecycle events to.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) *options {
		if o == nil {
			o = defaultOptions()
		}
		if logger.GetSink() != nil {
			o.logger = logger
		}
		return o
	}
}

// WithMetrics records the Batcher activity.
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) *options {
		if o == nil {
			o = defaultOptions()
		}
		o.metrics = metrics
		return o
	}
}
