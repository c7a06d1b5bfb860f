package llah

import (
	"log/slog"

	"github.com/hupe1980/llah/neighbor"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	neighborFactory  neighbor.Factory
	featureIndex     bool
	learnWorkers     int
}

// Option configures Engine construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &llah.BasicMetricsCollector{}
//	e, _ := llah.New(8, 7, h, llah.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Lookups: %d, Avg latency: %dns\n", stats.LookupCount, stats.LookupAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := llah.NewJSONLogger(slog.LevelInfo)
//	e, _ := llah.New(8, 7, h, llah.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithNeighborIndex replaces the nearest-neighbor index used for feature
// generation. The factory is called once per generator.
func WithNeighborIndex(factory neighbor.Factory) Option {
	return func(o *options) {
		if factory == nil {
			factory = neighbor.DefaultFactory
		}
		o.neighborFactory = factory
	}
}

// WithFeatureIndex additionally keeps every registered feature in a chained hash
// table so LookupFeatures can return exact feature identities.
func WithFeatureIndex(enabled bool) Option {
	return func(o *options) {
		o.featureIndex = enabled
	}
}

// WithLearnWorkers sets how many point sets LearnHashing processes in parallel.
// Values below 1 mean 1.
func WithLearnWorkers(workers int) Option {
	return func(o *options) {
		o.learnWorkers = workers
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		neighborFactory:  neighbor.DefaultFactory,
		learnWorkers:     1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.learnWorkers < 1 {
		o.learnWorkers = 1
	}
	return o
}
