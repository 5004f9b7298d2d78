package kcluster

import (
	"log/slog"
)

type options struct {
	source           Source
	seed             int64
	seeded           bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithSeed seeds the random source used to pick the initial centroids.
// Runs with the same seed, points and configuration produce the same result.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.source = nil
	}
}

// WithSource injects the random source used for seeding.
// It takes precedence over WithSeed when given last.
//
// Example:
//
//	c, _ := kcluster.New(cfg, kcluster.WithSource(rand.New(rand.NewSource(1))))
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kcluster.BasicMetricsCollector{}
//	c, _ := kcluster.New(cfg, kcluster.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kcluster.NewJSONLogger(slog.LevelInfo)
//	c, _ := kcluster.New(cfg, kcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
