package kcluster

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter      prometheus.Counter
//	    runHistogram    prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(points, k, iterations int, converged bool, d time.Duration, err error) {
//	    p.runCounter.Inc()
//	    p.runHistogram.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// iterations is the final loop counter, converged is false when the
	// iteration cap stopped the run, err is nil if successful.
	RecordRun(points, k, iterations int, converged bool, duration time.Duration, err error)

	// RecordIteration is called after each assign/recompute pass with the
	// number of points that changed cluster.
	RecordIteration(iteration, moved int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, int)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	ConvergedRuns   atomic.Int64
	CappedRuns      atomic.Int64
	PointsClustered atomic.Int64
	IterationCount  atomic.Int64
	PointMoves      atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, k, iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PointsClustered.Add(int64(points))
	if converged {
		b.ConvergedRuns.Add(1)
	} else {
		b.CappedRuns.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration, moved int) {
	b.IterationCount.Add(1)
	b.PointMoves.Add(int64(moved))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		ConvergedRuns:   b.ConvergedRuns.Load(),
		CappedRuns:      b.CappedRuns.Load(),
		PointsClustered: b.PointsClustered.Load(),
		IterationCount:  b.IterationCount.Load(),
		PointMoves:      b.PointMoves.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	ConvergedRuns   int64
	CappedRuns      int64
	PointsClustered int64
	IterationCount  int64
	PointMoves      int64
}
