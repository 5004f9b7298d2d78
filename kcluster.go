package kcluster

import (
	"context"
	"time"

	"github.com/hupe1980/kcluster/internal/kmeans"
	"github.com/hupe1980/kcluster/model"
)

// DefaultMaxIterations is used when Config.MaxIterations is zero.
const DefaultMaxIterations = kmeans.DefaultMaxIterations

// Result is the outcome of a run: final assignments, centroids and the
// stopping condition.
type Result = kmeans.Result

// ClusterState is a cluster's final centroid and members.
type ClusterState = kmeans.ClusterState

// StopReason tells which stopping condition ended a run.
type StopReason = kmeans.StopReason

const (
	// StopConverged means the last assignment pass moved no point.
	StopConverged = kmeans.StopConverged
	// StopIterationCap means the run hit Config.MaxIterations.
	StopIterationCap = kmeans.StopIterationCap
)

// Config holds the clustering parameters.
type Config struct {
	// K is the number of clusters (>= 1).
	K int
	// Dimension is the number of coordinates per point (>= 1).
	Dimension int
	// MaxIterations caps the assign/recompute loop. Zero means
	// DefaultMaxIterations.
	MaxIterations int
}

func (c Config) engineConfig() kmeans.Config {
	maxIter := c.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	return kmeans.Config{
		K:             c.K,
		Dimension:     c.Dimension,
		MaxIterations: maxIter,
	}
}

// Clusterer runs k-means with a fixed configuration.
// Runs may be issued sequentially; a Clusterer is not safe for concurrent use.
type Clusterer struct {
	engine  *kmeans.Engine
	logger  *Logger
	metrics MetricsCollector
}

// New validates cfg and creates a Clusterer.
func New(cfg Config, optFns ...Option) (*Clusterer, error) {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}

	src := o.source
	if src == nil {
		if o.seeded {
			src = NewSource(o.seed)
		} else {
			src = NewTimeSource()
		}
	}

	logger := o.logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := o.metricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	ecfg := cfg.engineConfig()
	logger = logger.WithK(ecfg.K).WithDimension(ecfg.Dimension)

	c := &Clusterer{
		logger:  logger,
		metrics: metrics,
	}

	engine, err := kmeans.NewEngine(ecfg, src, &runObserver{c: c})
	if err != nil {
		return nil, err
	}
	c.engine = engine

	return c, nil
}

// Config returns the effective configuration.
func (c *Clusterer) Config() Config {
	ecfg := c.engine.Config()
	return Config{
		K:             ecfg.K,
		Dimension:     ecfg.Dimension,
		MaxIterations: ecfg.MaxIterations,
	}
}

// Run clusters points in place: every point's cluster tag holds its final
// cluster afterwards. Configuration errors (see ErrConfiguration) are
// returned before any point is touched and yield no result.
//
// Reaching the iteration cap is not an error; check Result.Stop.
func (c *Clusterer) Run(points []*model.Point) (*Result, error) {
	ctx := context.Background()
	start := time.Now()

	res, err := c.engine.Run(points)
	duration := time.Since(start)

	if err != nil {
		c.logger.LogRun(ctx, len(points), 0, "", duration, err)
		c.metrics.RecordRun(len(points), c.engine.Config().K, 0, false, duration, err)
		return nil, err
	}

	c.logger.LogRun(ctx, len(points), res.Iterations, res.Stop.String(), duration, nil)
	c.metrics.RecordRun(len(points), c.engine.Config().K, res.Iterations, res.Converged(), duration, nil)

	return res, nil
}

// runObserver forwards engine progress to the logger and metrics.
type runObserver struct {
	c *Clusterer
}

func (o *runObserver) Seeded(indices []int) {
	o.c.logger.LogSeeding(context.Background(), indices)
}

func (o *runObserver) Iteration(iteration, moved int) {
	o.c.logger.LogIteration(context.Background(), iteration, moved)
	o.c.metrics.RecordIteration(iteration, moved)
}
