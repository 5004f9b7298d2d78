package kmeans

import (
	"fmt"

	"github.com/hupe1980/kcluster/distance"
	"github.com/hupe1980/kcluster/model"
)

// DefaultMaxIterations is the iteration cap used when none is configured.
const DefaultMaxIterations = 100

// Config holds the parameters of a run.
type Config struct {
	// K is the number of clusters.
	K int
	// Dimension is the number of coordinates of every point.
	Dimension int
	// MaxIterations caps the number of loop bodies.
	MaxIterations int
}

// Validate checks the parameters that do not depend on the input.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidK, c.K)
	}
	if c.Dimension < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidDimension, c.Dimension)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMaxIterations, c.MaxIterations)
	}
	return nil
}

// Engine runs Lloyd's algorithm. An Engine may be reused sequentially;
// every Run starts from fresh state. It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	src      Source
	observer Observer

	points    []*model.Point
	clusters  []*Cluster
	iteration int
}

// NewEngine creates an engine. observer may be nil.
func NewEngine(cfg Config, src Source, observer Observer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Engine{
		cfg:      cfg,
		src:      src,
		observer: observer,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run clusters points and returns the final assignment and centroids.
//
// Configuration errors are reported before any point is modified. On
// success every point's cluster tag holds its final cluster.
func (e *Engine) Run(points []*model.Point) (*Result, error) {
	if err := e.validate(points); err != nil {
		return nil, err
	}

	e.reset(points)

	if err := e.seed(); err != nil {
		return nil, err
	}

	var stop StopReason
	e.iteration = 1
	for {
		moved := e.assign()
		e.recompute()
		e.observer.Iteration(e.iteration, moved)

		if moved == 0 {
			stop = StopConverged
			break
		}
		if e.iteration >= e.cfg.MaxIterations {
			stop = StopIterationCap
			break
		}
		e.iteration++
	}

	return e.result(stop), nil
}

func (e *Engine) validate(points []*model.Point) error {
	if e.cfg.K > len(points) {
		return fmt.Errorf("%w: k=%d, points=%d", ErrTooFewPoints, e.cfg.K, len(points))
	}

	seen := make(map[int]struct{}, len(points))
	for i, p := range points {
		if p == nil {
			return fmt.Errorf("%w at index %d", ErrNilPoint, i)
		}
		if p.Dimension() != e.cfg.Dimension {
			return &DimensionMismatchError{
				PointID:  p.ID(),
				Expected: e.cfg.Dimension,
				Actual:   p.Dimension(),
			}
		}
		if _, dup := seen[p.ID()]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePointID, p.ID())
		}
		seen[p.ID()] = struct{}{}
	}
	return nil
}

// reset clears tags left over from a previous run over the same points.
func (e *Engine) reset(points []*model.Point) {
	e.points = points
	e.clusters = make([]*Cluster, 0, e.cfg.K)
	e.iteration = 0

	for _, p := range points {
		p.SetCluster(model.Unassigned)
	}
}

// seed picks K distinct arena indices by reject-and-retry sampling.
func (e *Engine) seed() error {
	n := len(e.points)
	chosen := make(map[int]struct{}, e.cfg.K)
	indices := make([]int, 0, e.cfg.K)

	for i := 0; i < e.cfg.K; i++ {
		for {
			idx := e.src.Intn(n)
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, idx, n)
			}
			if _, taken := chosen[idx]; taken {
				continue
			}

			chosen[idx] = struct{}{}
			indices = append(indices, idx)
			e.points[idx].SetCluster(i)
			e.clusters = append(e.clusters, newCluster(i, e.points, idx))
			break
		}
	}

	e.observer.Seeded(indices)
	return nil
}

// assign moves every point to its nearest cluster and returns how many moved.
func (e *Engine) assign() int {
	moved := 0

	for idx, p := range e.points {
		old := p.Cluster()
		nearest := e.nearest(p.Values())
		if old == nearest {
			continue
		}

		if old != model.Unassigned {
			e.clusters[old].removePoint(p.ID())
		}
		p.SetCluster(nearest)
		e.clusters[nearest].addPoint(idx)
		moved++
	}

	return moved
}

func (e *Engine) nearest(v []float64) int {
	best := 0
	minDist := distance.Euclidean(e.clusters[0].centroid, v)

	for i := 1; i < len(e.clusters); i++ {
		// Strict comparison keeps the lowest index on ties.
		if d := distance.Euclidean(e.clusters[i].centroid, v); d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}

func (e *Engine) recompute() {
	for _, c := range e.clusters {
		c.recomputeCentroid()
	}
}

func (e *Engine) result(stop StopReason) *Result {
	res := &Result{
		Iterations:  e.iteration,
		Stop:        stop,
		Assignments: make([]int, len(e.points)),
		Clusters:    make([]ClusterState, len(e.clusters)),
	}

	for i, p := range e.points {
		res.Assignments[i] = p.Cluster()
	}
	for i, c := range e.clusters {
		res.Clusters[i] = ClusterState{
			ID:       c.id,
			Centroid: append([]float64(nil), c.centroid...),
			Members:  append([]int(nil), c.members...),
		}
	}

	return res
}

// Nearest returns the index of the centroid closest to v under Euclidean
// distance, with ties resolved to the lowest index. It returns -1 when
// centroids is empty.
func Nearest(v []float64, centroids [][]float64) int {
	best := -1
	var minDist float64

	for i, c := range centroids {
		d := distance.Euclidean(c, v)
		if best == -1 || d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}
