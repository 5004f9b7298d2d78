package kmeans

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kcluster/model"
)

// Cluster is a centroid plus the arena indices of its current members.
type Cluster struct {
	id       int
	centroid []float64
	members  []int
	arena    []*model.Point
	scratch  []float64
}

// newCluster creates cluster id seeded from arena[seed]: the centroid is a
// copy of the seed's coordinates and the seed is the first member.
func newCluster(id int, arena []*model.Point, seed int) *Cluster {
	values := arena[seed].Values()

	return &Cluster{
		id:       id,
		centroid: slices.Clone(values),
		members:  []int{seed},
		arena:    arena,
		scratch:  make([]float64, len(values)),
	}
}

// ID returns the cluster identifier in [0, K).
func (c *Cluster) ID() int {
	return c.id
}

// Centroid returns the current centroid. Callers must not modify it.
func (c *Cluster) Centroid() []float64 {
	return c.centroid
}

// Size returns the number of members.
func (c *Cluster) Size() int {
	return len(c.members)
}

// Members returns the arena indices of the members in add order.
// Callers must not modify it.
func (c *Cluster) Members() []int {
	return c.members
}

// addPoint appends the point at arena index idx. There is no duplicate check.
func (c *Cluster) addPoint(idx int) {
	c.members = append(c.members, idx)
}

// removePoint removes the first member whose point has the given identifier
// and reports whether one was found.
func (c *Cluster) removePoint(pointID int) bool {
	for i, idx := range c.members {
		if c.arena[idx].ID() == pointID {
			c.members = slices.Delete(c.members, i, i+1)
			return true
		}
	}
	return false
}

// recomputeCentroid moves the centroid to the mean of the members.
// An empty cluster keeps its previous centroid.
func (c *Cluster) recomputeCentroid() {
	if len(c.members) == 0 {
		return
	}

	clear(c.scratch)
	for _, idx := range c.members {
		floats.Add(c.scratch, c.arena[idx].Values())
	}
	n := float64(len(c.members))
	for d := range c.scratch {
		c.scratch[d] /= n
	}

	copy(c.centroid, c.scratch)
}
