package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster/model"
)

func arena(values ...[]float64) []*model.Point {
	points := make([]*model.Point, len(values))
	for i, v := range values {
		points[i] = model.NewPoint(i, v, "")
	}
	return points
}

func TestNewCluster(t *testing.T) {
	points := arena([]float64{1, 2}, []float64{3, 4})
	c := newCluster(5, points, 1)

	assert.Equal(t, 5, c.ID())
	assert.Equal(t, []float64{3, 4}, c.Centroid())
	assert.Equal(t, []int{1}, c.Members())
	assert.Equal(t, 1, c.Size())

	// The centroid is a copy, not the seed's storage.
	c.centroid[0] = 100
	assert.Equal(t, []float64{3, 4}, points[1].Values())
}

func TestCluster_AddRemove(t *testing.T) {
	points := arena([]float64{0}, []float64{1}, []float64{2}, []float64{3})
	c := newCluster(0, points, 0)

	c.addPoint(2)
	c.addPoint(1)
	c.addPoint(3)
	assert.Equal(t, []int{0, 2, 1, 3}, c.Members())

	assert.True(t, c.removePoint(1))
	assert.Equal(t, []int{0, 2, 3}, c.Members())

	assert.False(t, c.removePoint(1), "already removed")
	assert.False(t, c.removePoint(42), "never a member")
	assert.Equal(t, []int{0, 2, 3}, c.Members())
}

func TestCluster_RemoveByIdentifier(t *testing.T) {
	// Identifiers need not match arena indices.
	points := []*model.Point{
		model.NewPoint(10, []float64{0}, ""),
		model.NewPoint(20, []float64{1}, ""),
	}
	c := newCluster(0, points, 0)
	c.addPoint(1)

	assert.False(t, c.removePoint(1))
	assert.True(t, c.removePoint(20))
	assert.Equal(t, []int{0}, c.Members())
}

func TestCluster_RecomputeCentroid(t *testing.T) {
	points := arena(
		[]float64{0, 0, 0},
		[]float64{0, 0, 1},
		[]float64{3, 6, 2},
	)
	c := newCluster(0, points, 0)
	c.addPoint(1)
	c.addPoint(2)

	c.recomputeCentroid()
	require.Len(t, c.Centroid(), 3)
	assert.InDelta(t, 1.0, c.Centroid()[0], 1e-12)
	assert.InDelta(t, 2.0, c.Centroid()[1], 1e-12)
	assert.InDelta(t, 1.0, c.Centroid()[2], 1e-12)

	// Recomputing twice is stable.
	c.recomputeCentroid()
	assert.InDelta(t, 2.0, c.Centroid()[1], 1e-12)
}

func TestCluster_RecomputeEmptyKeepsCentroid(t *testing.T) {
	points := arena([]float64{4, 5}, []float64{7, 9})
	c := newCluster(0, points, 1)
	c.addPoint(0)
	c.recomputeCentroid()
	assert.Equal(t, []float64{5.5, 7}, c.Centroid())

	require.True(t, c.removePoint(1))
	require.True(t, c.removePoint(0))
	assert.Equal(t, 0, c.Size())

	c.recomputeCentroid()
	assert.Equal(t, []float64{5.5, 7}, c.Centroid())
}

func TestCluster_RecomputeCentroidDivides(t *testing.T) {
	// 2.1 / 3 and 2.1 * (1.0/3) differ in the last bit.
	points := arena([]float64{2.1, 0}, []float64{0, 0}, []float64{0, 3})
	c := newCluster(0, points, 0)
	c.addPoint(1)
	c.addPoint(2)

	c.recomputeCentroid()

	sum := 2.1
	assert.Equal(t, []float64{sum / 3, 1}, c.Centroid())
	assert.NotEqual(t, sum*(1.0/3), c.Centroid()[0])
}
