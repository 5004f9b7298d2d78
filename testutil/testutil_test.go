package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster/model"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32, -1, 1)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	for _, vec := range v {
		for _, x := range vec {
			assert.GreaterOrEqual(t, x, -1.0)
			assert.Less(t, x, 1.0)
		}
	}
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.ClusteredPoints(100, 3, 5, 0.1)

	require.Len(t, points, 100)
	for i, p := range points {
		assert.Equal(t, i, p.ID())
		assert.Equal(t, 3, p.Dimension())
		assert.Equal(t, model.Unassigned, p.Cluster())
	}
	// Points of the same blob are close together.
	assert.InDelta(t, points[0].Values()[0], points[5].Values()[0], 1.0)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10, 0, 1)
	rng.Reset()
	v2 := rng.UniformVectors(1, 10, 0, 1)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestInertia(t *testing.T) {
	points := Points([][]float64{{0, 0}, {2, 0}, {10, 0}})

	assert.Equal(t, 0.0, Inertia(points[:1], [][]float64{{0, 0}}))
	assert.Equal(t, 1.0+1.0+0.0, Inertia(points, [][]float64{{1, 0}, {10, 0}}))
}

func TestFormatRecords(t *testing.T) {
	points := []*model.Point{
		model.NewPoint(0, []float64{1, 2.5, -3}, ""),
		model.NewPoint(1, []float64{0, 0, 1e-3}, "tree"),
	}

	assert.Equal(t, "1 2.5 -3\n0 0 0.001 tree\n", FormatRecords(points))
}
