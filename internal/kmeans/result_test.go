package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *Result {
	return &Result{
		Iterations:  2,
		Stop:        StopConverged,
		Assignments: []int{1, 0, 1, 0},
		Clusters: []ClusterState{
			{ID: 0, Centroid: []float64{0}, Members: []int{3, 1}},
			{ID: 1, Centroid: []float64{9}, Members: []int{0, 2}},
		},
	}
}

func TestResult_Partition(t *testing.T) {
	parts := validResult().Partition()
	require.Len(t, parts, 2)

	assert.Equal(t, []uint32{1, 3}, parts[0].ToArray())
	assert.Equal(t, []uint32{0, 2}, parts[1].ToArray())
	assert.False(t, parts[0].Intersects(parts[1]))
}

func TestResult_Verify(t *testing.T) {
	require.NoError(t, validResult().Verify(4))

	tests := []struct {
		name   string
		mutate func(r *Result)
		n      int
	}{
		{"WrongCount", func(*Result) {}, 5},
		{"Missing", func(r *Result) { r.Clusters[0].Members = []int{3} }, 4},
		{"Duplicate", func(r *Result) { r.Clusters[1].Members = append(r.Clusters[1].Members, 1) }, 4},
		{"UnknownIndex", func(r *Result) { r.Clusters[0].Members = append(r.Clusters[0].Members, 9) }, 4},
		{"TagMismatch", func(r *Result) { r.Assignments[0] = 0 }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResult()
			tt.mutate(r)
			assert.ErrorIs(t, r.Verify(tt.n), ErrPartitionViolation)
		})
	}
}

func TestResult_Accessors(t *testing.T) {
	r := validResult()
	assert.True(t, r.Converged())
	assert.Equal(t, [][]float64{{0}, {9}}, r.Centroids())
	assert.Equal(t, []int{2, 2}, r.Sizes())
}
