package kmeans

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrPartitionViolation is returned by Result.Verify when the clusters do
// not partition the point set.
var ErrPartitionViolation = errors.New("kmeans: clusters do not partition the points")

// StopReason tells which stopping condition ended the loop.
// Both are successful terminations.
type StopReason int

const (
	// StopConverged means an assignment pass moved no point.
	StopConverged StopReason = iota
	// StopIterationCap means the iteration cap was reached first.
	StopIterationCap
)

func (r StopReason) String() string {
	switch r {
	case StopConverged:
		return "converged"
	case StopIterationCap:
		return "iteration cap"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// ClusterState is a snapshot of a cluster at the end of a run.
type ClusterState struct {
	ID       int
	Centroid []float64
	// Members holds input indices in the order points joined the cluster.
	Members []int
}

// Result is the outcome of a run.
type Result struct {
	// Iterations is the loop counter when the loop exited (at least 1).
	Iterations int
	Stop       StopReason
	// Assignments holds the final cluster of every input point by index.
	Assignments []int
	// Clusters are ordered by cluster identifier.
	Clusters []ClusterState
}

// Converged reports whether the run reached a fixed point.
func (r *Result) Converged() bool {
	return r.Stop == StopConverged
}

// Centroids returns the final centroids in cluster order.
func (r *Result) Centroids() [][]float64 {
	out := make([][]float64, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = c.Centroid
	}
	return out
}

// Sizes returns the number of members of every cluster.
func (r *Result) Sizes() []int {
	out := make([]int, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = len(c.Members)
	}
	return out
}

// Partition returns the membership of every cluster as a bitmap of input
// indices.
func (r *Result) Partition() []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, len(r.Clusters))
	for i, c := range r.Clusters {
		bm := roaring.New()
		for _, m := range c.Members {
			bm.Add(uint32(m))
		}
		out[i] = bm
	}
	return out
}

// Verify checks that the clusters partition the n input points: every
// point is a member of exactly one cluster and that cluster matches its
// assignment.
func (r *Result) Verify(n int) error {
	if len(r.Assignments) != n {
		return fmt.Errorf("%w: %d assignments for %d points", ErrPartitionViolation, len(r.Assignments), n)
	}

	seen := roaring.New()
	for _, c := range r.Clusters {
		for _, m := range c.Members {
			if m < 0 || m >= n {
				return fmt.Errorf("%w: cluster %d lists unknown point index %d", ErrPartitionViolation, c.ID, m)
			}
			if !seen.CheckedAdd(uint32(m)) {
				return fmt.Errorf("%w: point index %d listed more than once", ErrPartitionViolation, m)
			}
			if r.Assignments[m] != c.ID {
				return fmt.Errorf("%w: point index %d is assigned to %d but listed in %d",
					ErrPartitionViolation, m, r.Assignments[m], c.ID)
			}
		}
	}

	if got := seen.GetCardinality(); got != uint64(n) {
		return fmt.Errorf("%w: %d of %d points are members of a cluster", ErrPartitionViolation, got, n)
	}
	return nil
}
