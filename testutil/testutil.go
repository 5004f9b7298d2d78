package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/hupe1980/kcluster/distance"
	"github.com/hupe1980/kcluster/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
// RNG therefore satisfies kcluster.Source.
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = minVal + r.rand.Float64()*span
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors around clusters centers drawn
// uniformly from [0, 100) per coordinate, adding gaussian noise with the
// given standard deviation. Vector i belongs to blob i % clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centers := r.UniformVectors(clusters, dim, 0, 100)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		center := centers[i%clusters]
		vec := data[i*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = center[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredPoints wraps ClusteredVectors into points with identifiers
// 0..num-1 and no labels.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) []*model.Point {
	return Points(r.ClusteredVectors(num, dim, clusters, spread))
}

// Points turns vectors into points with identifiers in slice order.
func Points(vectors [][]float64) []*model.Point {
	points := make([]*model.Point, len(vectors))
	for i, v := range vectors {
		points[i] = model.NewPoint(i, v, "")
	}
	return points
}

// Inertia returns the sum of squared distances from every point to its
// nearest centroid. Lower is better.
func Inertia(points []*model.Point, centroids [][]float64) float64 {
	var total float64
	for _, p := range points {
		best := math.Inf(1)
		for _, c := range centroids {
			if d := distance.SquaredEuclidean(p.Values(), c); d < best {
				best = d
			}
		}
		total += best
	}
	return total
}

// FormatRecords renders points in the loader's text format: coordinates
// separated by spaces, followed by the label when present.
func FormatRecords(points []*model.Point) string {
	var sb strings.Builder
	for _, p := range points {
		for j, v := range p.Values() {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		if p.Label() != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Label())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
