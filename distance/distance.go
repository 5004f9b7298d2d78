package distance

import "math"

// Euclidean returns the L2 distance between a and b: the square root of
// the plain left-to-right sum of squared differences, with no rescaling,
// so equal sums of squares give bit-identical distances.
// Panics if b is shorter than a (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns the squared L2 distance between a and b.
// It orders points the same way as Euclidean and skips the square root.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
