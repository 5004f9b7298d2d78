// Package distance provides the Euclidean distance used by the clustering
// engine.
//
// # Usage
//
//	d := distance.Euclidean(a, b)        // sqrt(sum((a[i]-b[i])^2))
//	s := distance.SquaredEuclidean(a, b) // sum((a[i]-b[i])^2)
//
// Both functions assume len(a) == len(b); the engine validates
// dimensionality before any distance is computed.
package distance
