// Package testutil provides testing utilities for kcluster.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator, synthetic point clouds with known
// cluster structure, and helpers to render points in the loader's text
// format.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.ClusteredPoints(1000, 3, 5, 0.5) // 5 gaussian blobs in 3D
//	vecs := rng.UniformVectors(10, 3, -1, 1)
//
// # Quality
//
//	sse := testutil.Inertia(points, res.Centroids())
package testutil
