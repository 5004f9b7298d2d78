// Package kcluster partitions points into K clusters with Lloyd's k-means
// algorithm.
//
// The clusterer seeds K clusters from K distinct points chosen uniformly at
// random, then alternates two passes until no point changes cluster or the
// iteration cap is reached:
//
//   - assignment: every point moves to the cluster whose centroid is
//     nearest under Euclidean distance (ties go to the lowest cluster index)
//   - recomputation: every centroid moves to the mean of its members
//     (an empty cluster keeps its centroid)
//
// # Quick Start
//
//	points := []*model.Point{
//	    model.NewPoint(0, []float64{0, 0, 0}, ""),
//	    model.NewPoint(1, []float64{0, 0, 1}, ""),
//	    model.NewPoint(2, []float64{10, 10, 10}, ""),
//	    model.NewPoint(3, []float64{10, 10, 11}, ""),
//	}
//
//	c, err := kcluster.New(kcluster.Config{K: 2, Dimension: 3}, kcluster.WithSeed(42))
//	if err != nil { ... }
//
//	res, err := c.Run(points)
//	if err != nil { ... } // configuration error, nothing was clustered
//
//	fmt.Println(res.Stop, res.Iterations, res.Centroids())
//
// # Reproducibility
//
// The random source is the only nondeterminism. Use WithSeed or WithSource
// for reproducible runs; without either the source is seeded from the
// current time. k-means finds a local optimum, so different seeds may
// produce different clusterings.
//
// # Observability
//
// WithLogger enables structured logging (log/slog): seeding and every pass
// at Debug, the outcome and its stopping condition at Info.
// WithMetricsCollector records run and iteration counters.
//
// # Related Packages
//
//   - model: the Point type
//   - loader: reads points from local files and object storage
//   - report: renders results as text or JSON
//   - cmd/kcluster: command-line interface
package kcluster
