// Package kmeans implements Lloyd's k-means clustering.
//
// The engine seeds K clusters from K distinct points chosen uniformly at
// random (Forgy initialization), then alternates an assignment pass, which
// moves every point to the cluster with the nearest centroid, and a
// recomputation pass, which moves every centroid to the mean of its members.
// The loop stops when an assignment pass moves nothing or when the
// iteration cap is reached.
//
// # Ownership
//
// Points are supplied by the caller and form the engine's arena; clusters
// refer to members by arena index. The point's cluster tag is the source of
// truth, cluster membership lists are a cache kept in add order for
// reporting.
//
// # Determinism
//
// The only randomness is the injected Source used for seeding. Given the
// same Source state and input order, a run is fully deterministic.
package kmeans
