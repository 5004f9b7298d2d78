// Package report renders clustering results.
//
// The text format mirrors the classic k-means console output:
//
//	Break in iteration 3
//
//	Cluster 1
//	Point 1: 1 2 3 - alpha
//	Cluster centroid: 1 2 3
//
// Cluster and point numbers are 1-based in text and 0-based in JSON.
package report
