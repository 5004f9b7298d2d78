// Package model defines the point type shared by the clustering engine,
// the loader and the report writers.
//
// A Point carries an immutable coordinate vector, a stable identifier
// assigned in input order, an optional display label, and the identifier
// of the cluster it currently belongs to. Only the clustering engine
// changes the cluster tag.
//
//	p := model.NewPoint(0, []float64{1, 2, 3}, "a")
//	v, err := p.Coord(2) // 3, nil
//	p.Cluster()          // model.Unassigned
package model
