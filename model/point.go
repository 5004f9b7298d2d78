package model

import (
	"errors"
	"fmt"
)

// Unassigned is the cluster tag of a point that has not been assigned yet.
const Unassigned = -1

// ErrCoordOutOfRange is returned when a coordinate index is outside [0, D).
var ErrCoordOutOfRange = errors.New("coordinate index out of range")

// Point is a coordinate vector with a mutable cluster tag.
type Point struct {
	id      int
	values  []float64
	label   string
	cluster int
}

// NewPoint creates a point. values is copied.
func NewPoint(id int, values []float64, label string) *Point {
	v := make([]float64, len(values))
	copy(v, values)

	return &Point{
		id:      id,
		values:  v,
		label:   label,
		cluster: Unassigned,
	}
}

// ID returns the identifier assigned at load time.
func (p *Point) ID() int {
	return p.id
}

// Coord returns the i-th coordinate.
func (p *Point) Coord(i int) (float64, error) {
	if i < 0 || i >= len(p.values) {
		return 0, fmt.Errorf("%w: %d (dimension %d)", ErrCoordOutOfRange, i, len(p.values))
	}
	return p.values[i], nil
}

// Values returns the coordinate vector.
// The returned slice is shared with the point and must not be modified.
func (p *Point) Values() []float64 {
	return p.values
}

// Dimension returns the number of coordinates.
func (p *Point) Dimension() int {
	return len(p.values)
}

// Label returns the display label, or "" when the point has none.
func (p *Point) Label() string {
	return p.label
}

// Cluster returns the current cluster identifier, or Unassigned.
func (p *Point) Cluster() int {
	return p.cluster
}

// SetCluster records the cluster the point belongs to.
func (p *Point) SetCluster(id int) {
	p.cluster = id
}

// String returns a compact representation for logs and test failures.
func (p *Point) String() string {
	if p.label != "" {
		return fmt.Sprintf("Point(%d %v %q -> %d)", p.id, p.values, p.label, p.cluster)
	}
	return fmt.Sprintf("Point(%d %v -> %d)", p.id, p.values, p.cluster)
}
