package kmeans

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every error reported before clustering
// starts. Match it with errors.Is.
var ErrConfiguration = errors.New("kmeans: configuration error")

var (
	// ErrInvalidK is returned when K is less than one.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrConfiguration)
	// ErrInvalidDimension is returned when the dimensionality is less than one.
	ErrInvalidDimension = fmt.Errorf("%w: dimension must be positive", ErrConfiguration)
	// ErrInvalidMaxIterations is returned when the iteration cap is less than one.
	ErrInvalidMaxIterations = fmt.Errorf("%w: max iterations must be positive", ErrConfiguration)
	// ErrNilSource is returned when no random source is configured.
	ErrNilSource = fmt.Errorf("%w: random source is nil", ErrConfiguration)
	// ErrTooFewPoints is returned when K exceeds the number of points.
	ErrTooFewPoints = fmt.Errorf("%w: k exceeds number of points", ErrConfiguration)
	// ErrDuplicatePointID is returned when two points share an identifier.
	ErrDuplicatePointID = fmt.Errorf("%w: duplicate point id", ErrConfiguration)
	// ErrNilPoint is returned when the point collection contains nil.
	ErrNilPoint = fmt.Errorf("%w: nil point", ErrConfiguration)
)

// ErrSourceOutOfRange is returned when the random source yields an index
// outside [0, n). It indicates a broken Source implementation.
var ErrSourceOutOfRange = errors.New("kmeans: random source returned index out of range")

// DimensionMismatchError reports a point whose coordinate count differs
// from the configured dimensionality.
type DimensionMismatchError struct {
	PointID  int
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("kmeans: point %d: dimension mismatch: expected %d, got %d", e.PointID, e.Expected, e.Actual)
}

// Unwrap makes the error match ErrConfiguration.
func (e *DimensionMismatchError) Unwrap() error { return ErrConfiguration }
