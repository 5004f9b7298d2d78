package kcluster

import (
	"github.com/hupe1980/kcluster/internal/kmeans"
)

// Configuration errors are reported before any clustering work begins and
// leave the points untouched. All of them match ErrConfiguration.
var (
	ErrConfiguration        = kmeans.ErrConfiguration
	ErrInvalidK             = kmeans.ErrInvalidK
	ErrInvalidDimension     = kmeans.ErrInvalidDimension
	ErrInvalidMaxIterations = kmeans.ErrInvalidMaxIterations
	ErrTooFewPoints         = kmeans.ErrTooFewPoints
	ErrDuplicatePointID     = kmeans.ErrDuplicatePointID
	ErrNilPoint             = kmeans.ErrNilPoint
)

var (
	// ErrSourceOutOfRange is returned when a custom Source yields an index
	// outside [0, n).
	ErrSourceOutOfRange = kmeans.ErrSourceOutOfRange

	// ErrPartitionViolation is returned by Result.Verify.
	ErrPartitionViolation = kmeans.ErrPartitionViolation
)

// DimensionMismatchError reports a point whose coordinate count differs
// from Config.Dimension. It matches ErrConfiguration.
type DimensionMismatchError = kmeans.DimensionMismatchError
