package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewValues is returned for a record with fewer numeric tokens than the dimension.
	ErrTooFewValues = errors.New("loader: too few numeric values")
	// ErrDimension is returned for a JSONL record whose values length differs from the dimension.
	ErrDimension = errors.New("loader: wrong number of values")
	// ErrInvalidDimension is returned when the loader is built with a dimension < 1.
	ErrInvalidDimension = errors.New("loader: dimension must be >= 1")
	// ErrNoSources is returned when Load is called without sources.
	ErrNoSources = errors.New("loader: no sources")
	// ErrEmptyPrefix is returned when a prefix source lists no blobs.
	ErrEmptyPrefix = errors.New("loader: prefix matched no blobs")
)

// RecordError locates a malformed record.
type RecordError struct {
	Source string
	Line   int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
