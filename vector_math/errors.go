package vector_math

import "errors"

var (
	// ErrZeroLength is returned when a vector has to be divided by its length
	// but has none, e.g. normalizing the zero vector or rotating about it.
	ErrZeroLength = errors.New("vector has zero length")
	// ErrNonFinite is returned for vectors with NaN or infinite components.
	ErrNonFinite = errors.New("vector has non-finite components")
	// ErrParallelVectors is returned when two vectors must span a plane but
	// point along the same line.
	ErrParallelVectors = errors.New("vectors are parallel")
	// ErrInvalidProjection is returned for view volumes that would produce a
	// singular projection matrix.
	ErrInvalidProjection = errors.New("invalid projection volume")
)
