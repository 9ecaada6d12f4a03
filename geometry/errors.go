package geometry

import "errors"

var (
	ErrInvalidSubdivisions = errors.New("subdivisions must be at least 3")
	ErrInvalidRadius       = errors.New("radius must be positive and finite")
	ErrLayoutMismatch      = errors.New("vertex layouts differ")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrMalformedVertices   = errors.New("vertex data is not a whole number of records")
)
