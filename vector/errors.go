package vector

import "errors"

var (
	// ErrEmptyCoordinates indicates a vector was constructed with no coordinates.
	ErrEmptyCoordinates = errors.New("vector: coordinates must be non-empty")
	// ErrDimensionMismatch indicates two vectors of different dimensions were combined.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
	// ErrZeroMagnitude indicates a direction-dependent operation on a (near-)zero vector.
	ErrZeroMagnitude = errors.New("vector: zero-magnitude vector has no direction")
	// ErrCrossDimension indicates a cross product on vectors that are not 3-dimensional.
	ErrCrossDimension = errors.New("vector: cross product requires 3-dimensional vectors")
	// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension).
	ErrIndexOutOfRange = errors.New("vector: coordinate index out of range")
)
