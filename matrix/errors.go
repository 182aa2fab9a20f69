// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All operations return these sentinels
// (optionally wrapped with method context via %w) and tests match them with
// errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSystem indicates a nil *linsys.LinearSystem argument.
	ErrNilSystem = errors.New("matrix: nil linear system")

	// ErrTooFewColumns indicates an augmented matrix without at least one
	// coefficient column plus the constants column.
	ErrTooFewColumns = errors.New("matrix: augmented matrix needs at least two columns")
)
