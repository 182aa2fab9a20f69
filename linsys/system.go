// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strconv"
	"strings"
)

// LinearSystem is an ordered, mutable collection of Hyperplanes sharing one
// dimension. Row position is meaningful: pivoting reorders rows by index.
//
// Ownership policy (one consistent rule, unlike the original's mix):
//   - the low-level primitives SwapRows / ScaleRow / AddScaledRow mutate the
//     receiver in place;
//   - the elimination algorithms TriangularForm / RREF / Solve always operate
//     on an independent deep copy and never touch the receiver.
//
// Concurrent read-only use of a system while a caller computes a derived
// copy is safe; concurrent in-place primitive calls on the same system are
// not and must be externally serialized.
type LinearSystem struct {
	rows      []Hyperplane // index = row position
	dimension int          // shared by every row, fixed for the lifetime
}

// New constructs a LinearSystem from the given rows.
//
// Errors:
//   - ErrEmptySystem when no rows are supplied.
//   - ErrZeroHyperplane when a zero-value Hyperplane slips in.
//   - ErrDimensionMismatch when rows do not share one dimension.
//
// Complexity: O(rows) validation, O(rows) copy.
func New(rows ...Hyperplane) (*LinearSystem, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySystem
	}
	dim := rows[0].Dimension()
	if dim == 0 {
		return nil, ErrZeroHyperplane
	}
	for i, r := range rows {
		if r.Dimension() == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrZeroHyperplane)
		}
		if r.Dimension() != dim {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
	}
	// Copy the row slice so the caller's backing array stays independent.
	owned := make([]Hyperplane, len(rows))
	copy(owned, rows)

	return &LinearSystem{rows: owned, dimension: dim}, nil
}

// Len returns the number of equation rows. O(1).
func (s *LinearSystem) Len() int {
	return len(s.rows)
}

// Dimension returns the shared coefficient dimension. O(1).
func (s *LinearSystem) Dimension() int {
	return s.dimension
}

// Row returns the equation at index i.
// Returns ErrRowOutOfRange when i is outside [0, Len).
func (s *LinearSystem) Row(i int) (Hyperplane, error) {
	if err := s.checkRow(i); err != nil {
		return Hyperplane{}, fmt.Errorf("Row(%d): %w", i, err)
	}

	return s.rows[i], nil
}

// Replace assigns row into slot i wholesale.
//
// Errors:
//   - ErrRowOutOfRange when i is outside [0, Len).
//   - ErrDimensionMismatch when the row's dimension differs from the system's.
func (s *LinearSystem) Replace(i int, row Hyperplane) error {
	if err := s.checkRow(i); err != nil {
		return fmt.Errorf("Replace(%d): %w", i, err)
	}
	if row.Dimension() != s.dimension {
		return fmt.Errorf("Replace(%d): %w", i, ErrDimensionMismatch)
	}
	s.rows[i] = row

	return nil
}

// Clone returns an independent deep copy of the system. Hyperplanes are
// immutable values, so copying the row slice is a full deep copy.
// Complexity: O(rows).
func (s *LinearSystem) Clone() *LinearSystem {
	rows := make([]Hyperplane, len(s.rows))
	copy(rows, s.rows)

	return &LinearSystem{rows: rows, dimension: s.dimension}
}

// checkRow validates a row index against the current row count.
func (s *LinearSystem) checkRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return ErrRowOutOfRange
	}

	return nil
}

// SwapRows exchanges the rows at positions i and j in place.
// No numeric effect on the solution set. O(1).
func (s *LinearSystem) SwapRows(i, j int) error {
	if err := s.checkRow(i); err != nil {
		return fmt.Errorf("SwapRows(%d,%d): %w", i, j, err)
	}
	if err := s.checkRow(j); err != nil {
		return fmt.Errorf("SwapRows(%d,%d): %w", i, j, err)
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]

	return nil
}

// ScaleRow replaces row i with (k·coefficients, k·constant) in place.
//
// k == 0 is NOT rejected here: scaling by zero silently destroys the row's
// information, and avoiding that is the caller's responsibility. The
// elimination algorithms in this package only ever scale by 1/pivot of a
// non-near-zero pivot.
//
// Errors: ErrRowOutOfRange. Complexity: O(dimension).
func (s *LinearSystem) ScaleRow(i int, k float64) error {
	if err := s.checkRow(i); err != nil {
		return fmt.Errorf("ScaleRow(%d): %w", i, err)
	}
	old := s.rows[i]
	s.rows[i] = Hyperplane{
		normal:   old.normal.Scale(k),
		constant: k * old.constant,
	}

	return nil
}

// AddScaledRow replaces row dst with dst + k·src (coefficient-wise and
// constant), leaving row src unchanged. This is the fundamental elimination
// step: with k = -below[col]/pivot[col] it clears column col from a row.
//
// Errors: ErrRowOutOfRange. Complexity: O(dimension).
func (s *LinearSystem) AddScaledRow(k float64, src, dst int) error {
	if err := s.checkRow(src); err != nil {
		return fmt.Errorf("AddScaledRow(src=%d): %w", src, err)
	}
	if err := s.checkRow(dst); err != nil {
		return fmt.Errorf("AddScaledRow(dst=%d): %w", dst, err)
	}
	scaled := s.rows[src].normal.Scale(k)
	sum, err := s.rows[dst].normal.Add(scaled)
	if err != nil {
		// Unreachable while the shared-dimension invariant holds.
		return fmt.Errorf("AddScaledRow(%d,%d): %w", src, dst, err)
	}
	s.rows[dst] = Hyperplane{
		normal:   sum,
		constant: s.rows[dst].constant + k*s.rows[src].constant,
	}

	return nil
}

// PivotIndices returns, for each row, the column of its first non-near-zero
// coefficient, or -1 for an all-zero row. Complexity: O(rows·dimension).
func (s *LinearSystem) PivotIndices(eps float64) []int {
	indices := make([]int, len(s.rows))
	for i, r := range s.rows {
		idx, err := r.FirstNonzeroIndex(eps)
		if err != nil {
			indices[i] = -1 // all coefficients within tolerance of zero

			continue
		}
		indices[i] = idx
	}

	return indices
}

// String renders the system one equation per line, mirroring the row order.
func (s *LinearSystem) String() string {
	var sb strings.Builder
	sb.WriteString("Linear System:")
	for i, r := range s.rows {
		sb.WriteString("\nEquation ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": ")
		sb.WriteString(r.String())
	}

	return sb.String()
}
