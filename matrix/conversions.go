// SPDX-License-Identifier: MIT
// Package matrix: conversions between a linsys.LinearSystem and its dense
// augmented-matrix form [A | b]. The matrix view is a snapshot for
// inspection, diffing in tests, and interop with external linear-algebra
// tooling; it shares no storage with the system it was built from.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/vector"
)

// FromSystem exports a linear system as its augmented matrix: one row per
// equation, dimension coefficient columns followed by one constants column.
//
// Errors:
//   - ErrNilSystem when s is nil.
//
// Complexity: O(rows · dimension).
func FromSystem(s *linsys.LinearSystem) (*Dense, error) {
	if s == nil {
		return nil, fmt.Errorf("FromSystem: %w", ErrNilSystem)
	}
	dim := s.Dimension()
	m, err := NewDense(s.Len(), dim+1)
	if err != nil {
		return nil, fmt.Errorf("FromSystem: %w", err)
	}

	for i := 0; i < s.Len(); i++ {
		// Row indices come from the system itself; Row cannot fail here.
		eq, rerr := s.Row(i)
		if rerr != nil {
			return nil, fmt.Errorf("FromSystem: %w", rerr)
		}
		base := i * (dim + 1)
		copy(m.data[base:base+dim], eq.Normal().Coordinates())
		m.data[base+dim] = eq.Constant()
	}

	return m, nil
}

// ToSystem rebuilds a LinearSystem from an augmented matrix [A | b]: the
// last column carries the constants, every other column a coefficient.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrTooFewColumns when m has fewer than two columns.
//   - propagated linsys construction errors.
//
// Complexity: O(rows · dimension).
func ToSystem(m *Dense) (*linsys.LinearSystem, error) {
	if m == nil {
		return nil, fmt.Errorf("ToSystem: %w", ErrNilMatrix)
	}
	if m.c < 2 {
		return nil, fmt.Errorf("ToSystem: %w", ErrTooFewColumns)
	}

	dim := m.c - 1
	rows := make([]linsys.Hyperplane, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		coeffs := make([]float64, dim)
		copy(coeffs, m.data[base:base+dim])
		normal, err := vector.New(coeffs...)
		if err != nil {
			return nil, fmt.Errorf("ToSystem: row %d: %w", i, err)
		}
		row, err := linsys.NewHyperplane(normal, m.data[base+dim])
		if err != nil {
			return nil, fmt.Errorf("ToSystem: row %d: %w", i, err)
		}
		rows[i] = row
	}

	return linsys.New(rows...)
}
