// SPDX-License-Identifier: MIT

package linsys

import "math"

// panicDegeneratePivot marks a violated internal invariant: RREF attempted
// to scale by the reciprocal of a near-zero pivot. Triangularization selects
// only non-near-zero pivots, so reaching this is a programming error, not a
// recoverable input condition.
const panicDegeneratePivot = "linsys: RREF: near-zero pivot selected for scaling"

// RREF computes the reduced row-echelon form of the system and returns it
// as an independent copy; the receiver is never mutated.
//
// Implementation:
//   - Stage 1: TriangularForm on a deep copy (row-echelon form).
//   - Stage 2: Walk rows bottom-up. Rows without a pivot (all coefficients
//     within eps of zero) are skipped. Otherwise the row is scaled by
//     1/pivot so the pivot coefficient becomes exactly 1, then the pivot
//     column is cleared from every row above via AddScaledRow.
//
// Behavior highlights:
//   - After reduction every pivot column contains exactly one non-near-zero
//     entry across the whole system, and that entry is exactly 1.
//   - A near-zero pivot at the 1/pivot step violates the triangularization
//     contract and panics (fatal assertion) rather than returning an error.
//
// Returns:
//   - *LinearSystem: a fresh system in reduced row-echelon form.
//   - error: propagated from TriangularForm (nil for any validly
//     constructed system).
//
// Determinism:
//   - Fixed bottom-up row order; identical input yields identical output.
//
// Complexity:
//   - Time O(rows² · dimension), Space O(rows · dimension) for the copy.
func (s *LinearSystem) RREF(opts ...Option) (*LinearSystem, error) {
	o := gatherOptions(opts...)
	sys, err := s.TriangularForm(opts...)
	if err != nil {
		return nil, err
	}

	for row := sys.Len() - 1; row >= 0; row-- {
		col, ferr := sys.rows[row].FirstNonzeroIndex(o.eps)
		if ferr != nil {
			continue // all-zero row: nothing to normalize or clear
		}
		sys.normalizePivot(row, col, o.eps)
		sys.clearAbove(row, col)
	}

	return sys, nil
}

// normalizePivot scales the row so its pivot coefficient becomes exactly 1.
// Panics when the pivot is near-zero; see panicDegeneratePivot.
func (s *LinearSystem) normalizePivot(row, col int, eps float64) {
	pivot := s.coefficientAt(row, col)
	if math.Abs(pivot) <= eps {
		panic(panicDegeneratePivot)
	}
	// Row index is caller-guaranteed, so ScaleRow cannot fail.
	_ = s.ScaleRow(row, 1/pivot)
}

// clearAbove eliminates the given column from every row strictly above the
// pivot row, mirroring clearBelow but running upward. The pivot coefficient
// is exactly 1 after normalizePivot, so alpha is simply -above[col].
// Complexity: O(rows · dimension).
func (s *LinearSystem) clearAbove(row, col int) {
	for above := row - 1; above >= 0; above-- {
		alpha := -s.coefficientAt(above, col)
		_ = s.AddScaledRow(alpha, row, above)
	}
}
