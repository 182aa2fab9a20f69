// SPDX-License-Identifier: MIT

package linsys

import "math"

// coefficientAt reads coefficient (row, col) directly.
// Both indices are produced by the elimination loops, which run strictly
// inside [0, Len) × [0, Dimension); errors are not expected after the
// shared-dimension invariant holds, so the error is discarded.
func (s *LinearSystem) coefficientAt(row, col int) float64 {
	c, _ := s.rows[row].normal.At(col)

	return c
}

// TriangularForm computes the row-echelon form of the system and returns it
// as an independent copy; the receiver is never mutated.
//
// Implementation:
//   - Stage 1: Clone the system (deep copy; Hyperplanes are immutable values).
//   - Stage 2: For row = 0..rows-1, scan columns left to right. A near-zero
//     (|c| ≤ eps) coefficient triggers a swap search strictly below the
//     current row; if no row below offers a usable pivot in that column, the
//     scan moves to the next column without advancing the row. Once a usable
//     pivot sits at (row, col), every row below is cleared in that column via
//     AddScaledRow(-below/pivot, row, below), and the scan advances to the
//     next row.
//
// Behavior highlights:
//   - Deterministic: fixed row→column order, first-usable-row-below swap.
//   - Pivot selection takes the FIRST usable row below, not the row with the
//     largest magnitude. This mirrors the classic coursework scheme and is
//     acceptable for small, well-scaled systems; it is NOT guaranteed
//     numerically stable for ill-conditioned input. Known limitation, kept
//     intentionally — upgrading to partial pivoting would silently alter
//     numerical behavior.
//
// Returns:
//   - *LinearSystem: a fresh system in row-echelon form (pivot columns
//     strictly increase across non-trivial rows).
//   - error: reserved for forward compatibility; nil for any validly
//     constructed system.
//
// Determinism:
//   - Fixed loop orders; identical input always yields identical output.
//
// Complexity:
//   - Time O(rows² · dimension), Space O(rows · dimension) for the copy.
func (s *LinearSystem) TriangularForm(opts ...Option) (*LinearSystem, error) {
	o := gatherOptions(opts...)
	sys := s.Clone()

	numEquations := sys.Len()
	numVariables := sys.dimension

	var row, col int
	for row = 0; row < numEquations; row++ {
		for col = 0; col < numVariables; col++ {
			if math.Abs(sys.coefficientAt(row, col)) <= o.eps {
				// No usable pivot here; try to pull one up from below.
				if !sys.swapWithNonzeroBelow(row, col, o.eps) {
					continue // column has no pivot at or below this row
				}
			}
			sys.clearBelow(row, col)

			break // pivot placed; advance to the next row
		}
	}

	return sys, nil
}

// swapWithNonzeroBelow searches downward from row+1 for a row whose
// coefficient in the given column exceeds eps in magnitude and swaps it into
// position. Reports whether a swap happened. Complexity: O(rows).
func (s *LinearSystem) swapWithNonzeroBelow(row, col int, eps float64) bool {
	for below := row + 1; below < len(s.rows); below++ {
		if math.Abs(s.coefficientAt(below, col)) > eps {
			// Index bounds are loop-guaranteed, so SwapRows cannot fail.
			_ = s.SwapRows(row, below)

			return true
		}
	}

	return false
}

// clearBelow eliminates the given column from every row strictly below the
// pivot row: below ← below + (-below[col]/pivot[col])·pivotRow.
// The caller guarantees the pivot coefficient is non-near-zero.
// Complexity: O(rows · dimension).
func (s *LinearSystem) clearBelow(row, col int) {
	pivot := s.coefficientAt(row, col)
	for below := row + 1; below < len(s.rows); below++ {
		alpha := -s.coefficientAt(below, col) / pivot
		// Indices are loop-guaranteed valid; dimensions match by invariant.
		_ = s.AddScaledRow(alpha, row, below)
	}
}
