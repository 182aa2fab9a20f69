// SPDX-License-Identifier: MIT

package linsys

import (
	"math"
	"strings"
)

// SolutionKind tags the classification outcome of Solve.
type SolutionKind int

const (
	// NoSolution — the system is inconsistent: some row reduced to
	// 0·x = nonzero.
	NoSolution SolutionKind = iota

	// UniqueSolution — the system intersects in exactly one point.
	UniqueSolution

	// InfiniteSolutions — the system has free variables; the solution set is
	// a parametric family basepoint + Σ tᵢ·directionᵢ.
	InfiniteSolutions
)

// String implements fmt.Stringer for SolutionKind.
func (k SolutionKind) String() string {
	switch k {
	case NoSolution:
		return "no solutions"
	case UniqueSolution:
		return "unique solution"
	case InfiniteSolutions:
		return "infinitely many solutions"
	default:
		return "unknown"
	}
}

// Solution is the tagged classification result of a linear system.
// Exactly one shape of payload is populated, selected by Kind:
//   - NoSolution:        no payload.
//   - UniqueSolution:    Values holds the single point, one entry per variable.
//   - InfiniteSolutions: Basepoint holds one particular solution and
//     Directions holds one vector per free variable; every point
//     Basepoint + Σ tᵢ·Directions[i] solves the system.
//
// A Solution is a result, never an error: inconsistency and free variables
// are expected, meaningful outputs of classification.
type Solution struct {
	Kind       SolutionKind
	Values     []float64
	Basepoint  []float64
	Directions [][]float64
}

// pivotRef ties a pivot column to the row that owns it in RREF.
type pivotRef struct {
	row, col int
}

// Solve classifies the solution set of the system.
//
// Implementation:
//   - Stage 1: RREF on a deep copy (the receiver is never mutated).
//   - Stage 2: Scan rows in order. A row with no pivot and a non-near-zero
//     constant proves inconsistency ⇒ NoSolution. Trivial 0 = 0 rows carry
//     no information and are dropped. Remaining rows register their pivot
//     columns.
//   - Stage 3: Columns never claimed as pivots are free variables. Any free
//     variable ⇒ InfiniteSolutions with basepoint (pivot rows' constants at
//     their pivot columns, zero elsewhere) and one direction vector per free
//     variable f: 1 at position f, and -coefficient_at_f at each pivot row's
//     pivot column. Otherwise ⇒ UniqueSolution read off the pivot rows.
//
// Determinism:
//   - Fixed scan orders; directions are emitted in ascending free-column order.
//
// Complexity:
//   - Time O(rows² · dimension) dominated by RREF, Space O(dimension²) worst
//     case for the direction vectors.
func (s *LinearSystem) Solve(opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	sys, err := s.RREF(opts...)
	if err != nil {
		return Solution{}, err
	}

	var pivots []pivotRef
	for i, r := range sys.rows {
		col, ferr := r.FirstNonzeroIndex(o.eps)
		if ferr != nil {
			// Pivotless row: 0·x = c. Inconsistent when c is structurally
			// nonzero; otherwise a trivial 0 = 0 row to be dropped.
			if math.Abs(r.constant) > o.eps {
				return Solution{Kind: NoSolution}, nil
			}

			continue
		}
		pivots = append(pivots, pivotRef{row: i, col: col})
	}

	dim := sys.dimension
	if len(pivots) < dim {
		return Solution{
			Kind:       InfiniteSolutions,
			Basepoint:  parametricBasepoint(sys, pivots, dim),
			Directions: parametricDirections(sys, pivots, dim),
		}, nil
	}

	// Full rank: every column is a pivot column; read the point off the rows.
	values := make([]float64, dim)
	for _, p := range pivots {
		values[p.col] = sys.rows[p.row].constant
	}

	return Solution{Kind: UniqueSolution, Values: values}, nil
}

// parametricBasepoint builds one particular solution: each pivot column
// carries its row's constant, free columns stay zero.
func parametricBasepoint(sys *LinearSystem, pivots []pivotRef, dim int) []float64 {
	basepoint := make([]float64, dim)
	for _, p := range pivots {
		basepoint[p.col] = sys.rows[p.row].constant
	}

	return basepoint
}

// parametricDirections builds one direction vector per free variable, in
// ascending column order: 1 at the free column, -coefficient_at_free at each
// pivot row's pivot column, zero elsewhere.
func parametricDirections(sys *LinearSystem, pivots []pivotRef, dim int) [][]float64 {
	isPivotCol := make([]bool, dim)
	for _, p := range pivots {
		isPivotCol[p.col] = true
	}

	var directions [][]float64
	for free := 0; free < dim; free++ {
		if isPivotCol[free] {
			continue
		}
		dir := make([]float64, dim)
		dir[free] = 1
		for _, p := range pivots {
			dir[p.col] = -sys.coefficientAt(p.row, free)
		}
		directions = append(directions, dir)
	}

	return directions
}

// String renders the classified result for logs and demos.
func (sol Solution) String() string {
	switch sol.Kind {
	case UniqueSolution:
		return "Unique solution: " + formatPoint(sol.Values)
	case InfiniteSolutions:
		var sb strings.Builder
		sb.WriteString("Infinitely many solutions: basepoint ")
		sb.WriteString(formatPoint(sol.Basepoint))
		for _, d := range sol.Directions {
			sb.WriteString(" + t·")
			sb.WriteString(formatPoint(d))
		}

		return sb.String()
	default:
		return "No solutions"
	}
}

// formatPoint renders a coordinate list as (c1, c2, ...) with the same
// rounding policy as the equation pretty-printer.
func formatPoint(coords []float64) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatRounded(roundTo(c, printPrecision)))
	}
	sb.WriteString(")")

	return sb.String()
}
