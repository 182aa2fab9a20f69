// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/vector"
)

// printPrecision is the number of decimal places used by String renderers.
const printPrecision = 3

// Hyperplane is one linear equation normal·x = constant in N-dimensional
// space (a line for N=2, a plane for N=3). It is an immutable value object:
// elimination never edits a row element-wise, it builds a new Hyperplane and
// replaces the old slot wholesale.
type Hyperplane struct {
	normal   vector.Vector // coefficient vector, dimension fixed at construction
	constant float64       // right-hand side
}

// NewHyperplane builds an equation row from a coefficient vector and a
// constant term. The dimension is taken from the normal vector; vector.New
// already rejects empty coordinates, so any properly constructed Vector is
// accepted. A zero-value Vector yields ErrZeroHyperplane.
func NewHyperplane(normal vector.Vector, constant float64) (Hyperplane, error) {
	if normal.Dimension() == 0 {
		return Hyperplane{}, ErrZeroHyperplane
	}

	return Hyperplane{normal: normal, constant: constant}, nil
}

// Dimension returns the number of coefficients. O(1).
func (h Hyperplane) Dimension() int {
	return h.normal.Dimension()
}

// Normal returns the coefficient vector. Vectors are immutable, so sharing
// the value is safe. O(1).
func (h Hyperplane) Normal() vector.Vector {
	return h.normal
}

// Constant returns the right-hand side constant term. O(1).
func (h Hyperplane) Constant() float64 {
	return h.constant
}

// Coefficient returns coefficient i, delegating bounds checks to the
// underlying vector.
func (h Hyperplane) Coefficient(i int) (float64, error) {
	return h.normal.At(i)
}

// FirstNonzeroIndex returns the index of the first coefficient whose
// magnitude exceeds eps — the row's pivot column. When every coefficient is
// within tolerance of zero it returns ErrNoNonzeroElements, an expected
// classification-time condition rather than a failure.
// Complexity: O(n).
func (h Hyperplane) FirstNonzeroIndex(eps float64) (int, error) {
	coords := h.normal.Coordinates()
	for i, c := range coords {
		if math.Abs(c) > eps {
			return i, nil
		}
	}

	return -1, ErrNoNonzeroElements
}

// Basepoint returns a point lying on the hyperplane: constant/pivot at the
// pivot column, zero elsewhere. Returns ErrNoNonzeroElements for a row with
// no usable pivot (a degenerate 0=c "equation" has no basepoint).
// Complexity: O(n).
func (h Hyperplane) Basepoint(eps float64) (vector.Vector, error) {
	idx, err := h.FirstNonzeroIndex(eps)
	if err != nil {
		return vector.Vector{}, fmt.Errorf("Basepoint: %w", err)
	}
	pivot, err := h.normal.At(idx)
	if err != nil {
		return vector.Vector{}, fmt.Errorf("Basepoint: %w", err)
	}
	coords := make([]float64, h.Dimension())
	coords[idx] = h.constant / pivot

	return vector.New(coords...)
}

// IsParallel reports whether two hyperplanes have parallel normals.
// Returns vector.ErrDimensionMismatch when dimensions differ.
func (h Hyperplane) IsParallel(other Hyperplane, eps float64) (bool, error) {
	return h.normal.IsParallel(other.normal, eps)
}

// Equal reports whether h and other describe the same hyperplane: their
// normals are parallel and the vector between their basepoints is orthogonal
// to the normal. Two all-zero rows are equal when both constants are within
// tolerance of each other.
func (h Hyperplane) Equal(other Hyperplane, eps float64) (bool, error) {
	par, err := h.IsParallel(other, eps)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	if !par {
		return false, nil
	}

	bpH, errH := h.Basepoint(eps)
	bpO, errO := other.Basepoint(eps)
	switch {
	case errH != nil && errO != nil:
		// Both rows are degenerate 0=c; identical only when constants agree.
		return math.Abs(h.constant-other.constant) < eps, nil
	case errH != nil || errO != nil:
		// One degenerate, one proper — never the same hyperplane.
		return false, nil
	}

	diff, err := bpH.Sub(bpO)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}

	return diff.IsOrthogonal(h.normal, eps)
}

// String renders the equation as "a·x_1 + b·x_2 ... = c" with coefficients
// rounded to three decimal places; zero coefficients are elided, unit
// coefficients drop their magnitude, and an all-zero row renders as "0 = c".
func (h Hyperplane) String() string {
	coords := h.normal.Coordinates()
	var sb strings.Builder
	wrote := false
	for i, c := range coords {
		r := roundTo(c, printPrecision)
		if r == 0 {
			continue
		}
		if wrote {
			if r < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		} else if r < 0 {
			sb.WriteString("-")
		}
		if mag := math.Abs(r); mag != 1 {
			sb.WriteString(formatRounded(mag))
		}
		sb.WriteString("x_")
		sb.WriteString(strconv.Itoa(i + 1))
		wrote = true
	}
	if !wrote {
		sb.WriteString("0")
	}
	sb.WriteString(" = ")
	sb.WriteString(formatRounded(roundTo(h.constant, printPrecision)))

	return sb.String()
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}

// formatRounded prints an already-rounded value without trailing zeros.
func formatRounded(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
