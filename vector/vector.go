package vector

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable, fixed-dimension sequence of real coordinates.
// The zero value is not a valid Vector; construct via New.
type Vector struct {
	coords []float64 // backing storage, never shared with callers
}

// New constructs a Vector from the given coordinates.
// Returns ErrEmptyCoordinates when no coordinates are supplied.
// Complexity: O(n) copy.
func New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	// Copy defensively so the caller's slice stays independent.
	c := make([]float64, len(coords))
	copy(c, coords)

	return Vector{coords: c}, nil
}

// Zero returns the n-dimensional zero vector.
// Returns ErrEmptyCoordinates when n < 1.
func Zero(n int) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyCoordinates
	}

	return Vector{coords: make([]float64, n)}, nil
}

// Dimension returns the number of coordinates. O(1).
func (v Vector) Dimension() int {
	return len(v.coords)
}

// At returns coordinate i, or ErrIndexOutOfRange when i is outside [0, Dimension).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.coords) {
		return 0, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinate slice.
// The copy keeps the Vector immutable. O(n).
func (v Vector) Coordinates() []float64 {
	c := make([]float64, len(v.coords))
	copy(c, v.coords)

	return c
}

// sameDimension is the shared guard for binary operations.
func (v Vector) sameDimension(w Vector) error {
	if len(v.coords) != len(w.coords) {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns v + w coordinate-wise.
// Returns ErrDimensionMismatch when dimensions differ. O(n).
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, fmt.Errorf("Add: %w", err)
	}
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i] + w.coords[i]
	}

	return Vector{coords: out}, nil
}

// Sub returns v - w coordinate-wise.
// Returns ErrDimensionMismatch when dimensions differ. O(n).
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, fmt.Errorf("Sub: %w", err)
	}
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i] - w.coords[i]
	}

	return Vector{coords: out}, nil
}

// Scale returns k·v. Scaling by zero yields the zero vector of the same
// dimension; whether that loses information is the caller's concern. O(n).
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i] = k * v.coords[i]
	}

	return Vector{coords: out}
}

// Dot returns the inner product v·w.
// Returns ErrDimensionMismatch when dimensions differ. O(n).
func (v Vector) Dot(w Vector) (float64, error) {
	if err := v.sameDimension(w); err != nil {
		return 0, fmt.Errorf("Dot: %w", err)
	}
	var sum float64
	for i := range v.coords {
		sum += v.coords[i] * w.coords[i]
	}

	return sum, nil
}

// Magnitude returns the Euclidean norm ‖v‖. O(n).
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, c := range v.coords {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// IsZero reports whether ‖v‖ < eps, i.e. the vector is structurally zero
// under the given tolerance. A non-positive eps degenerates to an exact
// zero test. O(n).
func (v Vector) IsZero(eps float64) bool {
	return v.Magnitude() < eps
}

// Normalize returns the unit vector v/‖v‖.
// Returns ErrZeroMagnitude when ‖v‖ == 0. O(n).
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}, fmt.Errorf("Normalize: %w", ErrZeroMagnitude)
	}

	return v.Scale(1 / mag), nil
}

// Angle returns the angle between v and w in radians, in [0, π].
// Returns ErrDimensionMismatch on shape mismatch and ErrZeroMagnitude when
// either vector has zero norm. O(n).
func (v Vector) Angle(w Vector) (float64, error) {
	d, err := v.Dot(w)
	if err != nil {
		return 0, fmt.Errorf("Angle: %w", ErrDimensionMismatch)
	}
	mv, mw := v.Magnitude(), w.Magnitude()
	if mv == 0 || mw == 0 {
		return 0, fmt.Errorf("Angle: %w", ErrZeroMagnitude)
	}
	// Clamp against floating-point drift before acos.
	cos := d / (mv * mw)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos), nil
}

// IsParallel reports whether v and w point along the same line: either is
// near-zero, or |cos θ| is within eps of 1 for the angle θ between them.
// The test runs on the cosine rather than on Angle: acos amplifies the
// rounding of a cosine near ±1 into an angle error far above eps, which
// would misreport exact scalar multiples as non-parallel.
// Returns ErrDimensionMismatch on shape mismatch. O(n).
func (v Vector) IsParallel(w Vector, eps float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, fmt.Errorf("IsParallel: %w", err)
	}
	// The zero vector is parallel to everything.
	if v.IsZero(eps) || w.IsZero(eps) {
		return true, nil
	}
	cos := math.Abs(d) / (v.Magnitude() * w.Magnitude())
	if cos > 1 {
		cos = 1
	}

	return 1-cos <= eps, nil
}

// IsOrthogonal reports whether |v·w| < eps.
// Returns ErrDimensionMismatch on shape mismatch. O(n).
func (v Vector) IsOrthogonal(w Vector, eps float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, fmt.Errorf("IsOrthogonal: %w", err)
	}

	return math.Abs(d) < eps, nil
}

// Project returns the component of v parallel to basis:
// (v·b̂)·b̂ where b̂ = basis/‖basis‖.
// Returns ErrDimensionMismatch on shape mismatch and ErrZeroMagnitude when
// basis has zero norm. O(n).
func (v Vector) Project(basis Vector) (Vector, error) {
	unit, err := basis.Normalize()
	if err != nil {
		return Vector{}, fmt.Errorf("Project: %w", ErrZeroMagnitude)
	}
	weight, err := v.Dot(unit)
	if err != nil {
		return Vector{}, fmt.Errorf("Project: %w", err)
	}

	return unit.Scale(weight), nil
}

// Cross returns the cross product v × w for 3-dimensional vectors.
// Returns ErrCrossDimension when either operand is not 3-dimensional. O(1).
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) != 3 || len(w.coords) != 3 {
		return Vector{}, fmt.Errorf("Cross: %w", ErrCrossDimension)
	}
	a, b := v.coords, w.coords

	return Vector{coords: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Equal reports whether v and w agree coordinate-wise within eps.
// Vectors of different dimensions are never equal. O(n).
func (v Vector) Equal(w Vector, eps float64) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if math.Abs(v.coords[i]-w.coords[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, rendering Vector{c1, c2, ...}.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector{")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", c))
	}
	sb.WriteString("}")

	return sb.String()
}
