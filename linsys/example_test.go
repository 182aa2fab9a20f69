package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/vector"
)

// row is example boilerplate: build one equation, panicking on malformed
// input (examples use literal, well-formed numbers only).
func row(constant float64, coeffs ...float64) linsys.Hyperplane {
	n, err := vector.New(coeffs...)
	if err != nil {
		panic(err)
	}
	h, err := linsys.NewHyperplane(n, constant)
	if err != nil {
		panic(err)
	}

	return h
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleLinearSystem_TriangularForm
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reduce a 4-equation, 3-variable system to row-echelon form. The fourth
//	equation is dependent on the others and collapses to 0 = 0.
//
// Complexity: O(rows² · dimension)
func ExampleLinearSystem_TriangularForm() {
	sys, _ := linsys.New(
		row(1, 1, 1, 1),
		row(2, 0, 1, 0),
		row(3, 1, 1, -1),
		row(2, 1, 0, -2),
	)

	tri, _ := sys.TriangularForm()
	fmt.Println(tri)
	// Output:
	// Linear System:
	// Equation 1: x_1 + x_2 + x_3 = 1
	// Equation 2: x_2 = 2
	// Equation 3: -2x_3 = 2
	// Equation 4: 0 = 0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleLinearSystem_Solve_unique
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three independent planes intersect in exactly one point.
func ExampleLinearSystem_Solve_unique() {
	sys, _ := linsys.New(
		row(1, 0, 1, 1),
		row(2, 1, -1, 1),
		row(3, 1, 2, -5),
	)

	sol, _ := sys.Solve()
	fmt.Println(sol)
	// Output:
	// Unique solution: (2.556, 0.778, 0.222)
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleLinearSystem_Solve_parametric
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A single equation in two variables leaves one free variable: the
//	solution set is a line through the basepoint along the direction.
func ExampleLinearSystem_Solve_parametric() {
	sys, _ := linsys.New(
		row(3, 1, 2),
	)

	sol, _ := sys.Solve()
	fmt.Println(sol)
	// Output:
	// Infinitely many solutions: basepoint (3, 0) + t·(-2, 1)
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleLinearSystem_Solve_inconsistent
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two parallel planes with different offsets never meet.
func ExampleLinearSystem_Solve_inconsistent() {
	sys, _ := linsys.New(
		row(-8.15, 5.862, 1.178, -10.366),
		row(-4.075, -2.931, -0.589, 5.183),
	)

	sol, _ := sys.Solve()
	fmt.Println(sol)
	// Output:
	// No solutions
}
