// Package linsys reduces small dense systems of linear equations to
// row-echelon and reduced row-echelon form via Gaussian elimination, then
// classifies the solution set: none, a unique point, or an infinite
// parametric family.
//
// 🚀 What is linsys?
//
//	An ordered collection of equation rows (Hyperplanes) with:
//	  • Row primitives: SwapRows, ScaleRow, AddScaledRow — in-place,
//	    solution-set preserving building blocks of elimination
//	  • TriangularForm — row-echelon form on an independent copy
//	  • RREF — reduced row-echelon form (pivots scaled to exactly 1,
//	    cleared above and below)
//	  • Solve — tagged Solution: NoSolution, UniqueSolution(point) or
//	    InfiniteSolutions(basepoint + free-variable directions)
//
// ✨ Key guarantees:
//   - Copy-on-compute — TriangularForm/RREF/Solve never mutate the
//     receiver; only the three row primitives mutate in place.
//   - ε-tolerance everywhere — every "effectively zero" decision uses one
//     configurable tolerance (DefaultEpsilon = 1e-10, WithEpsilon to
//     override); floating-point noise never fakes or hides a pivot.
//   - Results, not errors — inconsistency and free variables are expected
//     classification outputs; only malformed input (dimension mismatch,
//     empty system) is an error.
//
// ⚠️ Numerical policy:
//
//	Pivoting picks the FIRST usable row below, not the largest-magnitude
//	row. That matches the coursework-grade source algorithm and keeps the
//	behavior reproducible, but it is not guaranteed stable on
//	ill-conditioned systems. Treat any upgrade to partial pivoting as an
//	explicit, documented deviation.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/linsolve/linsys"
//	  "github.com/katalvlaran/linsolve/vector"
//	)
//
//	n1, _ := vector.New(0, 1, 1)
//	n2, _ := vector.New(1, -1, 1)
//	n3, _ := vector.New(1, 2, -5)
//	r1, _ := linsys.NewHyperplane(n1, 1)
//	r2, _ := linsys.NewHyperplane(n2, 2)
//	r3, _ := linsys.NewHyperplane(n3, 3)
//	sys, _ := linsys.New(r1, r2, r3)
//
//	sol, _ := sys.Solve()
//	fmt.Println(sol.Kind) // unique solution
//
// Performance:
//
//   - Time:   O(rows² · dimension) for a full solve
//   - Memory: O(rows · dimension) per derived copy
//
// See example_test.go for triangular/RREF walkthroughs and parametric
// solution handling.
package linsys
