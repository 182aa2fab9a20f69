// Package linsolve is your in-memory toolbox for solving small dense
// systems of linear equations — geometric planes and lines reduced by
// Gaussian elimination to a fully classified solution set.
//
// 🚀 What is linsolve?
//
//	A compact, deterministic library that brings together:
//		• Vector primitives: add, subtract, scale, dot & cross products,
//		  angle, projection, parallel/orthogonal tests
//		• Hyperplanes: one linear equation coeffs·x = constant, with
//		  pivot lookup, basepoints and pretty-printing
//		• LinearSystem: ordered equation rows with swap/scale/add-scaled
//		  row primitives, triangularization and full row reduction (RREF)
//		• Classification: no solution, a unique point, or an infinite
//		  family described by a basepoint plus free-variable directions
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, explicit ε-tolerance policy
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – first-usable-pivot elimination is documented as a
//     coursework-grade strategy, never silently "upgraded"
//
// Everything is organized under three subpackages:
//
//	vector/ — fixed-dimension float64 vectors & geometric predicates
//	linsys/ — Hyperplane, LinearSystem, elimination & classification
//	matrix/ — dense augmented-matrix view of a system for inspection
//
// Quick ASCII example:
//
//	x + y + z = 1          [1  1  1 | 1]
//	    y     = 2    ⇒     [0  1  0 | 2]   ⇒ RREF ⇒ unique point
//	x + y - z = 3          [1  1 -1 | 3]
//
// Dive into the per-package doc.go files and example_test.go files for
// full walkthroughs of triangular form, RREF and solution classification.
//
//	go get github.com/katalvlaran/linsolve/linsys
package linsolve
