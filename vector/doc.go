// Package vector implements fixed-dimension float64 vectors with the
// geometric operations needed by linear-equation solvers: arithmetic,
// dot and cross products, angles, projections and ε-tolerant predicates.
//
// 🚀 What is vector?
//
//	An immutable value type for ordered real coordinates, plus:
//	  • Add / Sub / Scale / Dot — elementwise arithmetic
//	  • Magnitude / Normalize / Angle — metric structure
//	  • Project / Cross — geometric decomposition (Cross is 3-D only)
//	  • IsZero / IsParallel / IsOrthogonal — near-zero tolerant tests
//
// ✨ Key guarantees:
//   - Immutability — every operation returns a fresh Vector; inputs are
//     never mutated and backing storage is never shared.
//   - Explicit tolerance — all "is this effectively zero" decisions take
//     an ε parameter; exact float equality is never used structurally.
//   - Fail-fast validation — empty coordinates and dimension mismatches
//     return sentinel errors, matched via errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/vector"
//
//	v, _ := vector.New(1, 2, 3)
//	w, _ := vector.New(4, 5, 6)
//	sum, _ := v.Add(w)          // Vector{5, 7, 9}
//	d, _ := v.Dot(w)            // 32
//	ok := v.IsZero(1e-10)       // false
//
// All operations are O(n) in the vector dimension and allocate at most
// one result slice.
package vector
