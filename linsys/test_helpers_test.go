// SPDX-License-Identifier: MIT
// Package linsys_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for systems and rows.
//   - Keep all data finite and well-formed so numeric policy never interferes.

package linsys_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/vector"
	"github.com/stretchr/testify/require"
)

// eps mirrors linsys.DefaultEpsilon for structural checks inside tests.
const eps = linsys.DefaultEpsilon

// approx is the looser tolerance for comparing computed RREF values.
const approx = 1e-4

// mustRow builds a Hyperplane from raw coefficients and a constant, or
// aborts the test.
func mustRow(t *testing.T, constant float64, coeffs ...float64) linsys.Hyperplane {
	t.Helper()
	n, err := vector.New(coeffs...)
	require.NoError(t, err, "vector.New(%v)", coeffs)
	h, err := linsys.NewHyperplane(n, constant)
	require.NoError(t, err, "NewHyperplane(%v, %v)", coeffs, constant)

	return h
}

// mustSystem builds a LinearSystem or aborts the test.
func mustSystem(t *testing.T, rows ...linsys.Hyperplane) *linsys.LinearSystem {
	t.Helper()
	s, err := linsys.New(rows...)
	require.NoError(t, err, "linsys.New(%d rows)", len(rows))

	return s
}

// rowValues reads row i back as (coefficients, constant) or aborts.
func rowValues(t *testing.T, s *linsys.LinearSystem, i int) ([]float64, float64) {
	t.Helper()
	r, err := s.Row(i)
	require.NoError(t, err, "Row(%d)", i)

	return r.Normal().Coordinates(), r.Constant()
}

// assertRowEquals checks row i against expected coefficients and constant
// within tolerance tol.
func assertRowEquals(t *testing.T, s *linsys.LinearSystem, i int, wantCoeffs []float64, wantConst, tol float64) {
	t.Helper()
	coeffs, constant := rowValues(t, s, i)
	require.Len(t, coeffs, len(wantCoeffs), "row %d dimension", i)
	for j, want := range wantCoeffs {
		if math.Abs(coeffs[j]-want) > tol {
			t.Fatalf("row %d coeff %d: want %v, got %v", i, j, want, coeffs[j])
		}
	}
	if math.Abs(constant-wantConst) > tol {
		t.Fatalf("row %d constant: want %v, got %v", i, wantConst, constant)
	}
}

// assertPointSolves verifies that A·point = b for every row of the original
// system, within tolerance tol.
func assertPointSolves(t *testing.T, s *linsys.LinearSystem, point []float64, tol float64) {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		coeffs, constant := rowValues(t, s, i)
		var sum float64
		for j, c := range coeffs {
			sum += c * point[j]
		}
		if math.Abs(sum-constant) > tol {
			t.Fatalf("point %v does not satisfy row %d: got %v, want %v", point, i, sum, constant)
		}
	}
}

// assertDirectionInNullSpace verifies that A·dir = 0 for every row of the
// original system: moving along dir must not leave the solution set.
func assertDirectionInNullSpace(t *testing.T, s *linsys.LinearSystem, dir []float64, tol float64) {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		coeffs, _ := rowValues(t, s, i)
		var sum float64
		for j, c := range coeffs {
			sum += c * dir[j]
		}
		if math.Abs(sum) > tol {
			t.Fatalf("direction %v leaves the solution set at row %d: A·dir = %v", dir, i, sum)
		}
	}
}

// assertSolutionsEqual compares two classification results within tolerance.
// Parametric payloads are compared structurally (same counts) and
// geometrically (each basepoint/direction of one satisfies/annihilates the
// system that produced the other is checked by the caller).
func assertSolutionsEqual(t *testing.T, a, b linsys.Solution, tol float64) {
	t.Helper()
	require.Equal(t, a.Kind, b.Kind, "solution kinds must match")
	switch a.Kind {
	case linsys.UniqueSolution:
		require.Len(t, b.Values, len(a.Values))
		for i := range a.Values {
			if math.Abs(a.Values[i]-b.Values[i]) > tol {
				t.Fatalf("value %d: %v vs %v", i, a.Values[i], b.Values[i])
			}
		}
	case linsys.InfiniteSolutions:
		require.Len(t, b.Directions, len(a.Directions), "free-variable counts must match")
	case linsys.NoSolution:
		// no payload
	}
}
