// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/vector"
)

// mustSystem builds a LinearSystem from (coefficients..., constant) rows,
// failing the test on any construction error.
func mustSystem(t *testing.T, rows ...[]float64) *linsys.LinearSystem {
	t.Helper()
	eqs := make([]linsys.Hyperplane, len(rows))
	for i, r := range rows {
		require.NotEmpty(t, r)
		normal, err := vector.New(r[:len(r)-1]...)
		require.NoError(t, err)
		eq, err := linsys.NewHyperplane(normal, r[len(r)-1])
		require.NoError(t, err)
		eqs[i] = eq
	}
	s, err := linsys.New(eqs...)
	require.NoError(t, err)

	return s
}

// TestFromSystem_Shape verifies the augmented layout: Len rows and
// Dimension+1 columns, constants in the last column.
func TestFromSystem_Shape(t *testing.T) {
	s := mustSystem(t,
		[]float64{1, 2, 3, 4},
		[]float64{5, 6, 7, 8},
	)

	m, err := matrix.FromSystem(s)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())

	want := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	for i := range want {
		for j := range want[i] {
			got, aerr := m.At(i, j)
			require.NoError(t, aerr)
			assert.Equal(t, want[i][j], got, "at (%d,%d)", i, j)
		}
	}
}

// TestFromSystem_Snapshot checks that mutating the exported matrix does not
// reach back into the source system.
func TestFromSystem_Snapshot(t *testing.T) {
	s := mustSystem(t, []float64{1, 1, 1})

	m, err := matrix.FromSystem(s)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 42))

	row, err := s.Row(0)
	require.NoError(t, err)
	c, err := row.Coefficient(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

// TestRoundTrip_SystemMatrixSystem checks ToSystem(FromSystem(s))
// reproduces every row of s exactly.
func TestRoundTrip_SystemMatrixSystem(t *testing.T) {
	s := mustSystem(t,
		[]float64{1, 1, 1, 1},
		[]float64{0, 1, 0, 2},
		[]float64{1, 1, -1, 3},
		[]float64{1, 0, -2, 2},
	)

	m, err := matrix.FromSystem(s)
	require.NoError(t, err)
	back, err := matrix.ToSystem(m)
	require.NoError(t, err)

	require.Equal(t, s.Len(), back.Len())
	require.Equal(t, s.Dimension(), back.Dimension())
	for i := 0; i < s.Len(); i++ {
		orig, oerr := s.Row(i)
		require.NoError(t, oerr)
		got, gerr := back.Row(i)
		require.NoError(t, gerr)
		assert.Equal(t, orig.Constant(), got.Constant(), "row %d constant", i)
		assert.Equal(t, orig.Normal().Coordinates(), got.Normal().Coordinates(), "row %d coefficients", i)
	}
}

// TestConversions_NilAndShapeErrors covers the sentinel paths of both
// converters.
func TestConversions_NilAndShapeErrors(t *testing.T) {
	_, err := matrix.FromSystem(nil)
	assert.ErrorIs(t, err, matrix.ErrNilSystem)

	_, err = matrix.ToSystem(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// One column cannot carry both a coefficient and the constant.
	narrow, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	_, err = matrix.ToSystem(narrow)
	assert.ErrorIs(t, err, matrix.ErrTooFewColumns)
}

// TestToSystem_BuildsSolvableSystem sanity-checks that a system assembled
// from a hand-written augmented matrix feeds the solver correctly.
func TestToSystem_BuildsSolvableSystem(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	// x + y = 3, y = 1  =>  x = 2, y = 1.
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(1, 1, 1))
	require.NoError(t, m.Set(1, 2, 1))

	s, err := matrix.ToSystem(m)
	require.NoError(t, err)
	sol, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, linsys.UniqueSolution, sol.Kind)
	assert.InDelta(t, 2.0, sol.Values[0], 1e-9)
	assert.InDelta(t, 1.0, sol.Values[1], 1e-9)
}
