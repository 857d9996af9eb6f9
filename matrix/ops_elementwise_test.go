// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_RowVectors(t *testing.T) {
	t.Parallel()

	a := matrix.NewRow(1, 2, 3)
	b := matrix.NewRow(4, 5, 6)

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, got.RowMajor())

	// generic path gives the same answer
	got, err = matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, got.RowMajor())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := matrix.NewRow(1, 2, 3)
	b := matrix.NewRow(1, 2)
	for name, f := range map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add": matrix.Add, "Sub": matrix.Sub, "ElemMul": matrix.ElemMul, "ElemDiv": matrix.ElemDiv,
		"Equal": matrix.Equal, "Less": matrix.Less,
	} {
		_, err := f(a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
	}

	_, err := matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRelational_IndicatorResults(t *testing.T) {
	t.Parallel()

	a := matrix.NewRow(1, 2, math.NaN())
	b := matrix.NewRow(2, 2, 0)

	cases := []struct {
		name string
		f    func(x, y matrix.Matrix) (*matrix.Dense, error)
		want []float64
	}{
		{"Equal", matrix.Equal, []float64{0, 1, 0}},
		{"NotEqual", matrix.NotEqual, []float64{1, 0, 1}},
		{"GreaterEqual", matrix.GreaterEqual, []float64{0, 1, 0}},
		{"LessEqual", matrix.LessEqual, []float64{1, 1, 0}},
		{"Greater", matrix.Greater, []float64{0, 0, 0}},
		{"Less", matrix.Less, []float64{1, 0, 0}},
	}
	for _, tc := range cases {
		got, err := tc.f(a, b)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got.RowMajor(), tc.name)
	}
}

func TestElemDiv_ByZeroFollowsIEEE(t *testing.T) {
	t.Parallel()

	got, err := matrix.ElemDiv(matrix.NewColumn(1, -1, 0), matrix.NewColumn(0, 0, 0))
	require.NoError(t, err)
	v := got.RowMajor()
	require.True(t, math.IsInf(v[0], 1))
	require.True(t, math.IsInf(v[1], -1))
	require.True(t, math.IsNaN(v[2]))
}
