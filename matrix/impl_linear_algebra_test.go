// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustDense(t, 3, 1, 1, 0, -1)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, got.RowMajor())

	// 1×3 times 1×3 is not conformant
	_, err = matrix.Mul(matrix.NewRow(1, 2, 3), matrix.NewRow(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// 1×1 times 1×1 is
	got, err = matrix.Mul(matrix.NewRow(2), hide{matrix.NewRow(3)})
	require.NoError(t, err)
	require.Equal(t, []float64{6}, got.RowMajor())
}

func TestKron(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 1, 2, 1, 2)
	b := mustDense(t, 2, 1, 1, 10)
	got, err := matrix.Kron(a, b)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 2, 1, 2, 10, 20), got, 0)
}

func TestDotAndNormDot(t *testing.T) {
	t.Parallel()

	a := matrix.NewRow(1, 2, 3)
	b := matrix.NewColumn(4, 5, 6)
	d, err := matrix.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	nd, err := matrix.NormDot(a, a)
	require.NoError(t, err)
	require.InDelta(t, 1.0, nd, epsTight)

	// zero denominator yields 0
	nd, err = matrix.NormDot(matrix.NewRow(0, 0), matrix.NewRow(1, 2))
	require.NoError(t, err)
	require.Equal(t, 0.0, nd)

	_, err = matrix.Dot(a, matrix.NewRow(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCross(t *testing.T) {
	t.Parallel()

	got, err := matrix.Cross(matrix.NewRow(1, 0, 0), matrix.NewRow(0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 1, got.Rows())
	require.Equal(t, []float64{0, 0, 1}, got.RowMajor())

	_, err = matrix.Cross(matrix.NewRow(1, 2), matrix.NewRow(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestConv_Orientation(t *testing.T) {
	t.Parallel()

	got, err := matrix.Conv(matrix.NewRow(1, 2), matrix.NewRow(1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, 1, got.Rows())
	require.Equal(t, []float64{1, 3, 3, 2}, got.RowMajor())

	got, err = matrix.Conv(matrix.NewColumn(1, 2), matrix.NewRow(1, 1))
	require.NoError(t, err)
	require.Equal(t, 1, got.Cols())
	require.Equal(t, []float64{1, 3, 2}, got.RowMajor())

	// 1×1 first operand defers to the second
	got, err = matrix.Conv(matrix.NewScalar(2), matrix.NewRow(1, 1))
	require.NoError(t, err)
	require.Equal(t, 1, got.Rows())
	require.Equal(t, []float64{2, 2}, got.RowMajor())

	_, err = matrix.Conv(mustDense(t, 2, 2, 1, 2, 3, 4), matrix.NewRow(1))
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestToeplitz_ColumnThenRow(t *testing.T) {
	t.Parallel()

	got, err := matrix.Toeplitz(matrix.NewRow(1, 2, 3), matrix.NewRow(9, 8))
	require.NoError(t, err)
	requireClose(t, mustDense(t, 3, 2,
		1, 8,
		2, 1,
		3, 2,
	), got, 0)
}
