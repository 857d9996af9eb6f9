// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_EmptyShapesAreLegal checks that 0×n and n×0 are representable.
func TestNewDense_EmptyShapesAreLegal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.Equal(t, 3, m.Cols())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestGenerators verifies the closed-form catalog generators on small shapes.
func TestGenerators(t *testing.T) {
	t.Parallel()

	eye, err := matrix.Eye(2, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0}, eye.RowMajor())

	h, err := matrix.Hilbert(2, 2)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 2, 1, 0.5, 0.5, 1.0/3), h, epsTight)

	k, err := matrix.KMS(3, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4, 2, 1, 2, 4, 2, 1}, k.RowMajor())

	// shift is 2/(1+2+2) = 0.4
	hs, err := matrix.HilbertSub(1, 2)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 1, 2, 0.6, 0.1), hs, epsTight)

	ones, err := matrix.Ones(2, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, ones.RowMajor())
}

// TestColMajorAndBounds checks the linear element order used for persistence.
func TestColMajorAndBounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.ColMajor())

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

// TestClone_IsIndependent ensures a clone does not share storage.
func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	m := matrix.NewRow(1, 2, 3)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, []float64{1, 2, 3}, m.RowMajor())
	require.True(t, m.Equal(matrix.NewRow(1, 2, 3)))
	require.False(t, m.Equal(c))
}
