// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures and comparison utilities.
//   • Force the generic (non-*Dense) code paths through the hide wrapper.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// hide wraps any Matrix to mask its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c matrix from row-major values or fails the test.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// requireClose asserts equal shapes and element-wise closeness (NaN == NaN).
func requireClose(t *testing.T, want, got *matrix.Dense, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := want.RowMajor(), got.RowMajor()
	for k := range w {
		if math.IsNaN(w[k]) {
			require.True(t, math.IsNaN(g[k]), "index %d: want NaN, got %v", k, g[k])
			continue
		}
		require.InDelta(t, w[k], g[k], eps, "index %d", k)
	}
}
