// SPDX-License-Identifier: MIT

package sample_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sample"
	"github.com/stretchr/testify/require"
)

func TestValue_KindedAccessors(t *testing.T) {
	t.Parallel()

	sp := sample.SpanOf(0, 4)
	require.Equal(t, sample.KindSpan, sp.Kind())
	got, err := sp.AsSpan()
	require.NoError(t, err)
	require.Equal(t, matrix.Span{First: 0, Last: 4}, got)

	_, err = sp.AsInt()
	require.ErrorIs(t, err, sample.ErrKindMismatch)
	_, err = sample.Text("'fro'").AsMatrix()
	require.ErrorIs(t, err, sample.ErrKindMismatch)
	_, err = sample.Value{}.AsText()
	require.ErrorIs(t, err, sample.ErrKindMismatch)

	r, err := sample.Int(3).AsReal()
	require.NoError(t, err)
	require.Equal(t, 3.0, r)

	sz, err := sample.SizeOf(2, 5).AsSize()
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 2, Cols: 5}, sz)

	d, err := sample.DistrOf(-5, 6).AsDistr()
	require.NoError(t, err)
	require.Equal(t, sample.Distr{A: -5, B: 6}, d)
}

// TestValue_MatrixPayloadIsCopied ensures readers cannot mutate the sample.
func TestValue_MatrixPayloadIsCopied(t *testing.T) {
	t.Parallel()

	v := sample.RowVec(1, 2, 3)
	require.Equal(t, sample.Row, v.Orientation())

	m, err := v.AsMatrix()
	require.NoError(t, err)
	require.NoError(t, m.Resize(1, 1))

	again, err := v.AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, again.RowMajor())

	c := v.Clone()
	require.True(t, c.Equal(v))
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	require.True(t, sample.Real(math.Inf(-1)).Equal(sample.Real(math.Inf(-1))))
	require.True(t, sample.Real(math.NaN()).Equal(sample.Real(math.NaN())))
	require.False(t, sample.ColVec(1).Equal(sample.RowVec(1)))
	require.False(t, sample.Int(1).Equal(sample.Real(1)))
}
