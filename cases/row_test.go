// SPDX-License-Identifier: MIT

package cases_test

import (
	"testing"

	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sample"
	"github.com/stretchr/testify/require"
)

func TestRow_Accessors(t *testing.T) {
	t.Parallel()

	row := cases.Row{
		{Label: "3", Value: sample.Int(3)},
		{Label: "pi", Value: sample.Real(3.14)},
		{Label: "'fro'", Value: sample.Text("fro")},
		{Label: "span(0,1)", Value: sample.SpanOf(0, 1)},
		{Label: "size(2,3)", Value: sample.SizeOf(2, 3)},
		{Label: "distr_param(0,10)", Value: sample.DistrOf(0, 10)},
	}
	require.Equal(t, "3,pi,'fro',span(0,1),size(2,3),distr_param(0,10)", row.Label())

	i, err := row.Int(0)
	require.NoError(t, err)
	require.Equal(t, 3, i)

	f, err := row.Real(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, f)

	s, err := row.Text(2)
	require.NoError(t, err)
	require.Equal(t, "fro", s)

	sp, err := row.Span(3)
	require.NoError(t, err)
	require.Equal(t, matrix.Span{First: 0, Last: 1}, sp)

	sz, err := row.Size(4)
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Rows: 2, Cols: 3}, sz)

	d, err := row.Distr(5)
	require.NoError(t, err)
	require.Equal(t, sample.Distr{A: 0, B: 10}, d)
}

func TestRow_Errors(t *testing.T) {
	t.Parallel()

	row := cases.Row{{Label: "1", Value: sample.Int(1)}}

	_, err := row.Int(1)
	require.ErrorIs(t, err, cases.ErrNoColumn)

	_, err = row.Span(0)
	require.ErrorIs(t, err, sample.ErrKindMismatch)
	require.Contains(t, err.Error(), "column 0 (1)")
}
