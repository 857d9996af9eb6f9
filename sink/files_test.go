// SPDX-License-Identifier: MIT

package sink_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sink"
	"github.com/stretchr/testify/require"
)

func TestFiles_Contract(t *testing.T) {
	t.Parallel()

	f, err := sink.NewFiles(t.TempDir())
	require.NoError(t, err)
	contract(t, f)
	require.NoError(t, f.Close())
}

func TestFiles_RawLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f, err := sink.NewFiles(dir)
	require.NoError(t, err)

	r := result(t, "Arma.cov", "Mat(eye(2,2)),0", 2, 2, 0.5, math.Inf(1), math.Inf(-1), math.NaN())
	require.NoError(t, f.Save(context.Background(), r))

	raw, err := os.ReadFile(filepath.Join(dir, "Arma.cov(Mat(eye(2,2)),0).mat"))
	require.NoError(t, err)
	require.Equal(t, "5.0000000000000000e-01 Inf\n-Inf NaN\n", string(raw))

	back, err := f.Load(r.Key())
	require.NoError(t, err)
	require.True(t, r.Values.Equal(back))

	_, err = f.Load(sink.Key{Probe: "Arma.cov", Case: "missing"})
	require.ErrorIs(t, err, sink.ErrNotFound)
}

func TestFiles_HeaderLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f, err := sink.NewFiles(dir, sink.WithArmaHeader())
	require.NoError(t, err)

	empty, err := matrix.NewDense(0, 1)
	require.NoError(t, err)
	r := sink.Result{Probe: "Arma.find", Case: "Mat(zeros(1,1)),1,'first'", Values: empty, Integral: true}
	require.NoError(t, f.Save(context.Background(), r))

	raw, err := os.ReadFile(f.Path(r.Key()))
	require.NoError(t, err)
	require.Equal(t, "ARMA_MAT_TXT_IU008\n0 1\n", string(raw))

	back, err := f.Load(r.Key())
	require.NoError(t, err)
	require.Equal(t, 0, back.Rows())
	require.Equal(t, 1, back.Cols())
}

func TestFiles_RejectsPathSeparators(t *testing.T) {
	t.Parallel()

	f, err := sink.NewFiles(t.TempDir())
	require.NoError(t, err)
	err = f.Save(context.Background(), result(t, "Arma.x", "a/b", 1, 1, 0))
	require.ErrorIs(t, err, sink.ErrInvalidKey)
}

func TestWriteMatrix_Integral(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, sink.WriteMatrix(&buf, matrix.NewColumn(0, 3, 7), true, false))
	require.Equal(t, "0\n3\n7\n", buf.String())
}

func TestReadMatrix_Malformed(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"ragged":       "1 2\n3\n",
		"not a number": "1 x\n",
		"bad shape":    "ARMA_MAT_TXT_FN008\nfoo\n",
		"short body":   "ARMA_MAT_TXT_FN008\n2 1\n1\n",
	} {
		_, err := sink.ReadMatrix(strings.NewReader(in))
		require.ErrorIs(t, err, sink.ErrMalformed, name)
	}
}

func TestWithFileMode_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { sink.WithFileMode(os.ModeDir | 0o755) })
}
