// SPDX-License-Identifier: MIT

package catalog_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/sample"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, class catalog.Class, opts ...catalog.Option) []sample.Labeled {
	t.Helper()
	seq, err := catalog.Generate(class, opts...)
	require.NoError(t, err)

	return seq
}

func find(t *testing.T, seq []sample.Labeled, label string) sample.Value {
	t.Helper()
	for _, l := range seq {
		if l.Label == label {
			return l.Value
		}
	}
	t.Fatalf("label %q not found in %v", label, sample.Labels(seq))

	return sample.Value{}
}

func TestGenerate_ExtRowIndFollowsRowCounts(t *testing.T) {
	t.Parallel()

	seq := generate(t, catalog.ExtRowInd, catalog.WithNumRows(3))
	require.Equal(t, []string{"0", "1", "2", "3"}, sample.Labels(seq))
	for k, l := range seq {
		v, err := l.Value.AsInt()
		require.NoError(t, err)
		require.Equal(t, k, v)
	}
}

func TestGenerate_IndicesUniteLastIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"0", "1", "4"}, sample.Labels(generate(t, catalog.RowInd)))
	require.Equal(t, []string{"0", "1", "24"}, sample.Labels(generate(t, catalog.ElemInd)))
	require.Equal(t, []string{"0", "1", "2", "24", "25", "4", "5"},
		sample.Labels(generate(t, catalog.ExtElemInd, catalog.WithNumElems(1, 2, 25, 5))))
}

func TestGenerate_Spans(t *testing.T) {
	t.Parallel()

	want := []string{
		"span(-1,1)", "span(0,0)", "span(0,1)", "span(0,2)", "span(0,24)",
		"span(1,1)", "span(11,13)", "span(24,24)",
	}
	seq := generate(t, catalog.ElemIndRange)
	require.Equal(t, want, sample.Labels(seq))

	s, err := find(t, seq, "span(11,13)").AsSpan()
	require.NoError(t, err)
	require.Equal(t, 11, s.First)
	require.Equal(t, 13, s.Last)
}

func TestGenerate_UnknownClass(t *testing.T) {
	t.Parallel()

	for _, c := range []catalog.Class{catalog.Text, catalog.Random, catalog.Invalid, catalog.Class(999)} {
		_, err := catalog.Generate(c)
		require.ErrorIs(t, err, catalog.ErrUnknownClass, c.String())
		require.False(t, c.Supported())
	}
}

func TestGenerate_EveryClassSortedAndUnique(t *testing.T) {
	t.Parallel()

	for _, c := range catalog.Classes() {
		if !c.Supported() {
			continue
		}
		seq := generate(t, c)
		require.NotEmpty(t, seq, c.String())
		labels := sample.Labels(seq)
		switch c {
		case catalog.NumElems, catalog.NumRows, catalog.NumCols, catalog.Normal, catalog.Dim,
			catalog.Exp, catalog.MatNormInt, catalog.VecNormInt, catalog.TriDouble, catalog.SinValTol,
			catalog.MatSize, catalog.ColVecSize, catalog.RowVecSize, catalog.GenMat, catalog.InvMat,
			catalog.SymPDMat, catalog.LogicMat, catalog.OOMat, catalog.GenColVec, catalog.GenRowVec,
			catalog.MonColVec, catalog.MonRowVec, catalog.LogicColVec, catalog.LogicRowVec,
			catalog.OOColVec, catalog.OORowVec, catalog.MatNormString, catalog.VecNormString,
			catalog.Sort, catalog.Search, catalog.SinValSel, catalog.DistrParam, catalog.Fill:
			// base classes keep declaration order
		default:
			require.IsIncreasing(t, labels, c.String())
		}
		seen := make(map[string]bool, len(labels))
		for _, l := range labels {
			require.False(t, seen[l], "%s: duplicate label %q", c, l)
			seen[l] = true
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	for _, c := range []catalog.Class{catalog.GenMatVec, catalog.ElemInds, catalog.SquMat, catalog.GenDouble} {
		a, b := generate(t, c), generate(t, c)
		require.Equal(t, sample.Labels(a), sample.Labels(b))
		for k := range a {
			require.True(t, a[k].Value.Equal(b[k].Value), "%s[%d]", c, k)
		}
	}
}

func TestGenerate_ResultsAreFreshCopies(t *testing.T) {
	t.Parallel()

	a := generate(t, catalog.MonColVec)
	m, err := a[0].Value.AsMatrix()
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 42))

	b := generate(t, catalog.MonColVec)
	again, err := b[0].Value.AsMatrix()
	require.NoError(t, err)
	v, err := again.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestGenerate_MatrixClasses(t *testing.T) {
	t.Parallel()

	require.Len(t, generate(t, catalog.GenMat), 3*3*5)
	require.Len(t, generate(t, catalog.InvMat), 3*2)
	// eye is shared by InvMat and SymMat
	require.Len(t, generate(t, catalog.SquMat), 3*5)

	kms, err := find(t, generate(t, catalog.GenMat), "Mat(kms(2,5))").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, 2, kms.Rows())
	require.Equal(t, 5, kms.Cols())
	v, err := kms.At(0, 4)
	require.NoError(t, err)
	require.Equal(t, 16.0, v)

	for _, l := range generate(t, catalog.SymPDMat) {
		m, err := l.Value.AsMatrix()
		require.NoError(t, err)
		require.Equal(t, m.Rows(), m.Cols(), l.Label)
	}
}

func TestGenerate_VectorClasses(t *testing.T) {
	t.Parallel()

	col := find(t, generate(t, catalog.GenColVec), "Col(kms(5,2).col(0))")
	require.Equal(t, sample.Column, col.Orientation())
	m, err := col.AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4, 8, 16}, m.ColMajor())

	row := find(t, generate(t, catalog.GenRowVec), "Row(hilbert(2,5).row(0))")
	require.Equal(t, sample.Row, row.Orientation())
	m, err = row.AsMatrix()
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.InDelta(t, 0.2, m.RowMajor()[4], 1e-15)

	mon, err := find(t, generate(t, catalog.MonColVec), "Col({-inf,0,inf})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{math.Inf(-1), 0, math.Inf(1)}, mon.ColMajor())
}

func TestGenerate_OneElementContainers(t *testing.T) {
	t.Parallel()

	doubles := generate(t, catalog.GenDouble)
	oo := generate(t, catalog.OOMat)
	require.Len(t, oo, len(doubles))

	m, err := find(t, oo, "Mat({pi})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{math.Pi}, m.RowMajor())

	require.Len(t, generate(t, catalog.OOVec), 2*len(doubles))
}

func TestGenerate_IndexLists(t *testing.T) {
	t.Parallel()

	seq := generate(t, catalog.ElemInds)
	m, err := find(t, seq, "Col({0,n,1,n-1,...}|n=25)").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, 25, m.Rows())
	got := m.ColMajor()
	require.Equal(t, []float64{0, 24, 2, 22, 4}, got[:5])

	asc, err := find(t, seq, "Row({0,1,...,n}|n=2)").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, asc.RowMajor())

	window, err := find(t, seq, "Col({11,12,13})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, 3, window.Rows())
	require.Equal(t, []float64{11, 12, 13}, window.ColMajor())

	ones, err := find(t, seq, "Row({1,1,1,1,1})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, 1, ones.Rows())
	require.Equal(t, []float64{1, 1, 1, 1, 1}, ones.RowMajor())

	last, err := find(t, seq, "Col({24})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{24}, last.ColMajor())
	zero, err := find(t, seq, "Row({0})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{0}, zero.RowMajor())
}

func TestGenerate_IndexListsPerCountClass(t *testing.T) {
	t.Parallel()

	cat := catalog.New(catalog.WithNumRows(4), catalog.WithNumCols(3))
	rows, err := cat.Generate(catalog.RowInds)
	require.NoError(t, err)
	mid, err := find(t, rows, "Col({1,2,3})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, mid.ColMajor())

	cols, err := cat.Generate(catalog.ColInds)
	require.NoError(t, err)
	last, err := find(t, cols, "Row({2})").AsMatrix()
	require.NoError(t, err)
	require.Equal(t, []float64{2}, last.RowMajor())
}

func TestGenerate_Selectors(t *testing.T) {
	t.Parallel()

	seq := generate(t, catalog.VecNormString)
	require.Equal(t, []string{"'inf'", "'-inf'", "'fro'"}, sample.Labels(seq))
	s, err := seq[2].Value.AsText()
	require.NoError(t, err)
	require.Equal(t, "fro", s)

	d, err := find(t, generate(t, catalog.DistrParam), "distr_param(-5,6)").AsDistr()
	require.NoError(t, err)
	require.Equal(t, sample.Distr{A: -5, B: 6}, d)
}

func TestOptions_PanicOnBadCounts(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { catalog.WithNumRows() })
	require.Panics(t, func() { catalog.WithNumCols(2, 0) })
	require.Panics(t, func() { catalog.WithNumElems(-1) })
	require.NotPanics(t, func() { catalog.WithNumElems(7) })
}

func TestParseClass(t *testing.T) {
	t.Parallel()

	for _, c := range catalog.Classes() {
		got, err := catalog.ParseClass(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	_, err := catalog.ParseClass("NoSuchClass")
	require.ErrorIs(t, err, catalog.ErrUnknownClass)
}

func TestParams(t *testing.T) {
	t.Parallel()

	rows, err := catalog.Params([]catalog.Class{catalog.Normal, catalog.Search})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "0,'first'", rows[0].Label())
	require.Equal(t, "1,'last'", rows[3].Label())

	_, err = catalog.Params([]catalog.Class{catalog.GenMat, catalog.FilePath})
	require.ErrorIs(t, err, catalog.ErrUnknownClass)
}
