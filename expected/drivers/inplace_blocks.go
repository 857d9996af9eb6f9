// SPDX-License-Identifier: MIT
// Package: drivers
//
// In-place structural and block-assignment drivers. Each probe mutates its
// own binding and persists the mutated receiver.

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

// blockOps are the compound assignments in probe order, with their probe suffix.
var blockOps = []struct {
	suffix string
	op     matrix.InPlaceOp
}{
	{"Equal", matrix.OpAssign},
	{"Plus", matrix.OpAdd},
	{"Minus", matrix.OpSub},
	{"ElemTimes", matrix.OpElemMul},
	{"ElemDivide", matrix.OpElemDiv},
}

type insertArgs struct {
	a, b *matrix.Dense
	at   int
}

func bindInsert(row cases.Row) (insertArgs, error) {
	a, err := row.Matrix(0)
	if err != nil {
		return insertArgs{}, err
	}
	at, err := row.Int(1)
	if err != nil {
		return insertArgs{}, err
	}
	b, err := row.Matrix(2)
	if err != nil {
		return insertArgs{}, err
	}

	return insertArgs{a: a, b: b, at: at}, nil
}

// InPlaceGenMatExtRowIndGenMat inserts the rows of B into A before row index
// at, including the one-past-the-end position.
func InPlaceGenMatExtRowIndGenMat() *expected.Driver[insertArgs] {
	return &expected.Driver[insertArgs]{
		Name:    "InPlaceGenMatExtRowIndGenMat",
		Classes: []catalog.Class{catalog.GenMat, catalog.ExtRowInd, catalog.GenMat},
		Bind:    bindInsert,
		Probes: []expected.Probe[insertArgs]{{
			Name: "Mat.insert_rows",
			Guard: func(f insertArgs) bool {
				return f.at <= f.a.Rows() && f.b.Cols() == f.a.Cols()
			},
			Eval: func(f insertArgs) (*matrix.Dense, error) {
				if err := f.a.InsertRows(f.at, f.b); err != nil {
					return nil, err
				}

				return f.a, nil
			},
		}},
	}
}

// spanArgs is a receiver, a span over it and a source vector.
type spanArgs struct {
	x, src *matrix.Dense
	span   matrix.Span
}

func bindSpanArgs(row cases.Row) (spanArgs, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return spanArgs{}, err
	}
	s, err := row.Span(1)
	if err != nil {
		return spanArgs{}, err
	}
	src, err := row.Matrix(2)
	if err != nil {
		return spanArgs{}, err
	}

	return spanArgs{x: x, span: s, src: src}, nil
}

// applyWith builds one probe per compound assignment, all sharing guard.
func applyWith(
	prefix string,
	guard func(spanArgs) bool,
	apply func(m *matrix.Dense, s matrix.Span, op matrix.InPlaceOp, src matrix.Matrix) error,
) []expected.Probe[spanArgs] {
	out := make([]expected.Probe[spanArgs], len(blockOps))
	for k, b := range blockOps {
		op := b.op
		out[k] = expected.Probe[spanArgs]{
			Name:  prefix + b.suffix,
			Guard: guard,
			Eval: func(f spanArgs) (*matrix.Dense, error) {
				if err := apply(f.x, f.span, op, f.src); err != nil {
					return nil, err
				}

				return f.x, nil
			},
		}
	}

	return out
}

// InPlaceGenMatRowIndRangeGenRowVec applies a row vector to a single row of
// a matrix selected by a one-row span. The span also drives swap_rows (its
// two bounds) and shed_rows; those ignore the row vector.
func InPlaceGenMatRowIndRangeGenRowVec() *expected.Driver[spanArgs] {
	inRows := func(f spanArgs) bool { return matrix.ValidateSpan(f.span, f.x.Rows()) == nil }
	guard := func(f spanArgs) bool {
		return inRows(f) && f.src.Cols() == f.x.Cols() && f.span.Len() == 1
	}

	probes := applyWith("Mat.rows", guard, (*matrix.Dense).ApplyRows)
	probes = append(probes,
		expected.Probe[spanArgs]{
			Name:  "Mat.swap_rows",
			Guard: inRows,
			Eval: func(f spanArgs) (*matrix.Dense, error) {
				if err := f.x.SwapRows(f.span.First, f.span.Last); err != nil {
					return nil, err
				}

				return f.x, nil
			},
		},
		expected.Probe[spanArgs]{
			Name:  "Mat.shed_rows",
			Guard: inRows,
			Eval: func(f spanArgs) (*matrix.Dense, error) {
				if err := f.x.ShedRows(f.span.First, f.span.Last); err != nil {
					return nil, err
				}

				return f.x, nil
			},
		},
	)

	return &expected.Driver[spanArgs]{
		Name:    "InPlaceGenMatRowIndRangeGenRowVec",
		Classes: []catalog.Class{catalog.GenMat, catalog.RowIndRange, catalog.GenRowVec},
		Bind:    bindSpanArgs,
		Probes:  probes,
	}
}

// InPlaceGenMatColIndRangeGenRowVec applies a row vector to the columns of a
// single-row matrix selected by a span of matching width.
func InPlaceGenMatColIndRangeGenRowVec() *expected.Driver[spanArgs] {
	guard := func(f spanArgs) bool {
		return matrix.ValidateSpan(f.span, f.x.Cols()) == nil &&
			f.src.Rows() == f.x.Rows() &&
			f.src.Cols() == f.span.Len()
	}

	return &expected.Driver[spanArgs]{
		Name:    "InPlaceGenMatColIndRangeGenRowVec",
		Classes: []catalog.Class{catalog.GenMat, catalog.ColIndRange, catalog.GenRowVec},
		Bind:    bindSpanArgs,
		Probes:  applyWith("Mat.cols", guard, (*matrix.Dense).ApplyCols),
	}
}

// InPlaceGenColVecElemIndRangeGenRowVec applies a row vector to a span of a
// column vector, through rows(a,b), subvec(a,b) and subvec(span).
func InPlaceGenColVecElemIndRangeGenRowVec() *expected.Driver[spanArgs] {
	guard := func(f spanArgs) bool {
		return matrix.InRangeElemSpan(f.x, f.span) &&
			f.src.Cols() == f.x.Cols() &&
			f.src.Rows() == f.span.Len()
	}

	probes := applyWith("Col.rows", guard, (*matrix.Dense).ApplyRows)
	probes = append(probes, applyWith("Col.subvec", guard, (*matrix.Dense).ApplySubvec)...)
	probes = append(probes, applyWith("Col.subvecSpan", guard, (*matrix.Dense).ApplySubvec)...)

	return &expected.Driver[spanArgs]{
		Name:    "InPlaceGenColVecElemIndRangeGenRowVec",
		Classes: []catalog.Class{catalog.GenColVec, catalog.ElemIndRange, catalog.GenRowVec},
		Bind:    bindSpanArgs,
		Probes:  probes,
	}
}

type rowSpan struct {
	x    *matrix.Dense
	span matrix.Span
}

func bindRowSpan(row cases.Row) (rowSpan, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return rowSpan{}, err
	}
	s, err := row.Span(1)
	if err != nil {
		return rowSpan{}, err
	}

	return rowSpan{x: x, span: s}, nil
}

// InPlaceGenRowVecElemIndRange swaps or sheds the columns named by a span.
func InPlaceGenRowVecElemIndRange() *expected.Driver[rowSpan] {
	guard := func(f rowSpan) bool { return matrix.InRangeElemSpan(f.x, f.span) }

	return &expected.Driver[rowSpan]{
		Name:    "InPlaceGenRowVecElemIndRange",
		Classes: []catalog.Class{catalog.GenRowVec, catalog.ElemIndRange},
		Bind:    bindRowSpan,
		Probes: []expected.Probe[rowSpan]{
			{
				Name:  "Row.swap_cols",
				Guard: guard,
				Eval: func(f rowSpan) (*matrix.Dense, error) {
					if err := f.x.SwapCols(f.span.First, f.span.Last); err != nil {
						return nil, err
					}

					return f.x, nil
				},
			},
			{
				Name:  "Row.shed_cols",
				Guard: guard,
				Eval: func(f rowSpan) (*matrix.Dense, error) {
					if err := f.x.ShedCols(f.span.First, f.span.Last); err != nil {
						return nil, err
					}

					return f.x, nil
				},
			},
		},
	}
}
