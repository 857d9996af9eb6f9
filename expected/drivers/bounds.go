// SPDX-License-Identifier: MIT

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

// indicator is [1] when ok, [0] otherwise.
func indicator(ok bool, column bool) *matrix.Dense {
	v := 0.0
	if ok {
		v = 1
	}
	if column {
		return matrix.NewColumn(v)
	}

	return matrix.NewScalar(v)
}

type vecAt struct {
	x        *matrix.Dense
	row, col int
}

func bindVecAt(row cases.Row) (vecAt, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return vecAt{}, err
	}
	i, err := row.Int(1)
	if err != nil {
		return vecAt{}, err
	}
	j, err := row.Int(2)
	if err != nil {
		return vecAt{}, err
	}

	return vecAt{x: x, row: i, col: j}, nil
}

// GenColVecRowIndColInd records whether (row, col) addresses an element of
// a column vector.
func GenColVecRowIndColInd() *expected.Driver[vecAt] {
	return &expected.Driver[vecAt]{
		Name:    "GenColVecRowIndColInd",
		Classes: []catalog.Class{catalog.GenColVec, catalog.RowInd, catalog.ColInd},
		Bind:    bindVecAt,
		Probes: []expected.Probe[vecAt]{{
			Name: "Col.in_range",
			Eval: func(f vecAt) (*matrix.Dense, error) {
				return indicator(matrix.InRange(f.x, f.row, f.col), true), nil
			},
		}},
	}
}

type vecSpans struct {
	x          *matrix.Dense
	rows, cols matrix.Span
}

func bindVecSpans(row cases.Row) (vecSpans, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return vecSpans{}, err
	}
	rs, err := row.Span(1)
	if err != nil {
		return vecSpans{}, err
	}
	cs, err := row.Span(2)
	if err != nil {
		return vecSpans{}, err
	}

	return vecSpans{x: x, rows: rs, cols: cs}, nil
}

// GenRowVecRowIndRangeColIndRange records whether a row and a column span
// both lie within a row vector.
func GenRowVecRowIndRangeColIndRange() *expected.Driver[vecSpans] {
	return &expected.Driver[vecSpans]{
		Name:    "GenRowVecRowIndRangeColIndRange",
		Classes: []catalog.Class{catalog.GenRowVec, catalog.RowIndRange, catalog.ColIndRange},
		Bind:    bindVecSpans,
		Probes: []expected.Probe[vecSpans]{{
			Name: "Row.in_range",
			Eval: func(f vecSpans) (*matrix.Dense, error) {
				return indicator(matrix.InRangeSpan(f.x, f.rows, f.cols), false), nil
			},
		}},
	}
}
