// SPDX-License-Identifier: MIT

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

type findArgs struct {
	x    *matrix.Dense
	k    int
	mode matrix.SearchMode
}

// bindFind reads (matrix, count) and, when withMode is set, the search
// selector from the third column.
func bindFind(withMode bool) func(cases.Row) (findArgs, error) {
	return func(row cases.Row) (findArgs, error) {
		x, err := row.Matrix(0)
		if err != nil {
			return findArgs{}, err
		}
		k, err := row.Int(1)
		if err != nil {
			return findArgs{}, err
		}
		f := findArgs{x: x, k: k, mode: matrix.SearchFirst}
		if !withMode {
			return f, nil
		}
		s, err := row.Text(2)
		if err != nil {
			return findArgs{}, err
		}
		if f.mode, err = matrix.ParseSearchMode(s); err != nil {
			return findArgs{}, err
		}

		return f, nil
	}
}

func find(f findArgs) (*matrix.Dense, error) { return matrix.Find(f.x, f.k, f.mode) }

// LogicMatNumElemsSearch records the first or last k non-zero positions of
// logical matrices.
func LogicMatNumElemsSearch() *expected.Driver[findArgs] {
	return &expected.Driver[findArgs]{
		Name:    "LogicMatNumElemsSearch",
		Classes: []catalog.Class{catalog.LogicMat, catalog.NumElems, catalog.Search},
		Bind:    bindFind(true),
		Probes:  []expected.Probe[findArgs]{{Name: "Arma.find", Integral: true, Eval: find}},
	}
}

// LogicRowVecNumElems records the first k non-zero positions of logical
// row vectors.
func LogicRowVecNumElems() *expected.Driver[findArgs] {
	return &expected.Driver[findArgs]{
		Name:    "LogicRowVecNumElems",
		Classes: []catalog.Class{catalog.LogicRowVec, catalog.NumElems},
		Bind:    bindFind(false),
		Probes:  []expected.Probe[findArgs]{{Name: "Arma.find", Integral: true, Eval: find}},
	}
}
