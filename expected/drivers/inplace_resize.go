// SPDX-License-Identifier: MIT

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

type colCount struct {
	x *matrix.Dense
	n int
}

func bindColCount(row cases.Row) (colCount, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return colCount{}, err
	}
	n, err := row.Int(1)
	if err != nil {
		return colCount{}, err
	}

	return colCount{x: x, n: n}, nil
}

// mutate runs an in-place method and returns the receiver.
func mutate(op func(m *matrix.Dense, n int) error) func(colCount) (*matrix.Dense, error) {
	return func(f colCount) (*matrix.Dense, error) {
		if err := op(f.x, f.n); err != nil {
			return nil, err
		}

		return f.x, nil
	}
}

// InPlaceGenColVecNumElems reshapes column vectors to n elements.
// Col.col replaces the vector with a fresh zero vector of n elements.
func InPlaceGenColVecNumElems() *expected.Driver[colCount] {
	return &expected.Driver[colCount]{
		Name:    "InPlaceGenColVecNumElems",
		Classes: []catalog.Class{catalog.GenColVec, catalog.NumElems},
		Bind:    bindColCount,
		Probes: []expected.Probe[colCount]{
			{Name: "Col.ones", Eval: mutate(func(m *matrix.Dense, n int) error { return m.Ones(n, 1) })},
			{Name: "Col.zeros", Eval: mutate(func(m *matrix.Dense, n int) error { return m.Zeros(n, 1) })},
			{Name: "Col.resize", Eval: mutate(func(m *matrix.Dense, n int) error { return m.Resize(n, 1) })},
			{Name: "Col.setSize", Eval: mutate(func(m *matrix.Dense, n int) error { return m.SetSize(n, 1) })},
			{Name: "Col.col", Eval: func(f colCount) (*matrix.Dense, error) { return matrix.Zeros(f.n, 1) }},
		},
	}
}
