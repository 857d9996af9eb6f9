// SPDX-License-Identifier: MIT
// Package: drivers
//
// Binary vector operations: GenRowVecGenRowVec and GenColVecGenRowVec.
// Both share one probe list; the first operand's kind picks the class and
// the "Row."/"Col." prefix of the member-operator probes.

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

// Operand is the declared kind of the first vector operand.
type Operand int

const (
	RowOperand Operand = iota // GenRowVec, "Row." probes
	ColOperand                // GenColVec, "Col." probes
)

// vecPair holds operands A and B; column reports A's declared kind.
type vecPair struct {
	a, b   *matrix.Dense
	column bool
}

func bindVecPair(column bool) func(cases.Row) (vecPair, error) {
	return func(row cases.Row) (vecPair, error) {
		a, err := row.Matrix(0)
		if err != nil {
			return vecPair{}, err
		}
		b, err := row.Matrix(1)
		if err != nil {
			return vecPair{}, err
		}

		return vecPair{a: a, b: b, column: column}, nil
	}
}

func sameShape(f vecPair) bool { return f.a.Rows() == f.b.Rows() && f.a.Cols() == f.b.Cols() }
func sameRows(f vecPair) bool { return f.a.Rows() == f.b.Rows() }
func sameCols(f vecPair) bool { return f.a.Cols() == f.b.Cols() }
func sameLen(f vecPair) bool { return f.a.Len() == f.b.Len() }
func mulShapesFit(f vecPair) bool { return f.a.Cols() == f.b.Rows() }

// binary lifts a two-operand kernel into an Eval.
func binary(op func(a, b matrix.Matrix) (*matrix.Dense, error)) func(vecPair) (*matrix.Dense, error) {
	return func(f vecPair) (*matrix.Dense, error) { return op(f.a, f.b) }
}

// scalar lifts a reduction into an Eval returning a 1×1 result.
func scalar(op func(a, b matrix.Matrix) (float64, error)) func(vecPair) (*matrix.Dense, error) {
	return func(f vecPair) (*matrix.Dense, error) {
		v, err := op(f.a, f.b)
		if err != nil {
			return nil, err
		}

		return matrix.NewScalar(v), nil
	}
}

// resizeVec resizes a vector to n elements along its declared orientation.
func resizeVec(m *matrix.Dense, n int, column bool) error {
	if column {
		return m.Resize(n, 1)
	}

	return m.Resize(1, n)
}

func cross(f vecPair) (*matrix.Dense, error) {
	if err := resizeVec(f.a, 3, f.column); err != nil {
		return nil, err
	}
	// B is always a row vector
	if err := resizeVec(f.b, 3, false); err != nil {
		return nil, err
	}

	return matrix.Cross(f.a, f.b)
}

func corPair(f vecPair) (*matrix.Dense, error) {
	return matrix.CorPair(f.a, f.b, matrix.NormUnbiased)
}

func covPair(f vecPair) (*matrix.Dense, error) {
	return matrix.CovPair(f.a, f.b, matrix.NormUnbiased)
}

// VectorPair returns GenRowVecGenRowVec (RowOperand) or GenColVecGenRowVec (ColOperand).
func VectorPair(first Operand) *expected.Driver[vecPair] {
	name, prefix, class := "GenRowVecGenRowVec", "Row.", catalog.GenRowVec
	if first == ColOperand {
		name, prefix, class = "GenColVecGenRowVec", "Col.", catalog.GenColVec
	}

	type P = expected.Probe[vecPair]

	return &expected.Driver[vecPair]{
		Name:    name,
		Classes: []catalog.Class{class, catalog.GenRowVec},
		Bind:    bindVecPair(first == ColOperand),
		Probes: []P{
			{Name: "Arma.toeplitz", Eval: binary(matrix.Toeplitz)},
			{Name: "Arma.dot", Guard: sameLen, Eval: scalar(matrix.Dot)},
			{Name: "Arma.norm_dot", Guard: sameLen, Eval: scalar(matrix.NormDot)},
			{Name: "Arma.conv", Eval: binary(matrix.Conv)},
			{Name: "Arma.cor", Guard: sameShape, Eval: corPair},
			{Name: "Arma.cov", Guard: sameShape, Eval: covPair},
			{Name: "Arma.cross", Eval: cross},
			{Name: "Arma.join_rows", Guard: sameRows, Eval: binary(matrix.JoinRows)},
			{Name: "Arma.join_horiz", Guard: sameRows, Eval: binary(matrix.JoinHoriz)},
			{Name: "Arma.join_cols", Guard: sameCols, Eval: binary(matrix.JoinCols)},
			{Name: "Arma.join_vert", Guard: sameCols, Eval: binary(matrix.JoinVert)},
			{Name: "Arma.kron", Eval: binary(matrix.Kron)},
			{Name: prefix + "plus", Guard: sameShape, Eval: binary(matrix.Add)},
			{Name: prefix + "minus", Guard: sameShape, Eval: binary(matrix.Sub)},
			{Name: prefix + "times", Guard: mulShapesFit, Eval: binary(matrix.Mul)},
			{Name: prefix + "elemTimes", Guard: sameShape, Eval: binary(matrix.ElemMul)},
			{Name: prefix + "elemDivide", Guard: sameShape, Eval: binary(matrix.ElemDiv)},
			{Name: prefix + "equals", Integral: true, Guard: sameShape, Eval: binary(matrix.Equal)},
			{Name: prefix + "nonEquals", Integral: true, Guard: sameShape, Eval: binary(matrix.NotEqual)},
			{Name: prefix + "greaterThan", Integral: true, Guard: sameShape, Eval: binary(matrix.GreaterEqual)},
			{Name: prefix + "lessThan", Integral: true, Guard: sameShape, Eval: binary(matrix.LessEqual)},
			{Name: prefix + "strictGreaterThan", Integral: true, Guard: sameShape, Eval: binary(matrix.Greater)},
			{Name: prefix + "strictLessThan", Integral: true, Guard: sameShape, Eval: binary(matrix.Less)},
		},
	}
}
