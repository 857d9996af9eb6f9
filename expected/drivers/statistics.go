// SPDX-License-Identifier: MIT

package drivers

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/matrix"
)

type matNorm struct {
	x    *matrix.Dense
	norm matrix.Norm
}

func bindMatNorm(row cases.Row) (matNorm, error) {
	x, err := row.Matrix(0)
	if err != nil {
		return matNorm{}, err
	}
	n, err := row.Int(1)
	if err != nil {
		return matNorm{}, err
	}

	return matNorm{x: x, norm: matrix.Norm(n)}, nil
}

func withNorm(op func(matrix.Matrix, matrix.Norm) (*matrix.Dense, error)) func(matNorm) (*matrix.Dense, error) {
	return func(f matNorm) (*matrix.Dense, error) { return op(f.x, f.norm) }
}

// GenMatNormal computes the second-moment statistics of general matrices
// under both normalisations.
func GenMatNormal() *expected.Driver[matNorm] {
	return &expected.Driver[matNorm]{
		Name:    "GenMatNormal",
		Classes: []catalog.Class{catalog.GenMat, catalog.Normal},
		Bind:    bindMatNorm,
		Probes: []expected.Probe[matNorm]{
			{Name: "Arma.stddev", Eval: withNorm(matrix.Stddev)},
			{Name: "Arma.var", Eval: withNorm(matrix.Var)},
			{Name: "Arma.cor", Eval: withNorm(matrix.Cor)},
			{Name: "Arma.cov", Eval: withNorm(matrix.Cov)},
		},
	}
}
