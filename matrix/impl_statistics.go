// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Second-moment statistics with an explicit normalisation switch:
//     Var, Stddev (per column), Cov, Cor (variables in columns).
//
// Design:
//   - Observations are rows, variables are columns. A single-row operand is
//     read as one variable observed Cols() times (it is transposed first),
//     which is how vector statistics are expected to behave.
//   - NormUnbiased divides by N-1 (by 1 when N == 1); NormPopulation divides by N.
//   - Column means and variances come from gonum/stat; cross products from
//     gonum/floats on centered columns.
//
// Complexity:
//   - Var/Stddev O(r*c); Cov/Cor O(r*c²).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opVar    = "Var"
	opStddev = "Stddev"
	opCov    = "Cov"
	opCor    = "Cor"
)

// validateNorm rejects anything but NormUnbiased and NormPopulation.
func validateNorm(op string, norm Norm) error {
	if norm != NormUnbiased && norm != NormPopulation {
		return matrixErrorf(fmt.Sprintf("%s(norm=%d)", op, norm), ErrUnknownMode)
	}

	return nil
}

// normDivisor returns the divisor for n observations.
func normDivisor(n int, norm Norm) float64 {
	if norm == NormPopulation {
		return float64(n)
	}
	if n > 1 {
		return float64(n - 1)
	}

	return 1
}

// columns returns the columns of d as separate slices.
func columns(d *Dense) [][]float64 {
	out := make([][]float64, d.c)
	for j := 0; j < d.c; j++ {
		col := make([]float64, d.r)
		for i := 0; i < d.r; i++ {
			col[i] = d.data[i*d.c+j]
		}
		out[j] = col
	}

	return out
}

// centered returns the columns of d with their mean subtracted.
func centered(d *Dense) [][]float64 {
	cols := columns(d)
	for _, col := range cols {
		if len(col) > 0 {
			floats.AddConst(-stat.Mean(col, nil), col)
		}
	}

	return cols
}

// asObservations transposes a single-row operand into a column.
func asObservations(d *Dense) *Dense {
	if d.r != 1 {
		return d
	}

	return NewColumn(d.data...)
}

// Var returns the per-column variance of X as a 1×Cols row (0×Cols when X has no rows).
// A single observation has variance 0.
func Var(X Matrix, norm Norm) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opVar, err)
	}
	if err := validateNorm(opVar, norm); err != nil {
		return nil, err
	}
	d, _ := asDense(X)
	if d.r == 0 {
		return &Dense{r: 0, c: d.c}, nil
	}

	out := &Dense{r: 1, c: d.c, data: make([]float64, d.c)}
	for j, col := range columns(d) {
		switch {
		case len(col) == 1:
			out.data[j] = 0
		case norm == NormPopulation:
			out.data[j] = stat.PopVariance(col, nil)
		default:
			out.data[j] = stat.Variance(col, nil)
		}
	}

	return out, nil
}

// Stddev returns the per-column standard deviation, the square root of Var.
func Stddev(X Matrix, norm Norm) (*Dense, error) {
	v, err := Var(X, norm)
	if err != nil {
		return nil, matrixErrorf(opStddev, err)
	}
	for k, x := range v.data {
		v.data[k] = math.Sqrt(x)
	}

	return v, nil
}

// Cov returns the covariance matrix of the columns of X (Cols×Cols).
func Cov(X Matrix, norm Norm) (*Dense, error) {
	return CovPair(X, X, norm)
}

// CovPair returns the cross-covariance of the columns of a and b
// (a.Cols×b.Cols after single-row operands are read as columns).
// Errors: ErrDimensionMismatch when the observation counts differ.
func CovPair(a, b Matrix, norm Norm) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCov, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opCov, err)
	}
	if err := validateNorm(opCov, norm); err != nil {
		return nil, err
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	da, db = asObservations(da), asObservations(db)
	if da.r != db.r {
		return nil, matrixErrorf(opCov, ErrDimensionMismatch)
	}

	ca, cb := centered(da), centered(db)
	div := normDivisor(da.r, norm)
	out := &Dense{r: da.c, c: db.c, data: make([]float64, da.c*db.c)}
	for p := range ca {
		for q := range cb {
			out.data[p*db.c+q] = floats.Dot(ca[p], cb[q]) / div
		}
	}

	return out, nil
}

// Cor returns the correlation matrix of the columns of X.
func Cor(X Matrix, norm Norm) (*Dense, error) {
	return CorPair(X, X, norm)
}

// CorPair returns CovPair(a,b) scaled by the outer product of the column
// standard deviations. A single observation yields NaN (0/0), as does a
// constant column.
func CorPair(a, b Matrix, norm Norm) (*Dense, error) {
	cov, err := CovPair(a, b, norm)
	if err != nil {
		return nil, matrixErrorf(opCor, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	sa := columnScales(asObservations(da), norm)
	sb := columnScales(asObservations(db), norm)
	for p := range sa {
		for q := range sb {
			cov.data[p*cov.c+q] /= sa[p] * sb[q]
		}
	}

	return cov, nil
}

// columnScales returns sqrt(sum((x-mean)^2)/div) per column, using the same
// divisor as CovPair so the ratio is a proper correlation.
func columnScales(d *Dense, norm Norm) []float64 {
	div := normDivisor(d.r, norm)
	cols := centered(d)
	out := make([]float64, len(cols))
	for j, col := range cols {
		out[j] = math.Sqrt(floats.Dot(col, col) / div)
	}

	return out
}
