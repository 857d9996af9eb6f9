// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Products and structured builders: Mul, Kron, Dot, NormDot, Cross, Conv, Toeplitz.
//
// Design:
//   - Reductions over vectors (Dot, NormDot) run on the column-major element
//     sequence through gonum/floats, so a 1×n and an n×1 operand pair up
//     element by element.
//   - Builders that emit vectors (Conv) pick the output orientation from their
//     first operand.
//
// Determinism & Performance:
//   - Fixed loop orders; Mul is the classic i→k→j kernel, O(n*m*p).
//   - Kron is O(ar*ac*br*bc); Conv is O(na*nb); Toeplitz O(na*nb).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opMul      = "Mul"
	opKron     = "Kron"
	opDot      = "Dot"
	opNormDot  = "NormDot"
	opCross    = "Cross"
	opConv     = "Conv"
	opToeplitz = "Toeplitz"
)

// Mul returns the matrix product a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)

	n, m, p := da.r, da.c, db.c
	out := &Dense{r: n, c: p, data: make([]float64, n*p)}
	for i := 0; i < n; i++ {
		rowOut := out.data[i*p : (i+1)*p]
		for k := 0; k < m; k++ {
			aik := da.data[i*m+k]
			rowB := db.data[k*p : (k+1)*p]
			for j := 0; j < p; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return out, nil
}

// Kron returns the Kronecker product a ⊗ b of shape (ar*br)×(ac*bc).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)

	rows, cols := da.r*db.r, da.c*db.c
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < da.r; i++ {
		for j := 0; j < da.c; j++ {
			aij := da.data[i*da.c+j]
			for p := 0; p < db.r; p++ {
				base := (i*db.r+p)*cols + j*db.c
				for q := 0; q < db.c; q++ {
					out.data[base+q] = aij * db.data[p*db.c+q]
				}
			}
		}
	}

	return out, nil
}

// Dot returns the inner product of a and b viewed as column-major sequences.
// Errors: ErrNilMatrix, ErrDimensionMismatch (element counts differ).
func Dot(a, b Matrix) (float64, error) {
	da, db, err := sameLength(opDot, a, b)
	if err != nil {
		return 0, err
	}

	return floats.Dot(da.ColMajor(), db.ColMajor()), nil
}

// NormDot returns dot(a,b) / (‖a‖₂·‖b‖₂), or 0 when the denominator is 0.
func NormDot(a, b Matrix) (float64, error) {
	da, db, err := sameLength(opNormDot, a, b)
	if err != nil {
		return 0, err
	}
	x, y := da.ColMajor(), db.ColMajor()
	denom := floats.Norm(x, 2) * floats.Norm(y, 2)
	if denom == 0 {
		return 0, nil
	}

	return floats.Dot(x, y) / denom, nil
}

// sameLength validates both operands and their element counts.
func sameLength(op string, a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	if da.Len() != db.Len() {
		return nil, nil, matrixErrorf(fmt.Sprintf("%s(len %d vs %d)", op, da.Len(), db.Len()), ErrDimensionMismatch)
	}

	return da, db, nil
}

// Cross returns the 3-D cross product a × b, shaped like a.
// Errors: ErrDimensionMismatch unless both operands hold exactly 3 elements.
func Cross(a, b Matrix) (*Dense, error) {
	da, db, err := sameLength(opCross, a, b)
	if err != nil {
		return nil, err
	}
	if da.Len() != 3 {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}
	x, y := da.ColMajor(), db.ColMajor()

	out := &Dense{r: da.r, c: da.c, data: make([]float64, 3)}
	// a 3-element vector stores the same sequence in either major order
	out.data[0] = x[1]*y[2] - x[2]*y[1]
	out.data[1] = x[2]*y[0] - x[0]*y[2]
	out.data[2] = x[0]*y[1] - x[1]*y[0]

	return out, nil
}

// Conv returns the full 1-D convolution of vectors a and b, of length
// len(a)+len(b)-1 (empty if either operand is empty).
//
// Orientation: a row vector when a has one row and several columns, a column
// vector when a has several rows; a 1×1 a defers to b's orientation.
func Conv(a, b Matrix) (*Dense, error) {
	if err := ValidateVector(a); err != nil {
		return nil, matrixErrorf(opConv, err)
	}
	if err := ValidateVector(b); err != nil {
		return nil, matrixErrorf(opConv, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)

	asRow := da.r == 1 && da.c > 1
	if da.r == 1 && da.c == 1 {
		asRow = db.r == 1 && db.c > 1
	}

	n := 0
	if !da.IsEmpty() && !db.IsEmpty() {
		n = da.Len() + db.Len() - 1
	}
	vals := make([]float64, n)
	x, y := da.ColMajor(), db.ColMajor()
	for i := range x {
		for j := range y {
			vals[i+j] += x[i] * y[j]
		}
	}

	if asRow {
		return NewRow(vals...), nil
	}

	return NewColumn(vals...), nil
}

// Toeplitz returns the len(a)×len(b) Toeplitz matrix whose first column is a
// and whose first row is b (the diagonal is taken from a).
func Toeplitz(a, b Matrix) (*Dense, error) {
	if err := ValidateVector(a); err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}
	if err := ValidateVector(b); err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	col, row := da.ColMajor(), db.ColMajor()

	out := &Dense{r: len(col), c: len(row), data: make([]float64, len(col)*len(row))}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if i >= j {
				out.data[i*out.c+j] = col[i-j]
			} else {
				out.data[i*out.c+j] = row[j-i]
			}
		}
	}

	return out, nil
}
