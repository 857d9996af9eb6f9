// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic (Add, Sub, ElemMul, ElemDiv) and relational
//     operators (Equal ... Less) over same-shape operands.
//   - Relational results are 0/1 matrices; callers persist them as integral data.
//
// Design:
//   - Every public op is a thin wrapper around one private kernel, ewZip, that
//     validates, allocates the output and walks the flat buffers once.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop order; O(r*c) time and space.
//   - IEEE semantics are kept: x/0 = ±Inf, Inf-Inf = NaN, NaN compares false.

package matrix

const (
	opAdd          = "Add"
	opSub          = "Sub"
	opElemMul      = "ElemMul"
	opElemDiv      = "ElemDiv"
	opEqual        = "Equal"
	opNotEqual     = "NotEqual"
	opGreaterEqual = "GreaterEqual"
	opLessEqual    = "LessEqual"
	opGreater      = "Greater"
	opLess         = "Less"
)

// ewZip computes out[k] = f(a[k], b[k]) for same-shape operands.
func ewZip(op string, a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for k := range da.data {
		out.data[k] = f(da.data[k], db.data[k])
	}

	return out, nil
}

// indicator converts a predicate result to 1 or 0.
func indicator(ok bool) float64 {
	if ok {
		return 1
	}

	return 0
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) {
	return ewZip(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	return ewZip(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// ElemMul returns the Hadamard product a ∘ b.
func ElemMul(a, b Matrix) (*Dense, error) {
	return ewZip(opElemMul, a, b, func(x, y float64) float64 { return x * y })
}

// ElemDiv returns the element-wise quotient a / b.
func ElemDiv(a, b Matrix) (*Dense, error) {
	return ewZip(opElemDiv, a, b, func(x, y float64) float64 { return x / y })
}

// Equal returns 1 where a == b, else 0.
func Equal(a, b Matrix) (*Dense, error) {
	return ewZip(opEqual, a, b, func(x, y float64) float64 { return indicator(x == y) })
}

// NotEqual returns 1 where a != b, else 0.
func NotEqual(a, b Matrix) (*Dense, error) {
	return ewZip(opNotEqual, a, b, func(x, y float64) float64 { return indicator(x != y) })
}

// GreaterEqual returns 1 where a >= b, else 0.
func GreaterEqual(a, b Matrix) (*Dense, error) {
	return ewZip(opGreaterEqual, a, b, func(x, y float64) float64 { return indicator(x >= y) })
}

// LessEqual returns 1 where a <= b, else 0.
func LessEqual(a, b Matrix) (*Dense, error) {
	return ewZip(opLessEqual, a, b, func(x, y float64) float64 { return indicator(x <= y) })
}

// Greater returns 1 where a > b, else 0.
func Greater(a, b Matrix) (*Dense, error) {
	return ewZip(opGreater, a, b, func(x, y float64) float64 { return indicator(x > y) })
}

// Less returns 1 where a < b, else 0.
func Less(a, b Matrix) (*Dense, error) {
	return ewZip(opLess, a, b, func(x, y float64) float64 { return indicator(x < y) })
}
