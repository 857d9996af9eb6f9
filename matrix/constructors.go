// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic r×c generators used by the parameter catalog:
//     zeros, ones, identity, Hilbert, shifted Hilbert and KMS matrices.
//
// Determinism & Performance:
//   - Closed-form entries, fixed i→j loops, O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// generate allocates an r×c matrix and fills it with f(i, j).
func generate(op string, rows, cols int, f func(i, j int) float64) (*Dense, error) {
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", op, rows, cols), err)
	}
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			out.data[base+j] = f(i, j)
		}
	}

	return out, nil
}

// Zeros returns an r×c matrix of zeros.
func Zeros(rows, cols int) (*Dense, error) {
	return generate("Zeros", rows, cols, func(int, int) float64 { return 0 })
}

// Ones returns an r×c matrix of ones.
func Ones(rows, cols int) (*Dense, error) {
	return generate("Ones", rows, cols, func(int, int) float64 { return 1 })
}

// Eye returns the r×c identity: ones on the main diagonal, zeros elsewhere.
// Non-square shapes are allowed.
func Eye(rows, cols int) (*Dense, error) {
	return generate("Eye", rows, cols, func(i, j int) float64 {
		if i == j {
			return 1
		}

		return 0
	})
}

// Hilbert returns the r×c Hilbert matrix H[i,j] = 1/(i+j+1).
// Square Hilbert matrices are symmetric positive-definite.
func Hilbert(rows, cols int) (*Dense, error) {
	return generate("Hilbert", rows, cols, func(i, j int) float64 {
		return 1.0 / float64(i+j+1)
	})
}

// HilbertSub returns the Hilbert matrix shifted by -2/(r+c+2), giving a
// deterministic mix of positive and negative entries (a "logic" sample whose
// non-zero pattern is not trivially all-true).
func HilbertSub(rows, cols int) (*Dense, error) {
	shift := 2.0 / float64(rows+cols+2)

	return generate("HilbertSub", rows, cols, func(i, j int) float64 {
		return 1.0/float64(i+j+1) - shift
	})
}

// KMS returns the r×c Kac-Murdock-Szegő style matrix K[i,j] = 2^|i-j|.
// Square KMS matrices of this form are invertible.
func KMS(rows, cols int) (*Dense, error) {
	return generate("KMS", rows, cols, func(i, j int) float64 {
		d := i - j
		if d < 0 {
			d = -d
		}

		return math.Pow(2, float64(d))
	})
}
