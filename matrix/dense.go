// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Allow empty shapes (0×n, n×0): shedding every column of a row vector is a
//     legitimate result that must be representable and persisted.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); ColMajor: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Behavior highlights:
//   - rows == 0 or cols == 0 yields a legal empty matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows < 0 or cols < 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("NewDense(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix from row-major values (copied).
//
// Errors:
//   - ErrInvalidDimensions if the shape is negative or len(values) != rows*cols.
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf(fmt.Sprintf("NewDenseFrom(%d,%d)", rows, cols), ErrInvalidDimensions)
	}
	copy(m.data, values)

	return m, nil
}

// NewColumn returns an n×1 column vector holding values (copied).
func NewColumn(values ...float64) *Dense {
	out := &Dense{r: len(values), c: 1, data: make([]float64, len(values))}
	copy(out.data, values)

	return out
}

// NewRow returns a 1×n row vector holding values (copied).
func NewRow(values ...float64) *Dense {
	out := &Dense{r: 1, c: len(values), data: make([]float64, len(values))}
	copy(out.data, values)

	return out
}

// NewScalar returns a 1×1 matrix holding v.
func NewScalar(v float64) *Dense { return &Dense{r: 1, c: 1, data: []float64{v}} }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Len returns the number of elements (rows*cols).
func (m *Dense) Len() int { return m.r * m.c }

// IsEmpty reports whether the matrix holds no elements.
func (m *Dense) IsEmpty() bool { return m.r*m.c == 0 }

// At returns the element at (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// RowMajor returns a copy of the elements in row-major order.
func (m *Dense) RowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ColMajor returns a copy of the elements in column-major order.
// This is the linear order used by Find and the persisted formats.
func (m *Dense) ColMajor() []float64 {
	out := make([]float64, 0, len(m.data))
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			out = append(out, m.data[i*m.c+j])
		}
	}

	return out
}

// Equal reports whether m and other have the same shape and bitwise-equal
// values, treating NaN as equal to NaN.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		w := other.data[k]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}

	return true
}

// String renders the matrix row by row: "[a, b]\n[c, d]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// asDense returns X as *Dense, copying through At when it is another Matrix.
func asDense(X Matrix) (*Dense, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := X.(*Dense); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}

		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
