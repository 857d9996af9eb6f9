// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place structural mutation of *Dense: Fill, Ones, Zeros, Resize,
//     SetSize, InsertRows, ShedRows, ShedCols, SwapRows, SwapCols.
//   - Compound assignment into a sub-block: ApplyRows, ApplyCols, ApplySubvec.
//
// Design:
//   - On error the receiver is left untouched: every check runs before the
//     first write.
//   - Size-changing methods replace the backing buffer; callers holding a
//     RowMajor/ColMajor copy keep the old contents.

package matrix

import "fmt"

// Fill sets every element to v.
func (m *Dense) Fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Ones resizes m to rows×cols and fills it with ones.
func (m *Dense) Ones(rows, cols int) error {
	fresh, err := NewDense(rows, cols)
	if err != nil {
		return matrixErrorf("Dense.Ones", err)
	}
	fresh.Fill(1)
	*m = *fresh

	return nil
}

// Zeros resizes m to rows×cols and fills it with zeros.
func (m *Dense) Zeros(rows, cols int) error {
	fresh, err := Zeros(rows, cols)
	if err != nil {
		return err
	}
	*m = *fresh

	return nil
}

// Resize changes the shape to rows×cols, keeping the overlapping top-left
// block and zero-filling new elements.
func (m *Dense) Resize(rows, cols int) error {
	fresh, err := NewDense(rows, cols)
	if err != nil {
		return matrixErrorf("Dense.Resize", err)
	}
	for i := 0; i < min(rows, m.r); i++ {
		for j := 0; j < min(cols, m.c); j++ {
			fresh.data[i*cols+j] = m.data[i*m.c+j]
		}
	}
	*m = *fresh

	return nil
}

// SetSize changes the shape to rows×cols. When the element count is
// unchanged the column-major element sequence is kept (a reshape); otherwise
// the contents are reset to zero.
func (m *Dense) SetSize(rows, cols int) error {
	fresh, err := NewDense(rows, cols)
	if err != nil {
		return matrixErrorf("Dense.SetSize", err)
	}
	if rows*cols == m.Len() {
		seq := m.ColMajor()
		for k, v := range seq {
			i, j := k%rows, k/rows
			fresh.data[i*cols+j] = v
		}
	}
	*m = *fresh

	return nil
}

// InsertRows inserts the rows of b before row index at (at == Rows() appends).
// A 0×0 receiver simply becomes a copy of b.
// Errors: ErrOutOfRange (at), ErrDimensionMismatch (column counts differ).
func (m *Dense) InsertRows(at int, b Matrix) error {
	op := fmt.Sprintf("Dense.InsertRows(%d)", at)
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(op, err)
	}
	db, _ := asDense(b)
	if at < 0 || at > m.r {
		return matrixErrorf(op, ErrOutOfRange)
	}
	if isNull(m) {
		*m = *db.Clone()

		return nil
	}
	if db.c != m.c {
		return matrixErrorf(op, ErrDimensionMismatch)
	}

	data := make([]float64, 0, len(m.data)+len(db.data))
	data = append(data, m.data[:at*m.c]...)
	data = append(data, db.data...)
	data = append(data, m.data[at*m.c:]...)
	m.r += db.r
	m.data = data

	return nil
}

// ShedRows removes rows first..last (inclusive).
// Errors: ErrOutOfRange.
func (m *Dense) ShedRows(first, last int) error {
	s := Span{First: first, Last: last}
	if err := ValidateSpan(s, m.r); err != nil {
		return matrixErrorf("Dense.ShedRows", err)
	}
	data := make([]float64, 0, len(m.data)-s.Len()*m.c)
	data = append(data, m.data[:first*m.c]...)
	data = append(data, m.data[(last+1)*m.c:]...)
	m.r -= s.Len()
	m.data = data

	return nil
}

// ShedCols removes columns first..last (inclusive). Shedding every column
// leaves an r×0 matrix.
// Errors: ErrOutOfRange.
func (m *Dense) ShedCols(first, last int) error {
	s := Span{First: first, Last: last}
	if err := ValidateSpan(s, m.c); err != nil {
		return matrixErrorf("Dense.ShedCols", err)
	}
	cols := m.c - s.Len()
	data := make([]float64, 0, m.r*cols)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		data = append(data, row[:first]...)
		data = append(data, row[last+1:]...)
	}
	m.c = cols
	m.data = data

	return nil
}

// SwapRows exchanges rows a and b. Errors: ErrOutOfRange.
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return matrixErrorf(fmt.Sprintf("Dense.SwapRows(%d,%d)", a, b), ErrOutOfRange)
	}
	for j := 0; j < m.c; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}

	return nil
}

// SwapCols exchanges columns a and b. Errors: ErrOutOfRange.
func (m *Dense) SwapCols(a, b int) error {
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return matrixErrorf(fmt.Sprintf("Dense.SwapCols(%d,%d)", a, b), ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+a], m.data[i*m.c+b] = m.data[i*m.c+b], m.data[i*m.c+a]
	}

	return nil
}

// ApplyRows applies op between rows s.First..s.Last (all columns) and src,
// which must have the shape of that block.
// Errors: ErrOutOfRange (span), ErrDimensionMismatch (src shape).
func (m *Dense) ApplyRows(s Span, op InPlaceOp, src Matrix) error {
	if err := ValidateSpan(s, m.r); err != nil {
		return matrixErrorf("Dense.ApplyRows", err)
	}

	return m.applyBlock("Dense.ApplyRows", s.First, 0, s.Len(), m.c, op, src)
}

// ApplyCols applies op between columns s.First..s.Last (all rows) and src.
// Errors: ErrOutOfRange (span), ErrDimensionMismatch (src shape).
func (m *Dense) ApplyCols(s Span, op InPlaceOp, src Matrix) error {
	if err := ValidateSpan(s, m.c); err != nil {
		return matrixErrorf("Dense.ApplyCols", err)
	}

	return m.applyBlock("Dense.ApplyCols", 0, s.First, m.r, s.Len(), op, src)
}

// ApplySubvec applies op between elements s.First..s.Last of a vector
// receiver and src, which must have the shape of that sub-vector
// (len×1 for a column receiver, 1×len for a row receiver).
// Errors: ErrNotVector, ErrOutOfRange, ErrDimensionMismatch.
func (m *Dense) ApplySubvec(s Span, op InPlaceOp, src Matrix) error {
	const tag = "Dense.ApplySubvec"
	if err := ValidateVector(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSpan(s, m.Len()); err != nil {
		return matrixErrorf(tag, err)
	}
	if m.c == 1 {
		return m.applyBlock(tag, s.First, 0, s.Len(), 1, op, src)
	}

	return m.applyBlock(tag, 0, s.First, 1, s.Len(), op, src)
}

// applyBlock applies op over the h×w block at (r0,c0) with src of shape h×w.
func (m *Dense) applyBlock(tag string, r0, c0, h, w int, op InPlaceOp, src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(tag, err)
	}
	ds, _ := asDense(src)
	if ds.r != h || ds.c != w {
		return matrixErrorf(fmt.Sprintf("%s(block %dx%d, src %dx%d)", tag, h, w, ds.r, ds.c), ErrDimensionMismatch)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			k := (r0+i)*m.c + c0 + j
			m.data[k] = op.apply(m.data[k], ds.data[i*w+j])
		}
	}

	return nil
}
