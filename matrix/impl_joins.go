// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Concatenation: JoinRows/JoinHoriz place operands side by side,
//     JoinCols/JoinVert stack them vertically.
//
// Notes:
//   - The two names of each pair are the same operation; both spellings are
//     exported because reference results are keyed by either one.
//   - A 0×0 operand joins with anything and contributes nothing.

package matrix

const (
	opJoinHoriz = "JoinHoriz"
	opJoinVert  = "JoinVert"
)

// isNull reports a 0×0 matrix.
func isNull(d *Dense) bool { return d.r == 0 && d.c == 0 }

// JoinHoriz returns [a b]. Errors: ErrDimensionMismatch when row counts differ.
func JoinHoriz(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opJoinHoriz, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opJoinHoriz, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	switch {
	case isNull(da):
		return db.Clone(), nil
	case isNull(db):
		return da.Clone(), nil
	case da.r != db.r:
		return nil, matrixErrorf(opJoinHoriz, ErrDimensionMismatch)
	}

	cols := da.c + db.c
	out := &Dense{r: da.r, c: cols, data: make([]float64, da.r*cols)}
	for i := 0; i < da.r; i++ {
		copy(out.data[i*cols:], da.data[i*da.c:(i+1)*da.c])
		copy(out.data[i*cols+da.c:], db.data[i*db.c:(i+1)*db.c])
	}

	return out, nil
}

// JoinRows is JoinHoriz.
func JoinRows(a, b Matrix) (*Dense, error) { return JoinHoriz(a, b) }

// JoinVert returns [a; b]. Errors: ErrDimensionMismatch when column counts differ.
func JoinVert(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opJoinVert, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opJoinVert, err)
	}
	da, _ := asDense(a)
	db, _ := asDense(b)
	switch {
	case isNull(da):
		return db.Clone(), nil
	case isNull(db):
		return da.Clone(), nil
	case da.c != db.c:
		return nil, matrixErrorf(opJoinVert, ErrDimensionMismatch)
	}

	// row-major storage makes a vertical join a plain append
	data := make([]float64, 0, len(da.data)+len(db.data))
	data = append(data, da.data...)
	data = append(data, db.data...)

	return &Dense{r: da.r + db.r, c: da.c, data: data}, nil
}

// JoinCols is JoinVert.
func JoinCols(a, b Matrix) (*Dense, error) { return JoinVert(a, b) }
