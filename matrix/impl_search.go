// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Find: linear indices of non-zero entries, and the bounds predicates
//     InRange / InRangeSpan / InRangeElemSpan.

package matrix

import "fmt"

// Find returns the column-major linear indices of the non-zero entries of X
// as a column vector.
//
//   - k == 0 returns every match; otherwise at most k matches.
//   - SearchFirst keeps the first k matches, SearchLast the last k; both are
//     reported in ascending index order.
//   - No match yields an empty 0×1 vector.
//
// Errors: ErrNilMatrix, ErrOutOfRange for k < 0.
func Find(X Matrix, k int, mode SearchMode) (*Dense, error) {
	op := fmt.Sprintf("Find(k=%d)", k)
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if k < 0 {
		return nil, matrixErrorf(op, ErrOutOfRange)
	}
	d, _ := asDense(X)

	var hits []float64
	for idx, v := range d.ColMajor() {
		if v != 0 {
			hits = append(hits, float64(idx))
		}
	}
	if k > 0 && len(hits) > k {
		if mode == SearchLast {
			hits = hits[len(hits)-k:]
		} else {
			hits = hits[:k]
		}
	}

	return NewColumn(hits...), nil
}

// InRange reports whether (row, col) addresses an element of X.
func InRange(X Matrix, row, col int) bool {
	return row >= 0 && row < X.Rows() && col >= 0 && col < X.Cols()
}

// InRangeSpan reports whether both spans lie within the rows and columns of X.
func InRangeSpan(X Matrix, rows, cols Span) bool {
	return spanWithin(rows, X.Rows()) && spanWithin(cols, X.Cols())
}

// InRangeElemSpan reports whether span s lies within the elements of X.
func InRangeElemSpan(X Matrix, s Span) bool {
	return spanWithin(s, X.Rows()*X.Cols())
}

// spanWithin reports 0 <= First <= Last < n.
func spanWithin(s Span, n int) bool {
	return s.First >= 0 && s.First <= s.Last && s.Last < n
}
