// SPDX-License-Identifier: MIT

// Package matrix: shared value types (matrix interface, spans, sizes, modes).
package matrix

import "fmt"

// Matrix is the read/write surface every operation in this package accepts.
// *Dense is the only implementation shipped; operations take a flat-buffer
// fast path when they receive one.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set assigns v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v float64) error
}

// Span is an inclusive index range [First, Last].
// Spans may be constructed with negative or inverted endpoints; such spans are
// simply never in range.
type Span struct {
	First int // first index (inclusive)
	Last  int // last index (inclusive)
}

// Len returns the number of indices covered (Last-First+1), or 0 when inverted.
func (s Span) Len() int {
	if s.Last < s.First {
		return 0
	}

	return s.Last - s.First + 1
}

// String renders the span the way sample labels spell it: span(a,b).
func (s Span) String() string { return fmt.Sprintf("span(%d,%d)", s.First, s.Last) }

// Size is a rows×cols shape specification.
type Size struct {
	Rows int // number of rows
	Cols int // number of columns
}

// String renders the size as size(r,c).
func (s Size) String() string { return fmt.Sprintf("size(%d,%d)", s.Rows, s.Cols) }

// SearchMode selects which end Find scans from.
type SearchMode int

const (
	// SearchFirst returns the first k matches in column-major order.
	SearchFirst SearchMode = iota
	// SearchLast returns the last k matches, still reported in ascending order.
	SearchLast
)

// ParseSearchMode maps "first"/"last" to a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	switch s {
	case "first":
		return SearchFirst, nil
	case "last":
		return SearchLast, nil
	default:
		return SearchFirst, matrixErrorf("ParseSearchMode("+s+")", ErrUnknownMode)
	}
}

// Norm selects the normalisation of the second-moment statistics.
//   - NormUnbiased divides by N-1 (by 1 when N == 1).
//   - NormPopulation divides by N.
type Norm int

const (
	NormUnbiased   Norm = 0
	NormPopulation Norm = 1
)

// InPlaceOp is the compound assignment applied by ApplyRows/ApplyCols/ApplySubvec.
type InPlaceOp int

const (
	OpAssign  InPlaceOp = iota // dst = src
	OpAdd                      // dst += src
	OpSub                      // dst -= src
	OpElemMul                  // dst %= src
	OpElemDiv                  // dst /= src
)

// apply evaluates the compound assignment for one element.
func (op InPlaceOp) apply(dst, src float64) float64 {
	switch op {
	case OpAdd:
		return dst + src
	case OpSub:
		return dst - src
	case OpElemMul:
		return dst * src
	case OpElemDiv:
		return dst / src
	default:
		return src
	}
}
