// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped across
// logs. Algorithms return these sentinels wrapped with an operation tag via
// matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative
	// or that a data slice does not fit the requested shape.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index, or a span endpoint, is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotVector signals that a vector (one row or one column) was required.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrUnknownMode is returned for an unrecognized search mode or normalisation type.
	ErrUnknownMode = errors.New("matrix: unknown mode")
)

// matrixErrorf wraps err with the operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
