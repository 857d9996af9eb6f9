// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/vector checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators return errors already tagged with their own name; kernels add
//    their operation tag on top, so messages read "Add: ValidateSameShape: ...".

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil (including typed-nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary runs NotNil on both operands then SameShape.
func ValidateBinary(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector ensures m has exactly one row or one column.
// An empty 1×0 or 0×1 matrix still counts as a vector.
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != 1 && m.Cols() != 1 {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateSpan ensures 0 <= s.First <= s.Last < n.
func ValidateSpan(s Span, n int) error {
	if !spanWithin(s, n) {
		return validatorErrorf(fmt.Sprintf("ValidateSpan(%s,%d)", s, n), ErrOutOfRange)
	}

	return nil
}
