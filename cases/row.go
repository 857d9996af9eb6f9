// SPDX-License-Identifier: MIT
// Package: cases
//
// Row accessors. Every accessor validates the column index and the payload
// kind and returns a copy; the Row itself is never handed out for writing.

package cases

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sample"
)

// Row is one concrete test case: one labeled value per requested class.
type Row []sample.Labeled

// Label joins the column labels with ",", e.g. "Mat(eye(2,2)),1".
func (r Row) Label() string {
	parts := make([]string, len(r))
	for k, l := range r {
		parts[k] = l.Label
	}

	return strings.Join(parts, ",")
}

// column returns the value at column i.
func (r Row) column(i int) (sample.Value, error) {
	if i < 0 || i >= len(r) {
		return sample.Value{}, fmt.Errorf("column %d of %d: %w", i, len(r), ErrNoColumn)
	}

	return r[i].Value, nil
}

// at resolves column i and applies the accessor, tagging errors with the column.
func at[T any](r Row, i int, get func(sample.Value) (T, error)) (T, error) {
	var zero T
	v, err := r.column(i)
	if err != nil {
		return zero, err
	}
	out, err := get(v)
	if err != nil {
		return zero, fmt.Errorf("column %d (%s): %w", i, r[i].Label, err)
	}

	return out, nil
}

// Int returns the integer at column i.
func (r Row) Int(i int) (int, error) { return at(r, i, sample.Value.AsInt) }

// Real returns the double at column i; integer columns widen.
func (r Row) Real(i int) (float64, error) { return at(r, i, sample.Value.AsReal) }

// Text returns the text selector at column i.
func (r Row) Text(i int) (string, error) { return at(r, i, sample.Value.AsText) }

// Matrix returns a fresh copy of the vector or matrix at column i.
func (r Row) Matrix(i int) (*matrix.Dense, error) { return at(r, i, sample.Value.AsMatrix) }

// Span returns the span at column i.
func (r Row) Span(i int) (matrix.Span, error) { return at(r, i, sample.Value.AsSpan) }

// Size returns the size at column i.
func (r Row) Size(i int) (matrix.Size, error) { return at(r, i, sample.Value.AsSize) }

// Distr returns the distribution parameters at column i.
func (r Row) Distr(i int) (sample.Distr, error) { return at(r, i, sample.Value.AsDistr) }
