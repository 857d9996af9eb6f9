// SPDX-License-Identifier: MIT

// Package sample - Value, a closed tagged variant over sample payloads.
//
// Purpose:
//   - Replace opaque untyped payloads with a value whose kind is always known.
//   - Keep matrix payloads private so every read hands out an independent copy.
//
// Notes:
//   - The zero Value has KindInvalid and fails every accessor.

package sample

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armaexpected/matrix"
)

// Kind enumerates the payload variants a Value can hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt          // integer counts, indices, flags
	KindReal         // double scalars including ±Inf and machine epsilon
	KindText         // quoted selectors such as 'fro' or 'ascend'
	KindVector       // column or row vector
	KindMatrix       // general matrix
	KindSpan         // inclusive index range
	KindSize         // shape specification
	KindDistr        // distribution parameter pair
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindReal:    "real",
	KindText:    "text",
	KindVector:  "vector",
	KindMatrix:  "matrix",
	KindSpan:    "span",
	KindSize:    "size",
	KindDistr:   "distr",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Orientation distinguishes column vectors from row vectors.
type Orientation uint8

const (
	Column Orientation = iota
	Row
)

// Distr is a distribution parameter pair, e.g. distr_param(0,10).
type Distr struct {
	A, B int
}

// Value is a tagged variant; build it with the constructors below.
type Value struct {
	kind   Kind
	i      int
	f      float64
	s      string
	m      *matrix.Dense
	orient Orientation
	span   matrix.Span
	size   matrix.Size
	distr  Distr
}

// Int returns an integer value.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Real returns a double value.
func Real(v float64) Value { return Value{kind: KindReal, f: v} }

// Text returns a text selector value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// ColVec returns a column-vector value holding a copy of the given elements.
func ColVec(values ...float64) Value {
	return Value{kind: KindVector, m: matrix.NewColumn(values...), orient: Column}
}

// RowVec returns a row-vector value holding a copy of the given elements.
func RowVec(values ...float64) Value {
	return Value{kind: KindVector, m: matrix.NewRow(values...), orient: Row}
}

// Mat returns a matrix value holding a copy of m.
func Mat(m *matrix.Dense) Value { return Value{kind: KindMatrix, m: m.Clone()} }

// SpanOf returns a span value [a, b].
func SpanOf(a, b int) Value { return Value{kind: KindSpan, span: matrix.Span{First: a, Last: b}} }

// SizeOf returns a size value rows×cols.
func SizeOf(rows, cols int) Value {
	return Value{kind: KindSize, size: matrix.Size{Rows: rows, Cols: cols}}
}

// DistrOf returns a distribution parameter value.
func DistrOf(a, b int) Value { return Value{kind: KindDistr, distr: Distr{A: a, B: b}} }

// Kind reports the variant held.
func (v Value) Kind() Kind { return v.kind }

// Orientation reports the vector orientation (meaningful for KindVector only).
func (v Value) Orientation() Orientation { return v.orient }

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("want %s, have %s: %w", want, v.kind, ErrKindMismatch)
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}

	return v.i, nil
}

// AsReal returns the double payload; integers widen losslessly.
func (v Value) AsReal() (float64, error) {
	switch v.kind {
	case KindReal:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, v.mismatch(KindReal)
	}
}

// AsText returns the text payload.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", v.mismatch(KindText)
	}

	return v.s, nil
}

// AsMatrix returns a deep copy of a vector or matrix payload.
func (v Value) AsMatrix() (*matrix.Dense, error) {
	if v.kind != KindVector && v.kind != KindMatrix {
		return nil, v.mismatch(KindMatrix)
	}

	return v.m.Clone(), nil
}

// AsSpan returns the span payload.
func (v Value) AsSpan() (matrix.Span, error) {
	if v.kind != KindSpan {
		return matrix.Span{}, v.mismatch(KindSpan)
	}

	return v.span, nil
}

// AsSize returns the size payload.
func (v Value) AsSize() (matrix.Size, error) {
	if v.kind != KindSize {
		return matrix.Size{}, v.mismatch(KindSize)
	}

	return v.size, nil
}

// AsDistr returns the distribution parameter payload.
func (v Value) AsDistr() (Distr, error) {
	if v.kind != KindDistr {
		return Distr{}, v.mismatch(KindDistr)
	}

	return v.distr, nil
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := v
	if v.m != nil {
		out.m = v.m.Clone()
	}

	return out
}

// Equal reports whether two values hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindReal:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindText:
		return v.s == o.s
	case KindVector:
		return v.orient == o.orient && v.m.Equal(o.m)
	case KindMatrix:
		return v.m.Equal(o.m)
	case KindSpan:
		return v.span == o.span
	case KindSize:
		return v.size == o.size
	case KindDistr:
		return v.distr == o.distr
	default:
		return true
	}
}

// Labeled is a sample value paired with its deterministic label.
type Labeled struct {
	Label string
	Value Value
}
