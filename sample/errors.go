// SPDX-License-Identifier: MIT
// Package sample: sentinel errors.

package sample

import "errors"

// ErrKindMismatch is returned when a Value accessor is called for a kind the
// value does not hold (e.g. AsSpan on an integer sample).
var ErrKindMismatch = errors.New("sample: value kind mismatch")
