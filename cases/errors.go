// SPDX-License-Identifier: MIT
// Package cases: sentinel errors.

package cases

import "errors"

// ErrNoColumn is returned when a Row accessor addresses a column the row
// does not have.
var ErrNoColumn = errors.New("cases: column index out of range")
