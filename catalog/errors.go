// SPDX-License-Identifier: MIT
// Package catalog: sentinel errors.

package catalog

import "errors"

// ErrUnknownClass is returned when a class has no generator. It is raised
// before any sample of a multi-class request is produced.
var ErrUnknownClass = errors.New("catalog: unknown parameter class")
