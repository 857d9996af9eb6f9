// SPDX-License-Identifier: MIT
// Package sink: sentinel errors.

package sink

import "errors"

var (
	// ErrAlreadyPersisted is returned when a (probe, case) key was saved before.
	ErrAlreadyPersisted = errors.New("sink: result already persisted")

	// ErrNotFound is returned by lookups for a key that was never saved.
	ErrNotFound = errors.New("sink: result not found")

	// ErrInvalidKey is returned when a probe or case name is empty or cannot be
	// mapped onto the storage (e.g. a path separator in a file name).
	ErrInvalidKey = errors.New("sink: invalid result key")

	// ErrClosed is returned by Save after Close.
	ErrClosed = errors.New("sink: closed")

	// ErrMalformed is returned when persisted data cannot be decoded.
	ErrMalformed = errors.New("sink: malformed persisted data")
)
