// SPDX-License-Identifier: MIT
// Package expected: sentinel errors.

package expected

import "errors"

var (
	// ErrMalformedRow is returned when a case row has fewer columns than the
	// driver declares classes, or cannot be bound to the driver's fields.
	ErrMalformedRow = errors.New("expected: malformed case row")

	// ErrCollaboratorFault is returned when a probe that passed its guard
	// fails to evaluate. The run stops at the first fault.
	ErrCollaboratorFault = errors.New("expected: probe evaluation failed")

	// ErrNoSink is returned when a run is started without a sink.
	ErrNoSink = errors.New("expected: no sink configured")
)
