// SPDX-License-Identifier: MIT

package sink

import (
	"context"
	"fmt"

	"github.com/katalvlaran/armaexpected/matrix"
)

// Result is one persisted expected output.
type Result struct {
	Probe    string        // operation name, e.g. "Row.plus"
	Case     string        // case label, the row's column labels joined by ","
	Values   *matrix.Dense // numeric array
	Integral bool          // values are integers (comparisons, indices)
}

// Sink persists results, write-once per (Probe, Case).
type Sink interface {
	Save(ctx context.Context, r Result) error
	Close() error
}

// Key is the identity of a result.
type Key struct {
	Probe string
	Case  string
}

// Key returns the (Probe, Case) pair.
func (r Result) Key() Key { return Key{Probe: r.Probe, Case: r.Case} }

// String renders the key the way result files are named: probe(case).
func (k Key) String() string { return k.Probe + "(" + k.Case + ")" }

// validate rejects results that cannot be keyed or carry no array.
func validate(op string, r Result) error {
	if r.Probe == "" {
		return fmt.Errorf("%s: empty probe name: %w", op, ErrInvalidKey)
	}
	if err := matrix.ValidateNotNil(r.Values); err != nil {
		return fmt.Errorf("%s %s: %w", op, r.Key(), err)
	}

	return nil
}
