// SPDX-License-Identifier: MIT
// Package: expected
//
// Purpose:
//   - Generic guarded-probe driver over the cartesian product of classes.
//
// Design:
//   - Rows are immutable. Bind runs once per probe, so in-place probes work
//     on scratch fields and never leak into later probes.
//   - The run stops at the first malformed row, evaluation fault or sink
//     error, and between rows when ctx is cancelled.

package expected

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sink"
)

// Probe is one named operation of a driver.
type Probe[F any] struct {
	// Name is the persisted operation name, e.g. "Arma.toeplitz".
	Name string
	// Integral marks results holding integers (comparisons, indices).
	Integral bool
	// Guard reports whether the operation is defined for f; nil means always.
	Guard func(f F) bool
	// Eval computes the result. It may mutate f.
	Eval func(f F) (*matrix.Dense, error)
}

// Driver binds case rows to typed fields F and runs its probes on them.
type Driver[F any] struct {
	Name    string
	Classes []catalog.Class
	Bind    func(row cases.Row) (F, error)
	Probes  []Probe[F]
}

// Description summarizes a driver without its type parameter.
type Description struct {
	Name    string
	Classes []catalog.Class
	Probes  []string
}

// Runner is implemented by every *Driver[F].
type Runner interface {
	Describe() Description
	Run(ctx context.Context, env Env) (Stats, error)
}

// Env carries the collaborators of a run. Only Sink is required.
type Env struct {
	Sink    sink.Sink
	Catalog *catalog.Catalog // nil: catalog.New()
	Logger  *zap.Logger      // nil: no logging
	Metrics *Metrics         // nil: no metrics
}

// Stats counts what one run did.
type Stats struct {
	Cases     int
	Evaluated int
	Skipped   int
}

// Add returns the field-wise sum.
func (s Stats) Add(o Stats) Stats {
	return Stats{Cases: s.Cases + o.Cases, Evaluated: s.Evaluated + o.Evaluated, Skipped: s.Skipped + o.Skipped}
}

// Describe returns the driver's name, classes and probe names.
func (d *Driver[F]) Describe() Description {
	names := make([]string, len(d.Probes))
	for k, p := range d.Probes {
		names[k] = p.Name
	}

	return Description{Name: d.Name, Classes: append([]catalog.Class(nil), d.Classes...), Probes: names}
}

// Run expands the driver's classes with env.Catalog and processes every row.
// Errors: catalog.ErrUnknownClass before any row is processed, then as RunRows.
func (d *Driver[F]) Run(ctx context.Context, env Env) (Stats, error) {
	cat := env.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	rows, err := cat.Params(d.Classes...)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", d.Name, err)
	}

	return d.RunRows(ctx, env, rows)
}

// RunRows processes the given rows in order.
// Errors: ErrNoSink, ErrMalformedRow, ErrCollaboratorFault, sink errors and
// ctx.Err(). Stats reflect the work done before the error.
func (d *Driver[F]) RunRows(ctx context.Context, env Env, rows []cases.Row) (Stats, error) {
	var stats Stats
	if env.Sink == nil {
		return stats, fmt.Errorf("%s: %w", d.Name, ErrNoSink)
	}
	log := env.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("driver", d.Name))
	m := env.Metrics.forDriver(d.Name)

	start := time.Now()
	log.Info("driver started", zap.Int("cases", len(rows)), zap.Int("probes", len(d.Probes)))
	defer func() {
		if m.duration != nil {
			m.duration.Observe(time.Since(start).Seconds())
		}
	}()

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("%s: %w", d.Name, err)
		}
		if len(row) < len(d.Classes) {
			return stats, fmt.Errorf("%s: row %q has %d columns, want %d: %w",
				d.Name, row.Label(), len(row), len(d.Classes), ErrMalformedRow)
		}
		label := row.Label()
		log.Debug("case", zap.String("case", label))

		for _, p := range d.Probes {
			f, err := d.Bind(row)
			if err != nil {
				return stats, fmt.Errorf("%s: bind %q: %w: %w", d.Name, label, ErrMalformedRow, err)
			}
			if p.Guard != nil && !p.Guard(f) {
				stats.Skipped++
				inc(m.skipped)
				log.Debug("probe skipped", zap.String("probe", p.Name), zap.String("case", label))

				continue
			}
			out, err := p.Eval(f)
			if err != nil {
				return stats, fmt.Errorf("%s: %s(%s): %w: %w", d.Name, p.Name, label, ErrCollaboratorFault, err)
			}
			res := sink.Result{Probe: p.Name, Case: label, Values: out, Integral: p.Integral}
			if err := env.Sink.Save(ctx, res); err != nil {
				return stats, fmt.Errorf("%s: %w", d.Name, err)
			}
			stats.Evaluated++
			inc(m.evaluated)
		}
		stats.Cases++
		inc(m.cases)
	}

	log.Info("driver finished",
		zap.Int("cases", stats.Cases),
		zap.Int("evaluated", stats.Evaluated),
		zap.Int("skipped", stats.Skipped))

	return stats, nil
}
