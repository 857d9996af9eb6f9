// Package expected runs expected-case drivers.
//
// A Driver names the parameter classes it is parameterised over, a Bind
// function that turns one case row into typed fields, and an ordered list of
// probes. For every row of the cartesian product of its classes, the driver
// runs each probe in turn:
//
//	bind a fresh F from the row -> guard -> (skip | eval -> save)
//
// A probe whose guard is false is skipped silently; it is counted and
// debug-logged but nothing is persisted. A probe that passes its guard is
// evaluated and its result saved under (probe name, case label).
//
// Because every probe receives its own binding of the immutable row,
// a probe that mutates its fields in place (resize, insert_rows, swap...)
// cannot influence the probes after it.
//
//	d := &expected.Driver[pair]{
//		Name:    "GenRowVecGenRowVec",
//		Classes: []catalog.Class{catalog.GenRowVec, catalog.GenRowVec},
//		Bind:    bindPair,
//		Probes:  []expected.Probe[pair]{{Name: "Row.plus", Guard: sameShape, Eval: plus}},
//	}
//	stats, err := d.Run(ctx, expected.Env{Sink: sink.NewMemory()})
package expected
