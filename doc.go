// Package armaexpected generates the expected outputs of a linear-algebra
// test suite.
//
// A catalog of parameter classes (counts, indices, spans, sizes, scalars,
// selectors, matrices and vectors) yields deterministic, labeled sample
// values. A driver names an ordered list of classes; their Cartesian product
// is the set of test cases. For each case every probe is guarded against
// invalid inputs, evaluated on a fresh copy of the operands and persisted
// under the pair (probe name, case label).
//
// Layout:
//
//	matrix/           dense float64 matrices and the operations probes evaluate
//	sample/           labeled values and the order-preserving Union
//	catalog/          parameter classes and their generators
//	cases/            Cartesian product and typed row access
//	sink/             write-once result stores: memory, text files, Badger
//	expected/         the generic driver, run statistics and Prometheus metrics
//	expected/drivers/ the concrete drivers and their registry
//	config/           YAML configuration with validation
//	cmd/armaexpected/ the command-line front end
//
// Quick start:
//
//	armaexpected run --output files --path expected
package armaexpected
