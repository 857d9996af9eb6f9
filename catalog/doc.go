// Package catalog builds the representative samples of every parameter class.
//
// A Class names an abstract kind of argument a linear-algebra operation can
// take (a general matrix, a row vector, an index span, a norm selector...).
// Generate maps a Class to its deterministic, labeled sample sequence:
//
//	rows, err := catalog.Generate(catalog.GenRowVec)
//
// Base classes are emitted in declaration order; derived classes (index
// classes, symmetric matrices, vector unions...) are built with sample.Union
// and are therefore sorted by label. Classes without a generator (I/O and
// random classes) fail with ErrUnknownClass.
//
// The count samples that drive every shape-dependent class are configurable:
//
//	cat := catalog.New(catalog.WithNumRows(3))
//	ext, _ := cat.Generate(catalog.ExtRowInd) // 0, 1, 2, 3
//
// Edge values are included on purpose: machine epsilon, ±Inf, pi and Euler's
// number among the doubles, negative or out-of-range endpoints among spans.
package catalog
