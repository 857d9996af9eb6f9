// Package sample defines Labeled values, the unit every parameter class is
// made of, and Union, the ordered-set merge used to build derived classes.
//
// A Labeled pairs a human-readable label (e.g. "Row(kms(1,5).row(0))",
// "span(0,4)", "'fro'") with a Value. Labels are a deterministic function of
// the content, so two generators producing the same sample agree on the label
// and Union collapses them.
//
// Value is a closed tagged variant: integers, reals, text selectors, column
// or row vectors, matrices, spans, sizes and distribution parameters. Its
// accessors return deep copies of matrix payloads, so a caller can mutate what
// it receives without affecting the catalog or other callers.
package sample
