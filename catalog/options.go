// SPDX-License-Identifier: MIT
// Package: catalog
//
// options.go: functional options for the catalog.
//
// Contract:
//   • Options are functional (type Option func(*catalogConfig)).
//   • Option constructors validate and panic on meaningless inputs
//     (empty or non-positive counts). Generators themselves never panic.

package catalog

import (
	"fmt"
	"slices"
)

// Option customizes the count samples of a Catalog.
type Option func(*catalogConfig)

// WithNumElems sets the element-count samples. Panics on empty or non-positive input.
func WithNumElems(counts ...int) Option {
	checkCounts("WithNumElems", counts)
	owned := slices.Clone(counts)

	return func(c *catalogConfig) { c.numElems = owned }
}

// WithNumRows sets the row-count samples. Panics on empty or non-positive input.
func WithNumRows(counts ...int) Option {
	checkCounts("WithNumRows", counts)
	owned := slices.Clone(counts)

	return func(c *catalogConfig) { c.numRows = owned }
}

// WithNumCols sets the column-count samples. Panics on empty or non-positive input.
func WithNumCols(counts ...int) Option {
	checkCounts("WithNumCols", counts)
	owned := slices.Clone(counts)

	return func(c *catalogConfig) { c.numCols = owned }
}

func checkCounts(name string, counts []int) {
	if len(counts) == 0 {
		panic(fmt.Sprintf("catalog: %s()", name))
	}
	for _, n := range counts {
		if n <= 0 {
			panic(fmt.Sprintf("catalog: %s(%d)", name, n))
		}
	}
}
