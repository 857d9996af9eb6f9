// SPDX-License-Identifier: MIT
// Package: catalog
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • numElems = 1, 2, 25
//   • numRows  = 1, 2, 5
//   • numCols  = 1, 2, 5
//
// Every shape-dependent class derives from these three lists, so overriding
// one (e.g. WithNumRows(3)) reshapes all matrix, span and index classes
// consistently.

package catalog

import "slices"

var (
	defaultNumElems = []int{1, 2, 25}
	defaultNumRows  = []int{1, 2, 5}
	defaultNumCols  = []int{1, 2, 5}
)

// catalogConfig aggregates the count samples used by generators.
type catalogConfig struct {
	numElems []int
	numRows  []int
	numCols  []int
}

// newCatalogConfig applies opts in order over the defaults.
func newCatalogConfig(opts ...Option) catalogConfig {
	cfg := catalogConfig{
		numElems: slices.Clone(defaultNumElems),
		numRows:  slices.Clone(defaultNumRows),
		numCols:  slices.Clone(defaultNumCols),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
