// SPDX-License-Identifier: MIT

// Package sample - Union, ordered-set merge of labeled sequences.
//
// Semantics:
//   - The result is ascending by label with each label present once.
//   - When a label repeats, the first-seen value wins: earlier inputs beat
//     later ones, and within one input the earlier element beats the later.
//   - Inputs are never mutated.
//
// Complexity:
//   - Each input is stable-sorted (O(k log k)) and merged linearly into the
//     running result, O(N log N) overall for N total elements.

package sample

import (
	"slices"
	"strings"
)

// Union merges the given sequences into one label-sorted, deduplicated
// sequence. Zero inputs yield an empty (non-nil) sequence.
func Union(seqs ...[]Labeled) []Labeled {
	acc := []Labeled{}
	for _, seq := range seqs {
		acc = mergeSorted(acc, sortDedupe(seq))
	}

	return acc
}

// sortDedupe returns a stable-sorted copy of seq keeping the first element of
// every label.
func sortDedupe(seq []Labeled) []Labeled {
	sorted := slices.Clone(seq)
	slices.SortStableFunc(sorted, func(a, b Labeled) int {
		return strings.Compare(a.Label, b.Label)
	})

	return slices.CompactFunc(sorted, func(a, b Labeled) bool {
		return a.Label == b.Label
	})
}

// mergeSorted merges two label-sorted, duplicate-free sequences. On equal
// labels the element from acc is kept.
func mergeSorted(acc, next []Labeled) []Labeled {
	out := make([]Labeled, 0, len(acc)+len(next))
	i, j := 0, 0
	for i < len(acc) && j < len(next) {
		switch c := strings.Compare(acc[i].Label, next[j].Label); {
		case c < 0:
			out = append(out, acc[i])
			i++
		case c > 0:
			out = append(out, next[j])
			j++
		default:
			out = append(out, acc[i])
			i++
			j++
		}
	}
	out = append(out, acc[i:]...)
	out = append(out, next[j:]...)

	return out
}

// Labels returns the labels of seq in order.
func Labels(seq []Labeled) []string {
	out := make([]string, len(seq))
	for k, l := range seq {
		out[k] = l.Label
	}

	return out
}
