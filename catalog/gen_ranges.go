// SPDX-License-Identifier: MIT
// Package: catalog
//
// gen_ranges.go: spans, size specifications and index-list vectors.

package catalog

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/armaexpected/sample"
)

func spanSample(a, b int) sample.Labeled {
	return sample.Labeled{Label: fmt.Sprintf("span(%d,%d)", a, b), Value: sample.SpanOf(a, b)}
}

// spans is the union of span(0,0) with, for every count n, the full range,
// the last element, and a three-wide window around the middle. For n = 1 the
// window is span(-1,1): spans are not required to be in range.
func spans(ns []int) []sample.Labeled {
	perCount := make([]sample.Labeled, 0, 3*len(ns))
	for _, n := range ns {
		perCount = append(perCount,
			spanSample(0, n-1),
			spanSample(n-1, n-1),
			spanSample(n/2-1, n/2+1),
		)
	}

	return sample.Union([]sample.Labeled{spanSample(0, 0)}, perCount)
}

// matSizes emits size(r,c) and size(Mat(r,c)) for every row/column count.
// Both spellings carry the same shape; they exercise the two ways a size can
// be passed.
func matSizes(rows, cols []int) []sample.Labeled {
	out := make([]sample.Labeled, 0, 2*len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			out = append(out,
				sample.Labeled{Label: fmt.Sprintf("size(%d,%d)", r, c), Value: sample.SizeOf(r, c)},
				sample.Labeled{Label: fmt.Sprintf("size(Mat(%d,%d))", r, c), Value: sample.SizeOf(r, c)},
			)
		}
	}

	return out
}

// vecSizes emits size(n,1) (column) or size(1,n) (row) per element count.
func vecSizes(ns []int, column bool) []sample.Labeled {
	out := make([]sample.Labeled, len(ns))
	for k, n := range ns {
		if column {
			out[k] = sample.Labeled{Label: fmt.Sprintf("size(%d,1)", n), Value: sample.SizeOf(n, 1)}
		} else {
			out[k] = sample.Labeled{Label: fmt.Sprintf("size(1,%d)", n), Value: sample.SizeOf(1, n)}
		}
	}

	return out
}

// indexPair returns the same index list as a column and as a row vector.
func indexPair(body string, values []float64) []sample.Labeled {
	return []sample.Labeled{
		{Label: "Col(" + body + ")", Value: sample.ColVec(values...)},
		{Label: "Row(" + body + ")", Value: sample.RowVec(values...)},
	}
}

// joinInts renders values as {a,b,c}.
func joinInts(values ...int) (string, []float64) {
	body := "{"
	fs := make([]float64, len(values))
	for k, v := range values {
		if k > 0 {
			body += ","
		}
		body += strconv.Itoa(v)
		fs[k] = float64(v)
	}

	return body + "}", fs
}

// indexLists builds index vectors: a lone 0, a repeated 1, the last index and
// a middle window per count, plus the full ascending sequence 0..n-1 and the
// interleaved sequence (even positions k, odd positions n-k) per count. The
// two sequences carry their count in the label so different counts stay
// distinct under union.
func indexLists(ns []int) []sample.Labeled {
	parts := [][]sample.Labeled{
		append(indexPair(joinInts(0)), indexPair(joinInts(1, 1, 1, 1, 1))...),
	}
	for _, n := range ns {
		parts = append(parts,
			append(indexPair(joinInts(n-1)), indexPair(joinInts(n/2-1, n/2, n/2+1))...))

		ascending := make([]float64, n)
		interleaved := make([]float64, n)
		for k := 0; k < n; k++ {
			ascending[k] = float64(k)
			if k%2 == 0 {
				interleaved[k] = float64(k)
			} else {
				interleaved[k] = float64(n - k)
			}
		}
		parts = append(parts, append(
			indexPair(fmt.Sprintf("{0,1,...,n}|n=%d", n), ascending),
			indexPair(fmt.Sprintf("{0,n,1,n-1,...}|n=%d", n), interleaved)...,
		))
	}

	return sample.Union(parts...)
}
