// SPDX-License-Identifier: MIT
// Package: catalog
//
// gen_scalars.go: counts, indices, scalar doubles and text selectors.

package catalog

import (
	"math"
	"strconv"

	"github.com/katalvlaran/armaexpected/sample"
)

// counts labels each configured count with its decimal form.
func counts(ns []int) []sample.Labeled {
	return intSamples(ns...)
}

// intSamples labels each integer with its decimal form, in order.
func intSamples(vs ...int) []sample.Labeled {
	out := make([]sample.Labeled, len(vs))
	for k, v := range vs {
		out[k] = sample.Labeled{Label: strconv.Itoa(v), Value: sample.Int(v)}
	}

	return out
}

// indices is the union of {0, 1} with the last valid index n-1 of every count.
func indices(ns []int) []sample.Labeled {
	last := make([]int, len(ns))
	for k, n := range ns {
		last[k] = n - 1
	}

	return sample.Union(intSamples(0, 1), intSamples(last...))
}

// extIndices adds the one-past-the-end position of every count to indices.
func extIndices(ns []int) []sample.Labeled {
	return sample.Union(indices(ns), counts(ns))
}

func realSample(label string, v float64) sample.Labeled {
	return sample.Labeled{Label: label, Value: sample.Real(v)}
}

// expSamples are exponents for power-like operations.
func expSamples() []sample.Labeled {
	return []sample.Labeled{
		realSample("0.5", 0.5),
		realSample("1.0", 1.0),
		realSample("2.0", 2.0),
		realSample("3.0", 3.0),
	}
}

// machineEpsilon is the gap between 1.0 and the next representable double.
var machineEpsilon = math.Nextafter(1, 2) - 1

// triDoubleSamples covers the sign/zero/extreme/transcendental corners.
func triDoubleSamples() []sample.Labeled {
	return []sample.Labeled{
		realSample("-inf", math.Inf(-1)),
		realSample("-2.0", -2.0),
		realSample("0.0", 0.0),
		realSample("machine_epsilon", machineEpsilon),
		realSample("1.0", 1.0),
		realSample("pi", math.Pi),
		realSample("inf", math.Inf(1)),
	}
}

// genDoubleSamples is the general double set united with triDoubleSamples.
func genDoubleSamples() []sample.Labeled {
	return sample.Union([]sample.Labeled{
		realSample("-inf", math.Inf(-1)),
		realSample("-2.0", -2.0),
		realSample("0.0", 0.0),
		realSample("machine_epsilon", machineEpsilon),
		realSample("0.5", 0.5),
		realSample("1.0", 1.0),
		realSample("euler_number", math.E),
		realSample("3.0", 3.0),
		realSample("4.0", 4.0),
		realSample("inf", math.Inf(1)),
	}, triDoubleSamples())
}

// selectors labels each text value with its quoted form: fro -> 'fro'.
func selectors(vs ...string) []sample.Labeled {
	out := make([]sample.Labeled, len(vs))
	for k, v := range vs {
		out[k] = sample.Labeled{Label: "'" + v + "'", Value: sample.Text(v)}
	}

	return out
}

// distrSamples are the distribution parameter pairs.
func distrSamples() []sample.Labeled {
	pairs := [][2]int{{0, 10}, {1, 1}, {-5, 6}}
	out := make([]sample.Labeled, len(pairs))
	for k, p := range pairs {
		out[k] = sample.Labeled{
			Label: "distr_param(" + strconv.Itoa(p[0]) + "," + strconv.Itoa(p[1]) + ")",
			Value: sample.DistrOf(p[0], p[1]),
		}
	}

	return out
}

// fillSamples are the deterministic fill modes.
func fillSamples() []sample.Labeled {
	modes := []string{"zeros", "ones", "eye"}
	out := make([]sample.Labeled, len(modes))
	for k, m := range modes {
		out[k] = sample.Labeled{Label: "fill::" + m, Value: sample.Text(m)}
	}

	return out
}
