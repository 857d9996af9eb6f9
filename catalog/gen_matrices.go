// SPDX-License-Identifier: MIT
// Package: catalog
//
// gen_matrices.go: matrix and vector classes.
//
// Labels spell the construction, e.g. "Mat(kms(2,5))" or
// "Row(hilbert(5,2).row(0))", so equal constructions from different classes
// collapse under union.

package catalog

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armaexpected/matrix"
	"github.com/katalvlaran/armaexpected/sample"
)

// ctor is a named matrix constructor.
type ctor struct {
	name  string
	build func(rows, cols int) (*matrix.Dense, error)
}

var (
	zerosCtor      = ctor{"zeros", matrix.Zeros}
	onesCtor       = ctor{"ones", matrix.Ones}
	eyeCtor        = ctor{"eye", matrix.Eye}
	hilbertCtor    = ctor{"hilbert", matrix.Hilbert}
	hilbertSubCtor = ctor{"hilbertSub", matrix.HilbertSub}
	kmsCtor        = ctor{"kms", matrix.KMS}
)

// matSamples builds "Mat(<ctor>(r,c))" for each constructor over the shapes
// accepted by keep.
func (c *Catalog) matSamples(keep func(r, cl int) bool, ctors ...ctor) ([]sample.Labeled, error) {
	var out []sample.Labeled
	for _, r := range c.cfg.numRows {
		for _, cl := range c.cfg.numCols {
			if !keep(r, cl) {
				continue
			}
			for _, ct := range ctors {
				m, err := ct.build(r, cl)
				if err != nil {
					return nil, err
				}
				out = append(out, sample.Labeled{
					Label: fmt.Sprintf("Mat(%s(%d,%d))", ct.name, r, cl),
					Value: sample.Mat(m),
				})
			}
		}
	}

	return out, nil
}

func anyShape(int, int) bool   { return true }
func squareShape(r, c int) bool { return r == c }

func (c *Catalog) genMat() ([]sample.Labeled, error) {
	return c.matSamples(anyShape, zerosCtor, onesCtor, eyeCtor, hilbertCtor, kmsCtor)
}

func (c *Catalog) invMat() ([]sample.Labeled, error) {
	return c.matSamples(squareShape, eyeCtor, kmsCtor)
}

func (c *Catalog) symPDMat() ([]sample.Labeled, error) {
	return c.matSamples(squareShape, eyeCtor, hilbertCtor)
}

// symMat adds the (semi-definite or indefinite) symmetric zeros and ones to SymPDMat.
func (c *Catalog) symMat() ([]sample.Labeled, error) {
	pd, err := c.symPDMat()
	if err != nil {
		return nil, err
	}
	rest, err := c.matSamples(squareShape, zerosCtor, onesCtor)
	if err != nil {
		return nil, err
	}

	return sample.Union(pd, rest), nil
}

func (c *Catalog) squMat() ([]sample.Labeled, error) {
	inv, err := c.invMat()
	if err != nil {
		return nil, err
	}
	sym, err := c.symMat()
	if err != nil {
		return nil, err
	}

	return sample.Union(inv, sym), nil
}

func (c *Catalog) logicMat() ([]sample.Labeled, error) {
	return c.matSamples(anyShape, zerosCtor, onesCtor, hilbertSubCtor)
}

// oneByOne wraps a double as a 1×1 matrix value.
func oneByOne(v float64) sample.Value { return sample.Mat(matrix.NewScalar(v)) }

func colOfOne(v float64) sample.Value { return sample.ColVec(v) }

func rowOfOne(v float64) sample.Value { return sample.RowVec(v) }

// ooSamples wraps every GenDouble sample into a one-element container:
// "Mat({pi})", "Col({-inf})", ...
func ooSamples(prefix string, wrap func(float64) sample.Value) []sample.Labeled {
	doubles := genDoubleSamples()
	out := make([]sample.Labeled, len(doubles))
	for k, d := range doubles {
		v, _ := d.Value.AsReal()
		out[k] = sample.Labeled{Label: prefix + "({" + d.Label + "})", Value: wrap(v)}
	}

	return out
}

// vectorSamples builds vectors cut from constructed matrices.
//   - column: "Col(zeros(r,1))", "Col(ones(r,1))" per row count, then
//     "Col(<ctor>(r,c).col(0))" per (r,c);
//   - row: "Row(zeros(1,c))", "Row(ones(1,c))" per column count, then
//     "Row(<ctor>(r,c).row(0))" per (c,r).
func (c *Catalog) vectorSamples(orient sample.Orientation, cut ...ctor) ([]sample.Labeled, error) {
	outer, inner := c.cfg.numRows, c.cfg.numCols
	if orient == sample.Row {
		outer, inner = c.cfg.numCols, c.cfg.numRows
	}

	var out []sample.Labeled
	for _, n := range outer {
		zeros := make([]float64, n)
		ones := make([]float64, n)
		for k := range ones {
			ones[k] = 1
		}
		if orient == sample.Column {
			out = append(out,
				sample.Labeled{Label: fmt.Sprintf("Col(zeros(%d,1))", n), Value: sample.ColVec(zeros...)},
				sample.Labeled{Label: fmt.Sprintf("Col(ones(%d,1))", n), Value: sample.ColVec(ones...)},
			)
		} else {
			out = append(out,
				sample.Labeled{Label: fmt.Sprintf("Row(zeros(1,%d))", n), Value: sample.RowVec(zeros...)},
				sample.Labeled{Label: fmt.Sprintf("Row(ones(1,%d))", n), Value: sample.RowVec(ones...)},
			)
		}
	}

	for _, n := range outer {
		for _, m := range inner {
			r, cl := n, m
			if orient == sample.Row {
				r, cl = m, n
			}
			for _, ct := range cut {
				full, err := ct.build(r, cl)
				if err != nil {
					return nil, err
				}
				if orient == sample.Column {
					out = append(out, sample.Labeled{
						Label: fmt.Sprintf("Col(%s(%d,%d).col(0))", ct.name, r, cl),
						Value: sample.ColVec(full.ColMajor()[:r]...),
					})
				} else {
					out = append(out, sample.Labeled{
						Label: fmt.Sprintf("Row(%s(%d,%d).row(0))", ct.name, r, cl),
						Value: sample.RowVec(full.RowMajor()[:cl]...),
					})
				}
			}
		}
	}

	return out, nil
}

func (c *Catalog) genColVec() ([]sample.Labeled, error) {
	return c.vectorSamples(sample.Column, eyeCtor, hilbertCtor, kmsCtor)
}

func (c *Catalog) genRowVec() ([]sample.Labeled, error) {
	return c.vectorSamples(sample.Row, eyeCtor, hilbertCtor, kmsCtor)
}

func (c *Catalog) logicColVec() ([]sample.Labeled, error) {
	return c.vectorSamples(sample.Column, eyeCtor, hilbertSubCtor)
}

func (c *Catalog) logicRowVec() ([]sample.Labeled, error) {
	return c.vectorSamples(sample.Row, eyeCtor, hilbertSubCtor)
}

// monSamples are monotone (or constant) vectors, including infinite ends.
func monSamples(orient sample.Orientation) []sample.Labeled {
	prefix, build := "Col", sample.ColVec
	if orient == sample.Row {
		prefix, build = "Row", sample.RowVec
	}
	inf := math.Inf(1)

	ramp := make([]float64, 11)
	tenths := make([]float64, 11)
	for k := range ramp {
		ramp[k] = float64(k)
		tenths[k] = float64(k) / 10
	}

	return []sample.Labeled{
		{Label: prefix + "({0,1,...,n})", Value: build(ramp...)},
		{Label: prefix + "({0,0.1,...,1})", Value: build(tenths...)},
		{Label: prefix + "({-10,-5,10})", Value: build(-10, -5, 10)},
		{Label: prefix + "({-inf,0,inf})", Value: build(-inf, 0, inf)},
		{Label: prefix + "({0})", Value: build(0)},
		{Label: prefix + "({-inf})", Value: build(-inf)},
		{Label: prefix + "({inf})", Value: build(inf)},
	}
}
