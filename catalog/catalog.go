// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/armaexpected/sample"
)

// generator produces the sample sequence of one class.
type generator func(c *Catalog) ([]sample.Labeled, error)

// generators is the class table, resolved once; a class missing here is unknown.
var generators map[Class]generator

func init() {
	generators = map[Class]generator{
		NumElems: func(c *Catalog) ([]sample.Labeled, error) { return counts(c.cfg.numElems), nil },
		NumRows:  func(c *Catalog) ([]sample.Labeled, error) { return counts(c.cfg.numRows), nil },
		NumCols:  func(c *Catalog) ([]sample.Labeled, error) { return counts(c.cfg.numCols), nil },

		ElemInd:    func(c *Catalog) ([]sample.Labeled, error) { return indices(c.cfg.numElems), nil },
		RowInd:     func(c *Catalog) ([]sample.Labeled, error) { return indices(c.cfg.numRows), nil },
		ColInd:     func(c *Catalog) ([]sample.Labeled, error) { return indices(c.cfg.numCols), nil },
		ExtElemInd: func(c *Catalog) ([]sample.Labeled, error) { return extIndices(c.cfg.numElems), nil },
		ExtRowInd:  func(c *Catalog) ([]sample.Labeled, error) { return extIndices(c.cfg.numRows), nil },
		ExtColInd:  func(c *Catalog) ([]sample.Labeled, error) { return extIndices(c.cfg.numCols), nil },

		Normal:     constant(intSamples(0, 1)),
		Dim:        constant(intSamples(0, 1)),
		Exp:        constant(expSamples()),
		MatNormInt: constant(intSamples(1, 2)),
		VecNormInt: constant(intSamples(1, 2, 3, 4)),
		GenDouble:  constant(genDoubleSamples()),
		TriDouble:  constant(triDoubleSamples()),
		SinValTol:  constant(intSamples(0, 1, -1)),

		ElemIndRange: func(c *Catalog) ([]sample.Labeled, error) { return spans(c.cfg.numElems), nil },
		RowIndRange:  func(c *Catalog) ([]sample.Labeled, error) { return spans(c.cfg.numRows), nil },
		ColIndRange:  func(c *Catalog) ([]sample.Labeled, error) { return spans(c.cfg.numCols), nil },
		MatSize:      func(c *Catalog) ([]sample.Labeled, error) { return matSizes(c.cfg.numRows, c.cfg.numCols), nil },
		ColVecSize:   func(c *Catalog) ([]sample.Labeled, error) { return vecSizes(c.cfg.numElems, true), nil },
		RowVecSize:   func(c *Catalog) ([]sample.Labeled, error) { return vecSizes(c.cfg.numElems, false), nil },

		GenMat:   (*Catalog).genMat,
		InvMat:   (*Catalog).invMat,
		SymPDMat: (*Catalog).symPDMat,
		SymMat:   (*Catalog).symMat,
		SquMat:   (*Catalog).squMat,
		LogicMat: (*Catalog).logicMat,
		OOMat:    func(*Catalog) ([]sample.Labeled, error) { return ooSamples("Mat", oneByOne), nil },

		GenColVec:   (*Catalog).genColVec,
		GenRowVec:   (*Catalog).genRowVec,
		MonColVec:   constant(monSamples(sample.Column)),
		MonRowVec:   constant(monSamples(sample.Row)),
		LogicColVec: (*Catalog).logicColVec,
		LogicRowVec: (*Catalog).logicRowVec,
		OOColVec:    func(*Catalog) ([]sample.Labeled, error) { return ooSamples("Col", colOfOne), nil },
		OORowVec:    func(*Catalog) ([]sample.Labeled, error) { return ooSamples("Row", rowOfOne), nil },

		GenVec:      unionOf(GenColVec, GenRowVec, MonVec, LogicVec, OOVec),
		MonVec:      unionOf(MonColVec, MonRowVec),
		LogicVec:    unionOf(LogicColVec, LogicRowVec),
		OOVec:       unionOf(OOColVec, OORowVec),
		GenMatVec:   unionOf(GenMat, GenVec, LogicMatVec, OOMatVec),
		LogicMatVec: unionOf(LogicMat, LogicVec),
		OOMatVec:    unionOf(OOMat, OOVec),

		ElemInds: func(c *Catalog) ([]sample.Labeled, error) { return indexLists(c.cfg.numElems), nil },
		RowInds:  func(c *Catalog) ([]sample.Labeled, error) { return indexLists(c.cfg.numRows), nil },
		ColInds:  func(c *Catalog) ([]sample.Labeled, error) { return indexLists(c.cfg.numCols), nil },

		MatNormString: constant(selectors("inf", "fro")),
		VecNormString: constant(selectors("inf", "-inf", "fro")),
		Sort:          constant(selectors("ascend", "descend")),
		Search:        constant(selectors("first", "last")),
		SinValSel:     constant(selectors("left", "right", "both")),
		DistrParam:    constant(distrSamples()),
		Fill:          constant(fillSamples()),
	}
}

// Catalog generates class samples under one configuration. It is immutable
// and safe for concurrent use.
type Catalog struct {
	cfg catalogConfig
}

// New returns a Catalog with the given options applied over the defaults.
func New(opts ...Option) *Catalog {
	return &Catalog{cfg: newCatalogConfig(opts...)}
}

// Generate returns the labeled samples of class.
// Errors: ErrUnknownClass when class has no generator.
func (c *Catalog) Generate(class Class) ([]sample.Labeled, error) {
	gen, ok := generators[class]
	if !ok {
		return nil, fmt.Errorf("Generate(%s): %w", class, ErrUnknownClass)
	}
	out, err := gen(c)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", class, err)
	}

	return out, nil
}

// Generate is New(opts...).Generate(class).
func Generate(class Class, opts ...Option) ([]sample.Labeled, error) {
	return New(opts...).Generate(class)
}

// constant wraps a fixed sequence; each call returns fresh copies.
func constant(seq []sample.Labeled) generator {
	return func(*Catalog) ([]sample.Labeled, error) {
		out := make([]sample.Labeled, len(seq))
		for k, l := range seq {
			out[k] = sample.Labeled{Label: l.Label, Value: l.Value.Clone()}
		}

		return out, nil
	}
}

// unionOf builds a derived class as the union of other classes.
func unionOf(classes ...Class) generator {
	return func(c *Catalog) ([]sample.Labeled, error) {
		parts := make([][]sample.Labeled, 0, len(classes))
		for _, cl := range classes {
			seq, err := c.Generate(cl)
			if err != nil {
				return nil, err
			}
			parts = append(parts, seq)
		}

		return sample.Union(parts...), nil
	}
}
