// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/armaexpected/cases"
	"github.com/katalvlaran/armaexpected/sample"
)

// Params generates every class and returns their cartesian product.
// All classes are resolved before any row is built, so an unknown class
// fails the request with ErrUnknownClass and no partial result.
func (c *Catalog) Params(classes ...Class) ([]cases.Row, error) {
	perClass := make([][]sample.Labeled, len(classes))
	for k, cl := range classes {
		seq, err := c.Generate(cl)
		if err != nil {
			return nil, err
		}
		perClass[k] = seq
	}

	return cases.Product(perClass), nil
}

// Params is New(opts...).Params(classes...).
func Params(classes []Class, opts ...Option) ([]cases.Row, error) {
	return New(opts...).Params(classes...)
}
