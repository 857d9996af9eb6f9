// SPDX-License-Identifier: MIT
// Package: cases
//
// Purpose:
//   - Cartesian product of labeled class sequences.
//
// Complexity:
//   - Time and memory O(Π|Si| * n) for n classes.

package cases

import "github.com/katalvlaran/armaexpected/sample"

// Product returns every combination of one value per class, in declared
// class order. The result has Π|perClass[i]| rows; it is empty when any class
// is empty and holds a single empty row when no class is given.
// Inputs are not modified; rows share no mutable state with them.
func Product(perClass [][]sample.Labeled) []Row {
	rows := []Row{{}}
	for _, class := range perClass {
		next := make([]Row, 0, len(rows)*len(class))
		for _, partial := range rows {
			for _, v := range class {
				row := make(Row, len(partial), len(partial)+1)
				copy(row, partial)
				next = append(next, append(row, sample.Labeled{Label: v.Label, Value: v.Value.Clone()}))
			}
		}
		rows = next
	}

	return rows
}
