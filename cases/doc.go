// Package cases composes parameter class samples into concrete test cases.
//
// Product expands several class sequences into their full cartesian product.
// Each resulting Row holds one labeled value per class, in declared order,
// with the last column varying fastest:
//
//	rows := cases.Product([][]sample.Labeled{a, b})
//	for _, row := range rows {
//		fmt.Println(row.Label()) // "Row(zeros(1,1)),Row(ones(1,2))"
//	}
//
// A Row is immutable once produced. Its accessors (Int, Real, Matrix, ...)
// return independent copies, so a consumer can bind the same row any number
// of times and mutate each binding freely.
package cases
