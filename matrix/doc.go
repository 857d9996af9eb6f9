// Package matrix is the dense numerical collaborator used to compute reference
// outputs.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix where empty shapes (0×n, n×0) are legal.
//   - Deterministic constructors: Zeros, Ones, Eye, Hilbert, HilbertSub, KMS.
//   - Element-wise arithmetic and relational operators (Add, Sub, ElemMul,
//     ElemDiv, Equal, NotEqual, GreaterEqual, LessEqual, Greater, Less).
//   - Products and builders: Mul, Kron, Dot, NormDot, Cross, Conv, Toeplitz.
//   - Joins: JoinRows/JoinHoriz (side by side) and JoinCols/JoinVert (stacked).
//   - Statistics with a normalisation switch: Var, Stddev, Cov, Cor.
//   - Find over non-zero entries in column-major order.
//   - In-place structural mutation (Resize, SetSize, InsertRows, ShedCols,
//     SwapCols, ...) and sub-block assignment (ApplyRows, ApplyCols,
//     ApplySubvec).
//   - Bounds predicates over indices and spans (InRange, InRangeSpan, ...).
//
// Element order: storage is row-major, but linear indices and serialisation
// (Find, ColMajor) follow column-major order so persisted results read the same
// as the Armadillo baselines they are compared with.
//
// All functions are pure and deterministic; errors are sentinel values wrapped
// with the operation name, match them with errors.Is.
package matrix
