// Package matrix offers the small dense linear-algebra core behind the PCA
// geometry blender.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked accessors.
//   - Kernels: Mul, MulTransB, Transpose, Scale.
//   - Statistics: CenterColumns, Covariance (D×D) and Gram (N×N).
//   - Eigen solvers for symmetric input: Eigen (deterministic Jacobi rotations)
//     and EigenSym (gonum's mat.EigenSym).
//
// Every kernel validates its operands and returns package sentinels wrapped
// with an operation tag, so callers match with errors.Is. Inputs are never
// mutated and results never alias caller memory.
//
// See example_test.go for usage.
package matrix
