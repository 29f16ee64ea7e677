// Package matrix offers exact rational matrices and the row-reduction
// kernels the lumping engine is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat with copy-in/copy-out accessors.
//   - RREF, the canonical reduced row echelon form (leftmost pivots, rows
//     sorted by pivot column, pivots normalized to 1).
//   - Rank, Nullspace and Solve built on RREF; Solve doubles as the
//     membership test "is b in the column span of A" and returns a witness.
//   - RowBasis, the canonical basis of the span of a stack of row vectors.
//
// All arithmetic is exact; there is no tolerance anywhere in this package.
// Matrices are sized by the monomial bases of a lumping run, so dense
// storage with zero-skipping elimination is the right trade-off.
//
// See the examples in this package for usage patterns.
package matrix
