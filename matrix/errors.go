// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// surface reads "Op: matrix: ..." and callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> inconsistency.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0,
	// or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Solve with len(b) != a.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix, entry or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInconsistent signals that A·x = b has no solution, i.e.
	// rank(A) < rank([A|b]): b is not in the column span of A.
	ErrInconsistent = errors.New("matrix: inconsistent linear system")
)
