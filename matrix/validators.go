// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly with their op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil entry-wise and has length n.
// Time: O(n). Space: O(1).
func ValidateVecLen(x Vector, n int) error {
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	// Nil entries would panic deep inside big.Rat arithmetic.
	for _, v := range x {
		if v == nil {
			return validatorErrorf("ValidateVecLen", ErrNilMatrix)
		}
	}

	return nil
}
