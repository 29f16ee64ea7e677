// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels.
// This file intentionally contains ONLY domain-facing types; errors live in
// errors.go and kernels in impl_*.go.
package matrix

import "math/big"

// Vector is a dense rational vector. Kernels never retain or mutate vectors
// passed in; returned vectors are fresh.
type Vector []*big.Rat

// Echelon is the result of RREF.
//
// Invariants:
//   - R is in reduced row echelon form with the same shape as the input.
//   - Pivots[i] is the pivot column of row i for i < Rank, strictly increasing.
//   - Rows Rank..R.Rows()-1 of R are zero.
type Echelon struct {
	R      *Dense // reduced matrix (fresh allocation)
	Pivots []int  // pivot column per non-zero row
	Rank   int    // number of non-zero rows
}

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// IsZero reports whether every entry is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}
