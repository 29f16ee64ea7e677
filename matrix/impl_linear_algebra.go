// SPDX-License-Identifier: MIT
// Exact row-reduction kernels over *big.Rat: RREF, rank, right nullspace,
// particular solutions and row-space bases.
//
// Purpose:
//   - Declare the canonical elimination kernel (RREF) and the derived
//     operations used by the lumping engine.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Every kernel works on a private copy; inputs are never mutated.
//   - Pivot choice is always the lowest-index row with a non-zero entry in the
//     current column, which makes the output canonical and reproducible.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullspace = "Nullspace"
	opSolve     = "Solve"
	opRowBasis  = "RowBasis"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF computes the reduced row echelon form of m.
//
// Implementation:
//   - Stage 1: Validate m is non-nil; clone it (input stays immutable).
//   - Stage 2: Sweep columns left→right. For column j pick the first row at or
//     below the current rank with a non-zero entry, swap it up, scale the row
//     so the pivot is 1 and eliminate column j from every other row.
//   - Stage 3: Record pivots and rank.
//
// Behavior highlights:
//   - Canonical: the row space determines the non-zero rows of R uniquely.
//   - Rows whose entry in the pivot column is already zero are skipped, so
//     sparse inputs (the common case for monomial matrices) stay cheap.
//
// Inputs:
//   - m: any Dense (zero rows/cols allowed).
//
// Returns:
//   - Echelon: fresh reduced matrix, pivot columns and rank.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed column order and lowest-index pivot rows.
//
// Complexity:
//   - Time O(r·c·min(r,c)) rational operations, Space O(r·c).
func RREF(m *Dense) (Echelon, error) {
	// Validate input
	if err := ValidateNotNil(m); err != nil {
		return Echelon{}, matrixErrorf(opRREF, err)
	}

	// Work on a private copy
	r := m.Clone()
	rows, cols := r.r, r.c
	pivots := make([]int, 0, min(rows, cols))

	var (
		i, j, k int      // row, column, elimination row iterators
		rank    int      // rows fixed so far
		factor  = new(big.Rat)
		prod    = new(big.Rat)
		inv     = new(big.Rat)
	)
	for j = 0; j < cols && rank < rows; j++ {
		// Find pivot row: lowest index with non-zero entry in column j
		pivot := -1
		for i = rank; i < rows; i++ {
			if r.data[i*cols+j].Sign() != 0 {
				pivot = i

				break
			}
		}
		if pivot < 0 {
			continue // free column
		}
		r.swapRows(rank, pivot)

		// Normalize pivot row so the pivot entry is exactly 1
		base := rank * cols
		inv.Inv(r.data[base+j])
		for k = j; k < cols; k++ {
			if r.data[base+k].Sign() != 0 {
				r.data[base+k].Mul(r.data[base+k], inv)
			}
		}

		// Eliminate column j from every other row
		for i = 0; i < rows; i++ {
			if i == rank || r.data[i*cols+j].Sign() == 0 {
				continue
			}
			factor.Set(r.data[i*cols+j])
			for k = j; k < cols; k++ {
				if r.data[base+k].Sign() == 0 {
					continue
				}
				prod.Mul(factor, r.data[base+k])
				r.data[i*cols+k].Sub(r.data[i*cols+k], prod)
			}
		}
		pivots = append(pivots, j)
		rank++
	}

	return Echelon{R: r, Pivots: pivots, Rank: rank}, nil
}

// Rank returns the rank of m.
// Complexity: same as RREF.
func Rank(m *Dense) (int, error) {
	e, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return e.Rank, nil
}

// Nullspace returns a basis of the right kernel {x : m·x = 0}.
//
// Implementation:
//   - Stage 1: RREF(m).
//   - Stage 2: For each free column f (ascending) emit x with x[f]=1 and
//     x[p_i] = -R[i][f] for every pivot column p_i.
//
// Returns:
//   - []Vector: c-rank vectors of length c, free columns ascending.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(RREF + c²), Space O(c²).
func Nullspace(m *Dense) ([]Vector, error) {
	e, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}
	cols := m.c
	isPivot := make([]bool, cols)
	for _, p := range e.Pivots {
		isPivot[p] = true
	}

	var basis []Vector
	for f := 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		x := NewVector(cols)
		x[f].SetInt64(1)
		for i, p := range e.Pivots {
			x[p].Neg(e.R.data[i*cols+f])
		}
		basis = append(basis, x)
	}

	return basis, nil
}

// Solve finds x with a·x = b, or reports that b is outside the column span.
//
// Implementation:
//   - Stage 1: Validate a non-nil and len(b) == a.Rows().
//   - Stage 2: RREF of the augmented matrix [a | b].
//   - Stage 3: A pivot in the augmented column means rank(a) < rank([a|b]) →
//     ErrInconsistent. Otherwise read the particular solution with every free
//     variable set to zero.
//
// Behavior highlights:
//   - This is the membership test "b ∈ colspan(a)" and its witness in one pass.
//   - The returned solution is canonical given a and b (free variables zero).
//
// Inputs:
//   - a: coefficient matrix r×c.
//   - b: right-hand side of length r.
//
// Returns:
//   - Vector: x of length c.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInconsistent.
//
// Complexity:
//   - Time O(r·(c+1)·min(r,c+1)), Space O(r·(c+1)).
func Solve(a *Dense, b Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Build [a | b]
	aug, err := NewDense(a.r, a.c+1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			aug.data[i*aug.c+j].Set(a.data[i*a.c+j])
		}
		aug.data[i*aug.c+a.c].Set(b[i])
	}

	e, err := RREF(aug)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	// A pivot in the last column is the row 0 = 1
	if e.Rank > 0 && e.Pivots[e.Rank-1] == a.c {
		return nil, matrixErrorf(opSolve, ErrInconsistent)
	}

	x := NewVector(a.c)
	for i, p := range e.Pivots {
		x[p].Set(e.R.data[i*aug.c+a.c])
	}

	return x, nil
}

// RowBasis returns the canonical basis of span(rows): the non-zero rows of
// RREF(stack(rows)), each of length n.
//
// Errors:
//   - ErrDimensionMismatch when a row length differs from n.
//
// Complexity:
//   - Time O(RREF), Space O(len(rows)·n).
func RowBasis(rows []Vector, n int) ([]Vector, []int, error) {
	m, err := NewDense(len(rows), n)
	if err != nil {
		return nil, nil, matrixErrorf(opRowBasis, err)
	}
	for i, row := range rows {
		if err = ValidateVecLen(row, n); err != nil {
			return nil, nil, matrixErrorf(opRowBasis, fmt.Errorf("row %d: %w", i, err))
		}
		for j, v := range row {
			m.data[i*n+j].Set(v)
		}
	}
	e, err := RREF(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRowBasis, err)
	}
	out := make([]Vector, e.Rank)
	for i := range out {
		out[i], _ = e.R.Row(i)
	}

	return out, e.Pivots, nil
}
