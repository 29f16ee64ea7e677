// SPDX-License-Identifier: MIT

package lumping

import (
	"math/big"

	"github.com/katalvlaran/lvlump/matrix"
	"github.com/katalvlaran/lvlump/poly"
)

const panicLengthMismatch = "lumping: Subspace: vector length does not match ambient dimension"

// Subspace is a span of linear forms kept as the non-zero rows of its reduced
// row echelon form. It is a value: Extend returns a new Subspace and never
// touches the receiver's rows.
type Subspace struct {
	n      int
	rows   []poly.LinearForm // RREF, pivots strictly ascending
	pivots []int
}

// NewSubspace returns span(forms) inside an n-dimensional ambient space.
// Zero or dependent forms are absorbed.
func NewSubspace(n int, forms ...poly.LinearForm) (Subspace, error) {
	vecs := make([]matrix.Vector, len(forms))
	for i, f := range forms {
		vecs[i] = matrix.Vector(f)
	}
	basis, pivots, err := matrix.RowBasis(vecs, n)
	if err != nil {
		return Subspace{}, lumpErrorf("NewSubspace", err)
	}
	s := Subspace{n: n, rows: make([]poly.LinearForm, len(basis)), pivots: pivots}
	for i, b := range basis {
		s.rows[i] = poly.LinearForm(b)
	}

	return s, nil
}

// Dim returns the dimension of the span.
func (s Subspace) Dim() int { return len(s.rows) }

// Ambient returns the number of coordinates of every form.
func (s Subspace) Ambient() int { return s.n }

// Rows returns deep copies of the canonical basis rows.
func (s Subspace) Rows() []poly.LinearForm {
	out := make([]poly.LinearForm, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Clone()
	}

	return out
}

// Pivots returns the pivot column of every basis row.
func (s Subspace) Pivots() []int {
	out := make([]int, len(s.pivots))
	copy(out, s.pivots)

	return out
}

// Reduce returns the remainder of v modulo the span. Every pivot column is
// zero outside its own row, so the remainder is v − Σ v[p_i]·row_i.
func (s Subspace) Reduce(v poly.LinearForm) poly.LinearForm {
	if len(v) != s.n {
		panic(panicLengthMismatch)
	}
	forms := make([]poly.LinearForm, 0, len(s.rows)+1)
	weights := make([]*big.Rat, 0, len(s.rows)+1)
	forms = append(forms, v)
	weights = append(weights, big.NewRat(1, 1))
	for i, row := range s.rows {
		forms = append(forms, row)
		weights = append(weights, new(big.Rat).Neg(v[s.pivots[i]]))
	}
	r, err := poly.LinearCombination(forms, weights)
	if err != nil {
		// every row has length s.n
		panic(err)
	}

	return r
}

// Contains reports whether v lies in the span.
func (s Subspace) Contains(v poly.LinearForm) bool { return s.Reduce(v).IsZero() }

// ContainsAll reports whether every row of o lies in s.
func (s Subspace) ContainsAll(o Subspace) bool {
	for _, r := range o.rows {
		if !s.Contains(r) {
			return false
		}
	}

	return true
}

// Extend returns span(s ∪ {v}) and whether the dimension grew. When v is
// already contained the receiver itself is returned.
func (s Subspace) Extend(v poly.LinearForm) (Subspace, bool) {
	if s.Contains(v) {
		return s, false
	}
	forms := make([]poly.LinearForm, 0, len(s.rows)+1)
	forms = append(forms, s.rows...)
	forms = append(forms, v)
	next, err := NewSubspace(s.n, forms...)
	if err != nil {
		// lengths were checked by Contains
		panic(err)
	}

	return next, true
}
