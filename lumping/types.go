// SPDX-License-Identifier: MIT

package lumping

import (
	"math/big"

	"github.com/katalvlaran/lvlump/poly"
)

// Result is the frozen outcome of a closure run.
//
// Basis holds the lumping matrix L row by row: RREF rows over the original
// variables, row i defining the lumped variable y_{i+1} = Basis[i](x).
// Witnesses[i] is the polynomial over y1..yk certifying that d/dt y_{i+1}
// is self-contained; Reduce re-checks every witness before trusting it.
type Result struct {
	ring      *poly.Ring
	lumped    *poly.Ring
	basis     Subspace
	seed      Subspace
	witnesses []poly.Polynomial

	// Passes counts the passes that added at least one direction. It is 0
	// when the constraints already span an invariant subspace.
	Passes int
	// Iterations counts every pass run, the final confirming pass included.
	Iterations int
}

// Ring returns the ring of the original state variables.
func (r *Result) Ring() *poly.Ring { return r.ring }

// Lumped returns the ring of the lumped variables y1..yk.
func (r *Result) Lumped() *poly.Ring { return r.lumped }

// Dim returns k, the number of lumped variables.
func (r *Result) Dim() int { return r.basis.Dim() }

// Subspace returns the invariant subspace spanned by the lumping matrix.
func (r *Result) Subspace() Subspace { return r.basis }

// Basis returns copies of the lumping matrix rows.
func (r *Result) Basis() []poly.LinearForm { return r.basis.Rows() }

// Constraints returns the canonical basis of the constraint span.
func (r *Result) Constraints() []poly.LinearForm { return r.seed.Rows() }

// Matrix returns L as a k×n table of fresh rationals.
func (r *Result) Matrix() [][]*big.Rat {
	rows := r.basis.Rows()
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = []*big.Rat(row)
	}

	return out
}

// Witness returns the membership witness of row i: a polynomial q over y1..yk
// with q(Lx) = d/dt (L_i x).
func (r *Result) Witness(i int) poly.Polynomial { return r.witnesses[i] }

// LumpedForm returns row i rendered over the original variables, e.g.
// "x2 + 2*x3".
func (r *Result) LumpedForm(i int) string { return r.basis.rows[i].Format(r.ring) }
