// SPDX-License-Identifier: MIT

package lumping

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
)

// Reduced is the lumped system ẏ = g(y) over y1..yk.
type Reduced struct {
	lumping *Result
	rhs     []poly.Polynomial // over lumping.Lumped()
}

// Reduce builds the reduced system from a converged Result.
//
// Implementation:
//   - Stage 1: Check that res was computed over the ring of sys.
//   - Stage 2: For every row ℓ_i recompute d_i = d/dt ℓ_i(x) from sys, take
//     the witness q_i, substitute y_j = ℓ_j(x) and expand.
//   - Stage 3: Require q_i(Lx) == d_i exactly; q_i becomes ẏ_i.
//
// Errors:
//   - ErrNilInput, ErrBasisMismatch, ErrReductionInconsistency.
//
// Complexity:
//   - Time O(k · cost of expanding q_i(Lx)).
func Reduce(sys *ode.System, res *Result) (*Reduced, error) {
	if sys == nil || res == nil {
		return nil, lumpErrorf(opReduce, ErrNilInput)
	}
	if !res.ring.Equal(sys.Ring()) || len(res.witnesses) != res.Dim() {
		return nil, lumpErrorf(opReduce, ErrBasisMismatch)
	}

	images := make([]poly.Polynomial, res.Dim())
	for i, row := range res.basis.rows {
		p, err := row.Polynomial(sys.Ring())
		if err != nil {
			return nil, lumpErrorf(opReduce, err)
		}
		images[i] = p
	}

	rhs := make([]poly.Polynomial, res.Dim())
	for i, row := range res.basis.rows {
		d, err := sys.DerivativeOf(row)
		if err != nil {
			return nil, lumpErrorf(opReduce, err)
		}
		q := res.witnesses[i]
		back, err := q.Substitute(images)
		if err != nil {
			return nil, lumpErrorf(opReduce, err)
		}
		if !back.Equal(d) {
			return nil, lumpErrorf(opReduce, fmt.Errorf("%s' = %s expands to %s, want %s: %w",
				res.lumped.Name(i), q, back, d, ErrReductionInconsistency))
		}
		rhs[i] = q
	}

	return &Reduced{lumping: res, rhs: rhs}, nil
}

// LumpAndReduce runs Lump followed by Reduce.
func LumpAndReduce(ctx context.Context, sys *ode.System, cs *ode.ConstraintSet, opts ...Option) (*Reduced, error) {
	res, err := Lump(ctx, sys, cs, opts...)
	if err != nil {
		return nil, err
	}

	return Reduce(sys, res)
}

// Lumping returns the Result the system was built from.
func (r *Reduced) Lumping() *Result { return r.lumping }

// Ring returns the ring of the lumped variables.
func (r *Reduced) Ring() *poly.Ring { return r.lumping.lumped }

// Dim returns the number of lumped variables.
func (r *Reduced) Dim() int { return len(r.rhs) }

// RHS returns ẏ_{i+1} as a polynomial over the lumped ring.
func (r *Reduced) RHS(i int) poly.Polynomial { return r.rhs[i] }

// Equations returns a copy of every lumped right-hand side.
func (r *Reduced) Equations() []poly.Polynomial {
	out := make([]poly.Polynomial, len(r.rhs))
	copy(out, r.rhs)

	return out
}

// System returns the reduced model as an ode.System so it can be inspected,
// printed or lumped again like any input model.
func (r *Reduced) System() (*ode.System, error) {
	return ode.NewSystem(r.Ring(), r.rhs)
}

// String renders "y1' = g1\n" lines, each followed by the definition of the
// lumped variable, e.g. "y2' = 2*y2    # y2 = x2 + 2*x3".
func (r *Reduced) String() string {
	var sb strings.Builder
	for i, q := range r.rhs {
		fmt.Fprintf(&sb, "%s' = %s    # %s = %s\n", r.Ring().Name(i), q, r.Ring().Name(i), r.lumping.LumpedForm(i))
	}

	return sb.String()
}
