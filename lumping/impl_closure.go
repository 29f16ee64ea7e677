// SPDX-License-Identifier: MIT

package lumping

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlump/matrix"
	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
)

const (
	opLump   = "Lump"
	opReduce = "Reduce"
)

// ErrNilInput indicates a nil system or constraint set.
var ErrNilInput = errors.New("lumping: nil system or constraint set")

// Lump computes the smallest subspace S ⊇ span(cs) such that the derivative
// of every form in S is a polynomial in a basis of S.
//
// Implementation:
//   - Stage 1: Validate the system (no constant terms) and the rings; seed S
//     with the RREF basis of the constraints.
//   - Stage 2: Each pass freezes a snapshot of S, names its rows y1..yk and
//     tests every row ℓ: is d/dt ℓ = Σ ℓ_j f_j a polynomial in y1..yk? The
//     test is a linear solve per homogeneous degree against the expanded
//     products of the snapshot rows.
//   - Stage 3: For a failing row, every vector ℓ·J_m of the Jacobian
//     decomposition J(x) = Σ_m m(x)·J_m is a direction that any invariant
//     subspace containing ℓ must hold. Directions outside S are appended in
//     row order, then in descending graded-lex monomial order.
//   - Stage 4: Stop at the first pass that appends nothing; its witnesses
//     certify every row of the final basis.
//
// Behavior highlights:
//   - Minimal: only directions forced by a failed membership test are added.
//   - Canonical: the final basis is the RREF of the closure, so it depends on
//     the span of the constraints only, not on their order or phrasing.
//   - WithWorkers runs the tests of one pass concurrently over the frozen
//     snapshot; merging is sequential in row order, so output never changes.
//
// Errors:
//   - ErrNilInput, ode.ErrRingMismatch, ode.ErrUnsupportedTermKind,
//     ode.ErrEmptyConstraintSet, ErrNoConvergence, ErrReductionInconsistency
//     (as *PassError), and the context error when ctx is done.
//
// Complexity:
//   - At most n+1 passes. A pass costs k membership solves per degree with
//     C(k+e-1, e) unknowns for degree e.
func Lump(ctx context.Context, sys *ode.System, cs *ode.ConstraintSet, opts ...Option) (*Result, error) {
	if sys == nil || cs == nil {
		return nil, lumpErrorf(opLump, ErrNilInput)
	}
	if !cs.Ring().Equal(sys.Ring()) {
		return nil, lumpErrorf(opLump, ode.ErrRingMismatch)
	}
	if err := sys.Validate(); err != nil {
		return nil, lumpErrorf(opLump, err)
	}
	seed, err := NewSubspace(sys.Dim(), cs.Forms()...)
	if err != nil {
		return nil, lumpErrorf(opLump, err)
	}
	if seed.Dim() == 0 {
		return nil, lumpErrorf(opLump, ode.ErrEmptyConstraintSet)
	}

	e := &engine{
		sys:  sys,
		jac:  sys.Jacobian(),
		opts: gatherOptions(opts...),
	}

	return e.run(ctx, seed)
}

type engine struct {
	sys  *ode.System
	jac  *ode.Jacobian
	opts Options
}

// membership is the outcome of testing one snapshot row.
type membership struct {
	contained  bool
	witness    poly.Polynomial   // over the snapshot ring, when contained
	directions []poly.LinearForm // ℓ·J_m candidates, when not
}

func (e *engine) run(ctx context.Context, seed Subspace) (*Result, error) {
	var (
		log    = e.opts.logger
		obs    = e.opts.observer
		start  = time.Now()
		cur    = seed
		passes int
	)
	log.Info("lumping started", "variables", e.sys.Dim(), "constraints", seed.Dim(), "degree", e.sys.Degree())

	for iter := 1; ; iter++ {
		if e.opts.maxPasses > 0 && iter > e.opts.maxPasses {
			return nil, lumpErrorf(opLump, fmt.Errorf("%d passes, dimension %d: %w", e.opts.maxPasses, cur.Dim(), ErrNoConvergence))
		}
		if err := ctx.Err(); err != nil {
			return nil, lumpErrorf(opLump, err)
		}

		obs.OnPassStart(ctx, &PassEvent{Pass: iter, Dim: cur.Dim()})
		log.Debug("pass started", "pass", iter, "dim", cur.Dim())

		yRing, outcomes, err := e.pass(ctx, iter, cur)
		if err != nil {
			return nil, lumpErrorf(opLump, err)
		}

		next, failed, added := cur, 0, 0
		for row, out := range outcomes {
			obs.OnMembership(ctx, &MembershipEvent{Pass: iter, Row: row, Form: cur.rows[row].Clone(), Contained: out.contained})
			if out.contained {
				continue
			}
			failed++
			for _, dir := range out.directions {
				var grew bool
				if next, grew = next.Extend(dir); !grew {
					continue
				}
				added++
				obs.OnDirectionAdded(ctx, &DirectionEvent{Pass: iter, Row: row, Form: dir.Clone(), Dim: next.Dim()})
				log.Debug("direction added", "pass", iter, "row", row, "form", dir.Format(e.sys.Ring()), "dim", next.Dim())
			}
		}

		if failed > 0 && added == 0 {
			return nil, lumpErrorf(opLump, &PassError{Pass: iter, Row: -1,
				Err: fmt.Errorf("%d failed membership tests without a new direction: %w", failed, ErrReductionInconsistency)})
		}
		if added > 0 {
			passes++
			cur = next

			continue
		}

		witnesses := make([]poly.Polynomial, len(outcomes))
		for i, out := range outcomes {
			witnesses[i] = out.witness
		}
		res := &Result{
			ring:       e.sys.Ring(),
			lumped:     yRing,
			basis:      cur,
			seed:       seed,
			witnesses:  witnesses,
			Passes:     passes,
			Iterations: iter,
		}
		elapsed := time.Since(start)
		obs.OnConverged(ctx, &ConvergedEvent{Dim: cur.Dim(), Passes: passes, Iterations: iter, Elapsed: elapsed})
		log.Info("lumping converged", "dim", cur.Dim(), "passes", passes, "iterations", iter, "elapsed", elapsed)

		return res, nil
	}
}

// pass tests every row of the frozen snapshot. Results are indexed by row.
func (e *engine) pass(ctx context.Context, iter int, snap Subspace) (*poly.Ring, []membership, error) {
	yRing, err := poly.IndexedRing(e.opts.prefix, snap.Dim(), false)
	if err != nil {
		return nil, nil, &PassError{Pass: iter, Row: -1, Err: err}
	}
	table, err := newProductTable(e.sys.Ring(), yRing, snap.rows, e.sys.Degree())
	if err != nil {
		return nil, nil, &PassError{Pass: iter, Row: -1, Err: err}
	}

	outcomes := make([]membership, snap.Dim())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for row := range snap.rows {
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := e.test(table, snap.rows[row])
			if err != nil {
				return &PassError{Pass: iter, Row: row, Err: err}
			}
			outcomes[row] = out

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return yRing, outcomes, nil
}

// test decides whether d/dt ℓ is a polynomial in the snapshot variables.
func (e *engine) test(table *productTable, form poly.LinearForm) (membership, error) {
	d, err := e.sys.DerivativeOf(form)
	if err != nil {
		return membership{}, err
	}
	witness := table.lumped.Zero()
	for _, deg := range d.Degrees() {
		w, ok, err := table.solve(deg, d.Homogeneous(deg))
		if err != nil {
			return membership{}, err
		}
		if !ok {
			return membership{directions: e.jac.Apply(form)}, nil
		}
		witness = poly.Add(witness, w)
	}

	return membership{contained: true, witness: witness}, nil
}

// productTable holds, for one snapshot, every product of basis rows up to the
// system degree, expanded over the original variables and laid out as one
// coefficient matrix per degree. It is read-only once built.
type productTable struct {
	lumped  *poly.Ring
	degrees []degreeBlock // index = degree
}

// degreeBlock is the matrix A whose column c is the expansion of the y-monomial
// yMonos[c], in the x-monomial basis xMonos.
type degreeBlock struct {
	yMonos []poly.Monomial
	xIndex map[string]int
	a      *matrix.Dense
}

func newProductTable(ring, lumped *poly.Ring, rows []poly.LinearForm, maxDeg int) (*productTable, error) {
	k := len(rows)
	images := make([]poly.Polynomial, k)
	for i, r := range rows {
		p, err := r.Polynomial(ring)
		if err != nil {
			return nil, err
		}
		images[i] = p
	}

	t := &productTable{lumped: lumped, degrees: make([]degreeBlock, maxDeg+1)}
	one := make(poly.Monomial, k)
	expanded := map[string]poly.Polynomial{one.Key(): ring.Const(big.NewRat(1, 1))}
	for deg := 1; deg <= maxDeg; deg++ {
		yMonos := poly.MonomialsOfDegree(k, deg)
		polys := make([]poly.Polynomial, len(yMonos))
		for c, m := range yMonos {
			// y^m = y_j · y^(m - e_j) for the first j with m_j > 0
			j := 0
			for m[j] == 0 {
				j++
			}
			prev := append(poly.Monomial(nil), m...)
			prev[j]--
			polys[c] = poly.Mul(images[j], expanded[prev.Key()])
			expanded[m.Key()] = polys[c]
		}

		xMonos := poly.MonomialUnion(polys...)
		a, err := matrix.NewDense(len(xMonos), len(yMonos))
		if err != nil {
			return nil, err
		}
		xIndex := make(map[string]int, len(xMonos))
		for r, m := range xMonos {
			xIndex[m.Key()] = r
		}
		for c, p := range polys {
			for r, v := range poly.CoefficientVector(p, xMonos) {
				if v.Sign() == 0 {
					continue
				}
				if err = a.Set(r, c, v); err != nil {
					return nil, err
				}
			}
		}
		t.degrees[deg] = degreeBlock{yMonos: yMonos, xIndex: xIndex, a: a}
	}

	return t, nil
}

// solve expresses the homogeneous polynomial target of degree deg as a
// combination of y-monomials. ok is false when no combination exists.
func (t *productTable) solve(deg int, target poly.Polynomial) (poly.Polynomial, bool, error) {
	if deg <= 0 || deg >= len(t.degrees) {
		return poly.Polynomial{}, false, fmt.Errorf("degree %d outside table: %w", deg, ErrReductionInconsistency)
	}
	blk := t.degrees[deg]
	b := matrix.NewVector(blk.a.Rows())
	outside := false
	target.Each(func(m poly.Monomial, c *big.Rat) {
		r, ok := blk.xIndex[m.Key()]
		if !ok {
			outside = true

			return
		}
		b[r].Set(c)
	})
	if outside {
		return poly.Polynomial{}, false, nil
	}

	x, err := matrix.Solve(blk.a, b)
	if errors.Is(err, matrix.ErrInconsistent) {
		return poly.Polynomial{}, false, nil
	}
	if err != nil {
		return poly.Polynomial{}, false, err
	}
	w, err := poly.FromTerms(t.lumped, blk.yMonos, x)
	if err != nil {
		return poly.Polynomial{}, false, err
	}

	return w, true, nil
}
