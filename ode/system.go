// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlump/poly"
)

// System is a polynomial ODE system ẋ_i = rhs[i](x). It is immutable after
// construction.
type System struct {
	ring *poly.Ring
	rhs  []poly.Polynomial // indexed by variable position
}

// NewSystem pairs every variable of ring with its right-hand side.
func NewSystem(ring *poly.Ring, rhs []poly.Polynomial) (*System, error) {
	if len(rhs) != ring.Len() {
		return nil, odeErrorf("NewSystem", fmt.Errorf("%d equations for %d variables: %w", len(rhs), ring.Len(), ErrEquationCount))
	}
	for i, f := range rhs {
		if !f.Ring().Equal(ring) {
			return nil, odeErrorf("NewSystem", fmt.Errorf("equation for %s: %w", ring.Name(i), ErrRingMismatch))
		}
	}
	out := make([]poly.Polynomial, len(rhs))
	copy(out, rhs)

	return &System{ring: ring, rhs: out}, nil
}

// ParseSystem builds a System from variable names in declaration order and a
// map from each name to its right-hand side expression.
func ParseSystem(names []string, equations map[string]string) (*System, error) {
	ring, err := poly.NewRing(names...)
	if err != nil {
		return nil, odeErrorf("ParseSystem", err)
	}
	if len(equations) != len(names) {
		return nil, odeErrorf("ParseSystem", fmt.Errorf("%d equations for %d variables: %w", len(equations), len(names), ErrEquationCount))
	}
	rhs := make([]poly.Polynomial, len(names))
	for i, name := range names {
		src, ok := equations[name]
		if !ok {
			return nil, odeErrorf("ParseSystem", fmt.Errorf("no equation for %s: %w", name, ErrEquationCount))
		}
		if rhs[i], err = poly.Parse(ring, src); err != nil {
			return nil, odeErrorf("ParseSystem", fmt.Errorf("equation for %s: %w", name, err))
		}
	}

	return &System{ring: ring, rhs: rhs}, nil
}

// Ring returns the ring of state variables.
func (s *System) Ring() *poly.Ring { return s.ring }

// Dim returns the number of state variables.
func (s *System) Dim() int { return len(s.rhs) }

// RHS returns the right-hand side of variable i.
func (s *System) RHS(i int) poly.Polynomial { return s.rhs[i] }

// Equations returns a copy of all right-hand sides in declaration order.
func (s *System) Equations() []poly.Polynomial {
	out := make([]poly.Polynomial, len(s.rhs))
	copy(out, s.rhs)

	return out
}

// Degree returns the maximal total degree over all right-hand sides.
func (s *System) Degree() int {
	d := -1
	for _, f := range s.rhs {
		if fd := f.Degree(); fd > d {
			d = fd
		}
	}

	return d
}

// Validate rejects right-hand sides with a constant term. Lumping needs
// f(0) = 0 so that every d/dt ℓ is a polynomial without constant part.
func (s *System) Validate() error {
	for i, f := range s.rhs {
		if f.ConstantTerm().Sign() != 0 {
			return odeErrorf("Validate", fmt.Errorf("equation for %s has constant term %s: %w",
				s.ring.Name(i), f.ConstantTerm().RatString(), ErrUnsupportedTermKind))
		}
	}

	return nil
}

// DerivativeOf returns d/dt ℓ(x) = Σ_j ℓ_j · f_j(x).
func (s *System) DerivativeOf(form poly.LinearForm) (poly.Polynomial, error) {
	if len(form) != len(s.rhs) {
		return poly.Polynomial{}, odeErrorf("DerivativeOf", ErrRingMismatch)
	}
	out := s.ring.Zero()
	for j, c := range form {
		if c.Sign() == 0 {
			continue
		}
		out = poly.Add(out, poly.Scale(s.rhs[j], c))
	}

	return out, nil
}

// String renders one "x' = f" line per variable.
func (s *System) String() string {
	var sb strings.Builder
	for i, f := range s.rhs {
		fmt.Fprintf(&sb, "%s' = %s\n", s.ring.Name(i), f)
	}

	return sb.String()
}

// jacEntry is one non-zero coefficient of J_m: ∂f_row/∂x_col has coefficient
// coef at monomial m.
type jacEntry struct {
	row, col int
	coef     *big.Rat
}

// Jacobian is the Jacobian matrix of a System split by monomial:
// J(x) = Σ_m m(x)·J_m with constant rational matrices J_m.
type Jacobian struct {
	n         int
	monomials []poly.Monomial // descending graded-lex
	entries   [][]jacEntry    // parallel to monomials
}

// Jacobian computes the monomial decomposition of the Jacobian of s.
// Complexity: O(n · Σ|f_j|).
func (s *System) Jacobian() *Jacobian {
	n := len(s.rhs)
	byKey := make(map[string]int)
	j := &Jacobian{n: n}
	for row, f := range s.rhs {
		for col := 0; col < n; col++ {
			f.Derivative(col).Each(func(m poly.Monomial, c *big.Rat) {
				key := m.Key()
				idx, ok := byKey[key]
				if !ok {
					idx = len(j.monomials)
					byKey[key] = idx
					j.monomials = append(j.monomials, m)
					j.entries = append(j.entries, nil)
				}
				j.entries[idx] = append(j.entries[idx], jacEntry{row: row, col: col, coef: c})
			})
		}
	}
	// canonical monomial order
	order := make([]int, len(j.monomials))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return j.monomials[order[a]].Compare(j.monomials[order[b]]) > 0
	})
	monos := make([]poly.Monomial, len(order))
	entries := make([][]jacEntry, len(order))
	for i, o := range order {
		monos[i], entries[i] = j.monomials[o], j.entries[o]
	}
	j.monomials, j.entries = monos, entries

	return j
}

// Monomials returns the monomials m with non-zero J_m, in canonical order.
func (j *Jacobian) Monomials() []poly.Monomial {
	out := make([]poly.Monomial, len(j.monomials))
	copy(out, j.monomials)

	return out
}

// Apply returns the non-zero row vectors ℓ·J_m in canonical monomial order.
// They are the coefficient vectors of the gradient of d/dt ℓ(x); any
// invariant subspace containing ℓ must contain all of them.
func (j *Jacobian) Apply(form poly.LinearForm) []poly.LinearForm {
	var out []poly.LinearForm
	prod := new(big.Rat)
	for _, entries := range j.entries {
		v := poly.NewLinearForm(j.n)
		for _, e := range entries {
			if form[e.row].Sign() == 0 {
				continue
			}
			prod.Mul(form[e.row], e.coef)
			v[e.col].Add(v[e.col], prod)
		}
		if !v.IsZero() {
			out = append(out, v)
		}
	}

	return out
}
