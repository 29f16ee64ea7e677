// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// term is one monomial with its non-zero coefficient.
type term struct {
	mono Monomial
	coef *big.Rat
}

// Polynomial is a canonical sparse polynomial over a Ring. The zero value is
// not usable; obtain polynomials from a Ring, Parse or the operations below.
type Polynomial struct {
	ring  *Ring
	terms map[string]term // Monomial.Key() -> term, zero coefficients never stored
}

// accumulate adds c·m in place. Only used while building a fresh value.
func (p *Polynomial) accumulate(m Monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	key := m.Key()
	if t, ok := p.terms[key]; ok {
		sum := new(big.Rat).Add(t.coef, c)
		if sum.Sign() == 0 {
			delete(p.terms, key)

			return
		}
		p.terms[key] = term{mono: t.mono, coef: sum}

		return
	}
	p.terms[key] = term{mono: append(Monomial(nil), m...), coef: new(big.Rat).Set(c)}
}

// Ring returns the ring p lives in.
func (p Polynomial) Ring() *Ring { return p.ring }

// Len returns the number of non-zero terms.
func (p Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree of p; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	d := -1
	for _, t := range p.terms {
		if md := t.mono.Degree(); md > d {
			d = md
		}
	}

	return d
}

// Coefficient returns a copy of the coefficient of m (zero when absent).
func (p Polynomial) Coefficient(m Monomial) *big.Rat {
	if t, ok := p.terms[m.Key()]; ok {
		return new(big.Rat).Set(t.coef)
	}

	return new(big.Rat)
}

// ConstantTerm returns the coefficient of the constant monomial.
func (p Polynomial) ConstantTerm() *big.Rat {
	return p.Coefficient(p.ring.One())
}

// Monomials returns the monomials of p in descending graded-lexicographic order.
func (p Polynomial) Monomials() []Monomial {
	out := make([]Monomial, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t.mono)
	}
	SortMonomials(out)

	return out
}

// Each visits every term in descending graded-lexicographic order. The
// callback receives copies and may keep them.
func (p Polynomial) Each(fn func(m Monomial, c *big.Rat)) {
	for _, m := range p.Monomials() {
		t := p.terms[m.Key()]
		fn(append(Monomial(nil), t.mono...), new(big.Rat).Set(t.coef))
	}
}

// Degrees returns the distinct total degrees present in p, ascending.
func (p Polynomial) Degrees() []int {
	seen := make(map[int]bool)
	maxDeg := -1
	for _, t := range p.terms {
		d := t.mono.Degree()
		seen[d] = true
		if d > maxDeg {
			maxDeg = d
		}
	}
	var out []int
	for d := 0; d <= maxDeg; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}

	return out
}

// Homogeneous returns the degree-d homogeneous component of p.
func (p Polynomial) Homogeneous(d int) Polynomial {
	out := p.ring.Zero()
	for _, t := range p.terms {
		if t.mono.Degree() == d {
			out.accumulate(t.mono, t.coef)
		}
	}

	return out
}

// Equal reports whether p and q are the same polynomial over the same ring.
func (p Polynomial) Equal(q Polynomial) bool {
	if !p.ring.Equal(q.ring) || len(p.terms) != len(q.terms) {
		return false
	}
	for key, t := range p.terms {
		u, ok := q.terms[key]
		if !ok || t.coef.Cmp(u.coef) != 0 {
			return false
		}
	}

	return true
}

// Derivative returns ∂p/∂x_i.
func (p Polynomial) Derivative(i int) Polynomial {
	out := p.ring.Zero()
	for _, t := range p.terms {
		e := t.mono[i]
		if e == 0 {
			continue
		}
		m := append(Monomial(nil), t.mono...)
		m[i] = e - 1
		out.accumulate(m, new(big.Rat).Mul(t.coef, big.NewRat(int64(e), 1)))
	}

	return out
}

// Eval evaluates p exactly at point (one value per ring variable).
func (p Polynomial) Eval(point []*big.Rat) (*big.Rat, error) {
	if len(point) != p.ring.Len() {
		return nil, polyErrorf("Eval", ErrDimensionMismatch)
	}
	sum := new(big.Rat)
	for _, t := range p.terms {
		v := new(big.Rat).Set(t.coef)
		for i, e := range t.mono {
			for k := 0; k < e; k++ {
				v.Mul(v, point[i])
			}
		}
		sum.Add(sum, v)
	}

	return sum, nil
}

// Substitute replaces every variable x_i of p with images[i] and expands.
// All images must share one target ring, which becomes the ring of the result.
func (p Polynomial) Substitute(images []Polynomial) (Polynomial, error) {
	if len(images) != p.ring.Len() || len(images) == 0 {
		return Polynomial{}, polyErrorf("Substitute", ErrDimensionMismatch)
	}
	target := images[0].ring
	for _, img := range images[1:] {
		if !img.ring.Equal(target) {
			return Polynomial{}, polyErrorf("Substitute", ErrDimensionMismatch)
		}
	}
	// powers[i][e] caches images[i]^e
	powers := make([][]Polynomial, len(images))
	out := target.Zero()
	for _, m := range p.Monomials() {
		acc := target.Const(big.NewRat(1, 1))
		for i, e := range m {
			if e == 0 {
				continue
			}
			for len(powers[i]) <= e {
				if len(powers[i]) == 0 {
					powers[i] = append(powers[i], target.Const(big.NewRat(1, 1)))

					continue
				}
				powers[i] = append(powers[i], Mul(powers[i][len(powers[i])-1], images[i]))
			}
			acc = Mul(acc, powers[i][e])
		}
		out = Add(out, Scale(acc, p.terms[m.Key()].coef))
	}

	return out, nil
}

// String renders p deterministically, leading term first, e.g.
// "x2^2 + 4*x2*x3 - 1/2*x3". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.ring == nil || len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for idx, m := range p.Monomials() {
		c := p.terms[m.Key()].coef
		neg := c.Sign() < 0
		abs := new(big.Rat).Abs(c)
		switch {
		case idx == 0 && neg:
			sb.WriteString("-")
		case idx > 0 && neg:
			sb.WriteString(" - ")
		case idx > 0:
			sb.WriteString(" + ")
		}
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case m.IsConstant():
			sb.WriteString(abs.RatString())
		case one:
			sb.WriteString(m.Format(p.ring))
		default:
			fmt.Fprintf(&sb, "%s*%s", abs.RatString(), m.Format(p.ring))
		}
	}

	return sb.String()
}
