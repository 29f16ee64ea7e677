// SPDX-License-Identifier: MIT

package poly

import "math/big"

// Add returns p + q. Terms whose coefficients cancel are dropped.
// Complexity: O(|p| + |q|).
func Add(p, q Polynomial) Polynomial {
	mustMatch(p.ring, q.ring)
	out := p.ring.Zero()
	for _, t := range p.terms {
		out.accumulate(t.mono, t.coef)
	}
	for _, t := range q.terms {
		out.accumulate(t.mono, t.coef)
	}

	return out
}

// Sub returns p - q.
func Sub(p, q Polynomial) Polynomial {
	return Add(p, Neg(q))
}

// Neg returns -p.
func Neg(p Polynomial) Polynomial {
	return Scale(p, big.NewRat(-1, 1))
}

// Scale returns c·p. Scaling by zero yields the zero polynomial.
func Scale(p Polynomial, c *big.Rat) Polynomial {
	out := p.ring.Zero()
	if c.Sign() == 0 {
		return out
	}
	for _, t := range p.terms {
		out.accumulate(t.mono, new(big.Rat).Mul(t.coef, c))
	}

	return out
}

// Mul returns the product p·q.
// Complexity: O(|p|·|q|·n).
func Mul(p, q Polynomial) Polynomial {
	mustMatch(p.ring, q.ring)
	out := p.ring.Zero()
	prod := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			prod.Mul(a.coef, b.coef)
			out.accumulate(a.mono.Mul(b.mono), prod)
		}
	}

	return out
}

// Pow returns p^e by repeated squaring; p^0 is 1.
func Pow(p Polynomial, e uint) Polynomial {
	result := p.ring.Const(big.NewRat(1, 1))
	base := p
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base)
		}
	}

	return result
}

// CoefficientVector projects p onto an explicit monomial basis, zero-filling
// monomials absent from p. Terms of p outside basis are ignored; callers that
// need an exact projection must pass a basis covering p.Monomials().
func CoefficientVector(p Polynomial, basis []Monomial) []*big.Rat {
	out := make([]*big.Rat, len(basis))
	for i, m := range basis {
		out[i] = p.Coefficient(m)
	}

	return out
}

// MonomialUnion returns the sorted union of the monomials of ps.
func MonomialUnion(ps ...Polynomial) []Monomial {
	seen := make(map[string]bool)
	var out []Monomial
	for _, p := range ps {
		for key, t := range p.terms {
			if !seen[key] {
				seen[key] = true
				out = append(out, t.mono)
			}
		}
	}
	SortMonomials(out)

	return out
}

// FromTerms builds a polynomial from parallel monomial/coefficient slices.
// Repeated monomials are summed.
func FromTerms(ring *Ring, monos []Monomial, coefs []*big.Rat) (Polynomial, error) {
	if len(monos) != len(coefs) {
		return Polynomial{}, polyErrorf("FromTerms", ErrDimensionMismatch)
	}
	out := ring.Zero()
	for i, m := range monos {
		if len(m) != ring.Len() {
			return Polynomial{}, polyErrorf("FromTerms", ErrDimensionMismatch)
		}
		out.accumulate(m, coefs[i])
	}

	return out, nil
}
