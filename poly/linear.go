// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strings"
)

// LinearForm is a homogeneous degree-1 polynomial stored densely: entry i is
// the coefficient of variable i. Constants never occur in this domain.
type LinearForm []*big.Rat

// NewLinearForm returns the zero form over n variables.
func NewLinearForm(n int) LinearForm {
	f := make(LinearForm, n)
	for i := range f {
		f[i] = new(big.Rat)
	}

	return f
}

// UnitForm returns the form x_i over n variables.
func UnitForm(n, i int) LinearForm {
	f := NewLinearForm(n)
	f[i].SetInt64(1)

	return f
}

// Clone returns a deep copy of f.
func (f LinearForm) Clone() LinearForm {
	out := make(LinearForm, len(f))
	for i, c := range f {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// IsZero reports whether every coefficient is zero.
func (f LinearForm) IsZero() bool {
	for _, c := range f {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports coefficient-wise equality.
func (f LinearForm) Equal(g LinearForm) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i].Cmp(g[i]) != 0 {
			return false
		}
	}

	return true
}

// Polynomial converts f into a polynomial over ring.
func (f LinearForm) Polynomial(ring *Ring) (Polynomial, error) {
	if len(f) != ring.Len() {
		return Polynomial{}, polyErrorf("LinearForm.Polynomial", ErrDimensionMismatch)
	}
	out := ring.Zero()
	for i, c := range f {
		m := ring.One()
		m[i] = 1
		out.accumulate(m, c)
	}

	return out, nil
}

// Format renders f with ring names, e.g. "x2 + 2*x3".
func (f LinearForm) Format(ring *Ring) string {
	p, err := f.Polynomial(ring)
	if err != nil {
		return "<" + err.Error() + ">"
	}

	return p.String()
}

// Strings returns the coefficients as rational strings ("1", "-2/3").
func (f LinearForm) Strings() []string {
	out := make([]string, len(f))
	for i, c := range f {
		out[i] = c.RatString()
	}

	return out
}

// String renders f as a bracketed coefficient row, e.g. "[0 1 2]".
func (f LinearForm) String() string {
	return "[" + strings.Join(f.Strings(), " ") + "]"
}

// LinearFormOf extracts the linear form of p. Any term of degree other than
// one fails with ErrNotLinear.
func LinearFormOf(p Polynomial) (LinearForm, error) {
	f := NewLinearForm(p.ring.Len())
	for _, t := range p.terms {
		if t.mono.Degree() != 1 {
			return nil, polyErrorf("LinearFormOf", ErrNotLinear)
		}
		for i, e := range t.mono {
			if e == 1 {
				f[i].Set(t.coef)
			}
		}
	}

	return f, nil
}

// LinearCombination returns Σ weights[i]·forms[i]. All forms must share one
// length; an empty input yields an empty form.
func LinearCombination(forms []LinearForm, weights []*big.Rat) (LinearForm, error) {
	if len(forms) != len(weights) {
		return nil, polyErrorf("LinearCombination", ErrDimensionMismatch)
	}
	if len(forms) == 0 {
		return LinearForm{}, nil
	}
	n := len(forms[0])
	out := NewLinearForm(n)
	prod := new(big.Rat)
	for k, f := range forms {
		if len(f) != n {
			return nil, polyErrorf("LinearCombination", ErrDimensionMismatch)
		}
		if weights[k].Sign() == 0 {
			continue
		}
		for i, c := range f {
			prod.Mul(c, weights[k])
			out[i].Add(out[i], prod)
		}
	}

	return out, nil
}
