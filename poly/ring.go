// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// Ring is the immutable context shared by every polynomial over the same
// ordered set of variables. Variable order is declaration order and fixes the
// canonical monomial ordering.
type Ring struct {
	names []string       // declaration order
	index map[string]int // name -> position in names
}

// NewRing builds a Ring over the given variable names.
// Names must be valid identifiers (letter or '_' followed by letters, digits
// or '_') and pairwise distinct.
func NewRing(names ...string) (*Ring, error) {
	r := &Ring{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if !isIdentifier(name) {
			return nil, polyErrorf("NewRing", fmt.Errorf("%q: %w", name, ErrInvalidVariable))
		}
		if _, dup := r.index[name]; dup {
			return nil, polyErrorf("NewRing", fmt.Errorf("%q: %w", name, ErrDuplicateVariable))
		}
		r.names[i] = name
		r.index[name] = i
	}

	return r, nil
}

// MustRing is NewRing that panics on error. Intended for tests and examples
// with literal variable lists.
func MustRing(names ...string) *Ring {
	r, err := NewRing(names...)
	if err != nil {
		panic(err)
	}

	return r
}

// IndexedRing returns a ring over prefix1..prefixN (prefix0.. when zeroBased).
func IndexedRing(prefix string, n int, zeroBased bool) (*Ring, error) {
	names := make([]string, n)
	offset := 1
	if zeroBased {
		offset = 0
	}
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i+offset)
	}

	return NewRing(names...)
}

// Len returns the number of variables.
func (r *Ring) Len() int { return len(r.names) }

// Name returns the name of the i-th variable.
func (r *Ring) Name(i int) string { return r.names[i] }

// Names returns a copy of the variable names in declaration order.
func (r *Ring) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Index resolves a variable name to its position.
func (r *Ring) Index(name string) (int, bool) {
	i, ok := r.index[name]

	return i, ok
}

// Equal reports whether both rings declare the same names in the same order.
func (r *Ring) Equal(o *Ring) bool {
	if r == o {
		return true
	}
	if r == nil || o == nil || len(r.names) != len(o.names) {
		return false
	}
	for i := range r.names {
		if r.names[i] != o.names[i] {
			return false
		}
	}

	return true
}

// String renders the ring as "QQ[x1, x2, ...]".
func (r *Ring) String() string {
	return "QQ[" + strings.Join(r.names, ", ") + "]"
}

// Zero returns the additive identity of the ring.
func (r *Ring) Zero() Polynomial {
	return Polynomial{ring: r, terms: map[string]term{}}
}

// Const returns the constant polynomial c.
func (r *Ring) Const(c *big.Rat) Polynomial {
	p := r.Zero()
	p.accumulate(r.One(), c)

	return p
}

// One returns the constant monomial (all exponents zero).
func (r *Ring) One() Monomial {
	return make(Monomial, len(r.names))
}

// VarAt returns the polynomial x_i.
func (r *Ring) VarAt(i int) Polynomial {
	m := r.One()
	m[i] = 1
	p := r.Zero()
	p.accumulate(m, big.NewRat(1, 1))

	return p
}

// Var returns the polynomial for the named variable.
func (r *Ring) Var(name string) (Polynomial, error) {
	i, ok := r.index[name]
	if !ok {
		return Polynomial{}, polyErrorf("Var", fmt.Errorf("%q: %w", name, ErrUnknownVariable))
	}

	return r.VarAt(i), nil
}

// Vars returns x_1..x_n as polynomials, in declaration order.
func (r *Ring) Vars() []Polynomial {
	out := make([]Polynomial, len(r.names))
	for i := range out {
		out[i] = r.VarAt(i)
	}

	return out
}

// mustMatch panics when a and b are different rings.
func mustMatch(a, b *Ring) {
	if !a.Equal(b) {
		panic(panicRingMismatch)
	}
}

// isIdentifier reports whether s is [A-Za-z_][A-Za-z0-9_]*.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
