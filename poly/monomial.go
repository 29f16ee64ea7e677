// SPDX-License-Identifier: MIT

package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Monomial is an exponent vector; position i is the exponent of variable i.
// The all-zero monomial is the constant 1. Monomials handed out by this
// package are never mutated afterwards; treat them as read-only.
type Monomial []int

// Degree returns the total degree.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}

	return d
}

// IsConstant reports whether m is the constant monomial.
func (m Monomial) IsConstant() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}

	return true
}

// Mul returns the product m·o as a fresh monomial.
func (m Monomial) Mul(o Monomial) Monomial {
	out := make(Monomial, len(m))
	for i := range m {
		out[i] = m[i] + o[i]
	}

	return out
}

// Equal reports exponent-wise equality.
func (m Monomial) Equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}

	return true
}

// Key returns a stable map key for m.
func (m Monomial) Key() string {
	buf := make([]byte, 0, 2*len(m))
	for i, e := range m {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(e), 10)
	}

	return string(buf)
}

// Compare orders monomials graded-lexicographically: higher total degree
// first, then by exponent of the earliest variable. It returns +1 when m is
// greater than o, -1 when smaller and 0 when equal.
func (m Monomial) Compare(o Monomial) int {
	dm, do := m.Degree(), o.Degree()
	if dm != do {
		if dm > do {
			return 1
		}

		return -1
	}
	for i := range m {
		if m[i] != o[i] {
			if m[i] > o[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Format renders m with the names of ring, e.g. "x1^2*x3". The constant
// monomial renders as "1".
func (m Monomial) Format(ring *Ring) string {
	var parts []string
	for i, e := range m {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, ring.Name(i))
		default:
			parts = append(parts, ring.Name(i)+"^"+strconv.Itoa(e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "*")
}

// MonomialsOfDegree enumerates every monomial in n variables of total degree
// d, in descending graded-lexicographic order.
func MonomialsOfDegree(n, d int) []Monomial {
	var out []Monomial
	if n == 0 {
		if d == 0 {
			out = append(out, Monomial{})
		}

		return out
	}
	cur := make(Monomial, n)
	var rec func(pos, left int)
	rec = func(pos, left int) {
		if pos == n-1 {
			cur[pos] = left
			out = append(out, append(Monomial(nil), cur...))

			return
		}
		for e := left; e >= 0; e-- {
			cur[pos] = e
			rec(pos+1, left-e)
		}
	}
	rec(0, d)

	return out
}

// SortMonomials sorts ms in descending graded-lexicographic order in place.
func SortMonomials(ms []Monomial) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Compare(ms[j]) > 0 })
}
