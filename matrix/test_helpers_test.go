// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for exact-matrix tests.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlump/matrix"
	"github.com/stretchr/testify/require"
)

// rat parses "p/q" or an integer literal; fails the test on bad input.
func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	v, ok := new(big.Rat).SetString(s)
	require.Truef(t, ok, "bad rational literal %q", s)

	return v
}

// vec builds a Vector from rational literals.
func vec(t *testing.T, entries ...string) matrix.Vector {
	t.Helper()
	out := make(matrix.Vector, len(entries))
	for i, s := range entries {
		out[i] = rat(t, s)
	}

	return out
}

// MustDenseFrom builds a Dense from rows of rational literals.
func MustDenseFrom(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	data := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		data[i] = vec(t, r...)
	}
	m, err := matrix.NewDenseFrom(data)
	require.NoError(t, err)

	return m
}

// strs renders a vector as rational strings for compact assertions.
func strs(v matrix.Vector) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.RatString()
	}

	return out
}

// mulVec computes m·x entry by entry through the public accessors.
func mulVec(t *testing.T, m *matrix.Dense, x matrix.Vector) matrix.Vector {
	t.Helper()
	require.Len(t, x, m.Cols())
	y := matrix.NewVector(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, err := m.At(i, j)
			require.NoError(t, err)
			y[i].Add(y[i], a.Mul(a, x[j]))
		}
	}

	return y
}
