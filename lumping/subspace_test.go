// SPDX-License-Identifier: MIT

package lumping_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlump/lumping"
	"github.com/katalvlaran/lvlump/matrix"
	"github.com/katalvlaran/lvlump/poly"
)

func TestNewSubspace_Canonical(t *testing.T) {
	s, err := lumping.NewSubspace(3, lf(2, 2, 0), lf(1, 1, 0), lf(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dim())
	assert.Equal(t, 3, s.Ambient())
	assert.Equal(t, []string{"[1 1 0]"}, rowStrings(s.Rows()))
	assert.Equal(t, []int{0}, s.Pivots())

	empty, err := lumping.NewSubspace(3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Dim())
	assert.True(t, empty.Contains(lf(0, 0, 0)))
	assert.False(t, empty.Contains(lf(0, 1, 0)))

	_, err = lumping.NewSubspace(2, lf(1, 0, 0))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSubspace_ReduceContains(t *testing.T) {
	s, err := lumping.NewSubspace(3, lf(1, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, "[0 -1 3]", s.Reduce(lf(1, 0, 3)).String())
	assert.True(t, s.Contains(lf(-3, -3, 0)))
	assert.False(t, s.Contains(lf(1, 0, 0)))

	assert.Panics(t, func() { s.Contains(lf(1, 1)) })
}

func TestSubspace_ExtendIsValue(t *testing.T) {
	s, err := lumping.NewSubspace(3, lf(1, 1, 0))
	require.NoError(t, err)

	next, grew := s.Extend(lf(0, 1, 0))
	require.True(t, grew)
	assert.Equal(t, []string{"[1 0 0]", "[0 1 0]"}, rowStrings(next.Rows()))
	assert.Equal(t, 1, s.Dim(), "receiver unchanged")
	assert.True(t, next.ContainsAll(s))
	assert.False(t, s.ContainsAll(next))

	same, grew := next.Extend(lf(2, 5, 0))
	assert.False(t, grew)
	assert.Equal(t, rowStrings(next.Rows()), rowStrings(same.Rows()))

	// Rows hands out copies
	rows := next.Rows()
	rows[0][0].SetInt64(7)
	assert.Equal(t, "[1 0 0]", next.Rows()[0].String())
}

func TestSubspace_ReduceClearsPivots(t *testing.T) {
	s, err := lumping.NewSubspace(4, lf(2, 0, 1, 0), lf(0, 3, 0, 1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, s.Pivots())
	assert.Equal(t, []string{"[1 0 1/2 0]", "[0 1 0 1/3]"}, rowStrings(s.Rows()))

	v := lf(4, 6, 1, 5)
	r := s.Reduce(v)
	assert.Equal(t, "[0 0 -1 3]", r.String())
	assert.Equal(t, "[4 6 1 5]", v.String(), "input untouched")

	// v - r lies in the span
	diff, err := poly.LinearCombination([]poly.LinearForm{v, r}, []*big.Rat{big.NewRat(1, 1), big.NewRat(-1, 1)})
	require.NoError(t, err)
	assert.True(t, s.Contains(diff))
	assert.False(t, s.Contains(v))
}
