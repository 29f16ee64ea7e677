// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlump/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_ZeroAndShape checks zero initialization and shape validation.
func TestNewDense_ZeroAndShape(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewDense(0, 4)
	require.NoError(t, err, "empty spans are legal")
	assert.Equal(t, 0, empty.Rows())
}

// TestDense_AtSetCopySemantics ensures At/Set never alias storage.
func TestDense_AtSetCopySemantics(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	x := big.NewRat(3, 4)
	require.NoError(t, m.Set(0, 0, x))
	x.SetInt64(9) // mutate caller value
	got, _ := m.At(0, 0)
	assert.Equal(t, "3/4", got.RatString())

	got.SetInt64(5) // mutate returned value
	again, _ := m.At(0, 0)
	assert.Equal(t, "3/4", again.RatString())

	_, err = m.At(1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, x), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilMatrix)
}

// TestNewDenseFrom_Ragged rejects rows of different lengths.
func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(2, 1)},
		{big.NewRat(1, 1)},
	})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDense_CloneIndependent verifies Clone is a deep copy.
func TestDense_CloneIndependent(t *testing.T) {
	m := MustDenseFrom(t, []string{"1", "2"}, []string{"3", "4"})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, big.NewRat(7, 1)))

	orig, _ := m.At(0, 0)
	assert.Equal(t, "1", orig.RatString())
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
