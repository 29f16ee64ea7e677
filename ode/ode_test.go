// SPDX-License-Identifier: MIT

package ode_test

import (
	"testing"

	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toySystem is ẋ1 = (x2+2x3)², ẋ2 = 4x3 − 2x1, ẋ3 = x1 + x2.
func toySystem(t *testing.T) *ode.System {
	t.Helper()
	sys, err := ode.ParseSystem([]string{"x1", "x2", "x3"}, map[string]string{
		"x1": "x2^2 + 4*x2*x3 + 4*x3^2",
		"x2": "4*x3 - 2*x1",
		"x3": "x1 + x2",
	})
	require.NoError(t, err)

	return sys
}

// TestParseSystem_Basic checks indexing and degree.
func TestParseSystem_Basic(t *testing.T) {
	sys := toySystem(t)
	assert.Equal(t, 3, sys.Dim())
	assert.Equal(t, 2, sys.Degree())
	assert.Equal(t, "-2*x1 + 4*x3", sys.RHS(1).String())
	assert.NoError(t, sys.Validate())
	assert.Equal(t, "x1' = x2^2 + 4*x2*x3 + 4*x3^2\nx2' = -2*x1 + 4*x3\nx3' = x1 + x2\n", sys.String())
}

// TestParseSystem_Errors covers missing equations and malformed input.
func TestParseSystem_Errors(t *testing.T) {
	_, err := ode.ParseSystem([]string{"x", "y"}, map[string]string{"x": "y"})
	assert.ErrorIs(t, err, ode.ErrEquationCount)

	_, err = ode.ParseSystem([]string{"x", "y"}, map[string]string{"x": "y", "z": "x"})
	assert.ErrorIs(t, err, ode.ErrEquationCount)

	_, err = ode.ParseSystem([]string{"x"}, map[string]string{"x": "x /"})
	assert.ErrorIs(t, err, poly.ErrMalformedPolynomial)

	_, err = ode.ParseSystem([]string{"x", "x"}, map[string]string{"x": "x"})
	assert.ErrorIs(t, err, poly.ErrDuplicateVariable)
}

// TestNewSystem_RingMismatch rejects foreign polynomials.
func TestNewSystem_RingMismatch(t *testing.T) {
	r := poly.MustRing("x")
	other := poly.MustRing("y")
	_, err := ode.NewSystem(r, []poly.Polynomial{other.VarAt(0)})
	assert.ErrorIs(t, err, ode.ErrRingMismatch)

	_, err = ode.NewSystem(r, nil)
	assert.ErrorIs(t, err, ode.ErrEquationCount)
}

// TestValidate_ConstantTerm rejects non-homogeneous right-hand sides.
func TestValidate_ConstantTerm(t *testing.T) {
	sys, err := ode.ParseSystem([]string{"x"}, map[string]string{"x": "x + 1"})
	require.NoError(t, err)
	assert.ErrorIs(t, sys.Validate(), ode.ErrUnsupportedTermKind)
}

// TestDerivativeOf substitutes the right-hand sides into a linear form.
func TestDerivativeOf(t *testing.T) {
	sys := toySystem(t)
	r := sys.Ring()
	f, err := poly.LinearFormOf(poly.MustParse(r, "x2 + 2*x3"))
	require.NoError(t, err)

	d, err := sys.DerivativeOf(f)
	require.NoError(t, err)
	assert.Equal(t, "2*x2 + 4*x3", d.String())

	_, err = sys.DerivativeOf(poly.NewLinearForm(2))
	assert.ErrorIs(t, err, ode.ErrRingMismatch)
}

// TestJacobian_Apply returns the gradient directions of d/dt ℓ.
func TestJacobian_Apply(t *testing.T) {
	sys := toySystem(t)
	jac := sys.Jacobian()

	monos := jac.Monomials()
	require.Len(t, monos, 3)
	assert.Equal(t, "x2", monos[0].Format(sys.Ring()))
	assert.Equal(t, "x3", monos[1].Format(sys.Ring()))
	assert.Equal(t, "1", monos[2].Format(sys.Ring()))

	dirs := jac.Apply(poly.UnitForm(3, 0))
	require.Len(t, dirs, 2, "constant part of ∂f1 is zero")
	assert.Equal(t, "[0 2 4]", dirs[0].String())
	assert.Equal(t, "[0 4 8]", dirs[1].String())

	dirs = jac.Apply(poly.UnitForm(3, 1))
	require.Len(t, dirs, 1)
	assert.Equal(t, "[-2 0 4]", dirs[0].String())
}

// TestConstraintSet_DropsDependent keeps input order and records drops.
func TestConstraintSet_DropsDependent(t *testing.T) {
	r := poly.MustRing("a", "b", "c")
	cs, err := ode.ConstraintsFromStrings(r, []string{"a + b", "{c}", "2*a + 2*b", "a + b + c", "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, cs.Len())
	assert.Equal(t, []int{2, 3}, cs.Dropped())

	forms := cs.Forms()
	assert.Equal(t, "a + b", forms[0].Format(r))
	assert.Equal(t, "c", forms[1].Format(r))
	assert.Equal(t, "b", forms[2].Format(r))

	// returned forms are copies
	forms[0][0].SetInt64(9)
	assert.Equal(t, "a + b", cs.Forms()[0].Format(r))
}

// TestConstraintSet_Strict rejects the first dependent row.
func TestConstraintSet_Strict(t *testing.T) {
	r := poly.MustRing("a", "b")
	_, err := ode.ConstraintsFromBlocks(r, [][]string{{"a", "b"}, {"b", "a"}}, ode.Strict())
	assert.ErrorIs(t, err, ode.ErrDependentConstraints)

	cs, err := ode.ConstraintsFromBlocks(r, [][]string{{"a", "b"}, {"a"}}, ode.Strict())
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Len())
}

// TestConstraintSet_Empty covers empty and all-zero inputs.
func TestConstraintSet_Empty(t *testing.T) {
	r := poly.MustRing("a", "b")
	_, err := ode.NewConstraintSet(r, nil)
	assert.ErrorIs(t, err, ode.ErrEmptyConstraintSet)

	_, err = ode.NewConstraintSet(r, []poly.LinearForm{poly.NewLinearForm(2)})
	assert.ErrorIs(t, err, ode.ErrEmptyConstraintSet)

	_, err = ode.NewConstraintSet(r, []poly.LinearForm{poly.NewLinearForm(3)})
	assert.ErrorIs(t, err, ode.ErrRingMismatch)
}

// TestConstraintsFromStrings_Errors covers malformed specs.
func TestConstraintsFromStrings_Errors(t *testing.T) {
	r := poly.MustRing("a", "b")
	cases := map[string]error{
		"{a, }":  ode.ErrBadBlock,
		"{a":     ode.ErrBadBlock,
		"{}":     ode.ErrBadBlock,
		"{z}":    poly.ErrUnknownVariable,
		"a*b":    ode.ErrUnsupportedTermKind,
		"a + 1":  ode.ErrUnsupportedTermKind,
		"a + +":  poly.ErrMalformedPolynomial,
		"a + zz": poly.ErrUnknownVariable,
	}
	for spec, want := range cases {
		_, err := ode.ConstraintsFromStrings(r, []string{spec})
		assert.ErrorIs(t, err, want, spec)
	}
}

// TestParseBlock recognizes partition notation.
func TestParseBlock(t *testing.T) {
	names, ok, err := ode.ParseBlock(" { x1 ,x2 } ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"x1", "x2"}, names)

	_, ok, err = ode.ParseBlock("x1 + x2")
	require.NoError(t, err)
	assert.False(t, ok)
}
