// SPDX-License-Identifier: MIT

package lumping_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlump/lumping"
	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
)

// TestLump_Toy checks the two-row lumping of the quadratic toy model.
func TestLump_Toy(t *testing.T) {
	sys := toy(t)
	res, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Dim())
	assert.Equal(t, []string{"[1 0 0]", "[0 1 2]"}, rowStrings(res.Basis()))
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, "x2 + 2*x3", res.LumpedForm(1))
	assert.Equal(t, "y2^2", res.Witness(0).String())
	assert.Equal(t, "2*y2", res.Witness(1).String())
	assert.Equal(t, []string{"y1", "y2"}, res.Lumped().Names())

	red, err := lumping.Reduce(sys, res)
	require.NoError(t, err)
	assert.Equal(t, 2, red.Dim())
	assert.Equal(t, "y2^2", red.RHS(0).String())
	assert.Equal(t, "2*y2", red.RHS(1).String())
	assert.Equal(t, "y1' = y2^2    # y1 = x1\ny2' = 2*y2    # y2 = x2 + 2*x3\n", red.String())

	m := res.Matrix()
	require.Len(t, m, 2)
	assert.Equal(t, "2", m[1][2].RatString())
	m[1][2].SetInt64(5)
	assert.Equal(t, "[0 1 2]", res.Basis()[1].String(), "Matrix hands out copies")
}

// TestLump_CustomPrefix names lumped variables with the configured prefix.
func TestLump_CustomPrefix(t *testing.T) {
	sys := toy(t)
	red, err := lumping.LumpAndReduce(context.Background(), sys, constraints(t, sys, "{x1}"),
		lumping.WithVariablePrefix("z"))
	require.NoError(t, err)
	assert.Equal(t, "z2^2", red.RHS(0).String())

	rs, err := red.System()
	require.NoError(t, err)
	assert.Equal(t, []string{"z1", "z2"}, rs.Ring().Names())
}

// TestLump_Chain needs one pass per variable.
func TestLump_Chain(t *testing.T) {
	sys, err := ode.ParseSystem([]string{"a", "b", "c"}, map[string]string{"a": "b", "b": "c", "c": "0"})
	require.NoError(t, err)

	red, err := lumping.LumpAndReduce(context.Background(), sys, constraints(t, sys, "a"))
	require.NoError(t, err)
	res := red.Lumping()
	assert.Equal(t, 3, res.Dim())
	assert.Equal(t, 2, res.Passes)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, []string{"y2", "y3", "0"}, []string{red.RHS(0).String(), red.RHS(1).String(), red.RHS(2).String()})
}

// TestLump_Degenerate covers a seed that spans the whole space.
func TestLump_Degenerate(t *testing.T) {
	sys := toy(t)
	red, err := lumping.LumpAndReduce(context.Background(), sys, constraints(t, sys, "{x1}", "{x2}", "{x3}"))
	require.NoError(t, err)
	assert.Equal(t, 0, red.Lumping().Passes)
	require.Equal(t, 3, red.Dim())
	for i := 0; i < 3; i++ {
		want := strings.ReplaceAll(sys.RHS(i).String(), "x", "y")
		assert.Equal(t, want, red.RHS(i).String(), "y%d", i+1)
	}
}

// TestLump_Star is the 16-vertex network scenario with constraint {S0}.
func TestLump_Star(t *testing.T) {
	sys := star(t, 15)
	require.Equal(t, 16, sys.Dim())

	red, err := lumping.LumpAndReduce(context.Background(), sys, constraints(t, sys, "{S0}"))
	require.NoError(t, err)
	res := red.Lumping()
	assert.Equal(t, 2, res.Dim())
	assert.Equal(t, "S0", res.LumpedForm(0))
	assert.True(t, strings.HasPrefix(res.LumpedForm(1), "S1 + S2 + "))
	assert.Equal(t, "y2", red.RHS(0).String())
	assert.Equal(t, "15*y1", red.RHS(1).String())
}

// TestLump_Containment keeps every constraint inside the lumping.
func TestLump_Containment(t *testing.T) {
	sys := toy(t)
	cs := constraints(t, sys, "x2 + 2*x3", "{x1, x3}")
	res, err := lumping.Lump(context.Background(), sys, cs)
	require.NoError(t, err)
	for _, f := range cs.Forms() {
		assert.True(t, res.Subspace().Contains(f), f.Format(sys.Ring()))
	}
	_, err = lumping.Reduce(sys, res)
	assert.NoError(t, err)
}

// TestLump_InvariantSeed needs no new direction at all.
func TestLump_InvariantSeed(t *testing.T) {
	sys := toy(t)
	res, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "x2 + 2*x3"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Dim())
	assert.Equal(t, "2*y1", res.Witness(0).String())
	assert.Equal(t, 0, res.Passes)
	assert.Equal(t, 1, res.Iterations)
}

// TestLump_Determinism compares repeated runs and equivalent phrasings.
func TestLump_Determinism(t *testing.T) {
	sys := toy(t)
	first, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"))
	require.NoError(t, err)
	for _, spec := range []string{"{x1}", "3*x1", "-1/2*x1"} {
		again, err := lumping.Lump(context.Background(), sys, constraints(t, sys, spec))
		require.NoError(t, err)
		assert.Equal(t, rowStrings(first.Basis()), rowStrings(again.Basis()), spec)
	}
}

// TestLump_Idempotent reruns the closure on a converged basis.
func TestLump_Idempotent(t *testing.T) {
	for name, sys := range map[string]*ode.System{"toy": toy(t), "star": star(t, 15)} {
		seed := "{x1}"
		if name == "star" {
			seed = "{S0}"
		}
		res, err := lumping.Lump(context.Background(), sys, constraints(t, sys, seed))
		require.NoError(t, err, name)

		cs, err := ode.NewConstraintSet(sys.Ring(), res.Basis())
		require.NoError(t, err, name)
		again, err := lumping.Lump(context.Background(), sys, cs)
		require.NoError(t, err, name)
		assert.Equal(t, 0, again.Passes, name)
		assert.Equal(t, 1, again.Iterations, name)
		assert.Equal(t, rowStrings(res.Basis()), rowStrings(again.Basis()), name)
	}
}

// TestLump_Minimality checks that every added direction follows a failed
// membership test of the same row in the same pass.
func TestLump_Minimality(t *testing.T) {
	type key struct{ pass, row int }
	failed := map[key]bool{}
	var added, passes, converged int

	hooks := lumping.Hooks{
		PassStart: func(_ context.Context, e *lumping.PassEvent) { passes++ },
		Membership: func(_ context.Context, e *lumping.MembershipEvent) {
			if !e.Contained {
				failed[key{e.Pass, e.Row}] = true
			}
		},
		DirectionAdded: func(_ context.Context, e *lumping.DirectionEvent) {
			added++
			assert.True(t, failed[key{e.Pass, e.Row}], "direction without failed test: pass %d row %d", e.Pass, e.Row)
		},
		Converged: func(_ context.Context, e *lumping.ConvergedEvent) {
			converged++
			assert.Equal(t, 2, e.Dim)
		},
	}
	sys := toy(t)
	res, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"), lumping.WithObserver(hooks))
	require.NoError(t, err)

	assert.Equal(t, 1, added)
	assert.Equal(t, 2, passes)
	assert.Equal(t, 1, converged)
	assert.Equal(t, res.Dim()-len(res.Constraints()), added)
}

// TestLump_ParallelMatchesSequential runs with several workers.
func TestLump_ParallelMatchesSequential(t *testing.T) {
	for _, sys := range []*ode.System{toy(t), star(t, 15)} {
		seed := sys.Ring().Name(0)
		seq, err := lumping.Lump(context.Background(), sys, constraints(t, sys, seed))
		require.NoError(t, err)
		par, err := lumping.Lump(context.Background(), sys, constraints(t, sys, seed), lumping.WithWorkers(4))
		require.NoError(t, err)

		assert.Equal(t, rowStrings(seq.Basis()), rowStrings(par.Basis()))
		for i := 0; i < seq.Dim(); i++ {
			assert.Equal(t, seq.Witness(i).String(), par.Witness(i).String())
		}
	}
}

// TestLump_Errors covers rejected inputs.
func TestLump_Errors(t *testing.T) {
	ctx := context.Background()
	sys := toy(t)

	withConst, err := ode.ParseSystem([]string{"x"}, map[string]string{"x": "x^2 + 1"})
	require.NoError(t, err)
	_, err = lumping.Lump(ctx, withConst, constraints(t, withConst, "x"))
	assert.ErrorIs(t, err, ode.ErrUnsupportedTermKind)

	other, err := ode.ConstraintsFromStrings(poly.MustRing("a", "b", "c"), []string{"a"})
	require.NoError(t, err)
	_, err = lumping.Lump(ctx, sys, other)
	assert.ErrorIs(t, err, ode.ErrRingMismatch)

	_, err = lumping.Lump(ctx, nil, other)
	assert.ErrorIs(t, err, lumping.ErrNilInput)

	_, err = lumping.Reduce(sys, nil)
	assert.ErrorIs(t, err, lumping.ErrNilInput)

	res, err := lumping.Lump(ctx, sys, constraints(t, sys, "{x1}"))
	require.NoError(t, err)
	_, err = lumping.Reduce(star(t, 2), res)
	assert.ErrorIs(t, err, lumping.ErrBasisMismatch)
}

// TestLump_MaxPasses stops before the confirming pass.
func TestLump_MaxPasses(t *testing.T) {
	sys := toy(t)
	_, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"), lumping.WithMaxPasses(1))
	assert.ErrorIs(t, err, lumping.ErrNoConvergence)

	res, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"), lumping.WithMaxPasses(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Dim())
}

// TestLump_Canceled honours a done context.
func TestLump_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sys := toy(t)
	_, err := lumping.Lump(ctx, sys, constraints(t, sys, "{x1}"))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOptions_Panics rejects nonsensical option values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { lumping.WithWorkers(0) })
	assert.Panics(t, func() { lumping.WithMaxPasses(0) })
	assert.Panics(t, func() { lumping.WithVariablePrefix("") })
	assert.Panics(t, func() { lumping.WithVariablePrefix("1y") })
	assert.NotPanics(t, func() { lumping.WithVariablePrefix("u_") })
}

// TestValidatePrefix mirrors the WithVariablePrefix panic rule as an error.
func TestValidatePrefix(t *testing.T) {
	for _, bad := range []string{"", "1y", "y-", "y z"} {
		err := lumping.ValidatePrefix(bad)
		assert.ErrorIs(t, err, lumping.ErrInvalidPrefix, bad)
		assert.Panics(t, func() { lumping.WithVariablePrefix(bad) }, bad)
	}
	for _, good := range []string{"y", "z", "u_", "_k2"} {
		assert.NoError(t, lumping.ValidatePrefix(good), good)
	}
}

// TestObservers_FanOut delivers events to every non-nil observer.
func TestObservers_FanOut(t *testing.T) {
	var a, b int
	obs := lumping.Observers(
		lumping.Hooks{Converged: func(context.Context, *lumping.ConvergedEvent) { a++ }},
		nil,
		lumping.Hooks{Converged: func(context.Context, *lumping.ConvergedEvent) { b++ }},
	)
	sys := toy(t)
	_, err := lumping.Lump(context.Background(), sys, constraints(t, sys, "{x1}"), lumping.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
