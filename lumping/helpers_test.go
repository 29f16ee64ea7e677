// SPDX-License-Identifier: MIT

package lumping_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
)

// lf builds a linear form from integer coefficients.
func lf(vals ...int64) poly.LinearForm {
	f := poly.NewLinearForm(len(vals))
	for i, v := range vals {
		f[i].SetInt64(v)
	}

	return f
}

func rowStrings(forms []poly.LinearForm) []string {
	out := make([]string, len(forms))
	for i, f := range forms {
		out[i] = f.String()
	}

	return out
}

// toy is ẋ1 = (x2+2x3)², ẋ2 = 4x3 − 2x1, ẋ3 = x1 + x2.
func toy(t testing.TB) *ode.System {
	t.Helper()
	sys, err := ode.ParseSystem([]string{"x1", "x2", "x3"}, map[string]string{
		"x1": "x2^2 + 4*x2*x3 + 4*x3^2",
		"x2": "4*x3 - 2*x1",
		"x3": "x1 + x2",
	})
	require.NoError(t, err)

	return sys
}

// star is the linear system of a star network with centre S0 and leaves
// leaves S1.., every edge present in both directions with weight 1.
func star(t testing.TB, leaves int) *ode.System {
	t.Helper()
	names := make([]string, leaves+1)
	eqs := make(map[string]string, leaves+1)
	for i := range names {
		names[i] = fmt.Sprintf("S%d", i)
	}
	eqs["S0"] = strings.Join(names[1:], " + ")
	for _, n := range names[1:] {
		eqs[n] = "S0"
	}
	sys, err := ode.ParseSystem(names, eqs)
	require.NoError(t, err)

	return sys
}

func constraints(t testing.TB, sys *ode.System, specs ...string) *ode.ConstraintSet {
	t.Helper()
	cs, err := ode.ConstraintsFromStrings(sys.Ring(), specs)
	require.NoError(t, err)

	return cs
}
