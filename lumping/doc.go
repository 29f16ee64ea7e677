// SPDX-License-Identifier: MIT

// Package lumping computes exact constrained lumpings of polynomial ODE
// systems and builds the reduced systems they define.
//
// Given ẋ = f(x) and a set of linear forms that must be preserved, Lump finds
// the smallest matrix L (rational entries, independent rows, constraints in
// its row span) such that every ẏ_i of y = Lx is a polynomial in y alone:
//
//	sys, _ := ode.ParseSystem([]string{"x1", "x2", "x3"}, map[string]string{
//		"x1": "x2^2 + 4*x2*x3 + 4*x3^2",
//		"x2": "4*x3 - 2*x1",
//		"x3": "x1 + x2",
//	})
//	cs, _ := ode.ConstraintsFromStrings(sys.Ring(), []string{"{x1}"})
//	red, _ := lumping.LumpAndReduce(ctx, sys, cs)
//	fmt.Print(red)
//	// y1' = y2^2    # y1 = x1
//	// y2' = 2*y2    # y2 = x2 + 2*x3
//
// The closure loop works on immutable Subspace snapshots, one per pass. Every
// membership witness found in the converged pass is re-expanded and compared
// against the true derivative by Reduce before a reduced system is emitted;
// a mismatch fails with ErrReductionInconsistency.
//
// Progress is reported through Observer (see Hooks for a function adapter)
// and through the slog.Logger installed with WithLogger.
package lumping
