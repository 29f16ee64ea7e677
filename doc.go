// Package lvlump computes exact constrained lumpings of polynomial ODE
// systems.
//
// Given ẋ = f(x) with polynomial f over ℚ and a set of linear combinations
// of the states that must stay observable, lvlump finds the smallest
// subspace span(L) containing them such that y = Lx again satisfies a
// closed polynomial system ẏ = g(y). All arithmetic is exact (math/big).
//
// What is inside?
//
//	poly/     rings, monomials, sparse polynomials, linear forms, parser
//	matrix/   exact RREF, rank, nullspace, Solve and row-space bases
//	ode/      systems, Jacobian decomposition, constraint sets
//	lumping/  fixed-point closure (Lump) and the reduced system (Reduce)
//	network/  weighted edge lists lowered to linear systems
//	model/    YAML/JSON model documents, loaders and encoders
//	config/   layered configuration: YAML, dotenv and LVLUMP_* variables
//	metrics/  Prometheus collector fed by lumping events
//	cmd/      the lvlump command line tool
//
// Quick start:
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
// Every public operation returns sentinel errors wrapped with the
// operation name; use errors.Is to branch on them.
package lvlump
