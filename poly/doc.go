// SPDX-License-Identifier: MIT

// Package poly is the exact polynomial algebra layer of lvlump.
//
// 🚀 What is in here?
//
//	Multivariate polynomials with math/big.Rat coefficients over an explicit,
//	immutable Ring (the ordered set of state variables). Everything a lumping
//	run needs to talk about right-hand sides lives in this package:
//	  • Ring     – ordered variable names, name → index table
//	  • Monomial – exponent vector indexed by variable position
//	  • Polynomial – canonical sparse map monomial → non-zero rational
//	  • LinearForm – degree-1 homogeneous polynomial as a dense rational vector
//	  • Parse    – infix expression parser with exact literal conversion
//
// ✨ Guarantees:
//   - Value semantics: no operation mutates its operands.
//   - Canonical form: a zero coefficient is never stored.
//   - Deterministic output: monomials are always visited in graded
//     lexicographic order (x1 > x2 > ... within one degree).
//
// ⚙️ Usage:
//
//	ring, _ := poly.NewRing("x1", "x2", "x3")
//	f, _ := poly.Parse(ring, "x2^2 + 4*x2*x3 + 4*x3^2")
//	g := poly.Scale(f, big.NewRat(1, 2))
//	fmt.Println(g) // 1/2*x2^2 + 2*x2*x3 + 2*x3^2
//
// Mixing polynomials from different rings is a programmer error and panics;
// the parser and constructors return sentinel errors for user input.
package poly
