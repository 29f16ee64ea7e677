// SPDX-License-Identifier: MIT

// Package ode holds the immutable inputs of a lumping run: the polynomial
// ODE System ẋ = f(x) and the Constraint Set of linear forms that must be
// preserved.
//
// A System stores its right-hand sides in a fixed-size slice indexed by the
// variable position of its poly.Ring, so lookups are array accesses and every
// iteration order is declaration order.
//
// Constraints are normally written in partition notation: a block "{a, b}"
// stands for the linear form a + b, and "{S0}" for S0 alone. Explicit linear
// expressions such as "x2 + 2*x3" are accepted as well.
package ode
