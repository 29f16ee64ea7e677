// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyConstraintSet indicates that no (non-zero) seed was provided.
	ErrEmptyConstraintSet = errors.New("ode: empty constraint set")

	// ErrUnsupportedTermKind indicates a constant (non-homogeneous) term in a
	// right-hand side, or a non-linear constraint.
	ErrUnsupportedTermKind = errors.New("ode: unsupported term kind")

	// ErrDependentConstraints is returned under Strict() when a constraint is
	// a linear combination of earlier ones.
	ErrDependentConstraints = errors.New("ode: linearly dependent constraints")

	// ErrEquationCount indicates a right-hand side count different from the
	// number of variables, or a variable without an equation.
	ErrEquationCount = errors.New("ode: equation count does not match variables")

	// ErrRingMismatch indicates a polynomial or form outside the system ring.
	ErrRingMismatch = errors.New("ode: ring mismatch")

	// ErrBadBlock indicates a malformed partition block.
	ErrBadBlock = errors.New("ode: malformed constraint block")
)

func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
