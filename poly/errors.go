// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "poly: ..." for easy grepping. Callers match
// these sentinels with errors.Is; context is attached with %w wrapping.
var (
	// ErrMalformedPolynomial is returned by the parser for any input that does
	// not denote a polynomial with rational coefficients.
	ErrMalformedPolynomial = errors.New("poly: malformed polynomial")

	// ErrUnknownVariable indicates an identifier that is not part of the ring.
	ErrUnknownVariable = errors.New("poly: unknown variable")

	// ErrDuplicateVariable indicates a repeated name in NewRing.
	ErrDuplicateVariable = errors.New("poly: duplicate variable")

	// ErrInvalidVariable indicates an empty or syntactically invalid name.
	ErrInvalidVariable = errors.New("poly: invalid variable name")

	// ErrDimensionMismatch indicates vectors or forms of different lengths.
	ErrDimensionMismatch = errors.New("poly: dimension mismatch")

	// ErrNotLinear indicates a polynomial that is not a homogeneous linear form.
	ErrNotLinear = errors.New("poly: polynomial is not a linear form")
)

// panicRingMismatch is raised when two operands belong to different rings.
const panicRingMismatch = "poly: operands belong to different rings"

// polyErrorf wraps err with an operation tag, keeping errors.Is intact.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
