// SPDX-License-Identifier: MIT

package lumping

import (
	"errors"
	"fmt"
)

var (
	// ErrReductionInconsistency indicates that a derivative failed the
	// re-expansion check, or that a failed membership test produced no new
	// direction. Either case is an engine defect, never a user error.
	ErrReductionInconsistency = errors.New("lumping: reduction inconsistency")

	// ErrNoConvergence indicates that the pass cap set by WithMaxPasses was
	// reached before a pass added nothing.
	ErrNoConvergence = errors.New("lumping: no convergence within pass limit")

	// ErrBasisMismatch indicates a Result whose basis does not match the
	// system it is being reduced against.
	ErrBasisMismatch = errors.New("lumping: basis does not match system")

	// ErrInvalidPrefix indicates a lumped-variable prefix that is not an
	// identifier.
	ErrInvalidPrefix = errors.New("lumping: variable prefix must be a non-empty identifier")
)

// PassError locates an engine failure: the closure pass and the basis row
// being processed (Row is -1 when the failure is not tied to a row).
type PassError struct {
	Pass int
	Row  int
	Err  error
}

func (e *PassError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("lumping: pass %d: %v", e.Pass, e.Err)
	}

	return fmt.Sprintf("lumping: pass %d, row %d: %v", e.Pass, e.Row, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }

func lumpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
