// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvlump/matrix"
	"github.com/katalvlaran/lvlump/poly"
)

// ConstraintOption configures NewConstraintSet.
type ConstraintOption func(*constraintOptions)

type constraintOptions struct {
	strict bool
}

// Strict makes NewConstraintSet reject dependent rows with
// ErrDependentConstraints instead of dropping them.
func Strict() ConstraintOption {
	return func(o *constraintOptions) { o.strict = true }
}

// ConstraintSet is an ordered sequence of linearly independent linear forms.
type ConstraintSet struct {
	ring    *poly.Ring
	forms   []poly.LinearForm
	dropped []int // input positions removed as dependent
}

// NewConstraintSet keeps the forms that are independent of the ones before
// them, preserving input order. Zero forms count as dependent. The result
// must contain at least one form.
func NewConstraintSet(ring *poly.Ring, forms []poly.LinearForm, opts ...ConstraintOption) (*ConstraintSet, error) {
	var o constraintOptions
	for _, opt := range opts {
		opt(&o)
	}

	cs := &ConstraintSet{ring: ring}
	kept := make([]matrix.Vector, 0, len(forms))
	for i, f := range forms {
		if len(f) != ring.Len() {
			return nil, odeErrorf("NewConstraintSet", fmt.Errorf("constraint %d: %w", i, ErrRingMismatch))
		}
		basis, _, err := matrix.RowBasis(append(kept, matrix.Vector(f)), ring.Len())
		if err != nil {
			return nil, odeErrorf("NewConstraintSet", err)
		}
		if len(basis) == len(kept) {
			if o.strict {
				return nil, odeErrorf("NewConstraintSet", fmt.Errorf("constraint %d (%s): %w", i, f.Format(ring), ErrDependentConstraints))
			}
			cs.dropped = append(cs.dropped, i)

			continue
		}
		kept = append(kept, matrix.Vector(f.Clone()))
		cs.forms = append(cs.forms, f.Clone())
	}
	if len(cs.forms) == 0 {
		return nil, odeErrorf("NewConstraintSet", ErrEmptyConstraintSet)
	}

	return cs, nil
}

// ConstraintsFromBlocks builds one constraint per block: the sum of the
// named variables.
func ConstraintsFromBlocks(ring *poly.Ring, blocks [][]string, opts ...ConstraintOption) (*ConstraintSet, error) {
	forms := make([]poly.LinearForm, 0, len(blocks))
	for b, block := range blocks {
		f, err := blockForm(ring, block)
		if err != nil {
			return nil, odeErrorf("ConstraintsFromBlocks", fmt.Errorf("block %d: %w", b, err))
		}
		forms = append(forms, f)
	}

	return NewConstraintSet(ring, forms, opts...)
}

// blockForm returns Σ x_name over the block members.
func blockForm(ring *poly.Ring, block []string) (poly.LinearForm, error) {
	if len(block) == 0 {
		return nil, ErrBadBlock
	}
	f := poly.NewLinearForm(ring.Len())
	for _, name := range block {
		i, ok := ring.Index(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, poly.ErrUnknownVariable)
		}
		f[i].Add(f[i], big.NewRat(1, 1))
	}

	return f, nil
}

// ConstraintsFromStrings parses each entry either as a partition block
// ("{a, b}") or as a linear expression ("x2 + 2*x3").
func ConstraintsFromStrings(ring *poly.Ring, specs []string, opts ...ConstraintOption) (*ConstraintSet, error) {
	forms := make([]poly.LinearForm, 0, len(specs))
	for i, spec := range specs {
		if names, ok, err := ParseBlock(spec); ok || err != nil {
			if err != nil {
				return nil, odeErrorf("ConstraintsFromStrings", fmt.Errorf("constraint %d: %w", i, err))
			}
			f, err := blockForm(ring, names)
			if err != nil {
				return nil, odeErrorf("ConstraintsFromStrings", fmt.Errorf("constraint %d: %w", i, err))
			}
			forms = append(forms, f)

			continue
		}
		p, err := poly.Parse(ring, spec)
		if err != nil {
			return nil, odeErrorf("ConstraintsFromStrings", fmt.Errorf("constraint %d: %w", i, err))
		}
		f, err := poly.LinearFormOf(p)
		if err != nil {
			return nil, odeErrorf("ConstraintsFromStrings", fmt.Errorf("constraint %d (%s): %w: %w", i, spec, ErrUnsupportedTermKind, err))
		}
		forms = append(forms, f)
	}

	return NewConstraintSet(ring, forms, opts...)
}

// ParseBlock recognizes partition notation. ok is false when s is not a
// block at all; err is set when s starts like a block but is malformed.
func ParseBlock(s string) (names []string, ok bool, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false, nil
	}
	if !strings.HasSuffix(s, "}") {
		return nil, true, fmt.Errorf("%q: %w", s, ErrBadBlock)
	}
	for _, part := range strings.Split(s[1:len(s)-1], ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, true, fmt.Errorf("%q: %w", s, ErrBadBlock)
		}
		names = append(names, name)
	}

	return names, true, nil
}

// Ring returns the ring the constraints live in.
func (c *ConstraintSet) Ring() *poly.Ring { return c.ring }

// Len returns the number of kept constraints.
func (c *ConstraintSet) Len() int { return len(c.forms) }

// Forms returns deep copies of the kept constraints in input order.
func (c *ConstraintSet) Forms() []poly.LinearForm {
	out := make([]poly.LinearForm, len(c.forms))
	for i, f := range c.forms {
		out[i] = f.Clone()
	}

	return out
}

// Dropped returns the input positions removed as linearly dependent.
func (c *ConstraintSet) Dropped() []int {
	out := make([]int, len(c.dropped))
	copy(out, c.dropped)

	return out
}
