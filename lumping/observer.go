// SPDX-License-Identifier: MIT

package lumping

import (
	"context"
	"time"

	"github.com/katalvlaran/lvlump/poly"
)

// PassEvent is emitted when a closure pass starts on a basis snapshot.
type PassEvent struct {
	Pass int // 1-based
	Dim  int // snapshot dimension
}

// MembershipEvent reports the outcome of one membership test: whether the
// derivative of basis row Row is a polynomial in the snapshot variables.
type MembershipEvent struct {
	Pass      int
	Row       int
	Form      poly.LinearForm
	Contained bool
}

// DirectionEvent is emitted for every direction appended to the subspace.
// Row is the basis row whose failed membership test produced it.
type DirectionEvent struct {
	Pass int
	Row  int
	Form poly.LinearForm
	Dim  int // dimension after the append
}

// ConvergedEvent is emitted once when a pass adds nothing.
type ConvergedEvent struct {
	Dim        int
	Passes     int
	Iterations int
	Elapsed    time.Duration
}

// Observer receives engine progress. Calls happen on the goroutine that
// called Lump, in a deterministic order.
type Observer interface {
	OnPassStart(context.Context, *PassEvent)
	OnMembership(context.Context, *MembershipEvent)
	OnDirectionAdded(context.Context, *DirectionEvent)
	OnConverged(context.Context, *ConvergedEvent)
}

// Hooks adapts plain functions to Observer. Nil fields are skipped.
type Hooks struct {
	PassStart      func(context.Context, *PassEvent)
	Membership     func(context.Context, *MembershipEvent)
	DirectionAdded func(context.Context, *DirectionEvent)
	Converged      func(context.Context, *ConvergedEvent)
}

// OnPassStart implements Observer.
func (h Hooks) OnPassStart(ctx context.Context, e *PassEvent) {
	if h.PassStart != nil {
		h.PassStart(ctx, e)
	}
}

// OnMembership implements Observer.
func (h Hooks) OnMembership(ctx context.Context, e *MembershipEvent) {
	if h.Membership != nil {
		h.Membership(ctx, e)
	}
}

// OnDirectionAdded implements Observer.
func (h Hooks) OnDirectionAdded(ctx context.Context, e *DirectionEvent) {
	if h.DirectionAdded != nil {
		h.DirectionAdded(ctx, e)
	}
}

// OnConverged implements Observer.
func (h Hooks) OnConverged(ctx context.Context, e *ConvergedEvent) {
	if h.Converged != nil {
		h.Converged(ctx, e)
	}
}

// Observers fans events out to several observers in argument order. Nil
// entries are skipped.
func Observers(obs ...Observer) Observer {
	m := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}

	return m
}

type multiObserver []Observer

func (m multiObserver) OnPassStart(ctx context.Context, e *PassEvent) {
	for _, o := range m {
		o.OnPassStart(ctx, e)
	}
}

func (m multiObserver) OnMembership(ctx context.Context, e *MembershipEvent) {
	for _, o := range m {
		o.OnMembership(ctx, e)
	}
}

func (m multiObserver) OnDirectionAdded(ctx context.Context, e *DirectionEvent) {
	for _, o := range m {
		o.OnDirectionAdded(ctx, e)
	}
}

func (m multiObserver) OnConverged(ctx context.Context, e *ConvergedEvent) {
	for _, o := range m {
		o.OnConverged(ctx, e)
	}
}

type nopObserver struct{}

func (nopObserver) OnPassStart(context.Context, *PassEvent)           {}
func (nopObserver) OnMembership(context.Context, *MembershipEvent)    {}
func (nopObserver) OnDirectionAdded(context.Context, *DirectionEvent) {}
func (nopObserver) OnConverged(context.Context, *ConvergedEvent)      {}
