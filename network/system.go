// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlump/ode"
	"github.com/katalvlaran/lvlump/poly"
)

// LinearSystem builds ẋ_i = Σ_j A[i][j]·x_j from g, where A[i][j] is the
// weight of i→j. With WithLaplacian the diagonal additionally receives
// minus the row sum of A.
func LinearSystem(g *Graph, opts ...Option) (*ode.System, error) {
	o := gatherOptions(opts...)
	n := g.Len()
	if n == 0 {
		return nil, networkErrorf("LinearSystem", ErrEmptyGraph)
	}

	ring, err := vertexRing(n, o)
	if err != nil {
		return nil, networkErrorf("LinearSystem", err)
	}

	vars := ring.Vars()
	rhs := make([]poly.Polynomial, n)
	for i := range rhs {
		rhs[i] = ring.Zero()
	}
	degree := make([]*big.Rat, n)
	for i := range degree {
		degree[i] = new(big.Rat)
	}
	for _, e := range g.Edges() {
		rhs[e.From] = poly.Add(rhs[e.From], poly.Scale(vars[e.To], e.Weight))
		degree[e.From].Add(degree[e.From], e.Weight)
	}
	if o.laplacian {
		for i, d := range degree {
			if d.Sign() != 0 {
				rhs[i] = poly.Sub(rhs[i], poly.Scale(vars[i], d))
			}
		}
	}
	o.logger.Debug("linear system built", "vertices", n, "laplacian", o.laplacian)

	return ode.NewSystem(ring, rhs)
}

// vertexRing names the n vertices: the supplied names when they are distinct
// and match n, S0..S{n-1} otherwise.
func vertexRing(n int, o Options) (*poly.Ring, error) {
	if len(o.names) > 0 {
		if len(o.names) != n {
			return nil, fmt.Errorf("%d names for %d vertices: %w", len(o.names), n, ErrVertexOutOfRange)
		}
		ring, err := poly.NewRing(o.names...)
		if err == nil {
			return ring, nil
		}
		o.logger.Warn("vertex names rejected, using generic names", "error", err)
	}

	return poly.IndexedRing(DefaultNamePrefix, n, true)
}
