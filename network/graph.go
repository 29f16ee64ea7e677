// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Edge is one weighted, directed connection From→To.
type Edge struct {
	From, To int
	Weight   *big.Rat
}

// Graph is a directed graph over vertices 0..n-1 with rational weights.
// Parallel edges are merged by adding their weights; a merged weight of zero
// removes the edge. Graph is safe for concurrent use.
type Graph struct {
	mu   sync.RWMutex
	n    int
	rows []map[int]*big.Rat // rows[from][to] = accumulated weight
}

// NewGraph returns an edgeless graph with n vertices.
func NewGraph(n int) *Graph {
	rows := make([]map[int]*big.Rat, n)
	for i := range rows {
		rows[i] = make(map[int]*big.Rat)
	}

	return &Graph{n: n, rows: rows}
}

// Len returns the vertex count.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Increment adds w to the weight of from→to.
func (g *Graph) Increment(from, to int, w *big.Rat) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return networkErrorf("Increment", fmt.Errorf("%d→%d with %d vertices: %w", from, to, g.n, ErrVertexOutOfRange))
	}
	cur, ok := g.rows[from][to]
	if !ok {
		cur = new(big.Rat)
		g.rows[from][to] = cur
	}
	cur.Add(cur, w)
	if cur.Sign() == 0 {
		delete(g.rows[from], to)
	}

	return nil
}

// Weight returns a copy of the accumulated weight of from→to (0 if absent).
func (g *Graph) Weight(from, to int) *big.Rat {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= g.n {
		return new(big.Rat)
	}
	if w, ok := g.rows[from][to]; ok {
		return new(big.Rat).Set(w)
	}

	return new(big.Rat)
}

// Edges returns every edge sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for from, row := range g.rows {
		for to, w := range row {
			out = append(out, Edge{From: from, To: to, Weight: new(big.Rat).Set(w)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
