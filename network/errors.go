// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("network: vertex out of range")

	// ErrTooFewColumns indicates an edge record with fewer than two fields.
	ErrTooFewColumns = errors.New("network: edge record needs at least two columns")

	// ErrBadVertex indicates an endpoint that is not a non-negative integer.
	ErrBadVertex = errors.New("network: malformed vertex index")

	// ErrBadWeight indicates a weight that is not a rational number.
	ErrBadWeight = errors.New("network: malformed edge weight")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("network: empty graph")
)

func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
