// SPDX-License-Identifier: MIT

package network

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// ReadEdgeCSV reads an edge list. A first record whose endpoints are not
// integers is treated as a header. Zero weights are skipped.
func ReadEdgeCSV(r io.Reader, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var (
		edges  []Edge
		maxIdx = -1
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, networkErrorf("ReadEdgeCSV", err)
		}
		line++
		if len(rec) < 2 {
			return nil, networkErrorf("ReadEdgeCSV", fmt.Errorf("record %d: %w", line, ErrTooFewColumns))
		}
		from, errFrom := parseVertex(rec[0])
		to, errTo := parseVertex(rec[1])
		if line == 1 && (errFrom != nil || errTo != nil) {
			continue // header
		}
		if err = errors.Join(errFrom, errTo); err != nil {
			return nil, networkErrorf("ReadEdgeCSV", fmt.Errorf("record %d: %w", line, err))
		}

		w, err := o.weight(rec, line)
		if err != nil {
			return nil, networkErrorf("ReadEdgeCSV", err)
		}
		if w.Sign() == 0 {
			continue
		}
		edges = append(edges, Edge{From: from, To: to, Weight: w})
		maxIdx = max(maxIdx, from, to)
	}

	n := maxIdx + 1
	if o.vertices > 0 {
		if maxIdx >= o.vertices {
			return nil, networkErrorf("ReadEdgeCSV", fmt.Errorf("vertex %d with %d vertices: %w", maxIdx, o.vertices, ErrVertexOutOfRange))
		}
		n = o.vertices
	}
	if n == 0 {
		return nil, networkErrorf("ReadEdgeCSV", ErrEmptyGraph)
	}
	g := NewGraph(n)
	for _, e := range edges {
		if err := g.Increment(e.From, e.To, e.Weight); err != nil {
			return nil, networkErrorf("ReadEdgeCSV", err)
		}
	}
	o.logger.Debug("edge list read", "records", line, "edges", len(edges), "vertices", n)

	return g, nil
}

func parseVertex(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadVertex)
	}

	return v, nil
}

// weight extracts the configured weight column of rec. Two-column records
// always weigh 1.
func (o Options) weight(rec []string, line int) (*big.Rat, error) {
	if len(rec) == 2 {
		return big.NewRat(1, 1), nil
	}
	col := o.weightColumn
	if col < 0 {
		col += len(rec)
	}
	if col < 0 || col >= len(rec) {
		return nil, fmt.Errorf("record %d: weight column %d of %d: %w", line, o.weightColumn, len(rec), ErrTooFewColumns)
	}
	raw := strings.TrimSpace(rec[col])
	w, ok := new(big.Rat).SetString(raw)
	if ok {
		return w, nil
	}
	if o.strictWeights {
		return nil, fmt.Errorf("record %d: %q: %w", line, raw, ErrBadWeight)
	}
	o.logger.Warn("edge weight is not rational, using 1", "record", line, "value", raw)

	return big.NewRat(1, 1), nil
}
