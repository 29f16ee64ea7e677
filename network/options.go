// SPDX-License-Identifier: MIT

package network

import (
	"io"
	"log/slog"
)

const (
	// DefaultWeightColumn selects the last column of a record.
	DefaultWeightColumn = -1

	// DefaultNamePrefix names vertices S0, S1, ...
	DefaultNamePrefix = "S"
)

const panicVerticesInvalid = "network: WithVertices: n must be ≥ 1"

// Option configures ReadEdgeCSV and LinearSystem.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	logger        *slog.Logger
	vertices      int // 0: inferred from the largest endpoint
	weightColumn  int
	strictWeights bool
	laplacian     bool
	names         []string
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		weightColumn: DefaultWeightColumn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the logger used for coercion warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithVertices fixes the vertex count instead of inferring it from the
// largest endpoint seen.
func WithVertices(n int) Option {
	if n < 1 {
		panic(panicVerticesInvalid)
	}

	return func(o *Options) { o.vertices = n }
}

// WithWeightColumn selects the weight column; negative values count from the
// end of the record (-1 is the last column).
func WithWeightColumn(c int) Option {
	return func(o *Options) { o.weightColumn = c }
}

// WithStrictWeights turns weight coercion failures into ErrBadWeight.
func WithStrictWeights() Option {
	return func(o *Options) { o.strictWeights = true }
}

// WithLaplacian builds A − diag(row sums) instead of the adjacency matrix.
func WithLaplacian() Option {
	return func(o *Options) { o.laplacian = true }
}

// WithNames sets the variable names. Repeated or invalid names are replaced by the
// generic S0..S{n-1} with a warning.
func WithNames(names ...string) Option {
	return func(o *Options) { o.names = append([]string(nil), names...) }
}
