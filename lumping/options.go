// SPDX-License-Identifier: MIT

// Package lumping: functional configuration of the closure engine.
// This file defines the documented defaults, the Option type and the WithX
// constructors. Constructors panic only on nonsensical values.
package lumping

import (
	"fmt"
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs membership tests sequentially.
	DefaultWorkers = 1

	// DefaultMaxPasses disables the pass cap. The closure always terminates
	// within n+1 passes for n state variables.
	DefaultMaxPasses = 0

	// DefaultVariablePrefix names the lumped variables y1..yk.
	DefaultVariablePrefix = "y"
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid   = "lumping: WithWorkers: n must be ≥ 1"
	panicMaxPassesInvalid = "lumping: WithMaxPasses: n must be ≥ 1"
	panicPrefixInvalid    = "lumping: WithVariablePrefix: prefix must be a non-empty identifier"
)

// Option mutates the engine options.
type Option func(*Options)

// Options is the effective engine configuration after applying Option
// setters. Fields are unexported; entry points accept ...Option.
type Options struct {
	logger    *slog.Logger
	observer  Observer
	workers   int
	maxPasses int
	prefix    string
}

func defaultOptions() Options {
	return Options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:  nopObserver{},
		workers:   DefaultWorkers,
		maxPasses: DefaultMaxPasses,
		prefix:    DefaultVariablePrefix,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the structured logger. A nil logger keeps the default
// discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers progress hooks. Hooks are invoked from the calling
// goroutine in row order, even when membership tests run in parallel.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithWorkers sets the number of goroutines that run membership tests of one
// pass concurrently. Output is identical for every n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMaxPasses caps the number of closure passes, the final confirming pass
// included. Reaching the cap fails with ErrNoConvergence.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = n }
}

// WithVariablePrefix sets the name prefix of the lumped variables
// (default "y", giving y1..yk).
// Use ValidatePrefix first when the prefix comes from user input.
func WithVariablePrefix(prefix string) Option {
	if !isPrefix(prefix) {
		panic(panicPrefixInvalid)
	}

	return func(o *Options) { o.prefix = prefix }
}

// ValidatePrefix reports whether prefix is accepted by WithVariablePrefix.
func ValidatePrefix(prefix string) error {
	if !isPrefix(prefix) {
		return fmt.Errorf("%q: %w", prefix, ErrInvalidPrefix)
	}

	return nil
}

func isPrefix(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
