// SPDX-License-Identifier: MIT

// Package metrics exposes lumping progress as Prometheus metrics.
//
// Collector implements lumping.Observer and prometheus.Collector at once:
// install it with lumping.WithObserver and register it on any registry. The
// CLI has no HTTP surface, so WriteTextfile dumps a snapshot in the text
// exposition format for node_exporter style collection.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlump/lumping"
)

const namespace = "lvlump"

// Collector counts passes, membership tests and added directions.
type Collector struct {
	passes     prometheus.Counter
	membership *prometheus.CounterVec
	directions prometheus.Counter
	runs       prometheus.Counter
	dimension  prometheus.Gauge
	iterations prometheus.Histogram
	duration   prometheus.Histogram
}

var _ lumping.Observer = (*Collector)(nil)
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Closure passes started.",
		}),
		membership: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_tests_total",
			Help:      "Membership tests by outcome.",
		}, []string{"result"}),
		directions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directions_added_total",
			Help:      "Directions appended to the candidate subspace.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_converged_total",
			Help:      "Closure runs that reached a fixed point.",
		}),
		dimension: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lumping_dimension",
			Help:      "Dimension of the last converged lumping.",
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iterations",
			Help:      "Passes per converged run, the confirming pass included.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of converged runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.passes, c.membership, c.directions, c.runs, c.dimension, c.iterations, c.duration}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.collectors() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.collectors() {
		m.Collect(ch)
	}
}

// OnPassStart implements lumping.Observer.
func (c *Collector) OnPassStart(context.Context, *lumping.PassEvent) { c.passes.Inc() }

// OnMembership implements lumping.Observer.
func (c *Collector) OnMembership(_ context.Context, e *lumping.MembershipEvent) {
	result := "missing"
	if e.Contained {
		result = "contained"
	}
	c.membership.WithLabelValues(result).Inc()
}

// OnDirectionAdded implements lumping.Observer.
func (c *Collector) OnDirectionAdded(context.Context, *lumping.DirectionEvent) { c.directions.Inc() }

// OnConverged implements lumping.Observer.
func (c *Collector) OnConverged(_ context.Context, e *lumping.ConvergedEvent) {
	c.runs.Inc()
	c.dimension.Set(float64(e.Dim))
	c.iterations.Observe(float64(e.Iterations))
	c.duration.Observe(e.Elapsed.Seconds())
}

// WriteTextfile registers c on a fresh registry and writes it to path.
func WriteTextfile(path string, c *Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}

	return prometheus.WriteToTextfile(path, reg)
}
