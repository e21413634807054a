// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package metrics exports counters of configuration lookups to Prometheus.
//
// Collector is both a [strata.Observer] and a [prometheus.Collector]:
//
//	collector := metrics.New()
//	prometheus.MustRegister(collector)
//	resolver := strata.New(chain, strata.WithObserver(collector))
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nil-go/strata"
)

// Collector counts resolved and failed lookups of a Resolver.
//
// To create a new Collector, call [New].
type Collector struct {
	resolved *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// New creates a Collector with the given Option(s).
func New(opts ...Option) *Collector {
	option := &options{
		namespace: "strata",
	}
	for _, opt := range opts {
		opt(option)
	}

	return &Collector{
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   option.namespace,
				Name:        "resolutions_total",
				Help:        "Number of configuration keys resolved, by whether the entry was cached.",
				ConstLabels: option.labels,
			},
			[]string{"cached"},
		),
		failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   option.namespace,
				Name:        "failures_total",
				Help:        "Number of configuration lookups failed, by failure kind.",
				ConstLabels: option.labels,
			},
			[]string{"kind"},
		),
	}
}

func (c *Collector) Resolved(_ string, cached bool) {
	label := "false"
	if cached {
		label = "true"
	}
	c.resolved.WithLabelValues(label).Inc()
}

func (c *Collector) Failed(_ string, err error) {
	kind := "unknown"
	var failure *strata.Failure
	if errors.As(err, &failure) {
		kind = failure.Kind.String()
	}
	c.failed.WithLabelValues(kind).Inc()
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	c.resolved.Describe(descs)
	c.failed.Describe(descs)
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	c.resolved.Collect(metrics)
	c.failed.Collect(metrics)
}
