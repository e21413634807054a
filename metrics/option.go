// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package metrics

import "github.com/prometheus/client_golang/prometheus"

// WithNamespace provides the namespace of the metric names.
//
// By default, it is "strata".
func WithNamespace(namespace string) Option {
	return func(options *options) {
		options.namespace = namespace
	}
}

// WithConstLabels provides labels attached to every metric,
// e.g. to tell resolvers of different components apart.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(options *options) {
		options.labels = labels
	}
}

type (
	// Option configures a Collector with specific options.
	Option  func(*options)
	options struct {
		namespace string
		labels    prometheus.Labels
	}
)
