// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package koanf

// WithName provides the name shown in explanations and failures.
//
// By default, it is "koanf".
func WithName(name string) Option {
	return func(options *options) {
		options.name = name
	}
}

type (
	// Option configures a Koanf with specific options.
	Option  func(*options)
	options Koanf
)
