// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package viper

// WithName provides the name shown in explanations and failures.
//
// By default, it is "viper".
func WithName(name string) Option {
	return func(options *options) {
		options.name = name
	}
}

type (
	// Option configures a Viper with specific options.
	Option  func(*options)
	options Viper
)
