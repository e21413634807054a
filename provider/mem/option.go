// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mem

// WithName provides the name of the Mem shown in explanations and failures.
//
// By default, it is "memory".
func WithName(name string) Option {
	return func(options *options) {
		options.name = name
	}
}

type (
	// Option configures a Mem with specific options.
	Option  func(*options)
	options Mem
)
