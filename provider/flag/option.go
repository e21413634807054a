// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package flag

import "flag"

// WithPrefix enables only reads flags with the given prefix in the name.
//
// E.g. if the given prefix is "server", it only reads flags
// which name starts with "server".
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithFlagSet provides the parsed [flag.FlagSet] that reads configuration from.
//
// The default flag set is [flag.CommandLine].
func WithFlagSet(set *flag.FlagSet) Option {
	return func(options *options) {
		options.set = set
	}
}

// Option configures the give Flag.
type Option func(*options)

type options Flag
