// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package pflag

import "github.com/spf13/pflag"

// WithPrefix enables only reads flags with the given prefix in the name.
//
// E.g. if the given prefix is "server", it only reads flags
// which name starts with "server".
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithFlagSet provides the parsed [pflag.FlagSet] that reads configuration from.
//
// The default flag set is [pflag.CommandLine] plus [flag.CommandLine].
func WithFlagSet(set *pflag.FlagSet) Option {
	return func(options *options) {
		options.set = set
	}
}

// IncludeDefaults also defines unchanged flags whose default value is not zero,
// so the flag defaults act as the lowest layer of configuration.
func IncludeDefaults() Option {
	return func(options *options) {
		options.includeDefaults = true
	}
}

// Option configures the give PFlag.
type Option func(*options)

type options PFlag
