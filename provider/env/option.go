// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

import "strings"

// WithPrefix provides the prefix used when reading environment variables.
// Only environment variables with names that start with the prefix will be read.
//
// For example, if the prefix is "APP_", only environment variables whose names start with "APP_" will be read.
// By default, it has no prefix which reads all environment variables.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithNameMapper provides the function used to map environment variable names to keys.
// If it returns an empty string, the variable will be ignored.
//
// By default, the name is used as the key.
func WithNameMapper(mapper func(string) string) Option {
	return func(options *options) {
		options.mapper = mapper
	}
}

// DotCase returns a name mapper which strips the prefix, lower-cases the name,
// and replaces `_` with `.`. E.g. with prefix `APP_`, `APP_SERVER_PORT` is mapped to `server.port`.
func DotCase(prefix string) func(string) string {
	return func(name string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, prefix)), "_", ".")
	}
}

type (
	// Option configures an Env with specific options.
	Option  func(*options)
	options Env
)
