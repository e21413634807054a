// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import "log/slog"

// WithDelimiters provides the delimiters that mark a placeholder in raw values.
//
// The default delimiters are `${` and `}`, which makes placeholder like `${server.host}`.
// It panics if either delimiter is empty.
func WithDelimiters(prefix, suffix string) Option {
	if prefix == "" || suffix == "" {
		panic("cannot use empty placeholder delimiter")
	}

	return func(options *options) {
		options.prefix = prefix
		options.suffix = suffix
	}
}

// WithListDelimiter provides the delimiter splitting values converted to list types.
//
// The default delimiter is `,`. The delimiter cannot be escaped inside an element.
func WithListDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic("cannot use empty list delimiter")
	}

	return func(options *options) {
		options.listDelimiter = delimiter
	}
}

// WithKeyDelimiter provides the delimiter that nests keys for [Resolver.Unmarshal].
//
// The default delimiter is `.`, which decodes key `server.port` into field `Port` of field `Server`.
func WithKeyDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic("cannot use empty key delimiter")
	}

	return func(options *options) {
		options.keyDelimiter = delimiter
	}
}

// WithTagName provides the struct tag name used by [Resolver.Unmarshal].
//
// The default tag name is `strata`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithLogger provides the slog.Logger for Resolver.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithObserver provides the Observer notified about every top-level resolution.
func WithObserver(observer Observer) Option {
	return func(options *options) {
		options.observer = observer
	}
}

// WithoutCache disables caching of resolved entries.
// Every lookup then walks the chain and expands placeholders again.
func WithoutCache() Option {
	return func(options *options) {
		options.noCache = true
	}
}

type (
	// Option configures a Resolver with specific options.
	Option  func(*options)
	options Resolver
)
