// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"log/slog"

	"github.com/nil-go/strata/parser"
)

// WithParser provides the function used to parse the configuration file.
//
// By default, the parser is chosen by the file extension, see [parser.ByExtension].
func WithParser(parser parser.Parser) Option {
	return func(options *options) {
		options.parser = parser
	}
}

// IgnoreFileNotExist ignores the error and creates an empty File instead if the configuration file is not found.
func IgnoreFileNotExist() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for File.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a File with specific options.
	Option  func(options *options)
	options File
)
