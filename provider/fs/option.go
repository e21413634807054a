// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fs

import "github.com/nil-go/strata/parser"

// WithParser provides the function used to parse the configuration file.
//
// By default, the parser is chosen by the file extension, see [parser.ByExtension].
func WithParser(parser parser.Parser) Option {
	return func(options *options) {
		options.parser = parser
	}
}

type (
	// Option configures a FS with specific options.
	Option  func(file *options)
	options FS
)
