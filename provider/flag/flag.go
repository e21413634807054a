// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package flag reads configuration from flags defined by the standard [flag] package.
//
// Flag takes a snapshot of the flags which have been set on the command line
// when it is created. Flags left at their default are not defined,
// so they never override values of sources with lower precedence.
// The flag name is the key, e.g. `-server.port=8080` defines `server.port`.
package flag

import (
	"flag"
	"maps"
	"slices"
	"strings"
)

// Flag is a Source that reads configuration from flags.
//
// To create a new Flag, call [New].
type Flag struct {
	set    *flag.FlagSet
	prefix string

	values map[string]string
}

// New creates a Flag with the given Option(s).
//
// By default, it reads [flag.CommandLine] and parses it if it has not been parsed yet.
func New(opts ...Option) *Flag {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.set == nil {
		if !flag.Parsed() {
			flag.Parse()
		}
		option.set = flag.CommandLine
	}

	option.values = make(map[string]string)
	option.set.Visit(func(flag *flag.Flag) {
		if strings.HasPrefix(flag.Name, option.prefix) {
			option.values[flag.Name] = flag.Value.String()
		}
	})

	return (*Flag)(option)
}

func (f *Flag) Lookup(key string) (string, bool) {
	value, ok := f.values[key]

	return value, ok
}

func (f *Flag) Keys() []string {
	return slices.Sorted(maps.Keys(f.values))
}

func (f *Flag) String() string {
	if f.prefix == "" {
		return "flag"
	}

	return "flag:" + f.prefix
}
