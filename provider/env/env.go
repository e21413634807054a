// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env reads configuration from environment variables.
//
// Env takes a snapshot of the environment when it is created,
// so later changes of the process environment are not visible.
// Variable names are keys as they are, and a variable with empty value
// is still defined, which overrides sources with lower precedence.
//
// The default behavior can be changed with following options:
//   - WithPrefix only reads environment variables with the given prefix in the name.
//   - WithNameMapper maps the variable name to the key, e.g. `SERVER_PORT` to `server.port`.
package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Env is a Source that reads configuration from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	prefix string
	mapper func(string) string
	values map[string]string
}

// New creates an Env with the given Option(s).
func New(opts ...Option) *Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.mapper == nil {
		option.mapper = func(name string) string { return name }
	}

	option.values = make(map[string]string)
	for _, env := range os.Environ() {
		name, value, _ := strings.Cut(env, "=")
		if name == "" || !strings.HasPrefix(name, option.prefix) {
			continue
		}
		if key := option.mapper(name); key != "" {
			option.values[key] = value
		}
	}

	return (*Env)(option)
}

func (e *Env) Lookup(key string) (string, bool) {
	value, ok := e.values[key]

	return value, ok
}

// Keys returns the sorted keys of the snapshot.
func (e *Env) Keys() []string {
	return slices.Sorted(maps.Keys(e.values))
}

func (e *Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
