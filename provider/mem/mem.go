// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package mem provides configuration from an in-memory map,
// usually explicit overrides given by the program or its command line.
package mem

import (
	"maps"
	"slices"
)

// Mem is a Source that provides configuration from a map.
//
// To create a new Mem, call [New].
type Mem struct {
	name   string
	values map[string]string
}

// New creates a Mem with a copy of the given values and Option(s).
func New(values map[string]string, opts ...Option) *Mem {
	option := &options{
		name:   "memory",
		values: maps.Clone(values),
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.values == nil {
		option.values = make(map[string]string)
	}

	return (*Mem)(option)
}

func (m *Mem) Lookup(key string) (string, bool) {
	value, ok := m.values[key]

	return value, ok
}

func (m *Mem) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}

func (m *Mem) String() string {
	return m.name
}
