// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package koanf reads configuration from an existing [koanf.Koanf] instance,
// so applications migrating from [knadh/koanf] keep their loaded configuration
// as a layer of the chain.
//
// Koanf takes a snapshot of the instance when it is created.
// Keys are the flattened koanf paths joined by the koanf delimiter,
// and lists of scalars are joined with `,`.
//
// [knadh/koanf]: https://github.com/knadh/koanf
package koanf

import (
	"fmt"
	"maps"
	"slices"

	"github.com/knadh/koanf/v2"

	smaps "github.com/nil-go/strata/internal/maps"
)

// Koanf is a Source that reads configuration from a [koanf.Koanf].
//
// To create a new Koanf, call [New].
type Koanf struct {
	name   string
	values map[string]string
}

// New creates a Koanf from a snapshot of the given koanf.Koanf.
//
// It panics if k is nil.
func New(k *koanf.Koanf, opts ...Option) (*Koanf, error) {
	if k == nil {
		panic("cannot create Koanf with nil koanf.Koanf")
	}

	option := &options{
		name: "koanf",
	}
	for _, opt := range opts {
		opt(option)
	}

	values, err := smaps.Flatten(k.Raw(), k.Delim(), ",")
	if err != nil {
		return nil, fmt.Errorf("flatten koanf: %w", err)
	}
	option.values = values

	return (*Koanf)(option), nil
}

func (k *Koanf) Lookup(key string) (string, bool) {
	value, ok := k.values[key]

	return value, ok
}

func (k *Koanf) Keys() []string {
	return slices.Sorted(maps.Keys(k.values))
}

func (k *Koanf) String() string {
	return k.name
}
