// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package viper reads configuration from an existing [viper.Viper] instance,
// so applications migrating from [spf13/viper] keep their loaded configuration
// as a layer of the chain.
//
// Viper takes a snapshot of all settings when it is created.
// Keys are the lower-cased viper keys joined by `.`,
// and lists of scalars are joined with `,`.
//
// [spf13/viper]: https://github.com/spf13/viper
package viper

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/viper"

	smaps "github.com/nil-go/strata/internal/maps"
)

// Viper is a Source that reads configuration from a [viper.Viper].
//
// To create a new Viper, call [New].
type Viper struct {
	name   string
	values map[string]string
}

// New creates a Viper from a snapshot of the given viper.Viper.
// If v is nil, it reads the global viper instance.
func New(v *viper.Viper, opts ...Option) (*Viper, error) {
	option := &options{
		name: "viper",
	}
	for _, opt := range opts {
		opt(option)
	}
	if v == nil {
		v = viper.GetViper()
	}

	values, err := smaps.Flatten(v.AllSettings(), ".", ",")
	if err != nil {
		return nil, fmt.Errorf("flatten viper: %w", err)
	}
	option.values = values

	return (*Viper)(option), nil
}

func (v *Viper) Lookup(key string) (string, bool) {
	value, ok := v.values[key]

	return value, ok
}

func (v *Viper) Keys() []string {
	return slices.Sorted(maps.Keys(v.values))
}

func (v *Viper) String() string {
	return v.name
}
