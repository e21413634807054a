// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"fmt"
	"reflect"
	"slices"
)

// Chain is an ordered, immutable list of sources.
// The source at position 0 has the highest precedence.
//
// To create a new Chain, call [NewChain].
type Chain struct {
	sources []Source
}

// NewChain creates a Chain from the given sources, highest precedence first.
//
// It returns [ErrEmptyChain] if no source is given,
// and [ErrNilSource] if any of the sources is nil.
func NewChain(sources ...Source) (*Chain, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyChain
	}
	for i, source := range sources {
		if isNil(source) {
			return nil, fmt.Errorf("%w at position %d", ErrNilSource, i)
		}
	}

	return &Chain{sources: slices.Clone(sources)}, nil
}

// Lookup returns the raw value of the key from the highest-precedence source defining it,
// together with that source.
func (c *Chain) Lookup(key string) (string, Source, bool) {
	for _, source := range c.sources {
		if value, ok := source.Lookup(key); ok {
			return value, source, true
		}
	}

	return "", nil, false
}

// Sources returns a copy of the ordered sources.
func (c *Chain) Sources() []Source {
	return slices.Clone(c.sources)
}

// Keys returns the sorted union of keys of all sources implementing [Lister].
func (c *Chain) Keys() []string {
	seen := make(map[string]struct{})
	for _, source := range c.sources {
		if lister, ok := source.(Lister); ok {
			for _, key := range lister.Keys() {
				seen[key] = struct{}{}
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

type definition struct {
	source Source
	value  string
}

// definitions returns every source defining the key, highest precedence first.
func (c *Chain) definitions(key string) []definition {
	var defs []definition
	for _, source := range c.sources {
		if value, ok := source.Lookup(key); ok {
			defs = append(defs, definition{source: source, value: value})
		}
	}

	return defs
}

func (c *Chain) origins() []string {
	origins := make([]string, 0, len(c.sources))
	for _, source := range c.sources {
		origins = append(origins, source.String())
	}

	return origins
}

func isNil(source Source) bool {
	if source == nil {
		return true
	}

	value := reflect.ValueOf(source)
	switch value.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
