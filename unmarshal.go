// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/strata/internal/maps"
)

// Unmarshal resolves every key under the given prefix and decodes them into
// the object pointed to by target. Keys are nested by the key delimiter,
// so with prefix `server`, key `server.tls.cert` is decoded into field `Tls.Cert`.
// An empty prefix decodes all keys.
//
// Only keys of sources implementing [Lister] are visited.
// Any key which fails to resolve fails the whole Unmarshal, and so does a key
// holding a value while other keys are nested under it ([ErrKeyConflict]).
func (r *Resolver) Unmarshal(prefix string, target any) error {
	r.nocopy.Check()

	var (
		values    = make(map[string]any)
		exact     *string
		errs      []error
		conflicts []error
	)
	for _, key := range r.chain.Keys() {
		rest, ok := r.under(prefix, key)
		if !ok {
			continue
		}

		entry, err := r.Resolve(key)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		if rest == "" {
			exact = &entry.Value

			continue
		}
		if !maps.Insert(values, strings.Split(rest, r.keyDelimiter), entry.Value) {
			conflicts = append(conflicts, fmt.Errorf("%w: %s", ErrKeyConflict, key))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	if exact != nil && len(values) > 0 {
		conflicts = append(conflicts, fmt.Errorf("%w: %s", ErrKeyConflict, prefix))
	}
	if err := errors.Join(conflicts...); err != nil {
		return fmt.Errorf("nest: %w", err)
	}
	if len(values) == 0 && exact == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				boolDecodeHook,
				mapstructure.StringToTimeDurationHookFunc(),
				r.listDecodeHook,
				mapstructure.TextUnmarshallerHookFunc(),
			),
			TagName: r.tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	var input any = values
	if exact != nil {
		input = *exact
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// under returns the part of the key after the prefix, or false if the key is not under the prefix.
func (r *Resolver) under(prefix, key string) (string, bool) {
	switch {
	case prefix == "":
		return key, true
	case key == prefix:
		return "", true
	case strings.HasPrefix(key, prefix+r.keyDelimiter):
		return key[len(prefix)+len(r.keyDelimiter):], true
	default:
		return "", false
	}
}

// boolDecodeHook decodes booleans with the same grammar as the Bool converter.
func boolDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}

	return parseBool(data.(string)) //nolint:forcetypeassert
}

// listDecodeHook splits strings decoded into slices with the same rules as the Strings converter.
func (r *Resolver) listDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}

	return split(data.(string), r.listDelimiter), nil //nolint:forcetypeassert
}
