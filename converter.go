// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Type tags the semantic type a value is converted into.
type Type string

// Types with built-in converters.
const (
	// String returns the value as it is.
	String Type = "string"
	// Bool accepts "true" or "false" in any letter case.
	Bool Type = "bool"
	// Int accepts a base 10 integer that fits int.
	Int Type = "int"
	// Int64 accepts a base 10 integer that fits int64.
	Int64 Type = "int64"
	// Uint accepts a base 10 unsigned integer that fits uint.
	Uint Type = "uint"
	// Float accepts a floating-point number as float64.
	Float Type = "float64"
	// Duration accepts a duration like "1m30s", see time.ParseDuration.
	Duration Type = "duration"
	// Rune accepts a value of exactly one character.
	Rune Type = "rune"
	// Strings splits the value on the list delimiter into []string.
	// Elements are trimmed of surrounding white space and an empty value is an empty list.
	// The delimiter cannot be escaped: a backslash before it is kept in the element.
	Strings Type = "[]string"
	// Ints is Strings with every element converted as Int.
	Ints Type = "[]int"
	// Int64s is Strings with every element converted as Int64.
	Int64s Type = "[]int64"
	// Uints is Strings with every element converted as Uint.
	Uints Type = "[]uint"
	// Floats is Strings with every element converted as Float.
	Floats Type = "[]float64"
	// Durations is Strings with every element converted as Duration.
	Durations Type = "[]duration"
	// Runes is Strings with every element converted as Rune.
	Runes Type = "[]rune"
	// Bools is Strings with every element converted as Bool.
	Bools Type = "[]bool"
)

// Converter converts a resolved value into a typed value.
// It must be pure and return an error for any value outside its grammar.
type Converter func(value string) (any, error)

// RegisterConverter registers the converter for the given type.
//
// It returns an error wrapping [ErrDuplicateType] if a converter is already registered for typ,
// including the built-in types, and keeps the registered converter.
// It panics if typ is empty or converter is nil.
//
// This method is concurrency-safe.
func (r *Resolver) RegisterConverter(typ Type, converter Converter) error {
	if typ == "" {
		panic("cannot register converter for empty type")
	}
	if converter == nil {
		panic("cannot register nil converter")
	}

	return r.converters.register(typ, converter)
}

type registry struct {
	converters map[Type]Converter
	mutex      sync.RWMutex
}

func (r *registry) register(typ Type, converter Converter) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.converters[typ]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, typ)
	}
	r.converters[typ] = converter

	return nil
}

func (r *registry) get(typ Type) (Converter, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	converter, ok := r.converters[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}

	return converter, nil
}

func builtinConverters(listDelimiter string) map[Type]Converter {
	return map[Type]Converter{
		String: func(value string) (any, error) {
			return value, nil
		},
		Bool:     scalar(parseBool),
		Int:      scalar(strconv.Atoi),
		Int64:    scalar(parseInt64),
		Uint:     scalar(parseUint),
		Float:    scalar(parseFloat),
		Duration: scalar(time.ParseDuration),
		Rune:     scalar(parseRune),
		Strings: func(value string) (any, error) {
			return split(value, listDelimiter), nil
		},
		Ints:      list(listDelimiter, strconv.Atoi),
		Int64s:    list(listDelimiter, parseInt64),
		Uints:     list(listDelimiter, parseUint),
		Floats:    list(listDelimiter, parseFloat),
		Durations: list(listDelimiter, time.ParseDuration),
		Runes:     list(listDelimiter, parseRune),
		Bools:     list(listDelimiter, parseBool),
	}
}

func scalar[T any](parse func(string) (T, error)) Converter {
	return func(value string) (any, error) {
		return parse(value)
	}
}

func list[T any](delimiter string, parse func(string) (T, error)) Converter {
	return func(value string) (any, error) {
		elements := split(value, delimiter)
		values := make([]T, 0, len(elements))
		for i, element := range elements {
			v, err := parse(element)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			values = append(values, v)
		}

		return values, nil
	}
}

func split(value, delimiter string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	elements := strings.Split(value, delimiter)
	for i, element := range elements {
		elements[i] = strings.TrimSpace(element)
	}

	return elements
}

func parseBool(value string) (bool, error) {
	switch {
	case strings.EqualFold(value, "true"):
		return true, nil
	case strings.EqualFold(value, "false"):
		return false, nil
	default:
		return false, errNotBool
	}
}

func parseInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func parseUint(value string) (uint, error) {
	u, err := strconv.ParseUint(value, 10, strconv.IntSize)

	return uint(u), err
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func parseRune(value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) || r == utf8.RuneError && size == 1 {
		return 0, errNotRune
	}

	return r, nil
}

var (
	errNotBool = errors.New(`expected "true" or "false"`)
	errNotRune = errors.New("expected exactly one character")
)
