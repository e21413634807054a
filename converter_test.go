// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/strata"
	"github.com/nil-go/strata/provider/mem"
)

func TestResolver_ResolveAs(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		value       string
		typ         strata.Type
		opts        []strata.Option
		expected    any
		err         string
	}{
		{description: "string", value: " v ", typ: strata.String, expected: " v "},
		{description: "empty string", value: "", typ: strata.String, expected: ""},
		{description: "bool true", value: "true", typ: strata.Bool, expected: true},
		{description: "bool mixed case", value: "TrUe", typ: strata.Bool, expected: true},
		{description: "bool false", value: "FALSE", typ: strata.Bool, expected: false},
		{description: "bool yes", value: "yes", typ: strata.Bool, err: `expected "true" or "false"`},
		{description: "bool one", value: "1", typ: strata.Bool, err: `expected "true" or "false"`},
		{description: "bool empty", value: "", typ: strata.Bool, err: `expected "true" or "false"`},
		{description: "int", value: "-42", typ: strata.Int, expected: -42},
		{description: "int with space", value: " 42", typ: strata.Int, err: "invalid syntax"},
		{description: "int float", value: "4.2", typ: strata.Int, err: "invalid syntax"},
		{description: "int overflow", value: "99999999999999999999", typ: strata.Int, err: "out of range"},
		{description: "int64", value: "9223372036854775807", typ: strata.Int64, expected: int64(9223372036854775807)},
		{description: "uint", value: "42", typ: strata.Uint, expected: uint(42)},
		{description: "uint negative", value: "-1", typ: strata.Uint, err: "invalid syntax"},
		{description: "float", value: "0.25", typ: strata.Float, expected: 0.25},
		{description: "float exponent", value: "1e3", typ: strata.Float, expected: 1000.0},
		{description: "float invalid", value: "abc", typ: strata.Float, err: "invalid syntax"},
		{description: "duration", value: "1m30s", typ: strata.Duration, expected: 90 * time.Second},
		{description: "duration invalid", value: "30", typ: strata.Duration, err: "missing unit"},
		{description: "rune", value: "é", typ: strata.Rune, expected: 'é'},
		{description: "rune too long", value: "ab", typ: strata.Rune, err: "expected exactly one character"},
		{description: "rune empty", value: "", typ: strata.Rune, err: "expected exactly one character"},
		{description: "strings", value: "a, b ,c", typ: strata.Strings, expected: []string{"a", "b", "c"}},
		{description: "strings empty", value: "", typ: strata.Strings, expected: []string{}},
		{description: "strings blank", value: "  ", typ: strata.Strings, expected: []string{}},
		{description: "strings single", value: "a", typ: strata.Strings, expected: []string{"a"}},
		{description: "strings empty element", value: "a,,b", typ: strata.Strings, expected: []string{"a", "", "b"}},
		{description: "strings escaped delimiter", value: `a\,b`, typ: strata.Strings, expected: []string{`a\`, "b"}},
		{
			description: "strings with delimiter",
			value:       "a;b,c",
			typ:         strata.Strings,
			opts:        []strata.Option{strata.WithListDelimiter(";")},
			expected:    []string{"a", "b,c"},
		},
		{description: "ints", value: "1, 2,3", typ: strata.Ints, expected: []int{1, 2, 3}},
		{description: "ints invalid", value: "1,x", typ: strata.Ints, err: "element 1: "},
		{description: "int64s", value: "9223372036854775807,-1", typ: strata.Int64s, expected: []int64{9223372036854775807, -1}},
		{description: "uints", value: "0, 7", typ: strata.Uints, expected: []uint{0, 7}},
		{description: "uints negative", value: "1,-1", typ: strata.Uints, err: "element 1: "},
		{description: "floats", value: "0.5,1", typ: strata.Floats, expected: []float64{0.5, 1}},
		{description: "durations", value: "1s, 2m", typ: strata.Durations, expected: []time.Duration{time.Second, 2 * time.Minute}},
		{description: "runes", value: "a, é,-", typ: strata.Runes, expected: []rune{'a', 'é', '-'}},
		{description: "runes invalid", value: "a,bc", typ: strata.Runes, err: "element 1: expected exactly one character"},
		{description: "bools", value: "true,False", typ: strata.Bools, expected: []bool{true, false}},
		{description: "bools empty", value: "", typ: strata.Bools, expected: []bool{}},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			chain, err := strata.NewChain(mem.New(map[string]string{"k": testcase.value}))
			require.NoError(t, err)
			resolver := strata.New(chain, testcase.opts...)

			value, err := resolver.ResolveAs("k", testcase.typ)
			if testcase.err != "" {
				require.ErrorIs(t, err, strata.ErrConversion)
				assert.Contains(t, err.Error(), testcase.err)
				assert.Nil(t, value)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, value)
		})
	}
}

func TestResolver_ResolveAs_unknownType(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t, mem.New(map[string]string{"k": "v"}))

	_, err := resolver.ResolveAs("k", "date")
	require.ErrorIs(t, err, strata.ErrUnknownType)
	require.NotErrorIs(t, err, strata.ErrConversion)

	_, err = resolver.ResolveAs("missing", "date")
	require.ErrorIs(t, err, strata.ErrUnknownType)
}

func TestResolver_RegisterConverter(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t, mem.New(map[string]string{"level": "WARN", "other": "x"}))

	const level strata.Type = "level"
	require.NoError(t, resolver.RegisterConverter(level, func(value string) (any, error) {
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			return strings.ToLower(value), nil
		default:
			return nil, errors.New("unknown level")
		}
	}))

	value, err := strata.Get[string](resolver, "level", level)
	require.NoError(t, err)
	assert.Equal(t, "warn", value)
	_, err = resolver.ResolveAs("other", level)
	require.ErrorIs(t, err, strata.ErrConversion)
	assert.EqualError(t, err, `key "other": cannot convert "x" to level: unknown level`)

	err = resolver.RegisterConverter(level, func(string) (any, error) { return "replaced", nil })
	require.ErrorIs(t, err, strata.ErrDuplicateType)
	assert.EqualError(t, err, "converter already registered for type: level")
	value, err = strata.Get[string](resolver, "level", level)
	require.NoError(t, err)
	assert.Equal(t, "warn", value)

	require.ErrorIs(t, resolver.RegisterConverter(strata.Int, func(string) (any, error) { return 0, nil }), strata.ErrDuplicateType)

	assert.PanicsWithValue(t, "cannot register converter for empty type", func() {
		_ = resolver.RegisterConverter("", func(string) (any, error) { return nil, nil })
	})
	assert.PanicsWithValue(t, "cannot register nil converter", func() {
		_ = resolver.RegisterConverter("nil", nil)
	})
}

func TestResolver_RegisterConverter_concurrency(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t, mem.New(map[string]string{"k": "v"}))

	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		succeeded int
	)
	for range 10 {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()

			if resolver.RegisterConverter("custom", func(value string) (any, error) { return value, nil }) == nil {
				mutex.Lock()
				succeeded++
				mutex.Unlock()
			}
			_, _ = resolver.ResolveAs("k", "custom")
		}()
	}
	waitGroup.Wait()

	assert.Equal(t, 1, succeeded)
}
