// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package flag_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/strata"
	sflag "github.com/nil-go/strata/provider/flag"
)

var (
	_ strata.Source = (*sflag.Flag)(nil)
	_ strata.Lister = (*sflag.Flag)(nil)
)

func TestFlag(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		opts        []sflag.Option
		expected    map[string]string
	}{
		{
			description: "set flags only",
			expected:    map[string]string{"server.port": "9090", "server.host": "", "debug": "true"},
		},
		{
			description: "with prefix",
			opts:        []sflag.Option{sflag.WithPrefix("server.")},
			expected:    map[string]string{"server.port": "9090", "server.host": ""},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.Int("server.port", 8080, "")
			set.String("server.host", "localhost", "")
			set.String("server.name", "app", "")
			set.Bool("debug", false, "")
			require.NoError(t, set.Parse([]string{"-server.port=9090", "-server.host=", "-debug"}))

			source := sflag.New(append([]sflag.Option{sflag.WithFlagSet(set)}, testcase.opts...)...)
			for key, expected := range testcase.expected {
				value, ok := source.Lookup(key)
				assert.True(t, ok, key)
				assert.Equal(t, expected, value)
			}
			_, ok := source.Lookup("server.name")
			assert.False(t, ok)
			assert.Len(t, source.Keys(), len(testcase.expected))
		})
	}
}

func TestFlag_String(t *testing.T) {
	t.Parallel()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	assert.Equal(t, "flag", sflag.New(sflag.WithFlagSet(set)).String())
	assert.Equal(t, "flag:server.", sflag.New(sflag.WithFlagSet(set), sflag.WithPrefix("server.")).String())
}
