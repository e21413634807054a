// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/strata"
	"github.com/nil-go/strata/provider/mem"
)

func BenchmarkNew(b *testing.B) {
	chain, err := strata.NewChain(mem.New(map[string]string{"k": "v"}))
	require.NoError(b, err)

	var resolver *strata.Resolver
	for b.Loop() {
		resolver = strata.New(chain)
	}
	b.StopTimer()

	assert.Equal(b, "v", resolver.Require("k"))
}

func BenchmarkGet(b *testing.B) {
	chain, err := strata.NewChain(
		mem.New(map[string]string{"PORT": "9090"}),
		mem.New(map[string]string{"port": "${PORT}"}),
	)
	require.NoError(b, err)

	for _, opts := range [][]strata.Option{nil, {strata.WithoutCache()}} {
		resolver := strata.New(chain, opts...)
		b.Run(map[bool]string{true: "cached", false: "uncached"}[opts == nil], func(b *testing.B) {
			var value int
			for b.Loop() {
				value, err = strata.Get[int](resolver, "port", strata.Int)
			}
			b.StopTimer()

			require.NoError(b, err)
			assert.Equal(b, 9090, value)
		})
	}
}
