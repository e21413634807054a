// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/strata"
	"github.com/nil-go/strata/parser"
	"github.com/nil-go/strata/provider/file"
)

var (
	_ strata.Source = (*file.File)(nil)
	_ strata.Lister = (*file.File)(nil)
)

func TestFile(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		expected    map[string]string
		err         string
	}{
		{
			description: "properties",
			path:        "testdata/config.properties",
			expected: map[string]string{
				"server.host": "localhost",
				"server.port": "${PORT}",
				"timeout":     "30",
				"empty":       "",
			},
		},
		{
			description: "ini",
			path:        "testdata/config.ini",
			expected:    map[string]string{"somekey": "somevalue", "newkey": "newvalue"},
		},
		{
			description: "ini with context",
			path:        "testdata/config.ini",
			opts:        []file.Option{file.WithParser(parser.Contextual("Test"))},
			expected:    map[string]string{"somekey": "somevalue", "newkey": "123"},
		},
		{
			description: "yaml",
			path:        "testdata/config.yaml",
			expected:    map[string]string{"server.host": "example.com", "server.port": "8080"},
		},
		{
			description: "json",
			path:        "testdata/config.json",
			expected:    map[string]string{"k": "v"},
		},
		{
			description: "not exist",
			path:        "not_found.json",
			err:         "read file: open not_found.json: ",
		},
		{
			description: "ignore not exist",
			path:        "not_found.json",
			opts:        []file.Option{file.IgnoreFileNotExist()},
			expected:    map[string]string{},
		},
		{
			description: "invalid content",
			path:        "testdata/invalid.yaml",
			err:         "parse file testdata/invalid.yaml: parse yaml: ",
		},
		{
			description: "parser error",
			path:        "testdata/config.json",
			opts: []file.Option{
				file.WithParser(func([]byte) (map[string]string, error) {
					return nil, errors.New("parser error")
				}),
			},
			err: "parse file testdata/config.json: parser error",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			source, err := file.New(testcase.path, testcase.opts...)
			if testcase.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testcase.err)

				return
			}
			require.NoError(t, err)
			for key, expected := range testcase.expected {
				value, ok := source.Lookup(key)
				assert.True(t, ok, key)
				assert.Equal(t, expected, value)
			}
			assert.Len(t, source.Keys(), len(testcase.expected))
		})
	}
}

func TestFile_emptyPath(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "cannot create File with empty path", func() {
		_, _ = file.New("")
	})
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	source, err := file.New("testdata/config.json")
	require.NoError(t, err)
	assert.Equal(t, "file:testdata/config.json", source.String())
}
