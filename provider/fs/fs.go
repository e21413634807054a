// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fs reads configuration from file system.
//
// FS reads a file with the given path from the [fs.FS] when it is created,
// e.g. resources embedded with embed.FS, and parses the content into flat keys
// with the parser chosen by the file extension, see [parser.ByExtension].
package fs

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/nil-go/strata/parser"
)

// FS is a Source that reads configuration from file system.
//
// To create a new FS, call [New].
type FS struct {
	fs     fs.FS
	path   string
	parser parser.Parser

	values map[string]string
}

// New creates a FS with the given fs.FS, path and Option(s), and reads the file.
// If fsys is nil, it reads from the current working directory.
//
// It panics if the path is empty.
func New(fsys fs.FS, path string, opts ...Option) (*FS, error) {
	if path == "" {
		panic("cannot create FS with empty path")
	}

	option := &options{
		fs:   fsys,
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.fs == nil {
		// Ignore error: It uses whatever returned.
		dir, _ := os.Getwd()
		option.fs = os.DirFS(dir)
	}
	if option.parser == nil {
		option.parser = parser.ByExtension(path)
	}

	bytes, err := fs.ReadFile(option.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if option.values, err = option.parser(bytes); err != nil {
		return nil, fmt.Errorf("parse file %s: %w", path, err)
	}

	return (*FS)(option), nil
}

func (f *FS) Lookup(key string) (string, bool) {
	value, ok := f.values[key]

	return value, ok
}

func (f *FS) Keys() []string {
	return slices.Sorted(maps.Keys(f.values))
}

func (f *FS) String() string {
	return "fs:///" + f.path
}
