// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file reads configuration from OS file.
//
// File reads the file with the given path from the OS file system when it is created,
// and parses the content into flat keys with the parser chosen by the file extension,
// see [parser.ByExtension]. WithParser overrides the parser.
//
// By default, New returns error if the file is not found.
// IgnoreFileNotExist overrides the behavior to create an empty File.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/nil-go/strata/parser"
)

// File is a Source that reads configuration from a OS file.
//
// To create a new File, call [New].
type File struct {
	logger         *slog.Logger
	path           string
	parser         parser.Parser
	ignoreNotExist bool

	values map[string]string
}

// New creates a File with the given path and Option(s), and reads the file.
//
// It panics if the path is empty.
func New(path string, opts ...Option) (*File, error) {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("strata.file")
	if option.parser == nil {
		option.parser = parser.ByExtension(path)
	}

	file := (*File)(option)
	values, err := file.load()
	if err != nil {
		return nil, err
	}
	file.values = values

	return file, nil
}

func (f *File) load() (map[string]string, error) {
	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if f.ignoreNotExist && errors.Is(err, fs.ErrNotExist) {
			f.logger.LogAttrs(
				context.Background(), slog.LevelWarn,
				"Config file does not exist.",
				slog.String("file", f.path),
			)

			return make(map[string]string), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	values, err := f.parser(bytes)
	if err != nil {
		return nil, fmt.Errorf("parse file %s: %w", f.path, err)
	}

	return values, nil
}

func (f *File) Lookup(key string) (string, bool) {
	value, ok := f.values[key]

	return value, ok
}

func (f *File) Keys() []string {
	return slices.Sorted(maps.Keys(f.values))
}

func (f *File) String() string {
	return "file:" + f.path
}
