// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nil-go/strata"
	"github.com/nil-go/strata/parser"
	"github.com/nil-go/strata/provider/env"
	"github.com/nil-go/strata/provider/file"
	"github.com/nil-go/strata/provider/mem"
)

type settings struct {
	files     []string
	env       bool
	envPrefix string
	set       []string
	context   string
	logLevel  string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	settings := &settings{}

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Resolve configuration from layered sources",
		Long: `Strata resolves configuration keys from layered sources.

A key is looked up in the sources by precedence: --set overrides,
then environment variables (--env or --env-prefix), then the files given by -f,
where a later file overrides an earlier one.
Placeholders like ${key} in values are substituted from the same sources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(settings.logLevel)); err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			settings.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&settings.files, "file", "f", nil, "configuration file, repeatable (properties, ini, yaml, toml or json)")
	flags.BoolVar(&settings.env, "env", false, "read environment variables by their names")
	flags.StringVar(&settings.envPrefix, "env-prefix", "",
		"read environment variables with the prefix, mapping APP_SERVER_PORT to server.port for prefix APP_")
	flags.StringArrayVar(&settings.set, "set", nil, "override as key=value, repeatable")
	flags.StringVar(&settings.context, "context", "", "section applied over [Default] in sectioned files")
	flags.StringVar(&settings.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGetCmd(settings),
		newExplainCmd(settings),
		newKeysCmd(settings),
		newWatchCmd(settings),
	)

	return cmd
}

// resolver reads all sources again and builds a new Resolver over them.
func (s *settings) resolver() (*strata.Resolver, []*file.File, error) {
	var sources []strata.Source

	overrides := make(map[string]string, len(s.set))
	for _, pair := range s.set {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		overrides[key] = value
	}
	if len(overrides) > 0 {
		sources = append(sources, mem.New(overrides, mem.WithName("set")))
	}

	switch {
	case s.envPrefix != "":
		sources = append(sources, env.New(env.WithPrefix(s.envPrefix), env.WithNameMapper(env.DotCase(s.envPrefix))))
	case s.env:
		sources = append(sources, env.New())
	}

	files := make([]*file.File, 0, len(s.files))
	for _, path := range slices.Backward(s.files) {
		source, err := file.New(path, file.WithParser(s.parser(path)), file.WithLogger(s.logger))
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		files = append(files, source)
		sources = append(sources, source)
	}

	chain, err := strata.NewChain(sources...)
	if err != nil {
		return nil, nil, fmt.Errorf("new chain: %w", err)
	}

	return strata.New(chain, strata.WithLogger(s.logger)), files, nil
}

func (s *settings) parser(path string) parser.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml", ".json":
		return parser.ByExtension(path)
	default:
		return parser.Contextual(s.context)
	}
}

func printLine(out io.Writer, a ...any) {
	_, _ = fmt.Fprintln(out, a...)
}
