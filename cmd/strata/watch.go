// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nil-go/strata"
)

func newWatchCmd(settings *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "watch KEY",
		Short: "Print the resolved value of the key whenever a file changes",
		Long: `Print the resolved value of the key, then watch the files given by -f
and print the value again after any of them changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			resolver, files, err := settings.resolver()
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("watch requires at least one file")
			}

			var mutex sync.Mutex
			show := func(resolver *strata.Resolver) {
				mutex.Lock()
				defer mutex.Unlock()

				entry, err := resolver.Resolve(key)
				if err != nil {
					printLine(cmd.OutOrStdout(), err.Error())

					return
				}
				printLine(cmd.OutOrStdout(), entry.Value)
			}
			show(resolver)

			onChange := func() {
				resolver, _, err := settings.resolver()
				if err != nil {
					settings.logger.LogAttrs(
						cmd.Context(), slog.LevelWarn,
						"Error when reloading configuration.",
						slog.Any("error", err),
					)

					return
				}
				show(resolver)
			}

			group, ctx := errgroup.WithContext(cmd.Context())
			for _, source := range files {
				group.Go(func() error {
					return source.Watch(ctx, onChange)
				})
			}
			if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err //nolint:wrapcheck
			}

			return nil
		},
	}
}
