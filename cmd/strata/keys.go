// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newKeysCmd(settings *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [PREFIX]",
		Short: "List the keys defined by all sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := settings.resolver()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}
			for _, key := range resolver.Keys() {
				if strings.HasPrefix(key, prefix) {
					printLine(cmd.OutOrStdout(), key)
				}
			}

			return nil
		},
	}
}
