// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

func newExplainCmd(settings *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "explain KEY",
		Short: "Explain which source supplies the key and what it overrides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := settings.resolver()
			if err != nil {
				return err
			}
			_, _ = cmd.OutOrStdout().Write([]byte(resolver.Explain(args[0])))

			return nil
		},
	}
}
