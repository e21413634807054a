// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nil-go/strata"
)

func newGetCmd(settings *settings) *cobra.Command {
	var (
		typ      string
		required bool
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the resolved value of the key",
		Long: `Print the resolved value of the key converted to the given type.

A key which no source defines prints nothing, unless --required is set,
which fails the command instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, _, err := settings.resolver()
			if err != nil {
				return err
			}

			value, err := resolver.ResolveAs(args[0], strata.Type(typ))
			switch {
			case errors.Is(err, strata.ErrMissingKey) && !required:
				return nil
			case err != nil:
				return err //nolint:wrapcheck
			}
			printLine(cmd.OutOrStdout(), format(value))

			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", string(strata.String),
		"type of the value (string, bool, int, int64, uint, float64, duration, rune, "+
			"[]string, []int, []int64, []uint, []float64, []duration, []rune, []bool)")
	cmd.Flags().BoolVar(&required, "required", false, "fail if no source defines the key")

	return cmd
}

func format(value any) string {
	switch v := value.(type) {
	case rune:
		return string(v)
	case []string:
		return strings.Join(v, "\n")
	case []rune:
		return strings.Join(strings.Split(string(v), ""), " ")
	case []int, []int64, []uint, []float64, []time.Duration, []bool:
		return strings.Trim(fmt.Sprint(v), "[]")
	default:
		return fmt.Sprint(v)
	}
}
