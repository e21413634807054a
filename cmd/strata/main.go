// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command strata resolves configuration from layered sources on the command line.
//
//	strata -f defaults.properties -f app.yaml --env --set server.port=9090 get server.port --type int
//
// Sources take precedence in the order: --set, then environment variables with --env,
// then files in the reverse order of -f, so the last file given wins among files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
