// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"log/slog"
	"runtime"
)

// Watch is not supported on this platform. It logs a warning and returns immediately.
func (f *File) Watch(ctx context.Context, _ func()) error {
	f.logger.LogAttrs(
		ctx, slog.LevelWarn,
		"File.Watch is not supported on this platform.",
		slog.String("os", runtime.GOOS),
	)

	return nil
}
