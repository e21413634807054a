// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !appengine && (darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks and calls onChange whenever the file is created, written or removed,
// until ctx is done.
//
// The File itself never changes. To read the new content, the caller creates a new File,
// builds a new Chain and Resolver with it.
//
//nolint:cyclop,funlen
func (f *File) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", f.path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when closing file watcher.",
				slog.String("file", f.path),
				slog.Any("error", e),
			)
		}
	}()

	// Watch the parent directory so that symlink swaps and re-creation are picked up.
	dir := filepath.Dir(f.path)
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	path := filepath.Clean(f.path)
	realPath := path
	if resolved, e := filepath.EvalSymlinks(f.path); e == nil {
		realPath = filepath.Clean(resolved)
	}

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Some platforms fire the same event multiple times.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			name := filepath.Clean(event.Name)
			if name != realPath && name != path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				f.logger.LogAttrs(
					ctx, slog.LevelWarn,
					"Config file has been removed.",
					slog.String("file", f.path),
				)
				onChange()
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				f.logger.LogAttrs(
					ctx, slog.LevelDebug,
					"Config file has been changed.",
					slog.String("file", f.path),
					slog.String("op", event.Op.String()),
				)
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when watching file.",
				slog.String("file", f.path),
				slog.Any("error", err),
			)

		case <-ctx.Done():
			return nil
		}
	}
}
