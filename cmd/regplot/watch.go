// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/regplot/base/errors"
)

// watch calls render each time the given file is written or replaced,
// until ctx is done. Render errors are logged, not returned.
func watch(ctx context.Context, file string, render func() error) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// the directory, as editors often replace the file on save
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching config", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("config changed", "file", abs, "op", ev.Op.String())
			errors.Log(render())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
