// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textures

import (
	"context"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch watches dir and calls fn with the reloaded map whenever
// one of the map [Files] is written or created. It returns after
// the watch is set up; watching stops when ctx is done.
// fn is called on the watcher goroutine.
func Watch(ctx context.Context, dir string, fn func(m Maps, img *image.RGBA)) error {
	path, err := homedir.Expand(dir)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	fsys := os.DirFS(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(event.Name)
				m, ok := MapForFile(name)
				if !ok {
					continue
				}
				img, err := Load(fsys, name)
				if err != nil {
					slog.Warn("texture map not reloaded", "map", m, "err", err)
					continue
				}
				fn(m, img)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watching textures", "dir", path, "err", err)
			}
		}
	}()
	return nil
}
