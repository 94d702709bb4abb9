// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sceneview is an interactive viewer for a lit, textured box
// whose lights, geometry, material and pose are edited live.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/driver/headless"
	"cogentcore.org/sceneview/gui"
	"cogentcore.org/sceneview/params"
	"cogentcore.org/sceneview/presets"
	"cogentcore.org/sceneview/textures"
	"cogentcore.org/sceneview/viewer"
)

func main() { //types:skip
	opts := cli.DefaultOptions("sceneview", "Sceneview is an interactive viewer for a lit, textured box.")
	opts.DefaultFiles = []string{"sceneview.toml"}
	cli.Run(opts, &config.Config{}, Run)
}

// Run runs sceneview with the given configuration, in a window
// unless NoGUI is set.
func Run(c *config.Config) error { //cli:cmd -root
	errors.Log(c.SetupLogging())
	if err := c.Validate(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := presets.OpenOrNew(c.PresetFile)
	if err != nil {
		slog.Warn("presets not loaded", "file", c.PresetFile, "err", err)
		st = presets.New()
	}
	sc := params.NewScene()
	if c.Preset != "" {
		if err := st.Recall(c.Preset, sc); err != nil {
			return err
		}
	}

	if c.NoGUI {
		return runHeadless(ctx, c, sc)
	}
	gui.Run(ctx, c, sc, st)
	return nil
}

// runHeadless renders sc on the headless backend until ctx is done
// or c.Frames frames have been rendered.
func runHeadless(ctx context.Context, c *config.Config, sc *params.Scene) error {
	bk := headless.New()
	vw := viewer.New(bk, sc)
	vw.Resize(c.Width, c.Height)

	fsys, err := textures.Dir(c.TextureDir)
	if err != nil {
		return err
	}
	<-vw.LoadTextures(ctx, fsys)
	if c.Watch {
		errors.Log(textures.Watch(ctx, c.TextureDir, vw.SetTexture))
	}

	err = vw.RunFrames(ctx, c.FPS, c.Frames)
	slog.Info("headless run done", "frames", bk.Frames, "size", bk.Size())
	return err
}
