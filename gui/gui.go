// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gui provides the sceneview window: the 3D scene next to the
// control panel, with a toolbar for presets.
package gui

import (
	"context"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/system"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/driver/xyzdriver"
	"cogentcore.org/sceneview/panel"
	"cogentcore.org/sceneview/params"
	"cogentcore.org/sceneview/presets"
	"cogentcore.org/sceneview/textures"
	"cogentcore.org/sceneview/viewer"
)

// App is the sceneview application window.
type App struct {

	// Config is the command configuration.
	Config *config.Config

	// Presets is the preset store, saved to Config.PresetFile.
	Presets *presets.Store

	// Viewer is the viewer of the scene.
	Viewer *viewer.Viewer

	// Panel is the control panel tree.
	Panel *panel.Folder

	editor   *xyzcore.SceneEditor
	controls *core.Frame
	size     image.Point
}

// Run opens the main window for sc and blocks until it is closed.
func Run(ctx context.Context, cfg *config.Config, sc *params.Scene, st *presets.Store) {
	b := core.NewBody("Scene viewer")
	app := &App{Config: cfg, Presets: st}
	app.Make(ctx, b, sc)
	b.RunMainWindow()
}

// Make adds the scene and the control panel to b.
func (app *App) Make(ctx context.Context, b *core.Body, sc *params.Scene) {
	sp := core.NewSplits(b)

	app.editor = xyzcore.NewSceneEditor(sp)
	app.editor.UpdateWidget()
	sw := app.editor.SceneWidget()
	bk := xyzdriver.New(app.editor.SceneXYZ(), sw)
	bk.RunOnMain = system.TheApp.RunOnMain
	app.Viewer = viewer.New(bk, sc)
	app.editor.SceneXYZ().SaveCamera("default")
	app.loadTextures(ctx)

	app.controls = core.NewFrame(sp)
	app.controls.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Overflow.Y = styles.OverflowAuto
		s.Grow.Set(1, 1)
	})
	core.NewToolbar(app.controls).Maker(app.makeToolbar)
	app.Panel = panel.Build(sc, app.Viewer)
	panel.Make(app.controls, app.Panel)
	sp.SetSplits(0.7, 0.3)

	app.handleOrbit(sw)
	sw.Animate(func(a *core.Animation) {
		app.resize(sw.Geom.Size.Actual.Content.ToPointFloor())
		errors.Log(app.Viewer.Frame(frameDelta(a)))
	})
}

// frameDelta returns the time since the last animation frame.
func frameDelta(a *core.Animation) time.Duration {
	return time.Duration(float64(a.Dt) * float64(time.Millisecond))
}

func (app *App) loadTextures(ctx context.Context) {
	fsys, err := textures.Dir(app.Config.TextureDir)
	if errors.Log(err) != nil {
		return
	}
	app.Viewer.LoadTextures(ctx, fsys)
	if app.Config.Watch {
		errors.Log(textures.Watch(ctx, app.Config.TextureDir, app.Viewer.SetTexture))
	}
}

// resize resizes the viewer when the scene widget has changed size.
func (app *App) resize(sz image.Point) {
	if sz == app.size {
		return
	}
	if app.Viewer.Resize(sz.X, sz.Y) {
		app.size = sz
		slog.Debug("resized", "size", sz)
	}
}

// handleOrbit drives the orbit controls from the scene widget:
// drag orbits, shift-drag pans, and scroll dollies. These handlers
// are added after the widget's own and so run first.
func (app *App) handleOrbit(sw *xyzcore.Scene) {
	oc := app.Viewer.Orbit
	sw.On(events.SlideMove, func(e events.Event) {
		d := e.PrevDelta()
		if e.HasAnyModifier(key.Shift) {
			oc.Pan(float32(d.X), float32(d.Y))
		} else {
			oc.Rotate(float32(d.X), float32(d.Y))
		}
		e.SetHandled()
	})
	sw.On(events.Scroll, func(e events.Event) {
		oc.Dolly(e.(*events.MouseScroll).Delta.Y)
		e.SetHandled()
	})
}

func (app *App) makeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.Button) {
		w.SetText("Save preset").SetIcon(icons.Save)
		w.OnClick(func(e events.Event) {
			app.savePresetDialog(w)
		})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Load preset").SetIcon(icons.Open)
		w.OnClick(func(e events.Event) {
			app.loadPresetDialog(w)
		})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Reset").SetIcon(icons.Refresh)
		w.OnClick(func(e events.Event) {
			core.ErrorSnackbar(w, app.Presets.Reset(app.Viewer.Params))
			app.applied()
		})
	})
}

// applied updates the scene and the panel after the
// parameters have been replaced.
func (app *App) applied() {
	app.Viewer.ApplyAll()
	app.controls.Update()
}

func (app *App) savePresetDialog(ctx core.Widget) {
	d := core.NewBody("Save preset")
	name := app.Presets.Active
	if name == "" || name == presets.DefaultName {
		name = "Preset"
	}
	tf := core.NewTextField(d).SetText(name)
	d.AddBottomBar(func(bar *core.Frame) {
		d.AddCancel(bar)
		d.AddOK(bar).OnClick(func(e events.Event) {
			err := app.Presets.Remember(tf.Text(), app.Viewer.Params)
			if err == nil {
				err = app.Presets.Save(app.Config.PresetFile)
			}
			core.ErrorSnackbar(ctx, err, "Error saving preset")
		})
	})
	d.RunDialog(ctx)
}

func (app *App) loadPresetDialog(ctx core.Widget) {
	d := core.NewBody("Load preset")
	ch := core.NewChooser(d).SetStrings(app.Presets.Names()...)
	if app.Presets.Active != "" {
		ch.SetCurrentValue(app.Presets.Active)
	}
	d.AddBottomBar(func(bar *core.Frame) {
		d.AddCancel(bar)
		d.AddOK(bar).OnClick(func(e events.Event) {
			err := app.Presets.Recall(ch.CurrentItem.Text, app.Viewer.Params)
			if err != nil {
				core.ErrorSnackbar(ctx, err, "Error loading preset")
				return
			}
			app.applied()
		})
	})
	d.RunDialog(ctx)
}
