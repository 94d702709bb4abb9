// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer builds the viewed scene from its parameters on a
// [driver.Backend] and keeps the two in sync: control callbacks call
// the Apply methods after changing a parameter, the window calls
// [Viewer.Resize], and the animation tick calls [Viewer.Frame].
package viewer

import (
	"context"
	"image"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/sceneview/driver"
	"cogentcore.org/sceneview/orbit"
	"cogentcore.org/sceneview/params"
	"cogentcore.org/sceneview/textures"
)

// MeshName is the name of the box mesh.
const MeshName = "box"

// Controls are per-frame camera controls.
type Controls interface {

	// Update applies pending input to the camera,
	// returning whether it moved.
	Update(dt time.Duration) bool
}

// Viewer is a scene built from [params.Scene] on a [driver.Backend].
// Except for [Viewer.SetTextures] and [Viewer.SetTexture], its methods
// must be called from the goroutine that renders.
type Viewer struct {

	// Params are the scene parameters, bound to the controls.
	Params *params.Scene

	// Backend is the scene implementation.
	Backend driver.Backend

	// Camera is the backend camera.
	Camera driver.Camera

	// Orbit are the orbit controls for Camera.
	Orbit *orbit.Controls

	// Controls are updated once per frame; they are Orbit by default.
	Controls Controls

	// Lights are the backend lights, parallel to Params.Lights.
	Lights []driver.Light

	// Mesh is the box mesh.
	Mesh driver.Mesh

	// Textures are the texture maps applied to the material.
	Textures driver.Textures

	// mu guards pending, which holds maps loaded in the background
	// that the next Frame applies.
	mu      sync.Mutex
	pending textures.Set
}

// New builds the scene described by sc on bk.
func New(bk driver.Backend, sc *params.Scene) *Viewer {
	vw := &Viewer{Params: sc, Backend: bk, Camera: bk.Camera()}

	cp := &sc.Camera
	vw.Camera.SetPerspective(cp.FOV, cp.Near, cp.Far)
	vw.Camera.SetPosition(cp.Position)
	vw.Camera.LookAt(cp.Target)
	vw.Orbit = orbit.New(vw.Camera)
	vw.Controls = vw.Orbit
	sz := bk.Size()
	if !vw.Resize(sz.X, sz.Y) {
		vw.Camera.UpdateProjectionMatrix()
	}

	bk.SetBackground(sc.Background)
	vw.Lights = make([]driver.Light, len(sc.Lights))
	for i := range sc.Lights {
		vw.Lights[i] = bk.NewLight(&sc.Lights[i])
	}

	vw.Mesh = bk.NewMesh(MeshName, bk.NewBox(sc.Geometry))
	vw.ApplyMaterial()
	vw.ApplyTransform()
	return vw
}

// Resize sets the renderer output buffer to width x height pixels and
// matches the camera aspect ratio to it. Empty sizes are ignored;
// it returns whether the size was applied.
func (vw *Viewer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	vw.Backend.SetSize(width, height)
	vw.Camera.SetAspect(float32(width) / float32(height))
	vw.Camera.UpdateProjectionMatrix()
	vw.Orbit.SetViewport(width, height)
	return true
}

// SetGeometry replaces the mesh geometry with a new box of the current
// Params.Geometry and disposes the previous one.
func (vw *Viewer) SetGeometry() {
	old := vw.Mesh.Geometry()
	vw.Mesh.SetGeometry(vw.Backend.NewBox(vw.Params.Geometry))
	if old != nil {
		old.Dispose()
	}
}

// ApplyMaterial updates the mesh material from Params.Material.
func (vw *Viewer) ApplyMaterial() {
	mt := vw.Params.Material
	var tex *driver.Textures
	if mt.UseTextures && !vw.Textures.IsEmpty() {
		tex = &vw.Textures
	}
	vw.Mesh.SetMaterial(mt, tex)
}

// ApplyTransform updates the mesh pose from Params.Transform.
func (vw *Viewer) ApplyTransform() {
	vw.Mesh.SetTransform(vw.Params.Transform)
}

// ApplyLight updates light i from Params.Lights[i].
func (vw *Viewer) ApplyLight(i int) {
	if i < 0 || i >= len(vw.Lights) || i >= len(vw.Params.Lights) {
		return
	}
	vw.Lights[i].Apply(&vw.Params.Lights[i])
}

// ApplyBackground updates the clear color from Params.Background.
func (vw *Viewer) ApplyBackground() {
	vw.Backend.SetBackground(vw.Params.Background)
}

// ApplyAll applies every parameter, as needed after the parameters
// are replaced wholesale by a preset. The lights must be the same
// in number as when the viewer was created.
func (vw *Viewer) ApplyAll() {
	vw.ApplyBackground()
	for i := range vw.Lights {
		vw.ApplyLight(i)
	}
	vw.SetGeometry()
	vw.ApplyMaterial()
	vw.ApplyTransform()
}

// Frame advances one frame: pending textures are applied, then the
// controls are updated once and the scene is rendered once.
func (vw *Viewer) Frame(dt time.Duration) error {
	if vw.applyPending() {
		vw.ApplyMaterial()
	}
	if vw.Controls != nil {
		vw.Controls.Update(dt)
	}
	return vw.Backend.Render()
}

// Run calls [Viewer.Frame] fps times per second until ctx is done
// or rendering fails. It is the animation loop for backends that
// are not driven by a window.
func (vw *Viewer) Run(ctx context.Context, fps int) error {
	return vw.RunFrames(ctx, fps, 0)
}

// RunFrames is [Viewer.Run] that also stops after n frames if n > 0.
func (vw *Viewer) RunFrames(ctx context.Context, fps, n int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	last := time.Now()
	for frame := 0; n <= 0 || frame < n; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := vw.Frame(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}
	return nil
}

// LoadTextures loads the texture maps from fsys in the background.
// Failures are logged, never returned; the maps are applied by the
// next Frame after loading. The returned channel is closed when
// loading is done.
func (vw *Viewer) LoadTextures(ctx context.Context, fsys fs.FS) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		set, err := textures.LoadSet(ctx, fsys)
		if err != nil {
			slog.Warn("texture loading canceled", "err", err)
			return
		}
		slog.Info("textures loaded", "maps", set.Len())
		vw.SetTextures(set)
	}()
	return done
}

// SetTextures queues the non-nil maps of set for the next Frame.
// It is safe to call from any goroutine.
func (vw *Viewer) SetTextures(set textures.Set) {
	vw.mu.Lock()
	defer vw.mu.Unlock()
	for m, img := range set {
		if img != nil {
			vw.pending[m] = img
		}
	}
}

// SetTexture queues one map for the next Frame.
// It is safe to call from any goroutine.
func (vw *Viewer) SetTexture(m textures.Maps, img *image.RGBA) {
	var set textures.Set
	set[m] = img
	vw.SetTextures(set)
}

// applyPending creates backend textures for pending maps,
// returning whether there were any.
func (vw *Viewer) applyPending() bool {
	vw.mu.Lock()
	set := vw.pending
	vw.pending = textures.Set{}
	vw.mu.Unlock()
	if set.Len() == 0 {
		return false
	}
	slots := [textures.MapsN]*driver.Texture{
		&vw.Textures.Color, &vw.Textures.Roughness, &vw.Textures.Normal, &vw.Textures.Height,
	}
	for m, img := range set {
		if img != nil {
			*slots[m] = vw.Backend.NewTexture(textures.Maps(m).String(), img)
		}
	}
	return true
}
