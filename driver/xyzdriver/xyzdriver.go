// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzdriver implements [driver.Backend] on a Cogent Core
// [xyz.Scene], which renders on desktop, mobile and the web.
package xyzdriver

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/sceneview/driver"
	"cogentcore.org/sceneview/params"
)

// wireWidth is the thickness of wireframe lines.
const wireWidth = 0.01

// LightInterval is the shortest time between rebuilds for light
// edits that do not turn a light on or off.
const LightInterval = 100 * time.Millisecond

// Renderer is the widget that displays the scene.
type Renderer interface {
	NeedsRender()
}

// Backend is a [driver.Backend] on an [xyz.Scene].
type Backend struct {

	// Scene is the xyz scene.
	Scene *xyz.Scene

	// Renderer, if set, is asked to render after every [Backend.Render].
	Renderer Renderer

	// RunOnMain runs GPU resource rebuilds; it must run f on the
	// thread that owns the GPU. It defaults to calling f directly.
	RunOnMain func(f func())

	camera *Camera
	boxes  int

	// rebuild is set by changes that must reach the GPU on the next render.
	rebuild bool

	// lightsDirty is set by light value edits, which are rebuilt
	// at most once per LightInterval.
	lightsDirty bool

	lastRebuild time.Time
	rebuilds    int
	now         func() time.Time
}

var _ driver.Backend = &Backend{}

// New returns a new [Backend] on sc.
func New(sc *xyz.Scene, rend Renderer) *Backend {
	bk := &Backend{Scene: sc, Renderer: rend, RunOnMain: func(f func()) { f() }, now: time.Now}
	bk.camera = &Camera{bk: bk, cam: &sc.Camera}
	return bk
}

func (bk *Backend) Camera() driver.Camera { return bk.camera }

func (bk *Backend) SetSize(width, height int) {
	bk.Scene.SetSize(image.Pt(width, height))
}

func (bk *Backend) Size() image.Point { return bk.Scene.Geom.Size }

func (bk *Backend) SetBackground(clr color.RGBA) {
	bk.Scene.Background = colors.Uniform(clr)
	bk.rebuild = true
}

func (bk *Backend) NewLight(lp *params.Light) driver.Light {
	var lt xyz.Light
	switch lp.Kind {
	case params.Ambient, params.Hemisphere:
		lt = xyz.NewAmbient(bk.Scene, lp.Name, lp.Intensity, xyz.DirectSun)
	case params.Directional:
		lt = xyz.NewDirectional(bk.Scene, lp.Name, lp.Intensity, xyz.DirectSun)
	case params.Point:
		lt = xyz.NewPoint(bk.Scene, lp.Name, lp.Intensity, xyz.DirectSun)
	default:
		lt = xyz.NewSpot(bk.Scene, lp.Name, lp.Intensity, xyz.DirectSun)
	}
	l := &Light{bk: bk, Light: lt, kind: lp.Kind}
	l.Apply(lp)
	return l
}

func (bk *Backend) NewBox(gm params.Geometry) driver.Geometry {
	bk.boxes++
	bx := xyz.NewBox(bk.Scene, fmt.Sprintf("box-%d", bk.boxes), gm.Width, gm.Height, gm.Depth)
	bx.Segs.Set(int32(gm.WidthSegments), int32(gm.HeightSegments), int32(gm.DepthSegments))
	bk.Scene.SetMesh(bx)
	return &Geometry{bk: bk, Box: bx}
}

func (bk *Backend) NewMesh(name string, geom driver.Geometry) driver.Mesh {
	sld := xyz.NewSolid(bk.Scene)
	sld.SetName(name)
	ms := &Mesh{bk: bk, Solid: sld, name: name}
	ms.SetGeometry(geom)
	return ms
}

func (bk *Backend) NewTexture(name string, img *image.RGBA) driver.Texture {
	tx := &xyz.TextureBase{Name: name, RGBA: img}
	bk.Scene.SetTexture(tx)
	return &Texture{tx: tx}
}

// Render marks the scene for update and asks the renderer to draw it.
// Structural changes since the last render rebuild the GPU resources
// first; light value edits rebuild them once LightInterval has passed
// since the previous rebuild.
func (bk *Backend) Render() error {
	now := bk.now()
	if bk.lightsDirty && now.Sub(bk.lastRebuild) >= LightInterval {
		bk.rebuild = true
	}
	if bk.rebuild {
		bk.rebuild = false
		bk.lightsDirty = false
		bk.lastRebuild = now
		bk.rebuilds++
		bk.RunOnMain(bk.Scene.Rebuild)
	}
	bk.Scene.SetNeedsUpdate()
	if bk.Renderer != nil {
		bk.Renderer.NeedsRender()
	}
	return nil
}

// Light is a [driver.Light] for an [xyz.Light]. Hemisphere lights
// are ambient lights of the average of the sky and ground colors.
// A light that is off has no lumens.
type Light struct {
	Light xyz.Light
	bk    *Backend
	kind  params.LightKinds

	// last is the last applied parameters, if applied.
	last    params.Light
	applied bool
}

func (l *Light) Apply(lp *params.Light) {
	if l.applied && *lp == l.last {
		return
	}
	if !l.applied || lp.On != l.last.On {
		l.bk.rebuild = true
	} else {
		l.bk.lightsDirty = true
	}
	l.last, l.applied = *lp, true

	lb := l.Light.AsLightBase()
	lb.On = lp.On
	lb.Lumens = 0
	if lp.On {
		lb.Lumens = lp.Intensity
	}
	lb.Color = lp.Color
	if l.kind == params.Hemisphere {
		lb.Color = driver.HemisphereColor(lp.Color, lp.GroundColor)
	}
	switch lt := l.Light.(type) {
	case *xyz.Directional:
		lt.Pos = lp.Position
	case *xyz.Point:
		lt.Pos = lp.Position
		lt.LinDecay, lt.QuadDecay = driver.Attenuation(lp.Distance, lp.Decay)
	case *xyz.Spot:
		lt.Pose.Pos = lp.Position
		lt.LookAtOrigin()
		lt.CutoffAngle = lp.Angle
		lt.AngDecay = driver.SpotFalloff(lp.Penumbra)
		lt.LinDecay, lt.QuadDecay = driver.Attenuation(lp.Distance, lp.Decay)
	}
}

// Geometry is a [driver.Geometry] for an [xyz.Box] mesh.
// Each geometry has its own mesh name; disposing it removes
// the mesh from the scene.
type Geometry struct {
	Box      *xyz.Box
	bk       *Backend
	disposed bool
}

func (g *Geometry) Size() math32.Vector3 { return g.Box.Size }

func (g *Geometry) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.bk.Scene.Meshes.DeleteKey(g.Box.Name)
	g.bk.rebuild = true
}

// Mesh is a [driver.Mesh] for an [xyz.Solid]. In wireframe mode the
// solid shows a lines mesh along the box edges instead of the box.
type Mesh struct {
	Solid *xyz.Solid

	bk        *Backend
	name      string
	geom      *Geometry
	wireframe bool
}

func (ms *Mesh) Geometry() driver.Geometry {
	if ms.geom == nil {
		return nil
	}
	return ms.geom
}

func (ms *Mesh) SetGeometry(geom driver.Geometry) {
	ms.geom, _ = geom.(*Geometry)
	ms.updateMesh()
}

// updateMesh points the solid at the box or its wireframe.
func (ms *Mesh) updateMesh() {
	if ms.geom == nil {
		return
	}
	if !ms.wireframe {
		ms.Solid.SetMesh(ms.geom.Box)
		if _, ok := ms.bk.Scene.Meshes.ValueByKeyTry(ms.wireName()); ok {
			ms.bk.Scene.Meshes.DeleteKey(ms.wireName())
			ms.bk.rebuild = true
		}
		return
	}
	edges := driver.BoxEdges(ms.geom.Box.Size)
	lines := xyz.NewLines(ms.bk.Scene, ms.wireName(), edges, math32.Vec2(wireWidth, wireWidth), false)
	ms.Solid.SetMesh(lines)
}

// wireName is the name of the wireframe lines mesh.
func (ms *Mesh) wireName() string { return ms.name + "-wireframe" }

func (ms *Mesh) SetMaterial(mt params.Material, tex *driver.Textures) {
	mat := &ms.Solid.Material
	mat.Color = mt.Color
	mat.Shiny, mat.Reflective = driver.PhongFromPBR(mt.Roughness, mt.Metalness)
	if tex != nil && tex.Color != nil {
		mat.SetTexture(tex.Color.(*Texture).tx)
	} else {
		mat.NoTexture()
	}
	if mt.Wireframe != ms.wireframe {
		ms.wireframe = mt.Wireframe
		ms.updateMesh()
	}
}

func (ms *Mesh) SetTransform(tr params.Transform) {
	ms.Solid.SetPos(tr.Position.X, tr.Position.Y, tr.Position.Z)
	ms.Solid.SetScale(tr.Scale.X, tr.Scale.Y, tr.Scale.Z)
	ms.Solid.SetEulerRotation(math32.RadToDeg(tr.Rotation.X), math32.RadToDeg(tr.Rotation.Y), math32.RadToDeg(tr.Rotation.Z))
}

// Texture is a [driver.Texture] for an [xyz.TextureBase].
type Texture struct {
	tx *xyz.TextureBase
}

func (tx *Texture) Name() string { return tx.tx.Name }
