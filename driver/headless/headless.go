// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides an in-memory implementation of the driver
// interfaces, to allow for testing and for running the viewer without
// a display. It renders nothing, but it keeps the full scene state,
// including a real camera projection matrix, so that it can be inspected.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/driver"
	"cogentcore.org/sceneview/params"
	"github.com/google/uuid"
)

// DefaultSize is the output buffer size before the first SetSize.
var DefaultSize = image.Point{480, 320}

// Backend is the [driver.Backend] implementation for the headless platform.
type Backend struct {

	// Background is the clear color.
	Background color.RGBA

	// Lights are all lights, in creation order.
	Lights []*Light

	// Geometries are all geometries ever created, including disposed ones.
	Geometries []*Geometry

	// Meshes are all meshes, in creation order.
	Meshes []*Mesh

	// Textures are the current textures by name.
	Textures map[string]*Texture

	// Frames is the number of successful Render calls.
	Frames int

	camera *Camera
	size   image.Point
}

var _ driver.Backend = &Backend{}

// New returns a new empty headless [Backend].
func New() *Backend {
	return &Backend{
		Textures: map[string]*Texture{},
		camera:   NewCamera(),
		size:     DefaultSize,
	}
}

func (bk *Backend) Camera() driver.Camera { return bk.camera }

// HeadlessCamera returns the camera with its concrete type.
func (bk *Backend) HeadlessCamera() *Camera { return bk.camera }

func (bk *Backend) SetSize(width, height int) {
	bk.size = image.Point{width, height}
}

func (bk *Backend) Size() image.Point { return bk.size }

func (bk *Backend) SetBackground(clr color.RGBA) { bk.Background = clr }

func (bk *Backend) NewLight(lp *params.Light) driver.Light {
	lt := &Light{}
	lt.Apply(lp)
	bk.Lights = append(bk.Lights, lt)
	return lt
}

func (bk *Backend) NewBox(gm params.Geometry) driver.Geometry {
	g := &Geometry{ID: uuid.New(), Params: gm}
	bk.Geometries = append(bk.Geometries, g)
	return g
}

func (bk *Backend) NewMesh(name string, geom driver.Geometry) driver.Mesh {
	ms := &Mesh{Name: name}
	ms.SetGeometry(geom)
	bk.Meshes = append(bk.Meshes, ms)
	return ms
}

func (bk *Backend) NewTexture(name string, img *image.RGBA) driver.Texture {
	tx := &Texture{ID: uuid.New(), name: name, Image: img}
	bk.Textures[name] = tx
	return tx
}

// LiveGeometries returns the geometries that have not been disposed.
func (bk *Backend) LiveGeometries() []*Geometry {
	var live []*Geometry
	for _, g := range bk.Geometries {
		if !g.Disposed {
			live = append(live, g)
		}
	}
	return live
}

// Render validates that the scene is renderable and counts the frame.
// A mesh that references a disposed geometry is an error, as is an
// empty output buffer.
func (bk *Backend) Render() error {
	if bk.size.X <= 0 || bk.size.Y <= 0 {
		return fmt.Errorf("headless.Render: empty output buffer %v", bk.size)
	}
	var errs []error
	for _, ms := range bk.Meshes {
		if ms.geom == nil {
			errs = append(errs, fmt.Errorf("headless.Render: mesh %q has no geometry", ms.Name))
			continue
		}
		if ms.geom.Disposed {
			errs = append(errs, fmt.Errorf("headless.Render: mesh %q uses disposed geometry %v", ms.Name, ms.geom.ID))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	bk.Frames++
	return nil
}

// Light is a headless [driver.Light]; it just keeps its parameters.
type Light struct {
	Params params.Light
}

func (lt *Light) Apply(lp *params.Light) { lt.Params = *lp }

// Geometry is a headless box [driver.Geometry].
type Geometry struct {
	ID       uuid.UUID
	Params   params.Geometry
	Disposed bool
}

func (g *Geometry) Size() math32.Vector3 {
	return math32.Vec3(g.Params.Width, g.Params.Height, g.Params.Depth)
}

func (g *Geometry) Dispose() { g.Disposed = true }

// Mesh is a headless [driver.Mesh].
type Mesh struct {
	Name      string
	Material  params.Material
	Textures  driver.Textures
	Transform params.Transform
	geom      *Geometry
}

func (ms *Mesh) Geometry() driver.Geometry {
	if ms.geom == nil {
		return nil
	}
	return ms.geom
}

func (ms *Mesh) SetGeometry(geom driver.Geometry) {
	g, _ := geom.(*Geometry)
	ms.geom = g
}

func (ms *Mesh) SetMaterial(mt params.Material, tex *driver.Textures) {
	ms.Material = mt
	ms.Textures = driver.Textures{}
	if tex != nil {
		ms.Textures = *tex
	}
}

func (ms *Mesh) SetTransform(tr params.Transform) { ms.Transform = tr }

// Texture is a headless [driver.Texture].
type Texture struct {
	ID    uuid.UUID
	Image *image.RGBA
	name  string
}

func (tx *Texture) Name() string { return tx.name }
