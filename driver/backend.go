// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver defines the interfaces through which the viewer drives
// a retained-mode graphics library. Implementations live in subpackages:
// [cogentcore.org/sceneview/driver/xyzdriver] renders with Cogent Core xyz,
// and [cogentcore.org/sceneview/driver/headless] keeps everything in memory
// for tests and runs without a display.
package driver

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/params"
)

// Backend is a retained-mode scene: the viewer creates objects on it
// once and then mutates them in response to control changes.
type Backend interface {

	// Camera returns the single scene camera.
	Camera() Camera

	// SetSize sets the size of the renderer output buffer in pixels.
	SetSize(width, height int)

	// Size returns the size of the renderer output buffer.
	Size() image.Point

	// SetBackground sets the clear color.
	SetBackground(clr color.RGBA)

	// NewLight adds a light of the kind given by the parameters.
	NewLight(lp *params.Light) Light

	// NewBox creates a new box geometry with the given parameters.
	NewBox(gm params.Geometry) Geometry

	// NewMesh adds a mesh using the given geometry.
	NewMesh(name string, geom Geometry) Mesh

	// NewTexture adds (or replaces) the texture with the given name.
	NewTexture(name string, img *image.RGBA) Texture

	// Render renders the scene as seen by the camera.
	Render() error
}

// Camera is the perspective camera of a [Backend].
type Camera interface {

	// Position returns the camera position.
	Position() math32.Vector3

	// SetPosition sets the camera position.
	SetPosition(pos math32.Vector3)

	// Target returns the point the camera looks at.
	Target() math32.Vector3

	// LookAt points the camera at the given target with +Y up.
	LookAt(target math32.Vector3)

	// SetPerspective sets the vertical field of view in degrees
	// and the clipping planes.
	SetPerspective(fov, near, far float32)

	// Aspect returns the width / height aspect ratio.
	Aspect() float32

	// SetAspect sets the aspect ratio; the projection matrix
	// is stale until [Camera.UpdateProjectionMatrix] is called.
	SetAspect(aspect float32)

	// UpdateProjectionMatrix recomputes the projection matrix.
	UpdateProjectionMatrix()
}

// Light is a light of a [Backend].
type Light interface {

	// Apply updates the light from the given parameters.
	Apply(lp *params.Light)
}

// Geometry is a box geometry owned by a [Backend].
type Geometry interface {

	// Size returns the width, height and depth of the box.
	Size() math32.Vector3

	// Dispose releases the geometry. It must not be used afterward.
	Dispose()
}

// Mesh is a renderable object combining a geometry, a material and a pose.
type Mesh interface {

	// Geometry returns the current geometry.
	Geometry() Geometry

	// SetGeometry replaces the geometry. The previous geometry
	// is not disposed; that is up to the caller.
	SetGeometry(geom Geometry)

	// SetMaterial updates the surface material, using the given
	// textures when non-nil.
	SetMaterial(mt params.Material, tex *Textures)

	// SetTransform updates the pose.
	SetTransform(tr params.Transform)
}

// Texture is an image uploaded to a [Backend].
type Texture interface {

	// Name returns the name of the texture.
	Name() string
}

// Textures are the texture maps bound to a material. Any of them may be nil.
type Textures struct {
	Color     Texture
	Roughness Texture
	Normal    Texture
	Height    Texture
}

// IsEmpty returns whether no maps are set.
func (tx *Textures) IsEmpty() bool {
	return tx == nil || (tx.Color == nil && tx.Roughness == nil && tx.Normal == nil && tx.Height == nil)
}
