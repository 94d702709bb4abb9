// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params contains the plain configuration objects that the
// control panel binds to and that the viewer reads when it applies
// changes to the scene. They have no behavior beyond their defaults
// and the numeric ranges declared in their struct tags.
package params

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Scene holds all of the parameters of the viewed scene.
type Scene struct {

	// Camera is the initial camera setup.
	Camera Camera `toml:"camera" yaml:"camera" json:"camera"`

	// Background is the clear color of the canvas.
	Background color.RGBA `toml:"background" yaml:"background" json:"background"`

	// Lights are the lights of the scene, one panel folder each.
	Lights []Light `toml:"lights" yaml:"lights" json:"lights"`

	// Geometry is the box geometry of the mesh.
	Geometry Geometry `toml:"geometry" yaml:"geometry" json:"geometry"`

	// Material is the surface material of the mesh.
	Material Material `toml:"material" yaml:"material" json:"material"`

	// Transform is the pose of the mesh.
	Transform Transform `toml:"transform" yaml:"transform" json:"transform"`
}

// Defaults sets the default scene: a 3 x 1.8 x 2 box on black,
// lit by the [DefaultLights].
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = colors.Black
	sc.Lights = DefaultLights()
	sc.Geometry.Defaults()
	sc.Material.Defaults()
	sc.Transform.Defaults()
}

// NewScene returns a new [Scene] with default values.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// SetFrom sets all values of sc from src. The lights are copied in
// place, so that pointers into sc.Lights (as held by bound controls)
// remain valid; it is an error for src to have a different number or
// different kinds of lights, unless sc has no lights yet.
func (sc *Scene) SetFrom(src *Scene) error {
	lights := sc.Lights
	if len(lights) > 0 {
		if len(src.Lights) != len(lights) {
			return fmt.Errorf("params: scene has %d lights, not %d", len(src.Lights), len(lights))
		}
		for i := range lights {
			if src.Lights[i].Kind != lights[i].Kind {
				return fmt.Errorf("params: light %d is %v, not %v", i, src.Lights[i].Kind, lights[i].Kind)
			}
		}
	}
	*sc = *src
	if len(lights) > 0 {
		copy(lights, src.Lights)
		sc.Lights = lights
	}
	return nil
}

// LightByName returns the light with the given name, or nil.
func (sc *Scene) LightByName(name string) *Light {
	for i := range sc.Lights {
		if sc.Lights[i].Name == name {
			return &sc.Lights[i]
		}
	}
	return nil
}

// Camera is the perspective camera setup.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `min:"10" max:"120" step:"1"`

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Position is the initial camera position.
	Position math32.Vector3

	// Target is the point the camera looks at and orbits around.
	Target math32.Vector3
}

// Defaults sets the default camera.
func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Near = 0.1
	cm.Far = 1000
	cm.Position.Set(0, 0, 5)
	cm.Target = math32.Vector3{}
}

// Geometry holds the box dimensions. Changing any of these
// replaces the mesh geometry.
type Geometry struct {
	Width  float32 `min:"0.1" max:"10" step:"0.01"`
	Height float32 `min:"0.1" max:"10" step:"0.01"`
	Depth  float32 `min:"0.1" max:"10" step:"0.01"`

	WidthSegments  int `min:"1" max:"20" step:"1"`
	HeightSegments int `min:"1" max:"20" step:"1"`
	DepthSegments  int `min:"1" max:"20" step:"1"`
}

// Defaults sets a 3 x 1.8 x 2 box with one segment per side.
func (gm *Geometry) Defaults() {
	gm.Width, gm.Height, gm.Depth = 3, 1.8, 2
	gm.WidthSegments, gm.HeightSegments, gm.DepthSegments = 1, 1, 1
}

// Material holds the physically based surface parameters of the mesh.
type Material struct {

	// Color is the base color, multiplied with the color map if any.
	Color color.RGBA

	// Roughness is 0 for a mirror-like and 1 for a fully diffuse surface.
	Roughness float32 `min:"0" max:"1" step:"0.0001"`

	// Metalness is 0 for dielectrics and 1 for metals.
	Metalness float32 `min:"0" max:"1" step:"0.0001"`

	// Wireframe renders only the edges of the geometry.
	Wireframe bool

	// DisplacementScale scales the height map.
	DisplacementScale float32 `min:"0" max:"10" step:"0.001"`

	// NormalScale scales the normal map.
	NormalScale float32 `min:"0" max:"5" step:"0.01"`

	// UseTextures binds the loaded texture maps to the material.
	UseTextures bool
}

// Defaults sets the default material: a fully rough dielectric.
func (mt *Material) Defaults() {
	mt.Color = colors.White
	mt.Roughness = 1
	mt.Metalness = 0
	mt.Wireframe = false
	mt.DisplacementScale = 1
	mt.NormalScale = 1
	mt.UseTextures = true
}

// Transform is the pose of the mesh. Rotation is in radians.
type Transform struct {
	Position math32.Vector3 `min:"-10" max:"10" step:"0.01"`
	Rotation math32.Vector3 `min:"0" max:"6.2832" step:"0.01"`
	Scale    math32.Vector3 `min:"0.1" max:"5" step:"0.01"`
}

// Defaults sets the identity transform.
func (tr *Transform) Defaults() {
	tr.Position = math32.Vector3{}
	tr.Rotation = math32.Vector3{}
	tr.Scale.Set(1, 1, 1)
}
