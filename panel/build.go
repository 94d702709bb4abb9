// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/params"
)

// Hooks push changed parameters to the scene.
// [cogentcore.org/sceneview/viewer.Viewer] implements them.
type Hooks interface {
	ApplyLight(i int)
	SetGeometry()
	ApplyMaterial()
	ApplyTransform()
	ApplyBackground()
}

// Build returns the panel for sc: a "Lights" folder with a sub-folder
// per light, a "Mesh" folder with the geometry and material and a
// "Transform" sub-folder, and a "Scene" folder with the background.
// The top-level folders start closed; their sub-folders start open.
func Build(sc *params.Scene, h Hooks) *Folder {
	root := NewFolder("")

	lights := root.AddFolder("Lights")
	for i := range sc.Lights {
		lightFolder(lights, &sc.Lights[i], func() { h.ApplyLight(i) })
	}

	mesh := root.AddFolder("Mesh")
	gm := &sc.Geometry
	mesh.Number("Width", &gm.Width, rangeOf(gm, "Width"), h.SetGeometry)
	mesh.Number("Height", &gm.Height, rangeOf(gm, "Height"), h.SetGeometry)
	mesh.Number("Depth", &gm.Depth, rangeOf(gm, "Depth"), h.SetGeometry)
	mesh.Integer("Width Segments", &gm.WidthSegments, rangeOf(gm, "WidthSegments"), h.SetGeometry)
	mesh.Integer("Height Segments", &gm.HeightSegments, rangeOf(gm, "HeightSegments"), h.SetGeometry)
	mesh.Integer("Depth Segments", &gm.DepthSegments, rangeOf(gm, "DepthSegments"), h.SetGeometry)

	mt := &sc.Material
	mesh.Number("Roughness", &mt.Roughness, rangeOf(mt, "Roughness"), h.ApplyMaterial)
	mesh.Number("Metalness", &mt.Metalness, rangeOf(mt, "Metalness"), h.ApplyMaterial)
	mesh.Color("Color", &mt.Color, h.ApplyMaterial)
	mesh.Toggle("Wireframe", &mt.Wireframe, h.ApplyMaterial)
	mesh.Number("Normal Scale", &mt.NormalScale, rangeOf(mt, "NormalScale"), h.ApplyMaterial)
	mesh.Number("Displacement Scale", &mt.DisplacementScale, rangeOf(mt, "DisplacementScale"), h.ApplyMaterial)
	mesh.Toggle("Use Textures", &mt.UseTextures, h.ApplyMaterial)

	tf := mesh.AddFolder("Transform")
	tf.Open = true
	tr := &sc.Transform
	vector(tf, "Pos", &tr.Position, rangeOf(tr, "Position"), h.ApplyTransform)
	vector(tf, "Rot", &tr.Rotation, rangeOf(tr, "Rotation"), h.ApplyTransform)
	vector(tf, "Scale", &tr.Scale, rangeOf(tr, "Scale"), h.ApplyTransform)

	scene := root.AddFolder("Scene")
	scene.Color("Background", &sc.Background, h.ApplyBackground)
	return root
}

func lightFolder(parent *Folder, lt *params.Light, apply func()) {
	f := parent.AddFolder(lt.Name)
	f.Open = true
	f.Number("Intensity", &lt.Intensity, lt.IntensityRange(), apply)
	if lt.Kind == params.Hemisphere {
		f.Color("Sky Color", &lt.Color, apply)
		f.Color("Ground Color", &lt.GroundColor, apply)
	} else {
		f.Color("Color", &lt.Color, apply)
	}
	if lt.HasPosition() {
		vector(f, "Pos", &lt.Position, rangeOf(lt, "Position"), apply)
	}
	if lt.HasFalloff() {
		f.Number("Distance", &lt.Distance, rangeOf(lt, "Distance"), apply)
		f.Number("Decay", &lt.Decay, rangeOf(lt, "Decay"), apply)
	}
	if lt.Kind == params.Spot {
		f.Number("Angle", &lt.Angle, rangeOf(lt, "Angle"), apply)
		f.Number("Penumbra", &lt.Penumbra, rangeOf(lt, "Penumbra"), apply)
	}
	f.Toggle("On", &lt.On, apply)
}

// vector adds X, Y and Z sliders for v.
func vector(f *Folder, label string, v *math32.Vector3, rg params.Range, onChange func()) {
	f.Number(label+" X", &v.X, rg, onChange)
	f.Number(label+" Y", &v.Y, rg, onChange)
	f.Number(label+" Z", &v.Z, rg, onChange)
}

func rangeOf(obj any, field string) params.Range {
	return params.MustRangeOf(obj, field)
}
