// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzdriver

import (
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/sceneview/driver"
	"cogentcore.org/sceneview/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackend returns a backend on a scene that is not live on a GPU,
// with a clock that tests advance by hand.
func newBackend() (*Backend, *time.Time) {
	bk := New(xyz.NewScene(), nil)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bk.now = func() time.Time { return clock }
	return bk, &clock
}

func meshKeys(bk *Backend) []string {
	return bk.Scene.Meshes.Keys()
}

func TestBoxNamesAndDispose(t *testing.T) {
	bk, _ := newBackend()
	gm := params.Geometry{Width: 1, Height: 2, Depth: 3, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1}
	g1 := bk.NewBox(gm)
	g2 := bk.NewBox(gm)
	assert.Equal(t, []string{"box-1", "box-2"}, meshKeys(bk))
	assert.Equal(t, math32.Vec3(1, 2, 3), g1.Size())

	require.NoError(t, bk.Render())
	g1.Dispose()
	assert.Equal(t, []string{"box-2"}, meshKeys(bk))
	assert.True(t, bk.rebuild)
	g1.Dispose()
	assert.Equal(t, []string{"box-2"}, meshKeys(bk))

	ms := bk.NewMesh("cube", g2).(*Mesh)
	assert.Equal(t, "box-2", string(ms.Solid.MeshName))
	assert.Same(t, g2, ms.Geometry())
}

func TestWireframeSwap(t *testing.T) {
	bk, _ := newBackend()
	g := bk.NewBox(params.Geometry{Width: 1, Height: 1, Depth: 1, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1})
	ms := bk.NewMesh("cube", g).(*Mesh)
	require.NoError(t, bk.Render())

	ms.SetMaterial(params.Material{Wireframe: true}, nil)
	assert.Equal(t, "cube-wireframe", string(ms.Solid.MeshName))
	assert.Contains(t, meshKeys(bk), "cube-wireframe")
	assert.IsType(t, &xyz.Lines{}, ms.Solid.Mesh)

	ms.SetMaterial(params.Material{}, nil)
	assert.Equal(t, "box-1", string(ms.Solid.MeshName))
	assert.Equal(t, []string{"box-1"}, meshKeys(bk))
	assert.True(t, bk.rebuild)
}

func TestWireframeFollowsGeometry(t *testing.T) {
	bk, _ := newBackend()
	gm := params.Geometry{Width: 1, Height: 1, Depth: 1, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1}
	g1 := bk.NewBox(gm)
	ms := bk.NewMesh("cube", g1).(*Mesh)
	ms.SetMaterial(params.Material{Wireframe: true}, nil)

	g2 := bk.NewBox(gm)
	ms.SetGeometry(g2)
	g1.Dispose()
	assert.Equal(t, []string{"cube-wireframe", "box-2"}, meshKeys(bk))
	assert.Equal(t, "cube-wireframe", string(ms.Solid.MeshName))
}

func TestTextureBinding(t *testing.T) {
	bk, _ := newBackend()
	g := bk.NewBox(params.Geometry{Width: 1, Height: 1, Depth: 1, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1})
	ms := bk.NewMesh("cube", g).(*Mesh)
	tx := bk.NewTexture("color", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	assert.Equal(t, "color", tx.Name())
	assert.Equal(t, []string{"color"}, bk.Scene.Textures.Keys())

	mt := params.Material{Color: color.RGBA{1, 2, 3, 255}, Roughness: 1}
	ms.SetMaterial(mt, &driver.Textures{Color: tx})
	require.NotNil(t, ms.Solid.Material.Texture)
	assert.Equal(t, "color", ms.Solid.Material.Texture.AsTextureBase().Name)
	assert.Equal(t, mt.Color, ms.Solid.Material.Color)
	shiny, refl := driver.PhongFromPBR(1, 0)
	assert.Equal(t, shiny, ms.Solid.Material.Shiny)
	assert.Equal(t, refl, ms.Solid.Material.Reflective)

	ms.SetMaterial(mt, &driver.Textures{})
	assert.Nil(t, ms.Solid.Material.Texture)
	ms.SetMaterial(mt, &driver.Textures{Color: tx})
	ms.SetMaterial(mt, nil)
	assert.Nil(t, ms.Solid.Material.Texture)
}

func TestTransform(t *testing.T) {
	bk, _ := newBackend()
	g := bk.NewBox(params.Geometry{Width: 1, Height: 1, Depth: 1, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1})
	ms := bk.NewMesh("cube", g).(*Mesh)
	ms.SetTransform(params.Transform{Position: math32.Vec3(1, 2, 3), Scale: math32.Vec3(2, 2, 2)})
	assert.Equal(t, math32.Vec3(1, 2, 3), ms.Solid.Pose.Pos)
	assert.Equal(t, math32.Vec3(2, 2, 2), ms.Solid.Pose.Scale)
}

func TestLightMapping(t *testing.T) {
	bk, _ := newBackend()

	dir := bk.NewLight(&params.Light{Name: "dir", Kind: params.Directional, On: true,
		Color: color.RGBA{255, 255, 255, 255}, Intensity: 5, Position: math32.Vec3(10, 20, 10)}).(*Light)
	dl, ok := dir.Light.(*xyz.Directional)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(10, 20, 10), dl.Pos)
	assert.Equal(t, float32(5), dl.Lumens)

	sky, ground := color.RGBA{255, 255, 255, 255}, color.RGBA{0x44, 0x44, 0x44, 255}
	hemi := bk.NewLight(&params.Light{Name: "hemi", Kind: params.Hemisphere, On: true,
		Color: sky, GroundColor: ground, Intensity: 1.2}).(*Light)
	al, ok := hemi.Light.(*xyz.Ambient)
	require.True(t, ok)
	assert.Equal(t, driver.HemisphereColor(sky, ground), al.Color)
	assert.Equal(t, float32(1.2), al.Lumens)

	pt := bk.NewLight(&params.Light{Name: "point", Kind: params.Point, On: true,
		Intensity: 1, Position: math32.Vec3(0, 3, 0), Distance: 8, Decay: 2}).(*Light)
	pl, ok := pt.Light.(*xyz.Point)
	require.True(t, ok)
	lin, quad := driver.Attenuation(8, 2)
	assert.Equal(t, lin, pl.LinDecay)
	assert.Equal(t, quad, pl.QuadDecay)
	assert.Equal(t, math32.Vec3(0, 3, 0), pl.Pos)

	sp := bk.NewLight(&params.Light{Name: "spot", Kind: params.Spot, On: true,
		Intensity: 1, Position: math32.Vec3(0, 5, 5), Distance: 10, Decay: 1, Angle: 30, Penumbra: 0.5}).(*Light)
	sl, ok := sp.Light.(*xyz.Spot)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 5, 5), sl.Pose.Pos)
	assert.Equal(t, float32(30), sl.CutoffAngle)
	assert.Equal(t, driver.SpotFalloff(0.5), sl.AngDecay)
	lin, quad = driver.Attenuation(10, 1)
	assert.Equal(t, lin, sl.LinDecay)
	assert.Equal(t, quad, sl.QuadDecay)

	assert.Equal(t, []string{"dir", "hemi", "point", "spot"}, bk.Scene.Lights.Keys())
}

func TestLightOffHasNoLumens(t *testing.T) {
	bk, _ := newBackend()
	lp := &params.Light{Name: "dir", Kind: params.Directional, On: true, Intensity: 2}
	lt := bk.NewLight(lp).(*Light)
	lp.On = false
	lt.Apply(lp)
	lb := lt.Light.AsLightBase()
	assert.False(t, lb.On)
	assert.Zero(t, lb.Lumens)
	lp.On = true
	lt.Apply(lp)
	assert.Equal(t, float32(2), lb.Lumens)
}

func TestLightRebuilds(t *testing.T) {
	bk, clock := newBackend()
	lp := &params.Light{Name: "dir", Kind: params.Directional, On: true, Intensity: 1}
	lt := bk.NewLight(lp)
	require.NoError(t, bk.Render())
	assert.Equal(t, 1, bk.rebuilds)

	// unchanged parameters do not rebuild
	lt.Apply(lp)
	require.NoError(t, bk.Render())
	assert.Equal(t, 1, bk.rebuilds)

	// a drag of value edits within one interval rebuilds once
	*clock = clock.Add(LightInterval)
	for i := range 10 {
		lp.Intensity = 1 + float32(i)/10
		lt.Apply(lp)
		require.NoError(t, bk.Render())
		*clock = clock.Add(LightInterval / 20)
	}
	assert.Equal(t, 2, bk.rebuilds)

	// the last edit is rebuilt once the interval has passed
	*clock = clock.Add(LightInterval)
	require.NoError(t, bk.Render())
	assert.Equal(t, 3, bk.rebuilds)
	require.NoError(t, bk.Render())
	assert.Equal(t, 3, bk.rebuilds)

	// turning a light off rebuilds on the next render
	lp.On = false
	lt.Apply(lp)
	require.NoError(t, bk.Render())
	assert.Equal(t, 4, bk.rebuilds)
}

func TestRenderAsksRenderer(t *testing.T) {
	bk, _ := newBackend()
	rend := &countRenderer{}
	bk.Renderer = rend
	var onMain int
	bk.RunOnMain = func(f func()) { onMain++; f() }

	bk.SetBackground(color.RGBA{0, 0, 0, 255})
	require.NoError(t, bk.Render())
	require.NoError(t, bk.Render())
	assert.Equal(t, 2, rend.n)
	assert.Equal(t, 1, onMain)
}

type countRenderer struct{ n int }

func (cr *countRenderer) NeedsRender() { cr.n++ }
