// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/driver/headless"
	"cogentcore.org/sceneview/panel"
	"cogentcore.org/sceneview/params"
	"cogentcore.org/sceneview/textures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewer() (*Viewer, *headless.Backend) {
	bk := headless.New()
	return New(bk, params.NewScene()), bk
}

type countingControls struct{ updates int }

func (cc *countingControls) Update(dt time.Duration) bool {
	cc.updates++
	return false
}

func TestNew(t *testing.T) {
	vw, bk := newViewer()
	cam := bk.HeadlessCamera()
	assert.Equal(t, float32(75), cam.FOV)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(1000), cam.Far)
	assert.Equal(t, math32.Vec3(0, 0, 5), cam.Position())
	assert.Equal(t, math32.Vector3{}, cam.Target())
	assert.InDelta(t, 480.0/320.0, cam.Aspect(), 1e-6)
	assert.False(t, cam.ProjectionStale())

	assert.Equal(t, vw.Params.Background, bk.Background)
	require.Len(t, bk.Lights, 4)
	for i, lt := range bk.Lights {
		assert.Equal(t, vw.Params.Lights[i], lt.Params)
	}
	require.Len(t, bk.Meshes, 1)
	ms := bk.Meshes[0]
	assert.Equal(t, MeshName, ms.Name)
	assert.Equal(t, math32.Vec3(3, 1.8, 2), ms.Geometry().Size())
	assert.Equal(t, vw.Params.Material, ms.Material)
	assert.Equal(t, vw.Params.Transform, ms.Transform)
	assert.True(t, ms.Textures.IsEmpty())
}

func TestResize(t *testing.T) {
	vw, bk := newViewer()
	cam := bk.HeadlessCamera()
	for _, sz := range []image.Point{{800, 600}, {1, 1000}, {1920, 1080}, {333, 777}} {
		updates := cam.ProjectionUpdates
		assert.True(t, vw.Resize(sz.X, sz.Y))
		assert.Equal(t, sz, bk.Size())
		assert.InDelta(t, float32(sz.X)/float32(sz.Y), cam.Aspect(), 1e-6)
		assert.Equal(t, updates+1, cam.ProjectionUpdates)
		assert.False(t, cam.ProjectionStale())
	}

	assert.False(t, vw.Resize(0, 600))
	assert.False(t, vw.Resize(800, -1))
	assert.Equal(t, image.Pt(333, 777), bk.Size())
	assert.InDelta(t, 333.0/777.0, cam.Aspect(), 1e-6)
}

func TestSetGeometry(t *testing.T) {
	vw, bk := newViewer()
	ms := bk.Meshes[0]
	first := bk.Geometries[0]

	vw.Params.Geometry.Width = 2.5
	vw.Params.Geometry.Height = 0.1
	vw.Params.Geometry.Depth = 4.75
	vw.SetGeometry()

	assert.True(t, first.Disposed)
	assert.Equal(t, math32.Vec3(2.5, 0.1, 4.75), ms.Geometry().Size())
	require.Len(t, bk.LiveGeometries(), 1)
	assert.Same(t, bk.LiveGeometries()[0], ms.Geometry())

	vw.Params.Geometry.WidthSegments = 6
	vw.SetGeometry()
	assert.Len(t, bk.Geometries, 3)
	assert.Len(t, bk.LiveGeometries(), 1)
	assert.Equal(t, 6, bk.LiveGeometries()[0].Params.WidthSegments)
	require.NoError(t, vw.Frame(0))
}

func TestApply(t *testing.T) {
	vw, bk := newViewer()
	ms := bk.Meshes[0]

	vw.Params.Material.Roughness = 0.9
	vw.Params.Material.Wireframe = true
	vw.ApplyMaterial()
	assert.Equal(t, vw.Params.Material, ms.Material)

	vw.Params.Transform.Rotation.Z = 3
	vw.ApplyTransform()
	assert.Equal(t, float32(3), ms.Transform.Rotation.Z)

	vw.Params.Lights[3].On = false
	vw.ApplyLight(3)
	assert.False(t, bk.Lights[3].Params.On)
	vw.ApplyLight(-1)
	vw.ApplyLight(4)

	vw.Params.Background = colors.FromRGB(1, 2, 3)
	vw.ApplyBackground()
	assert.Equal(t, colors.FromRGB(1, 2, 3), bk.Background)
}

func TestApplyAll(t *testing.T) {
	vw, bk := newViewer()
	sc := params.NewScene()
	sc.Geometry.Depth = 3
	sc.Lights[0].Intensity = 0.1
	sc.Transform.Scale.X = 2
	*vw.Params = *sc
	vw.ApplyAll()

	assert.Equal(t, float32(0.1), bk.Lights[0].Params.Intensity)
	assert.Equal(t, math32.Vec3(3, 1.8, 3), bk.Meshes[0].Geometry().Size())
	assert.Len(t, bk.LiveGeometries(), 1)
	assert.Equal(t, float32(2), bk.Meshes[0].Transform.Scale.X)
}

func TestFrame(t *testing.T) {
	vw, bk := newViewer()
	cc := &countingControls{}
	vw.Controls = cc
	for i := 1; i <= 3; i++ {
		require.NoError(t, vw.Frame(time.Second/60))
		assert.Equal(t, i, cc.updates)
		assert.Equal(t, i, bk.Frames)
	}

	bk.SetSize(0, 0)
	assert.Error(t, vw.Frame(0))
	assert.Equal(t, 4, cc.updates)
	assert.Equal(t, 3, bk.Frames)
}

func TestRunFrames(t *testing.T) {
	vw, bk := newViewer()
	cc := &countingControls{}
	vw.Controls = cc
	require.NoError(t, vw.RunFrames(context.Background(), 1000, 5))
	assert.Equal(t, 5, bk.Frames)
	assert.Equal(t, 5, cc.updates)
}

func TestRunStops(t *testing.T) {
	vw, bk := newViewer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- vw.Run(ctx, 200) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	assert.Positive(t, bk.Frames)

	bk.SetSize(0, 0)
	assert.Error(t, vw.Run(context.Background(), 200))
}

func TestTextures(t *testing.T) {
	vw, bk := newViewer()
	ms := bk.Meshes[0]

	var set textures.Set
	set[textures.Color] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	set[textures.Roughness] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	vw.SetTextures(set)
	assert.True(t, ms.Textures.IsEmpty())

	require.NoError(t, vw.Frame(0))
	require.NotNil(t, ms.Textures.Color)
	assert.Equal(t, "Color", ms.Textures.Color.Name())
	assert.NotNil(t, ms.Textures.Roughness)
	assert.Nil(t, ms.Textures.Normal)
	assert.Len(t, bk.Textures, 2)

	vw.Params.Material.UseTextures = false
	vw.ApplyMaterial()
	assert.True(t, ms.Textures.IsEmpty())

	vw.Params.Material.UseTextures = true
	vw.SetTexture(textures.Normal, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	vw.SetTexture(textures.Height, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, vw.Frame(0))
	assert.NotNil(t, ms.Textures.Normal)
	require.NotNil(t, ms.Textures.Height)
	assert.Equal(t, "Height", ms.Textures.Height.Name())
	assert.NotNil(t, ms.Textures.Color)
}

func TestLoadTextures(t *testing.T) {
	vw, bk := newViewer()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	fsys := fstest.MapFS{
		"color.jpg":  {Data: b.Bytes()},
		"normal.png": {Data: []byte("garbage")},
		"height.png": {Data: b.Bytes()},
	}
	<-vw.LoadTextures(context.Background(), fsys)
	require.NoError(t, vw.Frame(0))
	ms := bk.Meshes[0]
	assert.NotNil(t, ms.Textures.Color)
	assert.Nil(t, ms.Textures.Normal)
	assert.NotNil(t, ms.Textures.Height)

	// a missing directory does not stop the viewer
	vw2, bk2 := newViewer()
	<-vw2.LoadTextures(context.Background(), fstest.MapFS{})
	require.NoError(t, vw2.Frame(0))
	assert.True(t, bk2.Meshes[0].Textures.IsEmpty())
}

func TestPanelControls(t *testing.T) {
	vw, bk := newViewer()
	root := panel.Build(vw.Params, vw)

	require.NoError(t, root.Set("Mesh/Height", 3.5))
	assert.Equal(t, math32.Vec3(3, 3.5, 2), bk.Meshes[0].Geometry().Size())
	assert.Len(t, bk.LiveGeometries(), 1)
	assert.Len(t, bk.Geometries, 2)

	require.NoError(t, root.Set("Lights/Fill Dir Light/On", false))
	assert.False(t, bk.Lights[3].Params.On)
	require.NoError(t, root.Set("Lights/Hemisphere Light/Ground Color", colors.FromRGB(7, 8, 9)))
	assert.Equal(t, colors.FromRGB(7, 8, 9), bk.Lights[1].Params.GroundColor)

	require.NoError(t, root.Set("Mesh/Transform/Pos Y", -1))
	assert.Equal(t, float32(-1), bk.Meshes[0].Transform.Position.Y)
	require.NoError(t, vw.Frame(0))
}
