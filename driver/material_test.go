// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhongFromPBR(t *testing.T) {
	shiny, refl := PhongFromPBR(0, 1)
	assert.Equal(t, float32(255), shiny)
	assert.InDelta(t, 1, refl, 1e-6)

	shiny, refl = PhongFromPBR(1, 0)
	assert.Equal(t, float32(1), shiny)
	assert.InDelta(t, 0.04, refl, 1e-6)

	rough, _ := PhongFromPBR(0.8, 0)
	smooth, _ := PhongFromPBR(0.2, 0)
	assert.Less(t, rough, smooth)

	clamped, _ := PhongFromPBR(-3, 0)
	assert.Equal(t, float32(255), clamped)
}

func TestTexturesIsEmpty(t *testing.T) {
	var tx *Textures
	assert.True(t, tx.IsEmpty())
	assert.True(t, (&Textures{}).IsEmpty())
}

func TestAttenuation(t *testing.T) {
	lin, quad := Attenuation(10, 2)
	assert.InDelta(t, 1.0/3, 1/(1+lin*10+quad*100), 1e-6)

	lin, quad = Attenuation(10, 0)
	assert.Zero(t, lin)
	assert.Zero(t, quad)

	l0, q0 := Attenuation(0, 1)
	l10, q10 := Attenuation(10, 1)
	assert.Equal(t, l10, l0)
	assert.Equal(t, q10, q0)
}

func TestSpotFalloff(t *testing.T) {
	assert.Equal(t, float32(1), SpotFalloff(0))
	assert.Equal(t, float32(60), SpotFalloff(1))
	assert.Equal(t, float32(60), SpotFalloff(3))
	assert.Less(t, SpotFalloff(0.2), SpotFalloff(0.3))
}

func TestBoxEdges(t *testing.T) {
	pts := BoxEdges(math32.Vec3(2, 4, 6))
	require.Len(t, pts, 16)

	type edge [2]math32.Vector3
	key := func(a, b math32.Vector3) edge {
		if a.X < b.X || (a.X == b.X && (a.Y < b.Y || (a.Y == b.Y && a.Z < b.Z))) {
			return edge{a, b}
		}
		return edge{b, a}
	}
	edges := map[edge]bool{}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		diff := 0
		for _, dv := range []float32{a.X - b.X, a.Y - b.Y, a.Z - b.Z} {
			if dv != 0 {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "segment %d is not a box edge", i)
		edges[key(a, b)] = true
		for _, p := range []math32.Vector3{a, b} {
			assert.Equal(t, float32(1), math32.Abs(p.X))
			assert.Equal(t, float32(2), math32.Abs(p.Y))
			assert.Equal(t, float32(3), math32.Abs(p.Z))
		}
	}
	assert.Len(t, edges, 12)
}

func TestHemisphereColor(t *testing.T) {
	sky := color.RGBA{255, 255, 255, 255}
	ground := color.RGBA{0x44, 0x44, 0x44, 255}
	assert.Equal(t, color.RGBA{0xa2, 0xa2, 0xa2, 255}, HemisphereColor(sky, ground))
	assert.Equal(t, sky, HemisphereColor(sky, sky))
}
