// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// PhongFromPBR maps physically based roughness and metalness onto the
// shininess exponent and specular reflectivity of a Phong material.
// Smooth surfaces get a sharp highlight; metalness scales the highlight.
func PhongFromPBR(roughness, metalness float32) (shiny, reflective float32) {
	r := math32.Clamp(roughness, 0, 1)
	m := math32.Clamp(metalness, 0, 1)
	shiny = 1 + 254*(1-r)*(1-r)
	reflective = 0.04 + 0.96*m
	return
}

// Attenuation maps a light range and decay exponent onto linear and
// quadratic distance attenuation factors, such that the light at
// distance is 1/(1+decay) of its full intensity. A distance of 0
// (unlimited) is treated as 10.
func Attenuation(distance, decay float32) (linear, quadratic float32) {
	if distance <= 0 {
		distance = 10
	}
	decay = math32.Max(decay, 0)
	linear = decay / (2 * distance)
	quadratic = decay / (2 * distance * distance)
	return
}

// SpotFalloff maps the penumbra fraction of a spot cone onto an
// angular decay exponent: 0 gives a hard edge and 1 the softest.
func SpotFalloff(penumbra float32) float32 {
	return 1 + 59*math32.Clamp(penumbra, 0, 1)
}

// BoxEdges returns a polyline through the corners of a box of the given
// size centered at the origin that covers all twelve edges.
func BoxEdges(size math32.Vector3) []math32.Vector3 {
	x, y, z := size.X/2, size.Y/2, size.Z/2
	a, b := math32.Vec3(-x, -y, -z), math32.Vec3(x, -y, -z)
	c, d := math32.Vec3(x, -y, z), math32.Vec3(-x, -y, z)
	e, f := math32.Vec3(-x, y, -z), math32.Vec3(x, y, -z)
	g, h := math32.Vec3(x, y, z), math32.Vec3(-x, y, z)
	return []math32.Vector3{a, b, c, d, a, e, f, g, h, e, f, b, c, g, h, d}
}

// HemisphereColor returns the uniform color that stands in for a
// hemisphere light with the given sky and ground colors: their average,
// which is what a surface facing the horizon receives.
func HemisphereColor(sky, ground color.RGBA) color.RGBA {
	avg := func(a, b uint8) uint8 { return uint8((uint16(a) + uint16(b) + 1) / 2) }
	return color.RGBA{avg(sky.R, ground.R), avg(sky.G, ground.G), avg(sky.B, ground.B), avg(sky.A, ground.A)}
}
