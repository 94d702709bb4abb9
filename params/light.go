// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// LightKinds are the kinds of lights the viewer can create.
type LightKinds int32

const (
	// Ambient lights every surface uniformly.
	Ambient LightKinds = iota

	// Hemisphere lights surfaces facing up with Color (the sky) and
	// surfaces facing down with GroundColor, blending in between.
	Hemisphere

	// Directional lights from Position toward the origin, without falloff.
	Directional

	// Point lights in all directions from Position, with distance falloff.
	Point

	// Spot lights a cone from Position toward the origin.
	Spot
)

var lightKindNames = [...]string{"Ambient", "Hemisphere", "Directional", "Point", "Spot"}

func (k LightKinds) String() string {
	if k < 0 || int(k) >= len(lightKindNames) {
		return fmt.Sprintf("LightKinds(%d)", int32(k))
	}
	return lightKindNames[k]
}

// Light holds the parameters of one light. Fields that do not apply
// to the light's Kind are ignored.
type Light struct {

	// Name identifies the light and titles its panel folder.
	Name string

	// Kind is the kind of light.
	Kind LightKinds

	// On is whether the light contributes to the scene.
	On bool

	// Color is the light color at full intensity; the sky color
	// of a Hemisphere light.
	Color color.RGBA

	// GroundColor is the ground color of a Hemisphere light.
	GroundColor color.RGBA

	// Intensity multiplies Color.
	Intensity float32 `min:"0" max:"10" step:"0.01"`

	// MaxIntensity is the upper end of the intensity control;
	// 0 uses the maximum of the Intensity tag.
	MaxIntensity float32

	// Position is the light position (all kinds but Ambient).
	// Directional and Hemisphere lights point from it to the origin.
	Position math32.Vector3 `min:"-10" max:"10" step:"0.01"`

	// Distance is the range of Point and Spot lights; 0 is unlimited.
	Distance float32 `min:"0" max:"20" step:"0.1"`

	// Decay is the distance falloff exponent of Point and Spot lights.
	Decay float32 `min:"0" max:"5" step:"0.01"`

	// Angle is the spot cone half-angle in degrees.
	Angle float32 `min:"1" max:"90" step:"0.5"`

	// Penumbra is the fraction of the spot cone that fades out.
	Penumbra float32 `min:"0" max:"1" step:"0.01"`
}

// HasPosition returns whether Position is meaningful for the light.
func (lt *Light) HasPosition() bool {
	return lt.Kind != Ambient
}

// HasFalloff returns whether Distance and Decay are meaningful for the light.
func (lt *Light) HasFalloff() bool {
	return lt.Kind == Point || lt.Kind == Spot
}

// IntensityRange returns the range of the intensity control,
// which is narrowed by MaxIntensity when it is set.
func (lt *Light) IntensityRange() Range {
	rg := MustRangeOf(lt, "Intensity")
	if lt.MaxIntensity > 0 {
		rg.Max = lt.MaxIntensity
	}
	return rg
}

// DefaultLights returns the default light rig: a strong directional
// light from above, a sky/ground hemisphere light, and a key and a
// fill directional light as in a studio setup.
func DefaultLights() []Light {
	return []Light{
		{Name: "High Intensity Dir Light", Kind: Directional, On: true, Color: colors.White,
			Intensity: 5, MaxIntensity: 10, Position: math32.Vec3(10, 20, 10)},
		{Name: "Hemisphere Light", Kind: Hemisphere, On: true, Color: colors.White,
			GroundColor: colors.FromRGB(0x44, 0x44, 0x44), Intensity: 1.2, MaxIntensity: 5,
			Position: math32.Vec3(0, 20, 0)},
		{Name: "Key Dir Light", Kind: Directional, On: true, Color: colors.White,
			Intensity: 1, MaxIntensity: 5, Position: math32.Vec3(5, 10, 7.5)},
		{Name: "Fill Dir Light", Kind: Directional, On: true, Color: colors.White,
			Intensity: 0.3, MaxIntensity: 2, Position: math32.Vec3(-5, 2, 2)},
	}
}
