// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides orbit controls: pointer input is translated
// into orbiting, panning and dollying of a camera around a target point,
// optionally with damping so that motion eases out over several frames.
package orbit

import (
	"image"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/driver"
	m32 "github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon keeps the polar angle away from the poles, where
// the view direction would be parallel to the up vector. It is
// also the smallest pending motion carried over to the next update.
const epsilon = 1e-6

// refreshRate is the frame rate that DampingFactor is specified for.
const refreshRate = 60

// Controls are orbit controls for a [driver.Camera].
type Controls struct {

	// Camera is the controlled camera.
	Camera driver.Camera

	// Enabled is whether input is accepted.
	Enabled bool

	// Damping is whether motion eases out over several frames.
	Damping bool

	// DampingFactor is the fraction of the remaining motion applied
	// per frame at 60 frames per second.
	DampingFactor float32

	// RotateSpeed scales rotation input.
	RotateSpeed float32

	// PanSpeed scales pan input.
	PanSpeed float32

	// ZoomSpeed scales dolly input.
	ZoomSpeed float32

	// MinDistance and MaxDistance limit the distance to the target.
	MinDistance, MaxDistance float32

	// MinPolarAngle and MaxPolarAngle limit the vertical orbit, in radians from +Y.
	MinPolarAngle, MaxPolarAngle float32

	target mgl32.Vec3

	// pending motion not yet applied to the camera
	deltaTheta, deltaPhi float32
	panOffset            mgl32.Vec3
	scale                float32

	viewport image.Point
}

// New returns orbit controls for the given camera, orbiting around
// the camera's current target, with damping on.
func New(cam driver.Camera) *Controls {
	oc := &Controls{Camera: cam}
	oc.Defaults()
	oc.target = vec(cam.Target())
	return oc
}

// Defaults sets the default control parameters.
func (oc *Controls) Defaults() {
	oc.Enabled = true
	oc.Damping = true
	oc.DampingFactor = 0.25
	oc.RotateSpeed = 1
	oc.PanSpeed = 1
	oc.ZoomSpeed = 1
	oc.MinDistance = 0
	oc.MaxDistance = m32.Inf(1)
	oc.MinPolarAngle = 0
	oc.MaxPolarAngle = m32.Pi
	oc.scale = 1
	oc.viewport = image.Point{480, 320}
}

// SetViewport sets the size of the viewport that pointer
// deltas are measured in.
func (oc *Controls) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		oc.viewport = image.Point{width, height}
	}
}

// Target returns the point being orbited.
func (oc *Controls) Target() math32.Vector3 {
	return math32.Vec3(oc.target.X(), oc.target.Y(), oc.target.Z())
}

// SetTarget sets the point being orbited.
func (oc *Controls) SetTarget(target math32.Vector3) {
	oc.target = vec(target)
	oc.Camera.LookAt(target)
}

// Rotate orbits by the given pointer movement in pixels.
// A drag across the full viewport height is one full turn.
func (oc *Controls) Rotate(dx, dy float32) {
	if !oc.Enabled {
		return
	}
	h := float32(oc.viewport.Y)
	oc.deltaTheta -= 2 * m32.Pi * dx / h * oc.RotateSpeed
	oc.deltaPhi -= 2 * m32.Pi * dy / h * oc.RotateSpeed
}

// Pan moves the target (and camera) by the given pointer movement
// in pixels, parallel to the view plane.
func (oc *Controls) Pan(dx, dy float32) {
	if !oc.Enabled {
		return
	}
	pos := vec(oc.Camera.Position())
	offset := pos.Sub(oc.target)
	dist := offset.Len()
	if dist == 0 {
		return
	}
	forward := offset.Mul(-1 / dist)
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < epsilon {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(forward)
	k := 2 * dist / float32(oc.viewport.Y) * oc.PanSpeed
	oc.panOffset = oc.panOffset.Add(right.Mul(-dx * k)).Add(up.Mul(dy * k))
}

// Dolly moves toward (delta < 0) or away from (delta > 0) the target,
// as for one notch of a scroll wheel per unit of delta.
func (oc *Controls) Dolly(delta float32) {
	if !oc.Enabled || delta == 0 {
		return
	}
	zoom := m32.Pow(0.95, oc.ZoomSpeed*m32.Abs(delta))
	if delta > 0 {
		oc.scale /= zoom
	} else {
		oc.scale *= zoom
	}
}

// Update applies pending motion to the camera; dt is the time since
// the last update and makes damping independent of the frame rate
// (dt <= 0 applies exactly DampingFactor). It returns whether the
// camera moved. Pending motion too small to matter after this update
// is applied in full, so that a damped drag always ends exactly where
// the undamped one would.
func (oc *Controls) Update(dt time.Duration) bool {
	if oc.Settled() {
		return false
	}
	pos := vec(oc.Camera.Position())
	offset := pos.Sub(oc.target)

	radius := offset.Len()
	theta := m32.Atan2(offset.X(), offset.Z())
	phi := float32(0)
	if radius > 0 {
		phi = m32.Acos(clamp(offset.Y()/radius, -1, 1))
	}

	frac := float32(1)
	if oc.Damping {
		frac = oc.dampingFraction(dt)
		rest := 1 - frac
		if m32.Abs(oc.deltaTheta*rest) < epsilon && m32.Abs(oc.deltaPhi*rest) < epsilon &&
			oc.panOffset.Len()*rest < epsilon {
			frac = 1
		}
	}
	theta += oc.deltaTheta * frac
	phi += oc.deltaPhi * frac
	phi = clamp(phi, oc.MinPolarAngle, oc.MaxPolarAngle)
	phi = clamp(phi, epsilon, m32.Pi-epsilon)

	radius = clamp(radius*oc.scale, oc.MinDistance, oc.MaxDistance)
	oc.target = oc.target.Add(oc.panOffset.Mul(frac))

	sinPhi := m32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sinPhi * m32.Sin(theta),
		radius * m32.Cos(phi),
		radius * sinPhi * m32.Cos(theta),
	}
	npos := oc.target.Add(offset)

	rest := 1 - frac
	oc.deltaTheta *= rest
	oc.deltaPhi *= rest
	oc.panOffset = oc.panOffset.Mul(rest)
	oc.scale = 1

	oc.Camera.SetPosition(math32.Vec3(npos.X(), npos.Y(), npos.Z()))
	oc.Camera.LookAt(oc.Target())
	return true
}

// Settled returns whether no pending motion remains.
func (oc *Controls) Settled() bool {
	return oc.deltaTheta == 0 && oc.deltaPhi == 0 && oc.panOffset == (mgl32.Vec3{}) && oc.scale == 1
}

func (oc *Controls) dampingFraction(dt time.Duration) float32 {
	df := clamp(oc.DampingFactor, 0, 1)
	if dt <= 0 {
		return df
	}
	frames := float32(dt.Seconds()) * refreshRate
	return 1 - m32.Pow(1-df, frames)
}

func clamp(x, lo, hi float32) float32 {
	return m32.Max(lo, m32.Min(hi, x))
}

func vec(v math32.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
