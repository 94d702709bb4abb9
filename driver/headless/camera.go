// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera that keeps its projection matrix
// up to date lazily: changing the aspect or perspective parameters
// marks it stale until UpdateProjectionMatrix is called.
type Camera struct {
	FOV    float32
	Near   float32
	Far    float32
	aspect float32

	position math32.Vector3
	target   math32.Vector3

	projection      mgl32.Mat4
	projectionStale bool

	// ProjectionUpdates counts recomputations of the projection matrix.
	ProjectionUpdates int
}

// NewCamera returns a camera at (0, 0, 10) looking at the origin.
func NewCamera() *Camera {
	cm := &Camera{FOV: 30, Near: 0.01, Far: 1000, aspect: 1}
	cm.position.Set(0, 0, 10)
	cm.UpdateProjectionMatrix()
	return cm
}

func (cm *Camera) Position() math32.Vector3 { return cm.position }
func (cm *Camera) SetPosition(pos math32.Vector3) { cm.position = pos }
func (cm *Camera) Target() math32.Vector3 { return cm.target }
func (cm *Camera) LookAt(target math32.Vector3) { cm.target = target }
func (cm *Camera) Aspect() float32 { return cm.aspect }
func (cm *Camera) ProjectionStale() bool { return cm.projectionStale }

func (cm *Camera) SetPerspective(fov, near, far float32) {
	cm.FOV, cm.Near, cm.Far = fov, near, far
	cm.projectionStale = true
}

func (cm *Camera) SetAspect(aspect float32) {
	cm.aspect = aspect
	cm.projectionStale = true
}

func (cm *Camera) UpdateProjectionMatrix() {
	cm.projection = mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.aspect, cm.Near, cm.Far)
	cm.projectionStale = false
	cm.ProjectionUpdates++
}

// ProjectionMatrix returns the projection matrix as last computed.
// Like the renderers it stands in for, it does not recompute a stale matrix.
func (cm *Camera) ProjectionMatrix() mgl32.Mat4 { return cm.projection }

// ViewMatrix returns the view matrix for the current position and target.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(vec(cm.position), vec(cm.target), mgl32.Vec3{0, 1, 0})
}

func vec(v math32.Vector3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }
