// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzdriver

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Camera is a [driver.Camera] for the [xyz.Camera] of the scene.
type Camera struct {
	bk     *Backend
	cam    *xyz.Camera
	target math32.Vector3
}

func (cm *Camera) Position() math32.Vector3 { return cm.cam.Pose.Pos }

func (cm *Camera) SetPosition(pos math32.Vector3) {
	cm.cam.Pose.Pos = pos
	cm.bk.Scene.SetNeedsRender()
}

func (cm *Camera) Target() math32.Vector3 { return cm.target }

func (cm *Camera) LookAt(target math32.Vector3) {
	cm.target = target
	cm.cam.LookAt(target, math32.Vec3(0, 1, 0))
	cm.bk.Scene.SetNeedsRender()
}

func (cm *Camera) SetPerspective(fov, near, far float32) {
	cm.cam.FOV = fov
	cm.cam.Near = near
	cm.cam.Far = far
}

func (cm *Camera) Aspect() float32 { return cm.cam.Aspect }

func (cm *Camera) SetAspect(aspect float32) { cm.cam.Aspect = aspect }

func (cm *Camera) UpdateProjectionMatrix() {
	cm.cam.UpdateMatrix()
	cm.bk.Scene.SetNeedsRender()
}
