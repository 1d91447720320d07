// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a free-look perspective camera
// driven by held keys and pointer motion.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines the properties of the camera.
// The final matrix is Projection * Rotation * Translate(-Position).
type Camera struct {

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// Projection is the perspective transform, set by UpdateProjection.
	Projection mgl32.Mat4

	// Rotation is the accumulated view rotation.
	Rotation mgl32.Mat4

	// Position is the camera location in world coordinates.
	Position mgl32.Vec3

	// total yaw and pitch applied, wrapped to [-Pi, Pi]
	yaw, pitch float32
}

// New returns a new camera at the origin looking down -Z with the
// given perspective.
func New(aspect, fov, near, far float32) *Camera {
	cm := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	cm.Reset()
	cm.UpdateProjection()
	return cm
}

// Reset clears the rotation and moves the camera back to the origin.
func (cm *Camera) Reset() {
	cm.Rotation = mgl32.Ident4()
	cm.Position = mgl32.Vec3{}
	cm.yaw, cm.pitch = 0, 0
}

// UpdateProjection recomputes the projection matrix from the
// FOV, Aspect, Near and Far fields.
func (cm *Camera) UpdateProjection() {
	cm.Projection = mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
}

// Rotate post-multiplies the rotation by angle radians about axis,
// which is in view coordinates.
func (cm *Camera) Rotate(angle float32, axis mgl32.Vec3) {
	cm.Rotation = cm.Rotation.Mul4(mgl32.HomogRotate3D(angle, axis))
}

// Yaw rotates about the view Y axis.
func (cm *Camera) Yaw(angle float32) {
	if angle == 0 {
		return
	}
	cm.Rotate(angle, mgl32.Vec3{0, 1, 0})
	cm.yaw = wrap(cm.yaw + angle)
}

// Pitch rotates about the view X axis.
func (cm *Camera) Pitch(angle float32) {
	if angle == 0 {
		return
	}
	cm.Rotate(angle, mgl32.Vec3{1, 0, 0})
	cm.pitch = wrap(cm.pitch + angle)
}

// Angles returns the total yaw and pitch applied so far,
// in radians in [-Pi, Pi].
func (cm *Camera) Angles() (yaw, pitch float32) {
	return cm.yaw, cm.pitch
}

func wrap(a float32) float32 {
	return math32.Remainder(a, 2*math32.Pi)
}

// Move moves the camera by the given displacement in view coordinates,
// so that -Z is always forward.
func (cm *Camera) Move(d mgl32.Vec3) {
	if d.Len() == 0 {
		return
	}
	world := cm.Rotation.Transpose().Mul4x1(d.Vec4(0)).Vec3()
	cm.Position = cm.Position.Add(world)
}

// ViewMatrix returns Rotation * Translate(-Position).
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	p := cm.Position
	return cm.Rotation.Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

// Matrix returns the full camera matrix to upload as a uniform.
func (cm *Camera) Matrix() mgl32.Mat4 {
	return cm.Projection.Mul4(cm.ViewMatrix())
}
