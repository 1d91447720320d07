// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/go-gl/mathgl/mgl32"

// Uniform is a named uniform variable of a specific [Program].
// Values are written to the program immediately. A Uniform with
// [NoLocation] is valid; writing to it does nothing.
type Uniform struct {
	dev      Device
	program  uint32
	name     string
	location int32
}

// Name returns the name of the uniform.
func (un Uniform) Name() string {
	return un.name
}

// Location returns the location of the uniform within its program.
func (un Uniform) Location() int32 {
	return un.location
}

// Found returns whether the uniform exists in its program.
func (un Uniform) Found() bool {
	return un.location != NoLocation
}

// SetFloat32 sets a float uniform.
func (un Uniform) SetFloat32(v float32) {
	un.set(Float32, false, v)
}

// SetVector2 sets a vec2 uniform.
func (un Uniform) SetVector2(v mgl32.Vec2) {
	un.set(Float32Vector2, false, v[:]...)
}

// SetVector3 sets a vec3 uniform.
func (un Uniform) SetVector3(v mgl32.Vec3) {
	un.set(Float32Vector3, false, v[:]...)
}

// SetVector4 sets a vec4 uniform.
func (un Uniform) SetVector4(v mgl32.Vec4) {
	un.set(Float32Vector4, false, v[:]...)
}

// SetMatrix2 sets a mat2 uniform. The matrix is in column-major
// order unless transpose is set.
func (un Uniform) SetMatrix2(m mgl32.Mat2, transpose bool) {
	un.set(Float32Matrix2, transpose, m[:]...)
}

// SetMatrix4 sets a mat4 uniform. The matrix is in column-major
// order unless transpose is set.
func (un Uniform) SetMatrix4(m mgl32.Mat4, transpose bool) {
	un.set(Float32Matrix4, transpose, m[:]...)
}

func (un Uniform) set(typ Types, transpose bool, values ...float32) {
	if un.location == NoLocation || un.dev == nil {
		return
	}
	un.dev.ProgramUniform(un.program, un.location, typ, transpose, values)
}
