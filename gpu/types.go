// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types are the uniform value types that can be written to a program.
type Types int32

const (
	UndefinedType Types = iota
	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4
	Float32Matrix2
	Float32Matrix4
	TypesN
)

var typeNames = [...]string{"none", "float", "vec2", "vec3", "vec4", "mat2", "mat4"}

var typeLens = [...]int{0, 1, 2, 3, 4, 4, 16}

// String returns the GLSL name of the type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "none"
	}
	return typeNames[tp]
}

// Len returns the number of float32 values in one value of this type.
func (tp Types) Len() int {
	if tp < 0 || tp >= TypesN {
		return 0
	}
	return typeLens[tp]
}

// IsMatrix returns whether the type is a matrix type.
func (tp Types) IsMatrix() bool {
	return tp == Float32Matrix2 || tp == Float32Matrix4
}
