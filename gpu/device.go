// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image/color"
)

// NoLocation is the location of a uniform that does not exist
// in a program. Writes to it are silently ignored, as in OpenGL.
const NoLocation int32 = -1

// Info describes the device driver.
type Info struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

func (in Info) String() string {
	return fmt.Sprintf("%s: %s, version: %s, shading language: %s", in.Vendor, in.Renderer, in.Version, in.ShadingLanguage)
}

// State is the fixed-function state configured once
// before rendering starts.
type State struct {
	// DepthTest enables depth testing with a less-than comparison.
	DepthTest bool

	// CullFace enables culling of back faces.
	CullFace bool

	// Blend enables standard source-alpha blending.
	Blend bool

	// Multisample enables multisample anti-aliasing.
	Multisample bool
}

// DefaultState returns the standard state: depth testing,
// back face culling and alpha blending, without multisampling.
func DefaultState() State {
	return State{DepthTest: true, CullFace: true, Blend: true}
}

// Mesh is a handle to geometry uploaded to the device.
type Mesh struct {
	// Handle is the device handle of the vertex array.
	Handle uint32

	// Count is the number of indexes to draw.
	Count int32
}

// Device is the interface to a graphics driver. All of its methods
// must be called from the goroutine that owns the [Context] the
// Device was created for.
type Device interface {
	// Info returns information about the driver.
	Info() Info

	// Configure sets the fixed-function state.
	Configure(st State)

	// CompileShader compiles one shader stage from the given source.
	// If compilation fails, the shader is deleted and the error
	// message is the driver's info log, verbatim.
	CompileShader(typ ShaderTypes, src string) (uint32, error)

	// DeleteShader deletes a compiled shader stage.
	DeleteShader(shader uint32)

	// LinkProgram links the given compiled stages into a new program.
	// If linking fails, the program is deleted and the error
	// message is the driver's info log, verbatim.
	LinkProgram(shaders []uint32) (uint32, error)

	// DeleteProgram deletes a linked program.
	DeleteProgram(program uint32)

	// UseProgram makes the given program the active one for drawing.
	UseProgram(program uint32)

	// UniformLocation returns the location of the named uniform
	// in the given program, or [NoLocation] if it does not exist.
	UniformLocation(program uint32, name string) int32

	// ProgramUniform writes the given values to the uniform at the
	// given location of the given program. The length of values must
	// be typ.Len(). transpose only applies to matrix types.
	ProgramUniform(program uint32, location int32, typ Types, transpose bool, values []float32)

	// NewMesh uploads the given geometry and returns its handle.
	NewMesh(g *Geometry) (Mesh, error)

	// Clear clears the color and depth buffers, using the given color.
	Clear(c color.RGBA)

	// DrawIndexed draws all of the triangles of the given mesh
	// with the active program.
	DrawIndexed(m Mesh)
}
