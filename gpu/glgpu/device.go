// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Device] on OpenGL 4.1 core.
// All of its methods must be called on the thread where the
// context is current (see [gpu.PendingContext]).
package glgpu

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/gloom/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device is the OpenGL device.
type Device struct {
	info gpu.Info
}

var _ gpu.Device = (*Device)(nil)

// New loads the OpenGL function pointers for the current context
// and returns a new Device. It is meant to be passed to
// [gpu.PendingContext.Activate].
func New() (gpu.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgpu: failed to initialize OpenGL: %w", err)
	}
	d := &Device{}
	d.info = gpu.Info{
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	return d, nil
}

func (d *Device) Info() gpu.Info {
	return d.info
}

func enable(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func (d *Device) Configure(st gpu.State) {
	enable(gl.DEPTH_TEST, st.DepthTest)
	gl.DepthFunc(gl.LESS)
	enable(gl.CULL_FACE, st.CullFace)
	enable(gl.BLEND, st.Blend)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	enable(gl.MULTISAMPLE, st.Multisample)
}

var glShaders = [gpu.ShaderTypesN]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.TessCtrlShader: gl.TESS_CONTROL_SHADER,
	gpu.TessEvalShader: gl.TESS_EVALUATION_SHADER,
	gpu.GeometryShader: gl.GEOMETRY_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

// infoLog returns an info log of the given length, read by get.
func infoLog(length int32, get func(length int32, log *uint8)) string {
	if length <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(length+1))
	get(length, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (d *Device) CompileShader(typ gpu.ShaderTypes, src string) (uint32, error) {
	if typ < 0 || typ >= gpu.ShaderTypesN {
		return 0, fmt.Errorf("invalid shader type %d", typ)
	}
	handle := gl.CreateShader(glShaders[typ])
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
		msg := infoLog(length, func(n int32, log *uint8) { gl.GetShaderInfoLog(handle, n, nil, log) })
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%s", msg)
	}
	return handle, nil
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) LinkProgram(shaders []uint32) (uint32, error) {
	handle := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(handle, sh)
	}
	gl.LinkProgram(handle)
	for _, sh := range shaders {
		gl.DetachShader(handle, sh)
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
		msg := infoLog(length, func(n int32, log *uint8) { gl.GetProgramInfoLog(handle, n, nil, log) })
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("%s", msg)
	}
	return handle, nil
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) ProgramUniform(program uint32, location int32, typ gpu.Types, transpose bool, values []float32) {
	if location == gpu.NoLocation || len(values) < typ.Len() {
		return
	}
	switch typ {
	case gpu.Float32:
		gl.ProgramUniform1f(program, location, values[0])
	case gpu.Float32Vector2:
		gl.ProgramUniform2f(program, location, values[0], values[1])
	case gpu.Float32Vector3:
		gl.ProgramUniform3f(program, location, values[0], values[1], values[2])
	case gpu.Float32Vector4:
		gl.ProgramUniform4f(program, location, values[0], values[1], values[2], values[3])
	case gpu.Float32Matrix2:
		gl.ProgramUniformMatrix2fv(program, location, 1, transpose, &values[0])
	case gpu.Float32Matrix4:
		gl.ProgramUniformMatrix4fv(program, location, 1, transpose, &values[0])
	}
}

func (d *Device) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
