// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "slices"

// Program is a linked shader program, made by [ShaderBuilder.Link].
type Program struct {
	dev    Device
	handle uint32
	stages []ShaderTypes
}

// Handle returns the device handle of the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Stages returns the types of the stages linked into the program,
// in the order they were attached.
func (pr *Program) Stages() []ShaderTypes {
	return slices.Clone(pr.stages)
}

// Activate makes this the active program for drawing.
func (pr *Program) Activate() {
	pr.dev.UseProgram(pr.handle)
}

// Uniform returns the uniform with the given name. It never fails:
// if the program has no such uniform, the returned [Uniform] has
// [NoLocation] and setting it does nothing.
func (pr *Program) Uniform(name string) Uniform {
	return Uniform{
		dev:      pr.dev,
		program:  pr.handle,
		name:     name,
		location: pr.dev.UniformLocation(pr.handle, name),
	}
}

// Delete deletes the GPU resources associated with this program.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	pr.dev.DeleteProgram(pr.handle)
	pr.handle = 0
}
