// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/gloom/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute locations, matching the
// layout(location = n) qualifiers of the shaders.
const (
	PositionLoc = 0
	ColorLoc    = 1
)

// buffer uploads the given data to a new array buffer bound to
// the given attribute location, with size components per vertex.
func buffer(loc uint32, size int32, data []float32) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (d *Device) NewMesh(g *gpu.Geometry) (gpu.Mesh, error) {
	if err := g.Validate(); err != nil {
		return gpu.Mesh{}, err
	}
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	buffer(PositionLoc, 3, g.Positions)
	buffer(ColorLoc, 4, g.Colors)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(g.Indices), gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu.Mesh{Handle: vao, Count: int32(len(g.Indices))}, nil
}

func (d *Device) DrawIndexed(m gpu.Mesh) {
	gl.BindVertexArray(m.Handle)
	gl.DrawElements(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}
