// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Geometry is indexed triangle geometry held as three parallel arrays.
type Geometry struct {
	// Positions are the vertex positions, as x, y, z triples.
	Positions []float32 `toml:"positions" yaml:"positions"`

	// Indices are the vertex indexes, three per triangle.
	Indices []uint32 `toml:"indices" yaml:"indices"`

	// Colors are the vertex colors, as r, g, b, a quadruples.
	Colors []float32 `toml:"colors" yaml:"colors"`
}

// NumVertices returns the number of vertices.
func (g *Geometry) NumVertices() int {
	return len(g.Positions) / 3
}

// NumTriangles returns the number of triangles.
func (g *Geometry) NumTriangles() int {
	return len(g.Indices) / 3
}

// Validate checks that the arrays are consistent with each other.
func (g *Geometry) Validate() error {
	switch {
	case len(g.Positions) == 0 || len(g.Indices) == 0:
		return fmt.Errorf("gpu.Geometry: no vertices or indices")
	case len(g.Positions)%3 != 0:
		return fmt.Errorf("gpu.Geometry: %d positions is not a multiple of 3", len(g.Positions))
	case len(g.Indices)%3 != 0:
		return fmt.Errorf("gpu.Geometry: %d indices is not a multiple of 3", len(g.Indices))
	case len(g.Colors) != 4*g.NumVertices():
		return fmt.Errorf("gpu.Geometry: %d colors for %d vertices, need 4 per vertex", len(g.Colors), g.NumVertices())
	}
	nv := uint32(g.NumVertices())
	for i, ix := range g.Indices {
		if ix >= nv {
			return fmt.Errorf("gpu.Geometry: index %d at %d is out of range for %d vertices", ix, i, nv)
		}
	}
	return nil
}
