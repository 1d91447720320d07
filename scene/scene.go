// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the geometry that gloom draws.
package scene

import (
	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/base/iox"
	_ "cogentcore.org/gloom/base/iox/tomlx"
	_ "cogentcore.org/gloom/base/iox/yamlx"
	"cogentcore.org/gloom/gpu"
)

// Triangles returns the built-in scene: three nested triangles,
// red behind green behind blue, each half transparent.
func Triangles() *gpu.Geometry {
	g := &gpu.Geometry{}
	tris := []struct {
		size, z float32
		r, g, b float32
	}{
		{1, -1.5, 1, 0, 0},
		{0.5, -1.25, 0, 1, 0},
		{0.25, -1, 0, 0, 1},
	}
	for i, t := range tris {
		g.Positions = append(g.Positions,
			0, t.size, t.z,
			-t.size, -t.size, t.z,
			t.size, -t.size, t.z)
		n := uint32(3 * i)
		g.Indices = append(g.Indices, n, n+1, n+2)
		for j := 0; j < 3; j++ {
			g.Colors = append(g.Colors, t.r, t.g, t.b, 0.5)
		}
	}
	return g
}

// Open reads the geometry in the given TOML or YAML file,
// based on its extension, and validates it.
func Open(filename string) (*gpu.Geometry, error) {
	g := &gpu.Geometry{}
	if err := iox.OpenAny(g, filename); err != nil {
		return nil, errors.Errorf("scene: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Errorf("scene: %s: %w", filename, err)
	}
	return g, nil
}

// Load returns the geometry in the given file, or the
// built-in [Triangles] if filename is empty.
func Load(filename string) (*gpu.Geometry, error) {
	if filename == "" {
		return Triangles(), nil
	}
	return Open(filename)
}
