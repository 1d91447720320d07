// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangles(t *testing.T) {
	g := Triangles()
	require.NoError(t, g.Validate())
	assert.Equal(t, 9, g.NumVertices())
	assert.Equal(t, 3, g.NumTriangles())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8}, g.Indices)
	assert.Equal(t, []float32{0, 0.5, -1.25}, g.Positions[9:12])
	assert.Equal(t, []float32{0.25, -0.25, -1}, g.Positions[24:27])
	assert.Equal(t, []float32{1, 0, 0, 0.5}, g.Colors[0:4])
	assert.Equal(t, []float32{0, 0, 1, 0.5}, g.Colors[32:36])
}

func TestOpen(t *testing.T) {
	for _, fn := range []string{"testdata/quad.toml", "testdata/quad.yaml"} {
		g, err := Open(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, 4, g.NumVertices(), fn)
		assert.Equal(t, 2, g.NumTriangles(), fn)
		assert.Equal(t, float32(-2), g.Positions[2], fn)
	}

	_, err := Open("testdata/bad.yaml")
	assert.ErrorContains(t, err, "out of range")

	_, err = Open("testdata/missing.toml")
	assert.Error(t, err)

	_, err = Open("scene.go")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	g, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Triangles(), g)

	g, err = Load("testdata/quad.toml")
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumTriangles())
}
