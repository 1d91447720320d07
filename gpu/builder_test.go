// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"os"
	"testing"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/gpu/softgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderTypeFromExt(t *testing.T) {
	for path, want := range map[string]gpu.ShaderTypes{
		"a.vert":              gpu.VertexShader,
		"a.frag":              gpu.FragmentShader,
		"dir/b.geom":          gpu.GeometryShader,
		"c.tcs":               gpu.TessCtrlShader,
		"c.tes":               gpu.TessEvalShader,
		"shaders/SIMPLE.FRAG": gpu.FragmentShader,
	} {
		typ, err := gpu.ShaderTypeFromExt(path)
		assert.NoError(t, err, path)
		assert.Equal(t, want, typ, path)
	}

	_, err := gpu.ShaderTypeFromExt("simple.glsl")
	var ee *gpu.ExtensionError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, ".glsl", ee.Ext)
	assert.Contains(t, err.Error(), "simple.glsl")

	_, err = gpu.ShaderTypeFromExt("Makefile")
	assert.ErrorContains(t, err, "no extension")
}

func TestBuildSimple(t *testing.T) {
	dev := softgpu.New()
	prog, err := gpu.NewShaderBuilder(dev).
		AttachFile("testdata/simple.vert").
		AttachFile("testdata/simple.frag").
		Link()
	require.NoError(t, err)
	require.NotNil(t, prog)

	assert.NotZero(t, prog.Handle())
	assert.Equal(t, []gpu.ShaderTypes{gpu.VertexShader, gpu.FragmentShader}, prog.Stages())
	assert.Equal(t, 0, dev.Shaders(), "stages must be released after linking")
	assert.Equal(t, 1, dev.Programs())

	prog.Activate()
	assert.Equal(t, prog.Handle(), dev.Active())

	prog.Delete()
	assert.Equal(t, 0, dev.Programs())
	assert.Empty(t, dev.Errors())
}

func TestBuildCompileFailure(t *testing.T) {
	dev := softgpu.New()
	b := gpu.NewShaderBuilder(dev).
		AttachFile("testdata/simple.vert").
		AttachFile("testdata/unbalanced.frag")
	require.Error(t, b.Err())

	var ce *gpu.CompileError
	require.True(t, errors.As(b.Err(), &ce))
	assert.Equal(t, gpu.FragmentShader, ce.Type)
	assert.Equal(t, "testdata/unbalanced.frag", ce.Path)
	assert.Contains(t, ce.Log, "0:9(1): error:")
	assert.Equal(t, 0, dev.Shaders(), "compiled stages must be released on failure")

	// later stages are not compiled, and Link reports the first error
	b = b.AttachFile("testdata/simple.frag")
	prog, err := b.Link()
	assert.Nil(t, prog)
	assert.Same(t, ce, err)
	assert.Equal(t, 0, dev.Programs())
}

func TestBuildLinkFailure(t *testing.T) {
	dev := softgpu.New()
	prog, err := gpu.NewShaderBuilder(dev).
		AttachFile("testdata/simple.vert").
		AttachFile("testdata/mismatch.frag").
		Link()
	assert.Nil(t, prog)
	var le *gpu.LinkError
	require.True(t, errors.As(err, &le))
	assert.NotEmpty(t, le.Log)
	assert.Contains(t, le.Log, "vColor")
	assert.Equal(t, []gpu.ShaderTypes{gpu.VertexShader, gpu.FragmentShader}, le.Stages)
	assert.Equal(t, 0, dev.Shaders())
	assert.Equal(t, 0, dev.Programs())
}

func TestBuildMissingFile(t *testing.T) {
	dev := softgpu.New()
	_, err := gpu.NewShaderBuilder(dev).
		AttachFile("testdata/simple.vert").
		AttachFile("testdata/missing.frag").
		Link()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "testdata/missing.frag")
	assert.Contains(t, err.Error(), "fragment")
	assert.Equal(t, 0, dev.Shaders())
}

func TestBuildBadExtension(t *testing.T) {
	_, err := gpu.NewShaderBuilder(softgpu.New()).AttachFile("testdata/simple.glsl").Link()
	var ee *gpu.ExtensionError
	assert.True(t, errors.As(err, &ee))
}

func TestBuildNoStages(t *testing.T) {
	_, err := gpu.NewShaderBuilder(softgpu.New()).Link()
	assert.ErrorIs(t, err, gpu.ErrNoStages)
}

func TestBuildZeroValue(t *testing.T) {
	var b gpu.ShaderBuilder
	_, err := b.CompileSource("void main() {}", gpu.VertexShader).Link()
	assert.Error(t, err)
}

func TestBuildConsumed(t *testing.T) {
	dev := softgpu.New()
	b := gpu.NewShaderBuilder(dev).AttachFile("testdata/simple.vert")
	b2 := b.AttachFile("testdata/simple.frag")
	_, err := b2.Link()
	require.NoError(t, err)

	_, err = b2.Link()
	assert.ErrorIs(t, err, gpu.ErrBuilderConsumed)
	assert.ErrorIs(t, b.Err(), gpu.ErrBuilderConsumed)
	assert.ErrorIs(t, b.AttachFile("testdata/simple.frag").Err(), gpu.ErrBuilderConsumed)
	_, err = b.Link()
	assert.ErrorIs(t, err, gpu.ErrBuilderConsumed)
	assert.Equal(t, 1, dev.Programs())
}

func TestBuildFailedBranch(t *testing.T) {
	dev := softgpu.New()
	base := gpu.NewShaderBuilder(dev).AttachFile("testdata/simple.vert")
	good := base.AttachFile("testdata/simple.frag")
	bad := base.CompileSource("void main() { (", gpu.FragmentShader)
	var ce *gpu.CompileError
	require.True(t, errors.As(bad.Err(), &ce))
	assert.Equal(t, 0, dev.Shaders(), "all stages of the build are released once")

	// every builder of the build reports the failure
	assert.Same(t, ce, good.Err())
	assert.Same(t, ce, base.AttachFile("testdata/simple.frag").Err())
	_, err := good.Link()
	assert.Same(t, ce, err)
	assert.Equal(t, 0, dev.Programs())
	assert.Empty(t, dev.Errors(), "no stage is deleted twice")
}

func TestBuildLinkedBranch(t *testing.T) {
	dev := softgpu.New()
	base := gpu.NewShaderBuilder(dev).AttachFile("testdata/simple.vert")
	a := base.AttachFile("testdata/simple.frag")
	b := base.CompileSource("#version 410 core\nin vec4 vColor;\nout vec4 o;\nvoid main() { o = vColor; }\n", gpu.FragmentShader)
	require.NoError(t, b.Err())
	assert.Equal(t, 3, dev.Shaders())

	_, err := a.Link()
	require.NoError(t, err)
	assert.Equal(t, 0, dev.Shaders(), "stages only in the other branch are released too")

	_, err = b.Link()
	assert.ErrorIs(t, err, gpu.ErrBuilderConsumed)
	assert.Equal(t, 1, dev.Programs())
	assert.Empty(t, dev.Errors())
}

func TestBuildSource(t *testing.T) {
	dev := softgpu.New()
	prog, err := gpu.NewShaderBuilder(dev).
		CompileSource("#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n", gpu.VertexShader).
		CompileSource("#version 410 core\nin vec4 c;\nout vec4 o;\nvoid main() { o = c; }\n", gpu.FragmentShader).
		Link()
	require.NoError(t, err)
	assert.Len(t, prog.Stages(), 2)

	_, err = gpu.NewShaderBuilder(dev).CompileSource("void main() {}", gpu.ShaderTypesN).Link()
	assert.ErrorContains(t, err, "invalid shader type")
}

func TestUniforms(t *testing.T) {
	dev := softgpu.New()
	prog, err := gpu.NewShaderBuilder(dev).
		AttachFile("testdata/simple.vert").
		AttachFile("testdata/simple.frag").
		Link()
	require.NoError(t, err)
	prog.Activate()

	time := prog.Uniform("iTime")
	assert.True(t, time.Found())
	assert.Equal(t, "iTime", time.Name())
	time.SetFloat32(1.5)
	w, ok := dev.LastWrite("iTime")
	require.True(t, ok)
	assert.Equal(t, []float32{1.5}, w.Values)
	assert.Equal(t, gpu.Float32, w.Type)

	prog.Uniform("screenDims").SetVector2(mgl32.Vec2{800, 600})
	w, _ = dev.LastWrite("screenDims")
	assert.Equal(t, []float32{800, 600}, w.Values)

	m := mgl32.Translate3D(1, 2, 3)
	prog.Uniform("camera").SetMatrix4(m, false)
	w, _ = dev.LastWrite("camera")
	assert.Equal(t, m[:], w.Values)
	assert.False(t, w.Transpose)

	n := len(dev.Writes())
	missing := prog.Uniform("notThere")
	assert.False(t, missing.Found())
	assert.Equal(t, gpu.NoLocation, missing.Location())
	missing.SetFloat32(3)
	missing.SetMatrix4(mgl32.Ident4(), false)
	assert.Len(t, dev.Writes(), n, "writes to absent uniforms must do nothing")
	assert.Empty(t, dev.Errors())

	var zero gpu.Uniform
	zero.SetVector4(mgl32.Vec4{})
	assert.Len(t, dev.Writes(), n)
}

func TestUniformTypes(t *testing.T) {
	dev := softgpu.New()
	prog, err := gpu.NewShaderBuilder(dev).
		CompileSource(`#version 410 core
uniform vec3 lightDir;
uniform vec4 tint;
uniform mat2 warp;
void main() { gl_Position = vec4(warp * lightDir.xy, 0.0, 1.0) * tint; }
`, gpu.VertexShader).
		Link()
	require.NoError(t, err)
	prog.Activate()

	prog.Uniform("lightDir").SetVector3(mgl32.Vec3{0, -1, 0.5})
	w, ok := dev.LastWrite("lightDir")
	require.True(t, ok)
	assert.Equal(t, gpu.Float32Vector3, w.Type)
	assert.Equal(t, []float32{0, -1, 0.5}, w.Values)

	prog.Uniform("tint").SetVector4(mgl32.Vec4{1, 0.5, 0.25, 1})
	w, _ = dev.LastWrite("tint")
	assert.Equal(t, gpu.Float32Vector4, w.Type)
	assert.Equal(t, []float32{1, 0.5, 0.25, 1}, w.Values)

	m := mgl32.Mat2{1, 2, 3, 4}
	prog.Uniform("warp").SetMatrix2(m, false)
	w, _ = dev.LastWrite("warp")
	assert.Equal(t, gpu.Float32Matrix2, w.Type)
	assert.Equal(t, m[:], w.Values)
	assert.False(t, w.Transpose)

	prog.Uniform("warp").SetMatrix2(m.Transpose(), true)
	w, _ = dev.LastWrite("warp")
	assert.True(t, w.Transpose)
	assert.Equal(t, []float32{1, 3, 2, 4}, w.Values)

	// a write of the wrong type is a driver error
	prog.Uniform("lightDir").SetVector2(mgl32.Vec2{1, 1})
	assert.Len(t, dev.Writes(), 4)
	assert.Len(t, dev.Errors(), 1)
}

type surface struct {
	current  int
	swaps    int
	interval int
}

func (s *surface) MakeContextCurrent()   { s.current++ }
func (s *surface) SwapBuffers()          { s.swaps++ }
func (s *surface) SetSwapInterval(n int) { s.interval = n }

func TestPendingContext(t *testing.T) {
	sf := &surface{}
	pc := gpu.NewPendingContext(sf)
	dev := softgpu.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		cx, err := pc.Activate(func() (gpu.Device, error) { return dev, nil })
		if assert.NoError(t, err) {
			assert.Same(t, dev, cx.Device())
			cx.SetVSync(true)
			cx.SwapBuffers()
		}
	}()
	<-done
	assert.Equal(t, 1, sf.current)
	assert.Equal(t, 1, sf.swaps)
	assert.Equal(t, 1, sf.interval)

	_, err := pc.Activate(func() (gpu.Device, error) { return dev, nil })
	assert.ErrorIs(t, err, gpu.ErrContextActivated)
	assert.Equal(t, 1, sf.current)
}

func TestGeometryValidate(t *testing.T) {
	g := &gpu.Geometry{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
		Colors:    []float32{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1},
	}
	require.NoError(t, g.Validate())
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 1, g.NumTriangles())

	bad := *g
	bad.Indices = []uint32{0, 1, 3}
	assert.ErrorContains(t, bad.Validate(), "out of range")

	bad = *g
	bad.Colors = bad.Colors[:8]
	assert.ErrorContains(t, bad.Validate(), "colors")

	bad = *g
	bad.Positions = bad.Positions[:8]
	assert.Error(t, bad.Validate())

	assert.Error(t, (&gpu.Geometry{}).Validate())
}
