// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"cogentcore.org/gloom/base/errors"
)

// ShaderBuilder builds one [Program] from a set of shader stages.
// Each stage is compiled as soon as it is attached, so that a failure
// reports the specific file and stage. It is a value type: the
// attach methods return a new builder with the stage added, so
// calls can be chained, and [ShaderBuilder.Link] is the only way to
// get a [Program]:
//
//	prog, err := gpu.NewShaderBuilder(dev).
//		AttachFile("shaders/simple.vert").
//		AttachFile("shaders/simple.frag").
//		Link()
//
// The first error is kept: later stages are not compiled and Link
// returns it without linking. Builders derived from the same
// [NewShaderBuilder] call share one build: every stage any of them
// compiles is deleted exactly once, when the first of them links or
// fails. After that, all of them return the failure, or
// [ErrBuilderConsumed] after a successful link.
type ShaderBuilder struct {
	dev    Device
	stages []stage
	err    error
	build  *buildState
}

var errNoDevice = errors.New("gpu: ShaderBuilder has no Device (use NewShaderBuilder)")

// stage is one compiled shader stage.
type stage struct {
	typ    ShaderTypes
	path   string
	handle uint32
}

// buildState is shared by all of the builder values of one build.
// It owns every stage handle compiled in the build.
type buildState struct {
	dev     Device
	handles []uint32
	done    bool
	err     error
}

// finish deletes all of the compiled stages and ends the build
// with the given error, which is nil after a successful link.
func (bs *buildState) finish(err error) {
	for _, h := range bs.handles {
		bs.dev.DeleteShader(h)
	}
	bs.handles = nil
	bs.done = true
	bs.err = err
}

// NewShaderBuilder returns a new empty [ShaderBuilder] for the given device.
func NewShaderBuilder(dev Device) ShaderBuilder {
	return ShaderBuilder{dev: dev, build: &buildState{dev: dev}}
}

// Err returns the first error encountered so far, if any.
func (b ShaderBuilder) Err() error {
	switch {
	case b.build == nil:
		return b.err
	case !b.build.done:
		return nil
	case b.build.err != nil:
		return b.build.err
	default:
		return ErrBuilderConsumed
	}
}

// AttachFile reads and compiles the shader source in the given file,
// with the stage type inferred from the file extension
// (see [ShaderTypeFromExt]).
func (b ShaderBuilder) AttachFile(path string) ShaderBuilder {
	if b.Err() != nil {
		return b
	}
	typ, err := ShaderTypeFromExt(path)
	if err != nil {
		return b.fail(err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return b.fail(errors.Errorf("gpu: failed to read %s shader source: %w", typ, err))
	}
	return b.compile(string(src), typ, path)
}

// CompileSource compiles the given shader source text as
// a stage of the given type.
func (b ShaderBuilder) CompileSource(src string, typ ShaderTypes) ShaderBuilder {
	if b.Err() != nil {
		return b
	}
	return b.compile(src, typ, "")
}

func (b ShaderBuilder) compile(src string, typ ShaderTypes, path string) ShaderBuilder {
	if b.dev == nil || b.build == nil {
		return b.fail(errNoDevice)
	}
	if typ < 0 || typ >= ShaderTypesN {
		return b.fail(fmt.Errorf("gpu: invalid shader type %d", typ))
	}
	handle, err := b.dev.CompileShader(typ, src)
	if err != nil {
		return b.fail(&CompileError{Path: path, Type: typ, Log: err.Error()})
	}
	b.build.handles = append(b.build.handles, handle)
	slog.Debug("gpu: compiled shader", "type", typ, "path", path)
	nb := b
	nb.stages = append(slices.Clip(b.stages), stage{typ: typ, path: path, handle: handle})
	return nb
}

// fail returns a builder holding the given error, after
// ending the build and releasing its stages.
func (b ShaderBuilder) fail(err error) ShaderBuilder {
	nb := b
	nb.stages = nil
	if b.build == nil {
		nb.err = err
		return nb
	}
	b.build.finish(err)
	return nb
}

// Link links all of the attached stages into a new [Program].
// All of the stages compiled in the build are released in all
// cases. Link consumes the builder and every builder derived
// from the same [NewShaderBuilder] call.
func (b ShaderBuilder) Link() (*Program, error) {
	if b.build == nil {
		if b.err != nil {
			return nil, b.err
		}
		return nil, errNoDevice
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	if len(b.stages) == 0 {
		b.build.finish(nil)
		return nil, ErrNoStages
	}
	types := make([]ShaderTypes, len(b.stages))
	handles := make([]uint32, len(b.stages))
	for i, st := range b.stages {
		types[i] = st.typ
		handles[i] = st.handle
	}
	handle, err := b.dev.LinkProgram(handles)
	if err != nil {
		lerr := &LinkError{Stages: types, Log: err.Error()}
		b.build.finish(lerr)
		return nil, lerr
	}
	b.build.finish(nil)
	slog.Debug("gpu: linked program", "handle", handle, "stages", types)
	return &Program{dev: b.dev, handle: handle, stages: types}, nil
}
