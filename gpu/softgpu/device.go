// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softgpu provides a pure Go [gpu.Device] that checks
// shader sources and links programs the way a GLSL driver does,
// and records uniform writes and draws instead of rasterizing.
// It is used for headless runs and for tests.
package softgpu

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/gloom/gpu"
)

// UniformWrite is one recorded uniform write.
type UniformWrite struct {
	Program   uint32
	Location  int32
	Name      string
	Type      gpu.Types
	Transpose bool
	Values    []float32
}

type stage struct {
	typ gpu.ShaderTypes
	*shader
}

type program struct {
	stages   []gpu.ShaderTypes
	uniforms []variable
}

// Device is a software [gpu.Device]. The zero value is not usable;
// use [New].
type Device struct {
	mu       sync.Mutex
	next     uint32
	shaders  map[uint32]*stage
	programs map[uint32]*program
	meshes   map[uint32]gpu.Mesh
	active   uint32

	state  gpu.State
	writes []UniformWrite
	clears []color.RGBA
	draws  []gpu.Mesh
	errs   []string
}

var _ gpu.Device = (*Device)(nil)

// New returns a new software device.
func New() *Device {
	return &Device{
		shaders:  map[uint32]*stage{},
		programs: map[uint32]*program{},
		meshes:   map[uint32]gpu.Mesh{},
	}
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// errorf records a driver error, like glGetError would report.
func (d *Device) errorf(format string, args ...any) {
	d.errs = append(d.errs, fmt.Sprintf(format, args...))
}

func (d *Device) Info() gpu.Info {
	return gpu.Info{Vendor: "Cogent Core", Renderer: "softgpu", Version: "4.1 softgpu", ShadingLanguage: "4.10"}
}

func (d *Device) Configure(st gpu.State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = st
}

func (d *Device) CompileShader(typ gpu.ShaderTypes, src string) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if typ < 0 || typ >= gpu.ShaderTypesN {
		return 0, fmt.Errorf("error: invalid shader type %d", typ)
	}
	sh, err := check(src)
	if err != nil {
		return 0, err
	}
	h := d.handle()
	d.shaders[h] = &stage{typ: typ, shader: sh}
	return h, nil
}

func (d *Device) DeleteShader(shader uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.shaders[shader]; !ok {
		d.errorf("DeleteShader: invalid shader %d", shader)
		return
	}
	delete(d.shaders, shader)
}

func (d *Device) LinkProgram(shaders []uint32) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var stages []*stage
	for _, h := range shaders {
		st, ok := d.shaders[h]
		if !ok {
			return 0, fmt.Errorf("error: invalid shader object %d", h)
		}
		stages = append(stages, st)
	}
	pr, err := link(stages)
	if err != nil {
		return 0, err
	}
	h := d.handle()
	d.programs[h] = pr
	return h, nil
}

// link checks the interfaces between the given stages, in pipeline order.
func link(stages []*stage) (*program, error) {
	var log []string
	if len(stages) == 0 {
		return nil, fmt.Errorf("error: program has no shaders attached")
	}
	stages = slices.Clone(stages)
	slices.SortStableFunc(stages, func(a, b *stage) int { return int(a.typ) - int(b.typ) })
	pr := &program{}
	for i, st := range stages {
		if i > 0 && stages[i-1].typ == st.typ {
			log = append(log, fmt.Sprintf("error: more than one %s shader attached", st.typ))
		}
		if !st.hasMain {
			log = append(log, fmt.Sprintf("error: %s shader lacks `main'", st.typ))
		}
		pr.stages = append(pr.stages, st.typ)
	}
	if stages[0].typ != gpu.VertexShader {
		log = append(log, "error: program lacks a vertex shader")
	}
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		for _, in := range cur.ins {
			j := slices.IndexFunc(prev.outs, func(o variable) bool { return o.name == in.name })
			if j < 0 {
				log = append(log, fmt.Sprintf("error: %s shader input `%s' has no matching output in the previous shader stage", cur.typ, in.name))
				continue
			}
			if out := prev.outs[j]; out.typ != in.typ {
				log = append(log, fmt.Sprintf("error: `%s' declared as type `%s' in %s shader output but type `%s' in %s shader input", in.name, out.typ, prev.typ, in.typ, cur.typ))
			}
		}
	}
	for _, st := range stages {
		for _, u := range st.uniforms {
			j := slices.IndexFunc(pr.uniforms, func(o variable) bool { return o.name == u.name })
			if j < 0 {
				pr.uniforms = append(pr.uniforms, u)
				continue
			}
			if pr.uniforms[j].typ != u.typ {
				log = append(log, fmt.Sprintf("error: uniform `%s' declared as type `%s' and type `%s'", u.name, pr.uniforms[j].typ, u.typ))
			}
		}
	}
	if len(log) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(log, "\n"))
	}
	return pr, nil
}

func (d *Device) DeleteProgram(program uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.programs[program]; !ok {
		d.errorf("DeleteProgram: invalid program %d", program)
		return
	}
	delete(d.programs, program)
	if d.active == program {
		d.active = 0
	}
}

func (d *Device) UseProgram(program uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.programs[program]; !ok && program != 0 {
		d.errorf("UseProgram: invalid program %d", program)
		return
	}
	d.active = program
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	pr, ok := d.programs[program]
	if !ok {
		d.errorf("UniformLocation: invalid program %d", program)
		return gpu.NoLocation
	}
	i := slices.IndexFunc(pr.uniforms, func(u variable) bool { return u.name == name })
	if i < 0 {
		return gpu.NoLocation
	}
	return int32(i)
}

func (d *Device) ProgramUniform(program uint32, location int32, typ gpu.Types, transpose bool, values []float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if location == gpu.NoLocation {
		return
	}
	pr, ok := d.programs[program]
	if !ok {
		d.errorf("ProgramUniform: invalid program %d", program)
		return
	}
	if location < 0 || int(location) >= len(pr.uniforms) {
		d.errorf("ProgramUniform: invalid location %d", location)
		return
	}
	u := pr.uniforms[location]
	if u.typ != typ.String() {
		d.errorf("ProgramUniform: uniform %s is %s, not %s", u.name, u.typ, typ)
		return
	}
	if transpose && !typ.IsMatrix() {
		d.errorf("ProgramUniform: transpose set for %s uniform %s", typ, u.name)
		return
	}
	if len(values) != typ.Len() {
		d.errorf("ProgramUniform: %d values for %s", len(values), typ)
		return
	}
	d.writes = append(d.writes, UniformWrite{
		Program:   program,
		Location:  location,
		Name:      u.name,
		Type:      typ,
		Transpose: transpose,
		Values:    slices.Clone(values),
	})
}

func (d *Device) NewMesh(g *gpu.Geometry) (gpu.Mesh, error) {
	if err := g.Validate(); err != nil {
		return gpu.Mesh{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	m := gpu.Mesh{Handle: d.handle(), Count: int32(len(g.Indices))}
	d.meshes[m.Handle] = m
	return m, nil
}

func (d *Device) Clear(c color.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears = append(d.clears, c)
}

func (d *Device) DrawIndexed(m gpu.Mesh) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active == 0 {
		d.errorf("DrawIndexed: no active program")
		return
	}
	if _, ok := d.meshes[m.Handle]; !ok {
		d.errorf("DrawIndexed: invalid mesh %d", m.Handle)
		return
	}
	d.draws = append(d.draws, m)
}
