// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"image/color"
	"slices"

	"cogentcore.org/gloom/gpu"
)

// State returns the last configured state.
func (d *Device) State() gpu.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Shaders returns the number of live shader objects.
func (d *Device) Shaders() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.shaders)
}

// Programs returns the number of live programs.
func (d *Device) Programs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.programs)
}

// Active returns the active program, or 0.
func (d *Device) Active() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Writes returns all recorded uniform writes, oldest first.
func (d *Device) Writes() []UniformWrite {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.writes)
}

// LastWrite returns the most recent write to the named uniform.
func (d *Device) LastWrite(name string) (UniformWrite, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.writes) - 1; i >= 0; i-- {
		if d.writes[i].Name == name {
			return d.writes[i], true
		}
	}
	return UniformWrite{}, false
}

// Clears returns the colors of all recorded clears.
func (d *Device) Clears() []color.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.clears)
}

// Draws returns all recorded draws.
func (d *Device) Draws() []gpu.Mesh {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.draws)
}

// Errors returns all recorded driver errors, which are
// invalid calls that a real driver would flag.
func (d *Device) Errors() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.errs)
}
