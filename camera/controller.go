// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/gloom/events/key"
	"github.com/go-gl/mathgl/mgl32"
)

// Actions are the camera motions that keys can be bound to.
type Actions int32

const (
	NoAction Actions = iota
	YawLeft
	YawRight
	PitchUp
	PitchDown
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	ActionsN
)

var actionNames = [...]string{"none", "yaw-left", "yaw-right", "pitch-up", "pitch-down",
	"move-forward", "move-back", "move-left", "move-right", "move-up", "move-down"}

func (a Actions) String() string {
	if a < 0 || a >= ActionsN {
		return "none"
	}
	return actionNames[a]
}

// Bindings maps keys to camera actions.
type Bindings map[key.Codes]Actions

// DefaultBindings returns the standard bindings: A and D yaw,
// W and S pitch, the arrow keys move in the view plane and
// Space and LeftShift move up and down.
func DefaultBindings() Bindings {
	return Bindings{
		key.CodeA:          YawLeft,
		key.CodeD:          YawRight,
		key.CodeW:          PitchUp,
		key.CodeS:          PitchDown,
		key.CodeUpArrow:    MoveForward,
		key.CodeDownArrow:  MoveBack,
		key.CodeLeftArrow:  MoveLeft,
		key.CodeRightArrow: MoveRight,
		key.CodeSpacebar:   MoveUp,
		key.CodeLeftShift:  MoveDown,
	}
}

// Controller applies held keys and pointer motion to a [Camera]
// once per frame. Key motion is scaled by the frame time, so that
// it does not depend on the frame rate.
type Controller struct {
	Camera *Camera

	// RotateSpeed is the key rotation rate, in radians per second.
	RotateSpeed float32

	// MoveSpeed is the key movement rate, in units per second.
	MoveSpeed float32

	// PointerSensitivity is the rotation per pixel of pointer motion,
	// in radians. Zero ignores the pointer.
	PointerSensitivity float32

	Bindings Bindings
}

// NewController returns a controller for the given camera with
// the [DefaultBindings].
func NewController(cm *Camera, rotateSpeed, moveSpeed, pointerSensitivity float32) *Controller {
	return &Controller{
		Camera:             cm,
		RotateSpeed:        rotateSpeed,
		MoveSpeed:          moveSpeed,
		PointerSensitivity: pointerSensitivity,
		Bindings:           DefaultBindings(),
	}
}

// Update applies one frame of duration dt seconds, with the given
// held keys and pointer motion in pixels.
func (ct *Controller) Update(keys []key.Codes, dx, dy, dt float32) {
	cm := ct.Camera
	angle := ct.RotateSpeed * dt
	dist := ct.MoveSpeed * dt
	var move mgl32.Vec3
	for _, k := range keys {
		switch ct.Bindings[k] {
		case YawLeft:
			cm.Yaw(-angle)
		case YawRight:
			cm.Yaw(angle)
		case PitchUp:
			cm.Pitch(-angle)
		case PitchDown:
			cm.Pitch(angle)
		case MoveForward:
			move[2] -= dist
		case MoveBack:
			move[2] += dist
		case MoveLeft:
			move[0] -= dist
		case MoveRight:
			move[0] += dist
		case MoveUp:
			move[1] += dist
		case MoveDown:
			move[1] -= dist
		}
	}
	cm.Move(move)
	if ct.PointerSensitivity != 0 {
		cm.Yaw(dx * ct.PointerSensitivity)
		cm.Pitch(dy * ct.PointerSensitivity)
	}
}
