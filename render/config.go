// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"time"

	"cogentcore.org/gloom/gpu"
)

// Config has the settings for a [Renderer].
type Config struct {

	// Shaders are the shader source files to build the program from.
	// The stage of each is given by its extension.
	Shaders []string

	// Width and Height are the size of the surface, in pixels.
	Width, Height int

	// ClearColor is the background color.
	ClearColor color.RGBA

	// VSync is whether to wait for vertical sync when presenting.
	VSync bool

	// camera field of view in degrees, and near and far planes
	FOV, Near, Far float32

	// RotateSpeed is the key rotation rate, in radians per second.
	RotateSpeed float32

	// MoveSpeed is the key movement rate, in units per second.
	MoveSpeed float32

	// PointerSensitivity is the rotation per pixel of pointer motion.
	PointerSensitivity float32

	// MaxFPS limits the frame rate if > 0.
	MaxFPS int

	// MaxFrames stops the loop after that many frames if > 0.
	MaxFrames int

	// StatsInterval is how often to log the frame rate, if > 0.
	StatsInterval time.Duration

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	// Geometry is drawn every frame. It must be set.
	Geometry *gpu.Geometry
}

func (c *Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
