// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of gloom, which is read
// from defaults, then a TOML or YAML file, then command line flags.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/gloom/base/logx"
	"cogentcore.org/gloom/base/reflectx"
	"cogentcore.org/gloom/events/key"
	"cogentcore.org/gloom/gpu"
	"cogentcore.org/gloom/render"
	"github.com/chewxy/math32"
)

// DefaultFiles are the config files looked for in the current
// directory when no file is given with -config.
var DefaultFiles = []string{"gloom.toml", "gloom.yaml", "gloom.yml"}

// UserFile is the per-user config file, read when no file is given
// with -config and none of the [DefaultFiles] exist.
var UserFile = "~/.config/gloom/gloom.toml"

// Config is the main config struct that contains all of
// the configuration options for gloom.
type Config struct {

	// the config file to read, if any
	File string `toml:"-" yaml:"-"`

	// the window title
	Title string `toml:"title" yaml:"title" default:"Gloom"`

	// the window width in pixels
	Width int `toml:"width" yaml:"width" default:"800"`

	// the window height in pixels
	Height int `toml:"height" yaml:"height" default:"600"`

	// whether to wait for vertical sync when presenting frames
	VSync bool `toml:"vsync" yaml:"vsync" default:"true"`

	// the maximum frame rate, or 0 for none; see [Config.FrameLimit]
	MaxFPS int `toml:"max_fps" yaml:"max_fps" default:"0"`

	// the shader source files; the stage is given by the extension
	Shaders []string `toml:"shaders" yaml:"shaders" default:"shaders/simple.frag,shaders/simple.vert"`

	// the scene file to draw (TOML or YAML), or "" for the built-in triangles
	Scene string `toml:"scene" yaml:"scene"`

	// key rotation rate in radians per second
	RotateSpeed float32 `toml:"rotate_speed" yaml:"rotate_speed" default:"0.6"`

	// key movement rate in units per second
	MoveSpeed float32 `toml:"move_speed" yaml:"move_speed" default:"1"`

	// rotation per pixel of pointer motion in radians; 0 ignores the pointer
	PointerSensitivity float32 `toml:"pointer_sensitivity" yaml:"pointer_sensitivity" default:"0"`

	// whether to hide and capture the cursor
	GrabCursor bool `toml:"grab_cursor" yaml:"grab_cursor" default:"false"`

	// camera field of view in degrees
	FOV float32 `toml:"fov" yaml:"fov" default:"120"`

	// camera near plane
	Near float32 `toml:"near" yaml:"near" default:"1"`

	// camera far plane
	Far float32 `toml:"far" yaml:"far" default:"100"`

	// the background color
	ClearColor Color `toml:"clear_color" yaml:"clear_color" default:"#000000ff"`

	// the keys that quit
	QuitKeys []key.Codes `toml:"quit_keys" yaml:"quit_keys" default:"Escape,Q"`

	// how often to log the frame rate
	StatsInterval Duration `toml:"stats_interval" yaml:"stats_interval" default:"10s"`

	// the longest time the event loop blocks between health checks
	PollInterval Duration `toml:"poll_interval" yaml:"poll_interval" default:"100ms"`

	// whether to render offscreen with the software device, without a window
	Headless bool `toml:"headless" yaml:"headless"`

	// the number of frames to render before exiting, or 0 for no limit
	Frames int `toml:"frames" yaml:"frames"`

	// whether to print info level log messages
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// whether to print debug level log messages
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// whether to print only error level log messages
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Default returns a new config with the default values.
func Default() *Config {
	c := &Config{}
	if err := reflectx.SetFromDefaultTags(c); err != nil {
		panic(err) // tags are constant
	}
	return c
}

// LogLevel returns the log level given by the verbosity flags.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// FrameLimit returns the frame rate limit to use: MaxFPS, or 240
// when vsync is off and MaxFPS is 0, so that frames are never
// rendered faster than that.
func (c *Config) FrameLimit() int {
	if c.MaxFPS == 0 && !c.VSync {
		return 240
	}
	return c.MaxFPS
}

// Validate returns an error if the config cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	case len(c.Shaders) == 0:
		return fmt.Errorf("config: no shaders given")
	case c.MaxFPS < 0:
		return fmt.Errorf("config: max_fps must not be negative, not %d", c.MaxFPS)
	case c.Frames < 0:
		return fmt.Errorf("config: frames must not be negative, not %d", c.Frames)
	case c.Headless && c.Frames == 0:
		return fmt.Errorf("config: headless mode needs a frame count (-frames)")
	case c.PollInterval <= 0:
		return fmt.Errorf("config: poll_interval must be positive, not %v", c.PollInterval)
	}
	for name, v := range map[string]float32{"fov": c.FOV, "near": c.Near, "far": c.Far,
		"rotate_speed": c.RotateSpeed, "move_speed": c.MoveSpeed, "pointer_sensitivity": c.PointerSensitivity} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("config: %s must be finite, not %v", name, v)
		}
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("config: fov must be between 0 and 180 degrees, not %v", c.FOV)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("config: need 0 < near < far, not near %v and far %v", c.Near, c.Far)
	}
	return nil
}

// Render returns the render config for drawing the given geometry.
func (c *Config) Render(g *gpu.Geometry) render.Config {
	return render.Config{
		Shaders:            c.Shaders,
		Width:              c.Width,
		Height:             c.Height,
		ClearColor:         color.RGBA(c.ClearColor),
		VSync:              c.VSync,
		FOV:                c.FOV,
		Near:               c.Near,
		Far:                c.Far,
		RotateSpeed:        c.RotateSpeed,
		MoveSpeed:          c.MoveSpeed,
		PointerSensitivity: c.PointerSensitivity,
		MaxFPS:             c.FrameLimit(),
		MaxFrames:          c.Frames,
		StatsInterval:      time.Duration(c.StatsInterval),
		Now:                time.Now,
		Geometry:           g,
	}
}
