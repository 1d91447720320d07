// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/gloom/base/errors"
	"cogentcore.org/gloom/base/fsx"
	"cogentcore.org/gloom/base/iox"
	_ "cogentcore.org/gloom/base/iox/tomlx"
	_ "cogentcore.org/gloom/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// Load returns the config given by the default values, then the
// config file, then the given command line arguments (without the
// program name), each overriding the previous ones. The config file
// is the one given by -config, or else the first of [DefaultFiles]
// that exists. The returned config is validated.
func Load(args []string) (*Config, error) {
	// first pass: only to find the config file
	pre := Default()
	pfs := pre.FlagSet(io.Discard)
	if err := pfs.Parse(args); err != nil {
		return nil, err
	}

	c := Default()
	file, err := findFile(pre.File)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := Open(c, file); err != nil {
			return nil, err
		}
		slog.Info("config: read config file", "file", file)
	}

	fs := c.FlagSet(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments %q", fs.Args())
	}
	c.File = file
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// findFile returns the config file to read: the given one with a
// leading ~ expanded, or else the first existing default, or "".
func findFile(file string) (string, error) {
	if file != "" {
		f, err := homedir.Expand(file)
		if err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return f, nil
	}
	if f := fsx.FirstExisting(DefaultFiles...); f != "" {
		return f, nil
	}
	uf, err := homedir.Expand(UserFile)
	if err != nil {
		return "", nil // no home directory
	}
	if errors.Ignore1(fsx.FileExists(uf)) {
		return uf, nil
	}
	return "", nil
}

// Open reads the given TOML or YAML config file into c.
func Open(c *Config, file string) error {
	if err := iox.OpenAny(c, file); err != nil {
		return fmt.Errorf("config: failed to read %s: %w", file, err)
	}
	return nil
}

// Usage writes the command line usage to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "usage: gloom [flags]\n\nflags:\n")
	fs := Default().FlagSet(w)
	fs.PrintDefaults()
}

// FlagSet returns a new flag set with flags that set the
// fields of c, writing errors and usage to w.
func (c *Config) FlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gloom", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&c.File, "config", c.File, "the config file to read (TOML or YAML)")
	fs.StringVar(&c.Title, "title", c.Title, "the window title")
	fs.IntVar(&c.Width, "width", c.Width, "the window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "the window height in pixels")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "whether to wait for vertical sync")
	fs.IntVar(&c.MaxFPS, "max-fps", c.MaxFPS, "the maximum frame rate, or 0 for none")
	fs.Var((*stringList)(&c.Shaders), "shaders", "comma separated shader source files")
	fs.StringVar(&c.Scene, "scene", c.Scene, "the scene file to draw (TOML or YAML)")
	fs.Var((*float32Value)(&c.RotateSpeed), "rotate-speed", "key rotation rate in radians per second")
	fs.Var((*float32Value)(&c.MoveSpeed), "move-speed", "key movement rate in units per second")
	fs.Var((*float32Value)(&c.PointerSensitivity), "pointer-sensitivity", "rotation per pixel of pointer motion in radians")
	fs.BoolVar(&c.GrabCursor, "grab-cursor", c.GrabCursor, "whether to hide and capture the cursor")
	fs.Var((*float32Value)(&c.FOV), "fov", "camera field of view in degrees")
	fs.Var((*float32Value)(&c.Near), "near", "camera near plane")
	fs.Var((*float32Value)(&c.Far), "far", "camera far plane")
	fs.Var(&c.ClearColor, "clear-color", "the background color as hex, like #202020")
	fs.Var(&c.StatsInterval, "stats-interval", "how often to log the frame rate")
	fs.Var(&c.PollInterval, "poll-interval", "the longest time the event loop blocks")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "render offscreen with the software device, without a window")
	fs.IntVar(&c.Frames, "frames", c.Frames, "the number of frames to render before exiting, or 0 for no limit")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "print info level log messages")
	fs.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "print debug level log messages")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "print only error level log messages")
	return fs
}

// stringList is a comma separated list flag.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	var l []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			l = append(l, p)
		}
	}
	*s = l
	return nil
}

type float32Value float32

func (f *float32Value) String() string {
	if f == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}
