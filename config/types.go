// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Duration is a [time.Duration] that is read and written
// as text, like "100ms".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Set sets the duration from text; it implements [flag.Value].
func (d *Duration) Set(s string) error {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.Set(string(text))
}

// Color is a color that is read and written as hex text,
// like "#ff8000" or "#ff800080".
type Color color.RGBA

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Set sets the color from hex text; it implements [flag.Value].
func (c *Color) Set(s string) error {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b, a uint8 = 0, 0, 0, 255
	var err error
	switch len(h) {
	case 6:
		_, err = fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(h, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("need 6 or 8 hex digits")
	}
	if err != nil {
		return fmt.Errorf("config.Color: invalid color %q: %w", s, err)
	}
	*c = Color{R: r, G: g, B: b, A: a}
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}
