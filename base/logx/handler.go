// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default; termenv drops the escape codes
// automatically when the output is not a terminal.
var UseColor = true

// NewHandler returns a new text [slog.Handler] writing to w that
// only shows messages at or above [UserLevel] and colors the level
// names when [UseColor] is on.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if ok && UseColor {
					a.Value = slog.StringValue(LevelString(out, lvl))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to a [NewHandler]
// logger writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelString returns the name of the given level,
// colored for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
