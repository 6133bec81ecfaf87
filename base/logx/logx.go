// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides various helpful logging functions
// on top of [log/slog], including a user verbosity level and
// a default handler that colors level names when the output
// is a terminal.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text handler writing to w at [UserLevel],
// with level names colored according to the color profile of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lv.String()).Foreground(levelColor(lv)).String())
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to a [NewHandler]
// logger on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// levelVar makes the handler follow later changes to [UserLevel].
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

func levelColor(lv slog.Level) termenv.Color {
	switch {
	case lv >= slog.LevelError:
		return termenv.ANSIRed
	case lv >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lv >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// PrintlnDebug is equivalent to [fmt.Println], but only prints
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}
