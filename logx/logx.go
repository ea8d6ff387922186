// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging and printing for the
// windowing runtime, built on [log/slog]. Messages are only
// printed if their level is at or above [UserLevel], which makes
// it easy to leave detailed event and render tracing in place
// and enable it only when debugging.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected for
// which logging and printing messages should be shown. Messages at
// levels at or above this level are shown.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options, evaluated in the order: vv ([slog.LevelDebug]),
// v ([slog.LevelInfo]), q ([slog.LevelError]), with [slog.LevelWarn]
// as the default.
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

// PrintlnDebug prints the given arguments with [fmt.Println]
// if [UserLevel] is [slog.LevelDebug] or lower.
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintfDebug prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is [slog.LevelDebug] or lower.
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}

// PrintlnInfo prints the given arguments with [fmt.Println]
// if [UserLevel] is [slog.LevelInfo] or lower.
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintfInfo prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is [slog.LevelInfo] or lower.
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}

// PrintlnWarn prints the given arguments with [fmt.Println]
// if [UserLevel] is [slog.LevelWarn] or lower.
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}

// PrintlnError prints the given arguments with [fmt.Println]
// if [UserLevel] is [slog.LevelError] or lower.
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Println(a...)
	}
}
