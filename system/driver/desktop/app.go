// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the system interfaces on desktop
// platforms, using glfw for windowing and WebGPU for presentation.
package desktop

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/coreyp1/CJelly-sub001/base/errors"
	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/base"
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

// App is the [system.App] implementation for desktop platforms.
type App struct {
	base.AppMulti[*Window]
}

// NewApp initializes glfw and returns the desktop App.
// It must be called on the main goroutine.
func NewApp(name string) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	a := &App{}
	a.Nm = name
	return a, nil
}

func (a *App) Platform() system.Platforms {
	switch runtime.GOOS {
	case "darwin":
		return system.MacOS
	case "windows":
		return system.Windows
	default:
		return system.Linux
	}
}

// PollEvents pumps the glfw event queue. Window hooks fire
// synchronously from inside this call.
func (a *App) PollEvents() {
	glfw.PollEvents()
}

// Terminate shuts glfw down. All windows must be destroyed first.
func (a *App) Terminate() {
	glfw.Terminate()
}
