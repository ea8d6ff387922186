// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform capability interfaces for the
// windowing runtime: the [App] that owns the OS connection and creates
// windows, the [Window] that wraps one OS window plus its GPU
// presentation resources, and the [Frame] acquired for each render.
//
// The interfaces here are intentionally narrow: everything the frame
// scheduler in the core package needs, and nothing else. Concrete
// implementations live under system/driver.
package system

import "image"

// App represents the overall OS windowing connection for one process.
// It creates windows and pumps the platform event queue. Exactly one
// App is active at a time, but it is always passed explicitly rather
// than accessed through a process global.
type App interface {

	// Platform returns the platform type, which can be used
	// for conditionalizing behavior.
	Platform() Platforms

	// Name is the overall name of the application.
	Name() string

	// SetName sets the application name.
	SetName(name string)

	// NewWindow returns a new [Window] for this app. A nil opts is
	// valid and means to use the default option values. The window's
	// GPU presentation resources are fully created before it returns.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// PollEvents pumps the platform event queue without blocking.
	// Window event hooks (resize, minimize, close request, refresh)
	// are invoked synchronously from within this call, on the
	// calling goroutine.
	PollEvents()

	// Terminate releases the OS windowing connection. All windows
	// must be destroyed first.
	Terminate()
}

// Platforms are all the supported platforms for system.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin).
	MacOS Platforms = iota

	// Linux is a Linux OS machine.
	Linux

	// Windows is a Microsoft Windows machine.
	Windows

	// Offscreen is a headless driver used for testing
	// and -nogui runs.
	Offscreen
)

func (p Platforms) String() string {
	switch p {
	case MacOS:
		return "MacOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	case Offscreen:
		return "Offscreen"
	}
	return "PlatformsInvalid"
}

// NewWindowOptions are optional arguments to [App.NewWindow].
type NewWindowOptions struct {

	// Title is the initial window title, shown by the window manager.
	Title string

	// Size is the initial window size in raw pixels.
	// A zero size means a driver-chosen default.
	Size image.Point

	// Pos is the initial window position. A zero position
	// lets the window manager place the window.
	Pos image.Point

	// VSync is a hint to use a presentation mode that throttles
	// to the display refresh rate. Drivers may ignore it.
	VSync bool
}

// Fixup fills in unset fields with defaults.
func (o *NewWindowOptions) Fixup() {
	if o.Size.X <= 0 {
		o.Size.X = 1024
	}
	if o.Size.Y <= 0 {
		o.Size.Y = 768
	}
	if o.Title == "" {
		o.Title = "CJelly Window"
	}
}
