// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all driver
// implementations of the system interfaces.
package base

import (
	"sync"

	"github.com/coreyp1/CJelly-sub001/system"
)

// App contains the data and logic common to all implementations
// of [system.App].
type App struct {

	// Nm is the name of the app.
	Nm string

	// Mu protects the window list and other shared state.
	Mu sync.Mutex
}

func (a *App) Name() string {
	return a.Nm
}

func (a *App) SetName(name string) {
	a.Nm = name
}

// AppMulti contains the data and logic common to [system.App]
// implementations that support multiple windows. It is associated
// with a corresponding concrete window type W.
type AppMulti[W system.Window] struct {
	App

	// Windows are the windows associated with the app,
	// in order of creation.
	Windows []W
}

// NWindows returns the number of windows open for this app.
func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

// Window returns the window at the given index,
// or nil for an invalid index.
func (a *AppMulti[W]) Window(win int) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win >= 0 && win < len(a.Windows) {
		return a.Windows[win]
	}
	return nil
}

// WindowByName returns the window with the given name, or nil if not found.
func (a *AppMulti[W]) WindowByName(name string) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.Name() == name {
			return win
		}
	}
	return nil
}

// AddWindow adds the given window to the app's list of windows.
func (a *AppMulti[W]) AddWindow(w W) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = append(a.Windows, w)
}

// RemoveWindow removes the given window from the app's list of windows.
// It does not destroy it; see [system.Window.Destroy] for that.
func (a *AppMulti[W]) RemoveWindow(w system.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for i, win := range a.Windows {
		if system.Window(win) == w {
			a.Windows = append(a.Windows[:i], a.Windows[i+1:]...)
			return
		}
	}
}
