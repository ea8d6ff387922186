// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the per-window frame scheduler and
// swapchain lifecycle state machine of the windowing runtime: the
// logic that decides, every tick, for every live window, whether to
// invoke the user's frame callback, whether to actually submit GPU
// work, whether presentation resources must be rebuilt first, and
// whether to close the window or stop the loop.
//
// The platform and GPU specifics live behind the interfaces in the
// system package; concrete drivers are under system/driver.
package core

import (
	"sync"
	"sync/atomic"

	"github.com/coreyp1/CJelly-sub001/system"
)

// App is the process context for the windowing runtime: the registry
// of live windows plus the scheduler. There is no package-global
// current app; everything operates on an explicit *App.
type App struct {
	system system.App
	config Config
	stats  Stats

	// mu protects the window registry. The scheduler itself is
	// single-goroutine, but registry lookups are allowed from
	// platform callbacks.
	mu sync.Mutex

	// windows is the list of live windows in registration order,
	// which is also the order windows are serviced within a tick.
	windows []*Window

	// handles indexes live windows by their platform window,
	// kept consistent with the list at all times.
	handles map[system.Window]*Window

	stop atomic.Bool
}

// NewApp returns a new App driving the given platform connection,
// with the default [Config].
func NewApp(sys system.App) *App {
	return &App{
		system:  sys,
		config:  DefaultConfig(),
		handles: map[system.Window]*Window{},
	}
}

// System returns the underlying platform connection.
func (a *App) System() system.App {
	return a.system
}

// Config returns the current scheduler configuration.
func (a *App) Config() Config {
	return a.config
}

// SetConfig sets the scheduler configuration. It takes effect at the
// next tick.
func (a *App) SetConfig(cfg Config) {
	a.config = cfg
}

// Stats returns the accumulated scheduling statistics. They are only
// collected when [Config.EnableFPSProfiling] is set.
func (a *App) Stats() *Stats {
	return &a.stats
}

// NewWindow creates a new window with its platform and GPU resources,
// registers it, and returns it. Registration is atomic: on any
// failure, nothing is left behind in the registry. The first tick
// after creation always renders the window.
func (a *App) NewWindow(opts *system.NewWindowOptions) (*Window, error) {
	sw, err := a.system.NewWindow(opts)
	if err != nil {
		return nil, err
	}
	w := &Window{
		app:     a,
		system:  sw,
		policy:  RedrawOnEvents,
		request: renderRequest(Forced),
		state:   windowIdle,
	}
	sw.SetResizeFunc(w.handleResize)
	sw.SetMinimizeFunc(w.handleMinimize)
	sw.SetCloseRequestFunc(w.CloseReq)
	sw.SetRefreshFunc(w.RenderNow)

	a.mu.Lock()
	a.windows = append(a.windows, w)
	a.handles[sw] = w
	a.mu.Unlock()
	return w, nil
}

// removeWindow unregisters the window from both the ordered list and
// the handle index, under one lock so they can never disagree.
func (a *App) removeWindow(w *Window) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, win := range a.windows {
		if win == w {
			a.windows = append(a.windows[:i], a.windows[i+1:]...)
			break
		}
	}
	delete(a.handles, w.system)
}

// NWindows returns the number of live windows.
func (a *App) NWindows() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.windows)
}

// Windows returns a copy of the live window list in registration
// order. The copy is what makes closing a window from inside a
// callback safe while the scheduler is iterating.
func (a *App) Windows() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	ws := make([]*Window, len(a.windows))
	copy(ws, a.windows)
	return ws
}

// WindowByHandle returns the window owning the given platform window,
// or nil if there is none.
func (a *App) WindowByHandle(sw system.Window) *Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.handles[sw]
}

// WindowByName returns the window with the given name, or nil.
func (a *App) WindowByName(name string) *Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, w := range a.windows {
		if w.system.Name() == name {
			return w
		}
	}
	return nil
}

// RequestStop asks the scheduler to stop. It is cooperative: an
// in-progress tick finishes its windows first, and the stop is
// honored at the tick boundary. Safe to call from any goroutine.
func (a *App) RequestStop() {
	a.stop.Store(true)
}

// StopRequested reports whether a global stop has been requested.
func (a *App) StopRequested() bool {
	return a.stop.Load()
}
