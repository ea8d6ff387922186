// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements the system interfaces without any OS
// windowing or GPU connection. It exists for tests and headless runs:
// windows render into in-memory images, platform events are injected
// programmatically, and presentation failures can be scripted.
package offscreen

import (
	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/base"
)

// App is the [system.App] implementation for offscreen operation.
type App struct {
	base.AppMulti[*Window]

	// pending holds injected event thunks delivered by the next
	// [App.PollEvents] call, preserving the "events arrive at the
	// start of a tick" ordering of the real drivers.
	pending []func()
}

// NewApp returns a new offscreen App.
func NewApp(name string) *App {
	a := &App{}
	a.Nm = name
	return a
}

func (a *App) Platform() system.Platforms {
	return system.Offscreen
}

// Inject queues a function to run inside the next [App.PollEvents]
// call, the way a real platform delivers events at the start of a
// tick. Window event helpers ([Window.SendResize] and friends) can
// also be called directly for synchronous delivery.
func (a *App) Inject(fun func()) {
	a.Mu.Lock()
	a.pending = append(a.pending, fun)
	a.Mu.Unlock()
}

// PollEvents delivers all injected events in order.
func (a *App) PollEvents() {
	a.Mu.Lock()
	pending := a.pending
	a.pending = nil
	a.Mu.Unlock()
	for _, fun := range pending {
		fun()
	}
}

func (a *App) Terminate() {}
