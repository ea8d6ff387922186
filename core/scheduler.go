// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/coreyp1/CJelly-sub001/logx"
)

// RunOnce executes one scheduler tick: poll platform events, then
// service every live window in registration order, applying the
// redraw decision, dispatching frame callbacks, and rendering. It
// reports whether the loop should continue; false means a stop was
// requested or no windows remain.
//
// Window failures are isolated: one window's fatal GPU error closes
// that window and the remaining windows are still serviced in the
// same tick.
func (a *App) RunOnce() bool {
	a.system.PollEvents()
	if a.stop.Load() || a.NWindows() == 0 {
		return false
	}
	now := time.Now()
	// iterate over a snapshot: callbacks may close this window,
	// sibling windows, or create new ones mid-tick
	for _, w := range a.Windows() {
		a.tickWindow(w, now)
	}
	return !a.stop.Load() && a.NWindows() > 0
}

// tickWindow applies the per-window redraw decision and acts on the
// frame callback's outcome.
func (a *App) tickWindow(w *Window, now time.Time) {
	if w.state == windowDestroyed {
		// closed earlier in this same tick by a sibling's callback
		return
	}
	d := w.decide(now)
	outcome := Continue
	if d.callFrame && w.frameFun != nil {
		outcome = w.frameFun(w)
	}
	if w.state == windowDestroyed {
		// the callback closed its own window
		return
	}
	switch outcome {
	case CloseWindow:
		w.Close()
		return
	case Skip:
		// the redraw request is consumed even though nothing is
		// submitted; lastRender is deliberately not advanced, so a
		// skipped window is not further starved by the FPS gate
		w.request = requestClean
		return
	case StopLoop:
		a.RequestStop()
		// this window still finishes its render for the current tick
	}
	// the callback may have marked the window dirty or cleared it;
	// the second evaluation decides whether to actually render
	d = w.decide(now)
	if !d.render {
		return
	}
	if w.renderOrClose(now) && a.config.EnableFPSProfiling {
		a.stats.recordRender()
	}
}

// Run executes scheduler ticks with the app's current configuration
// until a stop is requested or no windows remain, then closes any
// remaining windows. See [App.RunWithConfig].
func (a *App) Run() {
	a.RunWithConfig(a.config)
}

// RunWithConfig executes scheduler ticks with the given configuration
// until a stop is requested or no windows remain. When a target tick
// rate is configured and the presentation mode is not already
// throttling via vertical sync, it sleeps out the remainder of each
// tick interval. On exit, remaining windows are closed; their close
// callbacks run without the option to cancel.
func (a *App) RunWithConfig(cfg Config) {
	a.config = cfg
	if cfg.EnableFPSProfiling {
		a.stats.start()
	}
	var interval time.Duration
	if cfg.TargetFPS > 0 {
		interval = time.Second / time.Duration(cfg.TargetFPS)
	}
	for {
		start := time.Now()
		cont := a.RunOnce()
		if cfg.EnableFPSProfiling {
			a.stats.recordTick(time.Since(start))
		}
		if !cont {
			break
		}
		if interval > 0 && !cfg.VSync {
			if d := interval - time.Since(start); d > 0 {
				time.Sleep(d)
			}
		}
	}
	a.shutdown()
	if cfg.EnableFPSProfiling {
		logx.PrintlnInfo(a.stats.Report())
	}
}

// shutdown closes all remaining windows. This is the application
// shutdown path: close callbacks run with cancellable=false and
// cannot prevent the close.
func (a *App) shutdown() {
	for _, w := range a.Windows() {
		w.Close()
	}
}
