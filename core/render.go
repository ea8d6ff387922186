// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/coreyp1/CJelly-sub001/base/errors"
	"github.com/coreyp1/CJelly-sub001/logx"
	"github.com/coreyp1/CJelly-sub001/system"
)

// render performs one begin/execute/present pass for the window.
// It returns whether GPU work was actually submitted, and an error
// only when the failure is fatal to this window; swapchain staleness
// is handled internally by deferring to a recreation pass.
func (w *Window) render(now time.Time) (rendered bool, err error) {
	// deferred swapchain recreation: exactly one pass, before the
	// render graph is invoked again
	if w.state == windowNeedsRecreate {
		w.system.WaitIdle()
		if err := w.system.RecreateSwapchain(); err != nil {
			return false, err
		}
		w.state = windowIdle
		// the resized surface must repaint immediately, bypassing
		// the FPS cap
		w.request = renderRequest(SwapchainRecreate)
		logx.PrintfDebug("core: window %q swapchain recreated\n", w.Name())
	}

	f, err := w.system.BeginFrame()
	if err != nil {
		if errors.Is(err, system.ErrSwapchainOutOfDate) {
			w.state = windowNeedsRecreate
			w.markReason(SwapchainRecreate)
			return false, nil
		}
		return false, err
	}
	w.frameIndex++
	reason := w.request.reason()
	// absent a new event, the next tick is a plain throttled
	// timer render
	w.request = renderRequest(Timer)
	logx.PrintfDebug("core: window %q frame %d reason %v\n", w.Name(), w.frameIndex, reason)

	w.execute(f)

	if err := w.system.SubmitAndPresent(f); err != nil {
		if errors.Is(err, system.ErrSwapchainOutOfDate) {
			w.state = windowNeedsRecreate
			w.markReason(SwapchainRecreate)
			return false, nil
		}
		return false, err
	}
	w.lastRender = now
	w.request = requestClean
	return true, nil
}

// execute records this frame's drawing commands. A render graph
// failure falls back to the minimal clear draw: a broken effect must
// not blank the whole window, and must never abort the tick.
func (w *Window) execute(f system.Frame) {
	if w.graph == nil {
		f.Clear()
		return
	}
	if err := w.graph.Execute(f.Commands(), f.Extent()); err != nil {
		logx.PrintlnWarn("core: render graph failed on window", w.Name(), "error:", err)
		f.Clear()
	}
}

// renderOrClose renders the window and closes it on a fatal error.
// Fatal errors are isolated to the window: the close callback still
// runs (not cancellable), and the caller continues with its other
// windows.
func (w *Window) renderOrClose(now time.Time) bool {
	rendered, err := w.render(now)
	if err != nil {
		logx.PrintlnError("core: fatal render error on window", w.Name(), "error:", err)
		w.Close()
	}
	return rendered
}
