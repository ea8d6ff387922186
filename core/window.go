// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"time"

	"github.com/coreyp1/CJelly-sub001/logx"
	"github.com/coreyp1/CJelly-sub001/system"
)

// Window is the per-window frame scheduling state machine. It owns
// exactly one [system.Window] with its GPU presentation resources, and
// optionally references one [RenderGraph] (not owned) that records the
// actual drawing commands.
//
// A Window is created with [App.NewWindow] and destroyed exactly once,
// either by the user closing it, by [Window.Close], or by app
// shutdown. All methods must be called on the scheduler goroutine,
// except that the platform may invoke the refresh hook (and through it
// [Window.RenderNow]) synchronously from a modal resize loop.
type Window struct {
	app    *App
	system system.Window
	graph  RenderGraph

	policy  RedrawPolicies
	maxFPS  uint32
	request renderRequest
	state   windowStates

	// closing is set while the close callback is being dispatched,
	// so a callback that itself calls Close or CloseReq does not
	// re-enter the callback.
	closing bool

	// frameIndex advances once per successful frame begin;
	// it never decreases and stops advancing once destroyed.
	frameIndex uint64

	// lastRender is when this window last submitted GPU work.
	// It is the timestamp the FPS gate measures against, and it is
	// advanced only by actual submissions, never by skipped ticks.
	lastRender time.Time

	frameFun  func(w *Window) FrameOutcomes
	closeFun  func(w *Window, cancellable bool) bool
	resizeFun func(w *Window, sz image.Point)
}

// RenderGraph records the drawing commands for one frame of a window.
// It is an external collaborator: the scheduler hands it the frame's
// command recording handle and viewport extent, at most once per
// rendered tick per window. A Window never owns its RenderGraph; the
// graph must outlive the window or be detached before release.
type RenderGraph interface {

	// Execute records drawing commands into cmd for a viewport of the
	// given extent. A returned error is recoverable per-frame: the
	// scheduler falls back to a minimal clear draw for this frame
	// rather than aborting the tick.
	Execute(cmd any, extent image.Point) error
}

// Name returns the name of the underlying platform window.
func (w *Window) Name() string {
	return w.system.Name()
}

// System returns the underlying platform window.
func (w *Window) System() system.Window {
	return w.system
}

// FrameIndex returns the number of successfully begun frames.
func (w *Window) FrameIndex() uint64 {
	return w.frameIndex
}

// Dirty reports whether the window has an unconsumed reason to redraw.
func (w *Window) Dirty() bool {
	return w.request.dirty()
}

// IsDestroyed reports whether the window has been destroyed.
func (w *Window) IsDestroyed() bool {
	return w.state == windowDestroyed
}

// RedrawPolicy returns the window's redraw policy.
func (w *Window) RedrawPolicy() RedrawPolicies {
	return w.policy
}

// SetRedrawPolicy sets when the window invokes its frame callback and
// renders. The default is [RedrawOnEvents].
func (w *Window) SetRedrawPolicy(policy RedrawPolicies) {
	w.policy = policy
}

// MaxFPS returns the window's render rate cap (0 = unlimited).
func (w *Window) MaxFPS() uint32 {
	return w.maxFPS
}

// SetMaxFPS caps the window's steady-state render rate. 0 means
// unlimited. Only [Timer] renders are throttled; resize, expose,
// forced, and swapchain-recreate renders always bypass the cap.
func (w *Window) SetMaxFPS(fps uint32) {
	w.maxFPS = fps
}

// SetRenderGraph attaches the render graph for this window. Passing
// nil detaches it, in which case every render is a plain clear.
func (w *Window) SetRenderGraph(graph RenderGraph) {
	w.graph = graph
}

// RenderGraph returns the attached render graph, or nil.
func (w *Window) RenderGraph() RenderGraph {
	return w.graph
}

// SetFrameFunc sets the per-frame callback, invoked according to the
// redraw policy. Its return value tells the scheduler what to do with
// this window for the rest of the tick.
func (w *Window) SetFrameFunc(fun func(w *Window) FrameOutcomes) {
	w.frameFun = fun
}

// SetCloseFunc sets the close callback. It is invoked with
// cancellable=true for user close requests, and cancellable=false on
// fatal window errors and app shutdown. Returning false prevents the
// close, but only when cancellable; the answer to a non-cancellable
// call is ignored.
func (w *Window) SetCloseFunc(fun func(w *Window, cancellable bool) bool) {
	w.closeFun = fun
}

// SetResizeFunc sets the callback invoked after the platform delivers
// a resize, with the new size in raw pixels. The swapchain has not
// been rebuilt yet when it runs; recreation is deferred to the next
// render.
func (w *Window) SetResizeFunc(fun func(w *Window, sz image.Point)) {
	w.resizeFun = fun
}

// MarkDirty marks the window as needing a redraw with reason [Timer],
// which is subject to the FPS cap.
func (w *Window) MarkDirty() {
	w.markReason(Timer)
}

// MarkDirtyWithReason marks the window as needing a redraw with the
// given reason. Reasons never downgrade: a pending higher-priority
// reason is kept.
func (w *Window) MarkDirtyWithReason(reason RenderReasons) {
	w.markReason(reason)
}

// ClearDirty drops any pending redraw request.
func (w *Window) ClearDirty() {
	if w.state == windowDestroyed {
		return
	}
	w.request = requestClean
}

func (w *Window) markReason(reason RenderReasons) {
	if w.state == windowDestroyed {
		return
	}
	if w.request.dirty() && w.request.reason() >= reason {
		return
	}
	w.request = renderRequest(reason)
}

// handleResize is the platform resize hook. Resize events can arrive
// at high frequency during a drag, so no GPU resources are rebuilt
// here: the window only records that its swapchain is stale and that
// an immediate repaint is owed. Recreation happens lazily at the start
// of the next render, exactly once.
func (w *Window) handleResize(sz image.Point) {
	if w.state == windowDestroyed {
		return
	}
	w.state = windowNeedsRecreate
	w.markReason(Resize)
	logx.PrintfDebug("core: window %q resize to %v\n", w.Name(), sz)
	if w.resizeFun != nil {
		w.resizeFun(w, sz)
	}
}

// handleMinimize is the platform minimize/restore hook. The cached
// minimize flag itself lives on the platform window; a restore owes
// the window a repaint of its newly visible contents.
func (w *Window) handleMinimize(minimized bool) {
	if w.state == windowDestroyed {
		return
	}
	if !minimized {
		w.markReason(Expose)
	}
}

// CloseReq requests that the window be closed, which the close
// callback may prevent. This is the path taken when the user asks the
// window to close.
func (w *Window) CloseReq() {
	if w.state == windowDestroyed || w.closing {
		return
	}
	w.closing = true
	if w.closeFun != nil && !w.closeFun(w, true) {
		w.closing = false
		return
	}
	w.destroy()
}

// Close closes the window unconditionally. The close callback, if
// any, still runs with cancellable=false, but its answer cannot
// prevent the close. Safe to call from within any window callback,
// including this window's own.
func (w *Window) Close() {
	if w.state == windowDestroyed || w.closing {
		return
	}
	w.closing = true
	if w.closeFun != nil {
		w.closeFun(w, false)
	}
	w.destroy()
}

// destroy releases the window exactly once: unregister from the app,
// wait for outstanding GPU work, then release platform and GPU
// resources. Re-entrant calls are no-ops because the terminal state is
// set before anything else happens.
func (w *Window) destroy() {
	if w.state == windowDestroyed {
		return
	}
	w.state = windowDestroyed
	w.request = requestClean
	w.app.removeWindow(w)
	w.system.WaitIdle()
	w.system.Destroy()
	logx.PrintfDebug("core: window %q destroyed\n", w.Name())
}

// renderDecision is the outcome of the pure per-tick redraw decision
// for one window.
type renderDecision struct {
	// callFrame is whether to invoke the user frame callback.
	callFrame bool

	// render is whether to actually submit GPU work.
	render bool
}

// decideRender is the pure redraw/FPS decision function. It is
// evaluated twice per tick per window: once before the frame callback
// to decide whether to invoke it, and once after, because the callback
// itself may mark the window dirty.
func decideRender(policy RedrawPolicies, req renderRequest, maxFPS uint32,
	lastRender, now time.Time, minimized, runWhenMinimized bool) renderDecision {
	var d renderDecision
	switch policy {
	case RedrawAlways:
		d.callFrame = true
		d.render = true
	case RedrawOnDirty:
		d.callFrame = req.dirty()
		d.render = req.dirty()
	case RedrawOnEvents:
		d.callFrame = true
		d.render = req.dirty()
	}
	// only steady-state timer renders are throttled; a resize or
	// expose must be visible immediately
	if d.render && maxFPS > 0 && req.reason() == Timer {
		minInterval := time.Second / time.Duration(maxFPS)
		if now.Sub(lastRender) < minInterval {
			d.render = false
		}
	}
	if minimized && !runWhenMinimized {
		d.render = false
	}
	return d
}

func (w *Window) decide(now time.Time) renderDecision {
	return decideRender(w.policy, w.request, w.maxFPS, w.lastRender, now,
		w.system.IsMinimized(), w.app.config.RunWhenMinimized)
}

// RenderNow renders one frame immediately, outside the normal
// scheduler tick. It exists for platform modal resize/move loops that
// suspend the normal event pump but still need the window to repaint;
// the platform invokes it through the refresh hook. It shares the
// regular decision and render primitives, including the
// recreate-before-render ordering.
func (w *Window) RenderNow() {
	if w.state == windowDestroyed {
		return
	}
	w.markReason(Expose)
	now := time.Now()
	d := w.decide(now)
	if d.callFrame && w.frameFun != nil {
		outcome := w.frameFun(w)
		if w.state == windowDestroyed {
			return
		}
		switch outcome {
		case CloseWindow:
			w.Close()
			return
		case StopLoop:
			w.app.RequestStop()
		case Skip:
			w.request = requestClean
			return
		}
		d = w.decide(now)
	}
	if !d.render {
		return
	}
	if w.renderOrClose(now) && w.app.config.EnableFPSProfiling {
		w.app.stats.recordRender()
	}
}
