// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// RenderReasons classifies why a window wants to redraw. The reason
// decides whether the per-window FPS cap applies: only steady-state
// [Timer] renders are throttled; all other reasons must be visible
// immediately and bypass the cap.
type RenderReasons int32

const (
	// Timer is a steady-state redraw with no triggering event.
	// It is the only reason subject to the FPS cap.
	Timer RenderReasons = iota

	// Resize means the window was resized and must repaint at the
	// new size.
	Resize

	// Expose means previously obscured window contents became
	// visible and must be repainted.
	Expose

	// Forced is an explicit request to render regardless of
	// throttling, for example on the first frame after creation.
	Forced

	// SwapchainRecreate means the swapchain was just rebuilt and the
	// new surface must be painted before anything else is shown.
	SwapchainRecreate
)

func (rr RenderReasons) String() string {
	switch rr {
	case Timer:
		return "Timer"
	case Resize:
		return "Resize"
	case Expose:
		return "Expose"
	case Forced:
		return "Forced"
	case SwapchainRecreate:
		return "SwapchainRecreate"
	}
	return "RenderReasonsInvalid"
}

// renderRequest is the collapsed dirty flag plus pending render reason
// of a window, so that dirty-with-no-reason is unrepresentable.
// requestClean means the window has no unconsumed reason to redraw;
// any other value is the pending [RenderReasons].
type renderRequest int32

const requestClean renderRequest = -1

func (rr renderRequest) dirty() bool {
	return rr != requestClean
}

// reason returns the pending render reason. A clean window reports
// [Timer]: absent any event, the only thing a redraw could be is a
// throttled timer render.
func (rr renderRequest) reason() RenderReasons {
	if rr == requestClean {
		return Timer
	}
	return RenderReasons(rr)
}

// RedrawPolicies determines when a window invokes its frame callback
// and renders.
type RedrawPolicies int32

const (
	// RedrawAlways invokes the frame callback every tick and renders
	// every tick, subject only to the FPS cap.
	RedrawAlways RedrawPolicies = iota

	// RedrawOnDirty invokes the frame callback and renders only when
	// the window is dirty. This policy exists for static content
	// where the callback itself may be expensive.
	RedrawOnDirty

	// RedrawOnEvents invokes the frame callback every tick, so user
	// code can itself decide to mark the window dirty, but renders
	// only when the window is dirty.
	RedrawOnEvents
)

func (rp RedrawPolicies) String() string {
	switch rp {
	case RedrawAlways:
		return "RedrawAlways"
	case RedrawOnDirty:
		return "RedrawOnDirty"
	case RedrawOnEvents:
		return "RedrawOnEvents"
	}
	return "RedrawPoliciesInvalid"
}

// FrameOutcomes is what a frame callback tells the scheduler to do
// with its window for the rest of the current tick.
type FrameOutcomes int32

const (
	// Continue proceeds normally: the window renders this tick if the
	// redraw decision still holds after the callback ran.
	Continue FrameOutcomes = iota

	// Skip suppresses GPU submission for this tick. The window's
	// dirty state is still consumed.
	Skip

	// CloseWindow closes this window now. Remaining windows are
	// still processed in the same tick.
	CloseWindow

	// StopLoop requests a global stop. The window still finishes its
	// render for the current tick; the stop takes effect at the next
	// tick boundary.
	StopLoop
)

func (fo FrameOutcomes) String() string {
	switch fo {
	case Continue:
		return "Continue"
	case Skip:
		return "Skip"
	case CloseWindow:
		return "CloseWindow"
	case StopLoop:
		return "StopLoop"
	}
	return "FrameOutcomesInvalid"
}

// windowStates is the swapchain lifecycle sub-state of a window.
// The recreate-before-render contract is a state transition:
// windowIdle -> windowNeedsRecreate (resize or out-of-date) ->
// windowIdle (exactly one recreation pass). windowDestroyed is
// terminal.
type windowStates int32

const (
	// windowIdle means the swapchain matches the surface and the
	// window can render.
	windowIdle windowStates = iota

	// windowNeedsRecreate means the swapchain must be rebuilt before
	// the window's render graph is invoked again.
	windowNeedsRecreate

	// windowDestroyed is terminal: the window's resources have been
	// released and no field is touched again.
	windowDestroyed
)

func (ws windowStates) String() string {
	switch ws {
	case windowIdle:
		return "Idle"
	case windowNeedsRecreate:
		return "NeedsRecreate"
	case windowDestroyed:
		return "Destroyed"
	}
	return "windowStatesInvalid"
}
