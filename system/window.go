// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// Window wraps one OS-specific hardware window together with its GPU
// presentation resources (surface, swapchain, per-frame sync). It is a
// capability driven by the core frame scheduler: the scheduler decides
// when to begin, submit, and present; the window only executes.
//
// All methods must be called from the same goroutine that calls
// [App.PollEvents], except WaitIdle, which is safe from any.
type Window interface {

	// Name returns the name of the window, used strictly for
	// internal tracking and lookup.
	Name() string

	// SetName sets the name of the window.
	SetName(name string)

	// SetTitle sets the displayed title of the window.
	SetTitle(title string)

	// Size returns the cached size of the window in raw pixels.
	// It is bookkeeping state updated by platform event delivery;
	// the OS is never queried on the hot path.
	Size() image.Point

	// Resize updates the cached size of the window. It is size
	// bookkeeping only: no GPU resources are touched. Swapchain
	// recreation is a separate, explicit step.
	Resize(sz image.Point)

	// IsMinimized reports whether the window is minimized, from the
	// cached flag updated by platform event delivery.
	IsMinimized() bool

	// RecreateSwapchain rebuilds the GPU presentation resources for
	// the current cached size. The caller must ensure no frames are
	// in flight; implementations wait for the device to go idle
	// before releasing the old swapchain.
	RecreateSwapchain() error

	// BeginFrame acquires the next presentable image. It fails with
	// [ErrSwapchainOutOfDate] when the swapchain no longer matches
	// the surface, with [ErrSurfaceLost] or [ErrDeviceLost] on
	// unrecoverable platform failures.
	BeginFrame() (Frame, error)

	// SubmitAndPresent submits the frame's recorded commands and
	// queues the image for presentation. The frame is invalid
	// afterwards. Errors follow the same taxonomy as BeginFrame.
	SubmitAndPresent(f Frame) error

	// WaitIdle blocks until all GPU work previously submitted for
	// this window has completed. This is the only deliberately
	// blocking call in the presentation path, required before
	// destroying the window or rebuilding its swapchain.
	WaitIdle()

	// Destroy releases the window and all its GPU resources.
	// It must be idempotent.
	Destroy()

	// SetResizeFunc sets the hook invoked when the platform delivers
	// a resize, with the new size in raw pixels. Hooks are invoked
	// synchronously from [App.PollEvents].
	SetResizeFunc(fun func(sz image.Point))

	// SetMinimizeFunc sets the hook invoked when the window is
	// minimized or restored.
	SetMinimizeFunc(fun func(minimized bool))

	// SetCloseRequestFunc sets the hook invoked when the user asks
	// the window to close. The hook adjudicates the request; the
	// driver itself never destroys the window.
	SetCloseRequestFunc(fun func())

	// SetRefreshFunc sets the hook invoked when the platform needs
	// the window contents repainted immediately, such as during a
	// modal resize or move loop that suspends the normal event pump.
	SetRefreshFunc(fun func())
}

// Frame is one acquired presentable image plus the recording surface
// for its drawing commands.
type Frame interface {

	// Commands returns the backend-specific command recording handle
	// that a render graph draws into. It is opaque to the scheduler.
	Commands() any

	// Extent returns the framebuffer size of this frame in pixels.
	Extent() image.Point

	// Clear records the minimal draw: a single pass that clears the
	// frame to the background color. It is the fallback when no
	// render graph is attached or the graph fails.
	Clear()
}
