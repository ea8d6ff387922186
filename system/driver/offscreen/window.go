// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/base"
)

// Window is the [system.Window] implementation for offscreen
// operation. It keeps counters for every presentation primitive and
// can be scripted to fail, so scheduler behavior around swapchain
// staleness and fatal errors is testable without a GPU.
type Window struct {
	base.Window

	app *App

	// BeginErrors are errors returned by successive BeginFrame
	// calls, consumed front to back; a nil entry means success.
	BeginErrors []error

	// PresentErrors are errors returned by successive
	// SubmitAndPresent calls, consumed front to back.
	PresentErrors []error

	// RecreateErrors are errors returned by successive
	// RecreateSwapchain calls, consumed front to back.
	RecreateErrors []error

	// Counters for presentation primitives.
	BeginCount    int
	PresentCount  int
	RecreateCount int
	WaitIdleCount int
	ClearCount    int

	// swapchainSize is the extent the fake swapchain was last
	// configured for; it goes stale when the window is resized.
	swapchainSize image.Point

	// Pix is the last presented image, filled by [Frame.Clear].
	Pix *image.RGBA
}

// NewWindow returns a new offscreen window.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()
	w := &Window{app: a}
	w.Nm = opts.Title
	w.Titl = opts.Title
	w.Sz = opts.Size
	w.swapchainSize = opts.Size
	a.AddWindow(w)
	return w, nil
}

func (w *Window) RecreateSwapchain() error {
	w.RecreateCount++
	if len(w.RecreateErrors) > 0 {
		err := w.RecreateErrors[0]
		w.RecreateErrors = w.RecreateErrors[1:]
		if err != nil {
			return err
		}
	}
	w.swapchainSize = w.Sz
	return nil
}

func (w *Window) BeginFrame() (system.Frame, error) {
	w.BeginCount++
	if len(w.BeginErrors) > 0 {
		err := w.BeginErrors[0]
		w.BeginErrors = w.BeginErrors[1:]
		if err != nil {
			return nil, err
		}
	}
	if w.swapchainSize != w.Sz {
		return nil, system.ErrSwapchainOutOfDate
	}
	return &Frame{window: w, extent: w.swapchainSize}, nil
}

func (w *Window) SubmitAndPresent(f system.Frame) error {
	w.PresentCount++
	if len(w.PresentErrors) > 0 {
		err := w.PresentErrors[0]
		w.PresentErrors = w.PresentErrors[1:]
		if err != nil {
			return err
		}
	}
	fr := f.(*Frame)
	if fr.cleared != nil {
		w.Pix = fr.cleared
	}
	return nil
}

func (w *Window) WaitIdle() {
	w.WaitIdleCount++
}

func (w *Window) Destroy() {
	if w.Destroyed {
		return
	}
	w.Destroyed = true
	w.app.RemoveWindow(w)
}

// Frame is one offscreen frame. Clear fills an in-memory image so
// that what would have been presented can be inspected.
type Frame struct {
	window  *Window
	extent  image.Point
	cleared *image.RGBA
}

func (f *Frame) Commands() any {
	return f
}

func (f *Frame) Extent() image.Point {
	return f.extent
}

// Clear fills the frame with an opaque background color.
func (f *Frame) Clear() {
	f.window.ClearCount++
	img := image.NewRGBA(image.Rect(0, 0, f.extent.X, f.extent.Y))
	src := image.NewUniform(color.RGBA{A: 0xff})
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
	f.cleared = img
}
