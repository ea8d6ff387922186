// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import "image"

// Window contains the bookkeeping data and hook dispatch logic common
// to all implementations of [system.Window]. Size and minimized state
// are cached here and updated only by platform event delivery, so the
// render hot path never queries the OS.
type Window struct {

	// Nm is the name of the window.
	Nm string

	// Titl is the displayed title of the window.
	Titl string

	// Sz is the cached size of the window in raw pixels.
	Sz image.Point

	// Minimized is the cached minimized state.
	Minimized bool

	// Destroyed is set once the window has been destroyed.
	Destroyed bool

	// ResizeFun is the hook for platform resize delivery.
	ResizeFun func(sz image.Point)

	// MinimizeFun is the hook for minimize/restore delivery.
	MinimizeFun func(minimized bool)

	// CloseRequestFun is the hook for user close requests.
	CloseRequestFun func()

	// RefreshFun is the hook for immediate repaint requests.
	RefreshFun func()
}

func (w *Window) Name() string {
	return w.Nm
}

func (w *Window) SetName(name string) {
	w.Nm = name
}

func (w *Window) SetTitle(title string) {
	w.Titl = title
}

func (w *Window) Size() image.Point {
	return w.Sz
}

func (w *Window) Resize(sz image.Point) {
	w.Sz = sz
}

func (w *Window) IsMinimized() bool {
	return w.Minimized
}

func (w *Window) SetResizeFunc(fun func(sz image.Point)) {
	w.ResizeFun = fun
}

func (w *Window) SetMinimizeFunc(fun func(minimized bool)) {
	w.MinimizeFun = fun
}

func (w *Window) SetCloseRequestFunc(fun func()) {
	w.CloseRequestFun = fun
}

func (w *Window) SetRefreshFunc(fun func()) {
	w.RefreshFun = fun
}

// SendResize updates the cached size and invokes the resize hook.
// Drivers call this from their platform resize callback.
func (w *Window) SendResize(sz image.Point) {
	if w.Destroyed {
		return
	}
	w.Sz = sz
	if w.ResizeFun != nil {
		w.ResizeFun(sz)
	}
}

// SendMinimize updates the cached minimized state and invokes the
// minimize hook.
func (w *Window) SendMinimize(minimized bool) {
	if w.Destroyed {
		return
	}
	w.Minimized = minimized
	if w.MinimizeFun != nil {
		w.MinimizeFun(minimized)
	}
}

// SendCloseRequest invokes the close request hook.
func (w *Window) SendCloseRequest() {
	if w.Destroyed {
		return
	}
	if w.CloseRequestFun != nil {
		w.CloseRequestFun()
	}
}

// SendRefresh invokes the refresh hook.
func (w *Window) SendRefresh() {
	if w.Destroyed {
		return
	}
	if w.RefreshFun != nil {
		w.RefreshFun()
	}
}
