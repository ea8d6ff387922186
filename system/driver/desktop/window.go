// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/coreyp1/CJelly-sub001/gpu"
	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/base"
)

// Window is the [system.Window] implementation for desktop platforms:
// one glfw window plus its WebGPU device and surface swapchain.
type Window struct {
	base.Window

	app     *App
	glfw    *glfw.Window
	gpu     *gpu.GPU
	surface *gpu.Surface
}

// NewWindow creates a new glfw window with its WebGPU presentation
// resources fully configured. On any failure, everything created so
// far is torn down again.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.True)
	gw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	if opts.Pos != (image.Point{}) {
		gw.SetPos(opts.Pos.X, opts.Pos.Y)
	}

	gp, surf, err := gpu.New(wgpuglfw.GetSurfaceDescriptor(gw))
	if err != nil {
		gw.Destroy()
		return nil, err
	}

	w := &Window{app: a, glfw: gw, gpu: gp}
	w.Nm = opts.Title
	w.Titl = opts.Title
	fbx, fby := gw.GetFramebufferSize()
	w.Sz = image.Pt(fbx, fby)
	sf, err := gpu.NewSurface(gp, surf, w.Sz, opts.VSync)
	if err != nil {
		gp.Release()
		gw.Destroy()
		return nil, err
	}
	w.surface = sf

	gw.SetFramebufferSizeCallback(func(g *glfw.Window, width, height int) {
		w.SendResize(image.Pt(width, height))
	})
	gw.SetIconifyCallback(func(g *glfw.Window, iconified bool) {
		w.SendMinimize(iconified)
	})
	gw.SetCloseCallback(func(g *glfw.Window) {
		// the close hook adjudicates; keep the window alive unless
		// it decides to destroy it
		g.SetShouldClose(false)
		w.SendCloseRequest()
	})
	gw.SetRefreshCallback(func(g *glfw.Window) {
		w.SendRefresh()
	})

	a.AddWindow(w)
	return w, nil
}

func (w *Window) SetTitle(title string) {
	w.Titl = title
	if w.glfw != nil {
		w.glfw.SetTitle(title)
	}
}

func (w *Window) RecreateSwapchain() error {
	return w.surface.Reconfigure(w.Sz)
}

func (w *Window) BeginFrame() (system.Frame, error) {
	f, err := w.surface.AcquireFrame()
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (w *Window) SubmitAndPresent(f system.Frame) error {
	return w.surface.SubmitAndPresent(f.(*gpu.Frame))
}

func (w *Window) WaitIdle() {
	w.gpu.WaitIdle()
}

func (w *Window) Destroy() {
	if w.Destroyed {
		return
	}
	w.Destroyed = true
	w.app.RemoveWindow(w)
	w.gpu.WaitIdle()
	w.surface.Release()
	w.gpu.Release()
	w.glfw.Destroy()
	w.glfw = nil
}

// Surface returns the window's presentation surface, for callers that
// want to adjust rendering parameters such as the clear color.
func (w *Window) Surface() *gpu.Surface {
	return w.surface
}

// Glfw returns the underlying glfw window.
func (w *Window) Glfw() *glfw.Window {
	return w.glfw
}
