// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Frame is one acquired swapchain image plus the command encoder for
// recording its drawing. It implements [system.Frame].
type Frame struct {
	surface *Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	extent  image.Point
}

// RenderCommands is the backend command recording handle handed to a
// render graph through [Frame.Commands].
type RenderCommands struct {

	// Encoder is the frame's command encoder. The graph records its
	// render passes into it; the scheduler finishes and submits it.
	Encoder *wgpu.CommandEncoder

	// View is the swapchain image view to use as the color
	// attachment.
	View *wgpu.TextureView

	// Format is the surface texture format, needed to build
	// compatible pipelines.
	Format wgpu.TextureFormat
}

// Commands returns the [RenderCommands] for this frame.
func (f *Frame) Commands() any {
	return &RenderCommands{
		Encoder: f.encoder,
		View:    f.view,
		Format:  f.surface.Format,
	}
}

// Extent returns the framebuffer size of this frame in pixels.
func (f *Frame) Extent() image.Point {
	return f.extent
}

// Clear records the minimal draw: a single render pass that clears
// the frame to the surface's clear color. It is the fallback when no
// render graph is attached or the graph fails.
func (f *Frame) Clear() {
	r, g, b, a := f.surface.ClearColor.RGBA()
	pass := f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    f.view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(r) / 0xffff,
				G: float64(g) / 0xffff,
				B: float64(b) / 0xffff,
				A: float64(a) / 0xffff,
			},
		}},
	})
	pass.End()
	pass.Release()
}

// release drops the frame's view and texture references. The encoder
// is finished and released by the surface on submit.
func (f *Frame) release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}
}
