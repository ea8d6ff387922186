// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages the WebGPU presentation resources for one
// window: instance, adapter, device, and the surface swapchain, with
// the recreate-on-out-of-date protocol the frame scheduler drives.
package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/coreyp1/CJelly-sub001/base/errors"
)

// GPU holds the WebGPU instance, adapter, and device for one window
// surface. Each window has its own device, configured for its
// surface, so windows fail and tear down independently.
type GPU struct {

	// Instance is the WebGPU instance.
	Instance *wgpu.Instance

	// Adapter is the physical GPU adapter, selected for
	// compatibility with the window's surface.
	Adapter *wgpu.Adapter

	// Device is the logical device all of this window's GPU work
	// goes through.
	Device *wgpu.Device

	// Queue is the device's command queue.
	Queue *wgpu.Queue
}

// New brings up instance, adapter, device, and queue, with the
// adapter selected for compatibility with the given surface
// descriptor. The returned GPU owns everything it created; call
// [GPU.Release] when done.
func New(desc *wgpu.SurfaceDescriptor) (*GPU, *wgpu.Surface, error) {
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	surf := gp.Instance.CreateSurface(desc)

	adapter, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surf,
	})
	if err != nil {
		gp.Release()
		return nil, nil, errors.Log(err)
	}
	gp.Adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "CJelly Device",
	})
	if err != nil {
		gp.Release()
		return nil, nil, errors.Log(err)
	}
	gp.Device = device
	gp.Queue = device.GetQueue()
	return gp, surf, nil
}

// WaitIdle blocks until all submitted GPU work has completed. This is
// the deliberate synchronization point before destroying a window or
// rebuilding its swapchain: resources referenced by in-flight command
// buffers must not be freed or rebuilt while still in use.
func (gp *GPU) WaitIdle() {
	if gp.Device != nil {
		gp.Device.Poll(true, nil)
	}
}

// Release frees the device, adapter, and instance, in that order.
func (gp *GPU) Release() {
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
		gp.Queue = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
