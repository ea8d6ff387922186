// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/coreyp1/CJelly-sub001/base/errors"
	"github.com/coreyp1/CJelly-sub001/system"
)

// Surface manages the swapchain for presenting images to one window
// surface. The swapchain configuration must be rebuilt whenever the
// window size or surface properties change; staleness is reported as
// [system.ErrSwapchainOutOfDate] from [Surface.AcquireFrame] and the
// caller is expected to drive [Surface.Reconfigure].
type Surface struct {

	// GPU is the device this surface presents through.
	GPU *GPU

	// Format is the texture format the surface was configured with.
	Format wgpu.TextureFormat

	// PresentMode throttles presentation; Fifo is the vsync mode
	// that is always supported, Immediate presents uncapped.
	PresentMode wgpu.PresentMode

	// ClearColor is the color used by the minimal clear draw.
	ClearColor color.Color

	// size is the currently configured swapchain extent.
	size image.Point

	surface   *wgpu.Surface
	alphaMode wgpu.CompositeAlphaMode
}

// NewSurface configures the given wgpu surface for presentation at
// the given size. vsync selects the Fifo present mode; otherwise
// Immediate is used when available. It fails if the adapter reports
// no usable surface configuration.
func NewSurface(gp *GPU, surf *wgpu.Surface, size image.Point, vsync bool) (*Surface, error) {
	caps := surf.GetCapabilities(gp.Adapter)
	format, alpha, present, err := pickSurfaceConfig(caps, vsync)
	if err != nil {
		return nil, errors.Log(err)
	}
	sf := &Surface{
		GPU:         gp,
		Format:      format,
		PresentMode: present,
		ClearColor:  color.Black,
		surface:     surf,
		alphaMode:   alpha,
	}
	sf.configure(size)
	return sf, nil
}

// pickSurfaceConfig selects the format, alpha mode, and present mode
// from the surface capabilities. The first listed format and alpha
// mode are the preferred ones. Fifo is the universally supported
// present mode; Immediate is only used when the caller declined vsync
// and the surface actually offers it.
func pickSurfaceConfig(caps wgpu.SurfaceCapabilities, vsync bool) (
	format wgpu.TextureFormat, alpha wgpu.CompositeAlphaMode, present wgpu.PresentMode, err error) {
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return 0, 0, 0, errors.Wrapf(system.ErrSurfaceLost,
			"surface reports no usable configuration")
	}
	format = caps.Formats[0]
	alpha = caps.AlphaModes[0]
	present = wgpu.PresentModeFifo
	if !vsync {
		for _, pm := range caps.PresentModes {
			if pm == wgpu.PresentModeImmediate {
				present = pm
				break
			}
		}
	}
	return format, alpha, present, nil
}

// Size returns the currently configured swapchain extent.
func (sf *Surface) Size() image.Point {
	return sf.size
}

func (sf *Surface) configure(size image.Point) {
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	sf.surface.Configure(sf.GPU.Adapter, sf.GPU.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: sf.PresentMode,
		AlphaMode:   sf.alphaMode,
	})
	sf.size = size
}

// Reconfigure rebuilds the swapchain for the given size. The caller
// must have waited for the device to go idle first: images referenced
// by in-flight command buffers must not be dropped while in use.
func (sf *Surface) Reconfigure(size image.Point) error {
	if sf.surface == nil {
		return errors.Log(system.ErrSurfaceLost)
	}
	sf.configure(size)
	return nil
}

// AcquireFrame acquires the next presentable image and a command
// encoder for recording this frame's work. Acquisition failures are
// mapped onto the system error taxonomy; see [classifyAcquireError].
func (sf *Surface) AcquireFrame() (*Frame, error) {
	if sf.surface == nil {
		return nil, system.ErrSurfaceLost
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquireError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, errors.Wrapf(system.ErrDeviceLost, "creating surface texture view: %v", err)
	}
	enc, err := sf.GPU.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		tex.Release()
		return nil, errors.Wrapf(system.ErrDeviceLost, "creating command encoder: %v", err)
	}
	return &Frame{
		surface: sf,
		texture: tex,
		view:    view,
		encoder: enc,
		extent:  sf.size,
	}, nil
}

// SubmitAndPresent finishes the frame's command encoder, submits it,
// and presents the image. The frame is released regardless of the
// outcome.
func (sf *Surface) SubmitAndPresent(f *Frame) error {
	defer f.release()
	cmd, err := f.encoder.Finish(nil)
	if err != nil {
		return errors.Wrapf(system.ErrDeviceLost, "finishing command encoder: %v", err)
	}
	sf.GPU.Queue.Submit(cmd)
	cmd.Release()
	sf.surface.Present()
	return nil
}

// Release drops the surface. The swapchain images go with it; the
// caller must have waited for the device to go idle.
func (sf *Surface) Release() {
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}

// classifyAcquireError maps a wgpu surface texture acquisition
// failure onto the system error taxonomy. Outdated and suboptimal
// swapchains are recoverable by reconfiguration; a lost surface or
// anything unrecognized is fatal to the window.
func classifyAcquireError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outdated") || strings.Contains(msg, "suboptimal") || strings.Contains(msg, "timeout"):
		return errors.Wrapf(system.ErrSwapchainOutOfDate, "%v", err)
	case strings.Contains(msg, "surface") && strings.Contains(msg, "lost"):
		return errors.Wrapf(system.ErrSurfaceLost, "%v", err)
	default:
		return errors.Wrapf(system.ErrDeviceLost, "%v", err)
	}
}
