// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "errors"

var (
	// ErrSwapchainOutOfDate indicates that the swapchain no longer
	// matches the surface (typically after a resize) and must be
	// recreated before the next render. It is always recoverable
	// and is never surfaced to user code.
	ErrSwapchainOutOfDate = errors.New("system: swapchain out of date")

	// ErrSurfaceLost indicates that the window surface was lost.
	// It is fatal to the affected window only.
	ErrSurfaceLost = errors.New("system: surface lost")

	// ErrDeviceLost indicates that the GPU device was lost.
	// It is fatal to the affected window only.
	ErrDeviceLost = errors.New("system: device lost")
)

// IsFatal reports whether the given presentation error is fatal to its
// window, as opposed to recoverable by swapchain recreation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrSwapchainOutOfDate)
}
