// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/desktop"
	"github.com/coreyp1/CJelly-sub001/system/driver/offscreen"
)

func newApp(name string) (system.App, error) {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		return offscreen.NewApp(name), nil
	}
	return desktop.NewApp(name)
}
