// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import (
	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/offscreen"
)

func newApp(name string) (system.App, error) {
	return offscreen.NewApp(name), nil
}
