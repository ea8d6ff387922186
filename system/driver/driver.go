// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the appropriate platform driver and
// constructs a [system.App] backed by it.
package driver

import (
	"github.com/coreyp1/CJelly-sub001/system"
)

// New returns a [system.App] for the current platform. Under
// `go test`, or when -nogui is given on the command line, the
// offscreen driver is used so that no display or GPU is required.
func New(name string) (system.App, error) {
	return newApp(name)
}
