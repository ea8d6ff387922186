// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the flat scheduler configuration. The zero value is not
// useful; start from [DefaultConfig].
type Config struct {

	// TargetFPS is the target tick rate for the scheduler loop
	// (0 = unlimited). It paces the loop, not individual windows;
	// per-window caps are set with [Window.SetMaxFPS].
	TargetFPS uint32 `toml:"target-fps"`

	// VSync hints that presentation already throttles to the display
	// refresh rate, in which case the loop does not sleep to pace
	// itself.
	VSync bool `toml:"vsync"`

	// RunWhenMinimized keeps submitting GPU work for minimized
	// windows. When false, minimized windows still poll events and
	// may run frame callbacks, but never render.
	RunWhenMinimized bool `toml:"run-when-minimized"`

	// EnableFPSProfiling accumulates tick and render statistics.
	// Profiling is reporting only: it never affects scheduling
	// decisions.
	EnableFPSProfiling bool `toml:"fps-profiling"`
}

// DefaultConfig returns the default scheduler configuration:
// unlimited tick rate with vsync assumed, no rendering while
// minimized, no profiling.
func DefaultConfig() Config {
	return Config{VSync: true}
}

// OpenConfig reads a [Config] in TOML format from the given file.
// A missing file is not an error: it returns the defaults.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// SaveConfig writes the given [Config] in TOML format to the given
// file.
func SaveConfig(cfg Config, filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
