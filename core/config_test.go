// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "cjelly.toml")
	cfg := Config{
		TargetFPS:          144,
		VSync:              false,
		RunWhenMinimized:   true,
		EnableFPSProfiling: true,
	}
	require.NoError(t, SaveConfig(cfg, fnm))

	got, err := OpenConfig(fnm)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOpenConfigMissingFileIsDefaults(t *testing.T) {
	got, err := OpenConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), got)
}

func TestOpenConfigPartialFileKeepsDefaults(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "cjelly.toml")
	require.NoError(t, os.WriteFile(fnm, []byte("target-fps = 60\n"), 0666))

	got, err := OpenConfig(fnm)
	require.NoError(t, err)
	assert.Equal(t, uint32(60), got.TargetFPS)
	// unspecified keys stay at their defaults
	assert.True(t, got.VSync)
	assert.False(t, got.RunWhenMinimized)
}

func TestOpenConfigBadTOML(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "cjelly.toml")
	require.NoError(t, os.WriteFile(fnm, []byte("target-fps = {"), 0666))

	got, err := OpenConfig(fnm)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), got)
}
