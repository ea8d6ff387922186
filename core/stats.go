// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
)

// Stats accumulates scheduler timing statistics when
// [Config.EnableFPSProfiling] is set. It is reporting only and never
// feeds back into scheduling decisions.
type Stats struct {
	started  time.Time
	ticks    uint64
	renders  uint64
	tickTime time.Duration
}

func (st *Stats) start() {
	st.started = time.Now()
	st.ticks = 0
	st.renders = 0
	st.tickTime = 0
}

func (st *Stats) recordTick(d time.Duration) {
	st.ticks++
	st.tickTime += d
}

func (st *Stats) recordRender() {
	st.renders++
}

// Ticks returns the number of scheduler ticks since profiling started.
func (st *Stats) Ticks() uint64 {
	return st.ticks
}

// Renders returns the number of frames actually submitted across all
// windows since profiling started.
func (st *Stats) Renders() uint64 {
	return st.renders
}

// MeanTickTime returns the mean wall-clock time of one tick.
func (st *Stats) MeanTickTime() time.Duration {
	if st.ticks == 0 {
		return 0
	}
	return st.tickTime / time.Duration(st.ticks)
}

// RendersPerSecond returns the mean rate of submitted frames since
// profiling started.
func (st *Stats) RendersPerSecond() float32 {
	elapsed := float32(time.Since(st.started).Seconds())
	if elapsed <= 0 {
		return 0
	}
	return float32(st.renders) / elapsed
}

// Report returns a one-line human-readable summary.
func (st *Stats) Report() string {
	fps := math32.Round(st.RendersPerSecond()*100) / 100
	return fmt.Sprintf("ticks: %d  renders: %d  mean tick: %v  renders/sec: %g",
		st.ticks, st.renders, st.MeanTickTime(), fps)
}
