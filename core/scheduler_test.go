// Copyright (c) 2026, The CJelly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreyp1/CJelly-sub001/system"
	"github.com/coreyp1/CJelly-sub001/system/driver/offscreen"
)

func newTestApp() (*App, *offscreen.App) {
	sys := offscreen.NewApp("test")
	return NewApp(sys), sys
}

func newTestWindow(t *testing.T, a *App, title string) (*Window, *offscreen.Window) {
	t.Helper()
	w, err := a.NewWindow(&system.NewWindowOptions{Title: title, Size: image.Pt(640, 480)})
	require.NoError(t, err)
	return w, w.System().(*offscreen.Window)
}

// settle runs the initial forced render of a freshly created window
// and resets the driver counters, so tests observe steady state.
func settle(t *testing.T, a *App, ows ...*offscreen.Window) {
	t.Helper()
	require.True(t, a.RunOnce())
	for _, ow := range ows {
		require.Equal(t, 1, ow.PresentCount)
		ow.BeginCount = 0
		ow.PresentCount = 0
		ow.ClearCount = 0
	}
}

func TestFirstTickAlwaysRenders(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "first")

	assert.True(t, w.Dirty())
	assert.True(t, a.RunOnce())
	assert.Equal(t, 1, ow.PresentCount)
	assert.Equal(t, uint64(1), w.FrameIndex())
	assert.False(t, w.Dirty())
}

func TestRedrawOnDirtySkipsCleanWindows(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "static")
	w.SetRedrawPolicy(RedrawOnDirty)
	calls := 0
	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		calls++
		return Continue
	})
	settle(t, a, ow)
	calls = 0

	for range 5 {
		a.RunOnce()
	}
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, ow.PresentCount)

	w.MarkDirty()
	a.RunOnce()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, ow.PresentCount)
}

func TestRedrawOnEventsCallsBackEveryTick(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "events")
	calls := 0
	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		calls++
		return Continue
	})
	settle(t, a, ow)
	calls = 0

	for range 4 {
		a.RunOnce()
	}
	assert.Equal(t, 4, calls)
	assert.Equal(t, 0, ow.PresentCount)

	// marking dirty from inside the callback renders on the same tick
	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		w.MarkDirty()
		return Continue
	})
	a.RunOnce()
	assert.Equal(t, 1, ow.PresentCount)
}

func TestResizeRecreatesSwapchainOnce(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "resize")
	settle(t, a, ow)

	var gotSize image.Point
	w.SetResizeFunc(func(w *Window, sz image.Point) {
		gotSize = sz
	})
	ow.SendResize(image.Pt(800, 600))
	assert.Equal(t, image.Pt(800, 600), gotSize)
	assert.Equal(t, windowNeedsRecreate, w.state)
	assert.Equal(t, Resize, w.request.reason())
	// no GPU work happens during event delivery itself
	assert.Equal(t, 0, ow.RecreateCount)

	a.RunOnce()
	assert.Equal(t, 1, ow.RecreateCount)
	assert.Equal(t, 1, ow.PresentCount)
	assert.Equal(t, windowIdle, w.state)

	// a quiet follow-up tick must not recreate again
	a.RunOnce()
	assert.Equal(t, 1, ow.RecreateCount)
	assert.Equal(t, 1, ow.PresentCount)
}

func TestBeginFrameOutOfDateDefersToRecreate(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "ood-begin")
	settle(t, a, ow)

	ow.BeginErrors = []error{system.ErrSwapchainOutOfDate}
	w.MarkDirty()
	a.RunOnce()
	// the stale acquire consumed the tick without presenting
	assert.Equal(t, 0, ow.PresentCount)
	assert.Equal(t, windowNeedsRecreate, w.state)
	assert.True(t, w.Dirty())
	assert.Equal(t, SwapchainRecreate, w.request.reason())
	assert.False(t, w.IsDestroyed())

	a.RunOnce()
	assert.Equal(t, 1, ow.RecreateCount)
	assert.Equal(t, 1, ow.PresentCount)
	assert.Equal(t, windowIdle, w.state)
	assert.False(t, w.Dirty())
}

func TestPresentOutOfDateDefersToRecreate(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "ood-present")
	settle(t, a, ow)

	ow.PresentErrors = []error{system.ErrSwapchainOutOfDate}
	w.MarkDirty()
	a.RunOnce()
	assert.Equal(t, windowNeedsRecreate, w.state)
	assert.False(t, w.IsDestroyed())

	a.RunOnce()
	assert.Equal(t, 1, ow.RecreateCount)
	assert.Equal(t, 2, ow.PresentCount)
}

func TestFatalRenderErrorClosesOnlyThatWindow(t *testing.T) {
	a, _ := newTestApp()
	w1, ow1 := newTestWindow(t, a, "doomed")
	w2, ow2 := newTestWindow(t, a, "healthy")
	settle(t, a, ow1, ow2)

	cancellable := true
	closed := false
	w1.SetCloseFunc(func(w *Window, c bool) bool {
		closed = true
		cancellable = c
		return false // must be ignored: the close is not cancellable
	})

	ow1.BeginErrors = []error{system.ErrDeviceLost}
	w1.MarkDirty()
	w2.MarkDirty()
	a.RunOnce()

	assert.True(t, w1.IsDestroyed())
	assert.True(t, closed)
	assert.False(t, cancellable)
	assert.Equal(t, 0, ow1.PresentCount)
	// the sibling still rendered in the same tick
	assert.False(t, w2.IsDestroyed())
	assert.Equal(t, 1, ow2.PresentCount)
	assert.Equal(t, 1, a.NWindows())
}

func TestSkipConsumesDirtyWithoutRendering(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "skip")
	settle(t, a, ow)
	before := w.lastRender

	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		return Skip
	})
	w.MarkDirtyWithReason(Forced)
	a.RunOnce()

	assert.Equal(t, 0, ow.PresentCount)
	assert.False(t, w.Dirty())
	// skipping must not pretend a frame was shown
	assert.Equal(t, before, w.lastRender)
}

func TestCloseWindowOutcome(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "self-close")
	settle(t, a, ow)

	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		return CloseWindow
	})
	a.RunOnce()
	assert.True(t, w.IsDestroyed())
	assert.Equal(t, 0, a.NWindows())
	assert.Equal(t, 0, ow.PresentCount)
	assert.False(t, a.RunOnce())
}

func TestCloseSiblingFromCallback(t *testing.T) {
	a, _ := newTestApp()
	w1, ow1 := newTestWindow(t, a, "closer")
	w2, ow2 := newTestWindow(t, a, "victim")
	settle(t, a, ow1, ow2)

	w1.SetFrameFunc(func(w *Window) FrameOutcomes {
		w2.Close()
		return Continue
	})
	w2.SetFrameFunc(func(w *Window) FrameOutcomes {
		t.Error("callback on a window closed earlier in the tick")
		return Continue
	})
	a.RunOnce()

	assert.True(t, w2.IsDestroyed())
	assert.Equal(t, 0, ow2.PresentCount)
	assert.Equal(t, 1, a.NWindows())
	assert.Same(t, w1, a.Windows()[0])
}

func TestStopLoopStillRendersCurrentTick(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "stopper")
	settle(t, a, ow)

	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		w.MarkDirty()
		return StopLoop
	})
	cont := a.RunOnce()
	assert.False(t, cont)
	assert.Equal(t, 1, ow.PresentCount)
	assert.True(t, a.StopRequested())
}

func TestFPSCapThrottlesTimerRendersOnly(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "capped")
	w.SetRedrawPolicy(RedrawAlways)
	w.SetMaxFPS(30)
	calls := 0
	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		calls++
		return Continue
	})
	w.ClearDirty() // drop the initial forced render to observe pure timer pacing

	base := time.Now()
	for i := range 10 {
		a.tickWindow(w, base.Add(time.Duration(i)*5*time.Millisecond))
	}
	// at 30 FPS the minimum interval is ~33ms, so ticks 5ms apart
	// render on the first tick and again 35ms in
	assert.Equal(t, 10, calls)
	assert.Equal(t, 2, ow.PresentCount)
}

func TestFPSCapBypassedByEventReasons(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "bypass")
	w.SetRedrawPolicy(RedrawAlways)
	w.SetMaxFPS(30)
	w.ClearDirty()

	base := time.Now()
	a.tickWindow(w, base)
	require.Equal(t, 1, ow.PresentCount)

	// 1ms later is far inside the throttle window, but an expose
	// must be shown immediately
	w.MarkDirtyWithReason(Expose)
	a.tickWindow(w, base.Add(time.Millisecond))
	assert.Equal(t, 2, ow.PresentCount)

	// a plain timer render at the same distance stays gated
	w.MarkDirty()
	a.tickWindow(w, base.Add(2*time.Millisecond))
	assert.Equal(t, 2, ow.PresentCount)
}

func TestMinimizedWindowRunsCallbacksButDoesNotRender(t *testing.T) {
	a, _ := newTestApp()
	w1, ow1 := newTestWindow(t, a, "visible")
	w2, ow2 := newTestWindow(t, a, "minimized")
	w1.SetRedrawPolicy(RedrawAlways)
	w2.SetRedrawPolicy(RedrawAlways)
	settle(t, a, ow1, ow2)

	calls := 0
	w2.SetFrameFunc(func(w *Window) FrameOutcomes {
		calls++
		return Continue
	})
	ow2.SendMinimize(true)

	for range 3 {
		a.RunOnce()
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, ow1.PresentCount)
	assert.Equal(t, 0, ow2.PresentCount)

	// restoring owes the window an immediate repaint
	ow2.SendMinimize(false)
	assert.Equal(t, Expose, w2.request.reason())
	a.RunOnce()
	assert.Equal(t, 1, ow2.PresentCount)
}

func TestRunWhenMinimizedKeepsRendering(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "background")
	w.SetRedrawPolicy(RedrawAlways)
	settle(t, a, ow)

	cfg := a.Config()
	cfg.RunWhenMinimized = true
	a.SetConfig(cfg)

	ow.SendMinimize(true)
	a.RunOnce()
	assert.Equal(t, 1, ow.PresentCount)
}

func TestRefreshRendersImmediately(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "refresh")
	w.SetRedrawPolicy(RedrawOnDirty)
	settle(t, a, ow)

	// a platform refresh arrives outside any scheduler tick, as it
	// would from a modal resize loop
	ow.SendRefresh()
	assert.Equal(t, 1, ow.PresentCount)
	assert.False(t, w.Dirty())
}

func TestRunClosesRemainingWindowsOnStop(t *testing.T) {
	a, _ := newTestApp()
	w1, _ := newTestWindow(t, a, "one")
	w2, _ := newTestWindow(t, a, "two")

	var closes []bool
	w2.SetCloseFunc(func(w *Window, cancellable bool) bool {
		closes = append(closes, cancellable)
		return false // ignored on shutdown
	})
	ticks := 0
	w1.SetFrameFunc(func(w *Window) FrameOutcomes {
		ticks++
		if ticks >= 3 {
			return StopLoop
		}
		return Continue
	})
	a.Run()

	assert.Equal(t, 3, ticks)
	assert.True(t, w1.IsDestroyed())
	assert.True(t, w2.IsDestroyed())
	assert.Equal(t, []bool{false}, closes)
	assert.Equal(t, 0, a.NWindows())
}

func TestRunOnceWithNoWindows(t *testing.T) {
	a, _ := newTestApp()
	assert.False(t, a.RunOnce())
}

func TestInjectedEventsArriveAtTickStart(t *testing.T) {
	a, sys := newTestApp()
	w, ow := newTestWindow(t, a, "inject")
	settle(t, a, ow)

	sys.Inject(func() {
		ow.SendResize(image.Pt(320, 240))
	})
	assert.Equal(t, windowIdle, w.state)
	a.RunOnce()
	assert.Equal(t, 1, ow.RecreateCount)
	assert.Equal(t, image.Pt(320, 240), ow.Size())
}

func TestCloseFromFrameCallbackStopsOwnTick(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "self-destruct")
	w.SetRedrawPolicy(RedrawAlways)
	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		w.Close()
		return Continue
	})
	a.RunOnce()

	assert.True(t, w.IsDestroyed())
	assert.Equal(t, 0, a.NWindows())
	// nothing may touch the platform window after destruction
	assert.Equal(t, uint64(0), w.FrameIndex())
	assert.Equal(t, 0, ow.BeginCount)
	assert.Equal(t, 0, ow.PresentCount)
}

func TestCloseFromFrameCallbackDuringRefresh(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "refresh-destruct")
	settle(t, a, ow)

	w.SetFrameFunc(func(w *Window) FrameOutcomes {
		w.Close()
		return Continue
	})
	ow.SendRefresh()

	assert.True(t, w.IsDestroyed())
	assert.Equal(t, 0, ow.PresentCount)
	assert.Equal(t, uint64(1), w.FrameIndex())
}

func TestRendersNotCountedWithoutProfiling(t *testing.T) {
	a, _ := newTestApp()
	w, ow := newTestWindow(t, a, "unprofiled")
	w.SetRedrawPolicy(RedrawAlways)

	a.RunOnce()
	require.Equal(t, 1, ow.PresentCount)
	assert.Equal(t, uint64(0), a.Stats().Renders())
}
