package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/block-walker/constant"
)

// FPSCounter maintains the rolling frame-rate estimate: frames and
// elapsed time accumulate until the sampling window fills, then a new
// value is published and both accumulators reset. Coarse 2x/second
// sampling, not an exact per-frame rate.
type FPSCounter struct {
	clock       TimeProvider
	windowStart time.Time
	frames      int
}

func NewFPSCounter(clock TimeProvider) *FPSCounter {
	return &FPSCounter{
		clock:       clock,
		windowStart: clock.Now(),
	}
}

// Frame records one rendered frame. When at least constant.FPSWindow
// has elapsed it returns round(frames*1000/elapsedMs) and true, then
// starts a fresh window.
func (f *FPSCounter) Frame() (int, bool) {
	f.frames++

	now := f.clock.Now()
	elapsed := now.Sub(f.windowStart)
	if elapsed < constant.FPSWindow {
		return 0, false
	}

	fps := int(math.Round(float64(f.frames) * 1000.0 / float64(elapsed.Milliseconds())))
	f.frames = 0
	f.windowStart = now
	return fps, true
}
