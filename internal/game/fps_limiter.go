package game

import (
	"time"

	"gridfill/internal/config"
)

// idleFPS caps the frame rate while nothing on screen changes.
const idleFPS = 30

// FPSLimiter provides high-precision frame rate limiting and counts the
// frames it lets through.
type FPSLimiter struct {
	next time.Time

	frames      int
	windowStart time.Time
	fps         int
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due under the configured limit. When idle
// is set the limit drops to idleFPS. It reports true once per second, when a
// new FPS value is available.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(idle bool) bool {
	f.pace(idle)
	return f.count(time.Now())
}

// FPS returns the number of frames completed during the last full second.
func (f *FPSLimiter) FPS() int { return f.fps }

func (f *FPSLimiter) count(now time.Time) bool {
	f.frames++
	if f.windowStart.IsZero() {
		f.windowStart = now
		return false
	}
	if now.Sub(f.windowStart) < time.Second {
		return false
	}
	f.fps = f.frames
	f.frames = 0
	f.windowStart = now
	return true
}

func (f *FPSLimiter) pace(idle bool) {
	limit := config.GetFPSLimit()
	if idle && (limit <= 0 || limit > idleFPS) {
		limit = idleFPS
	}

	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of rushing frames to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
