package core

import "time"

// Clock is a monotonic millisecond time source with a cooperative delay.
type Clock interface {
	// NowMillis returns milliseconds elapsed since an arbitrary fixed origin.
	NowMillis() int64

	// Sleep blocks the caller for d.
	Sleep(d time.Duration)
}

// SystemClock measures time from its creation using the monotonic clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock whose origin is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// NowMillis returns milliseconds since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.origin).Milliseconds()
}

// Sleep pauses the calling goroutine.
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
