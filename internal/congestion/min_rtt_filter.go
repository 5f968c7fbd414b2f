package congestion

import (
	"math"
	"time"
)

// InfiniteRTT is the sentinel held by the min-RTT filter until the
// first valid sample arrives.
const InfiniteRTT = time.Duration(math.MaxInt64)

// minRTTFilter tracks the minimum round-trip time observed over a
// trailing wall-clock window. Within the window the estimate is
// monotonically non-increasing; once the window fully expires the
// filter is reset wholesale to the next sample, so a stale
// under-estimate never persists beyond the window.
type minRTTFilter struct {
	window time.Duration

	rtt   time.Duration
	stamp time.Time
}

func newMinRTTFilter(window time.Duration, rtt time.Duration, now time.Time) minRTTFilter {
	if rtt <= 0 {
		rtt = InfiniteRTT
	}
	return minRTTFilter{
		window: window,
		rtt:    rtt,
		stamp:  now,
	}
}

// Expired reports whether the trailing window has fully elapsed since
// the estimate was last refreshed.
func (f *minRTTFilter) Expired(now time.Time) bool {
	return now.After(f.stamp.Add(f.window))
}

// Update records a new RTT sample. Non-positive samples are discarded.
// The sample is adopted if it is a new minimum, or unconditionally if
// the window has expired.
func (f *minRTTFilter) Update(now time.Time, rtt time.Duration) {
	if rtt <= 0 {
		return
	}
	if rtt <= f.rtt || f.Expired(now) {
		f.rtt = rtt
		f.stamp = now
	}
}

// Get returns the current estimate, InfiniteRTT if no sample was ever
// recorded. No side effects.
func (f *minRTTFilter) Get() time.Duration {
	return f.rtt
}

// Refresh restarts the window without changing the estimate. Called on
// leaving the RTT-probing dip, which is itself a fresh opportunity to
// observe the minimum.
func (f *minRTTFilter) Refresh(now time.Time) {
	f.stamp = now
}
