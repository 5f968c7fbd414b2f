package congestion

import "cmp"

// WindowedFilter implements Kathleen Nichols' algorithm for tracking
// the maximum of a stream of samples over a fixed trailing window on an
// arbitrary monotonically increasing time axis (round-trip counts for
// the bandwidth filter).
//
// The filter keeps the best, second best and third best estimates,
// maintaining the invariant that the measurement time of the n'th best
// is >= that of the (n-1)'th best. On a reset all three estimates are
// set to the same sample. A new best sample replaces all three, since
// it is both better than everything else in the window and the most
// recent. When the best expires it is replaced by the second best,
// which in turn is replaced by the third best; the newest sample then
// replaces the third best.
type WindowedFilter[V cmp.Ordered] struct {
	// windowLength is the period after which the best estimate expires.
	windowLength int64

	estimates [3]filterSample[V]
}

type filterSample[V cmp.Ordered] struct {
	sample V
	time   int64
}

// NewWindowedMaxFilter creates a filter tracking the maximum sample
// over the trailing windowLength.
func NewWindowedMaxFilter[V cmp.Ordered](windowLength int64) *WindowedFilter[V] {
	return &WindowedFilter[V]{windowLength: windowLength}
}

// Update incorporates a new sample taken at the given time, expiring
// older estimates as necessary. Amortized O(1).
func (f *WindowedFilter[V]) Update(sample V, now int64) {
	// Reset all estimates if they have never been initialized, if the
	// new sample is a new maximum, or if the newest recorded estimate
	// is too old.
	var zero V
	if f.estimates[0].sample == zero && f.estimates[0].time == 0 ||
		sample >= f.estimates[0].sample ||
		now-f.estimates[2].time > f.windowLength {
		f.Reset(sample, now)
		return
	}

	if sample >= f.estimates[1].sample {
		f.estimates[1] = filterSample[V]{sample, now}
		f.estimates[2] = f.estimates[1]
	} else if sample >= f.estimates[2].sample {
		f.estimates[2] = filterSample[V]{sample, now}
	}

	if now-f.estimates[0].time > f.windowLength {
		// The best estimate hasn't been updated for an entire window,
		// so promote the second and third best estimates.
		f.estimates[0] = f.estimates[1]
		f.estimates[1] = f.estimates[2]
		f.estimates[2] = filterSample[V]{sample, now}
		// The promoted best may itself be outside the window; iterate
		// once more. A third iteration is unnecessary since the reset
		// branch above covers that case.
		if now-f.estimates[0].time > f.windowLength {
			f.estimates[0] = f.estimates[1]
			f.estimates[1] = f.estimates[2]
		}
		return
	}

	if f.estimates[1].sample == f.estimates[0].sample && now-f.estimates[1].time > f.windowLength/4 {
		// A quarter of the window has passed without a better sample,
		// so take a second-best estimate from the second quarter.
		f.estimates[1] = filterSample[V]{sample, now}
		f.estimates[2] = f.estimates[1]
		return
	}

	if f.estimates[2].sample == f.estimates[1].sample && now-f.estimates[2].time > f.windowLength/2 {
		// Half the window has passed without a better estimate, so take
		// a third-best estimate from the second half.
		f.estimates[2] = filterSample[V]{sample, now}
	}
}

// Reset forgets all history and restarts from the given sample.
func (f *WindowedFilter[V]) Reset(sample V, now int64) {
	f.estimates[0] = filterSample[V]{sample, now}
	f.estimates[1] = f.estimates[0]
	f.estimates[2] = f.estimates[0]
}

// GetBest returns the current maximum. No side effects.
func (f *WindowedFilter[V]) GetBest() V {
	return f.estimates[0].sample
}

// GetSecondBest returns the second best estimate.
func (f *WindowedFilter[V]) GetSecondBest() V {
	return f.estimates[1].sample
}

// GetThirdBest returns the third best estimate.
func (f *WindowedFilter[V]) GetThirdBest() V {
	return f.estimates[2].sample
}
