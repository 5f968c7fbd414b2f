package utils

import "time"

const (
	rttAlpha = 0.125
	rttBeta  = 0.25
)

// RTTStats provides round-trip statistics for a subflow. It is owned by
// the transport stack and consumed read-only by the congestion engine,
// which uses the smoothed RTT to bootstrap the pacing rate before its
// own min-RTT model has any samples.
type RTTStats struct {
	hasMeasurement bool

	minRTT        time.Duration
	latestRTT     time.Duration
	smoothedRTT   time.Duration
	meanDeviation time.Duration
}

// MinRTT returns the minimum RTT for the entire connection.
// May return Zero if no valid updates have occurred.
func (r *RTTStats) MinRTT() time.Duration { return r.minRTT }

// LatestRTT returns the most recent RTT measurement.
// May return Zero if no valid updates have occurred.
func (r *RTTStats) LatestRTT() time.Duration { return r.latestRTT }

// SmoothedRTT returns the smoothed RTT for the connection.
// May return Zero if no valid updates have occurred.
func (r *RTTStats) SmoothedRTT() time.Duration { return r.smoothedRTT }

// MeanDeviation gets the mean deviation.
func (r *RTTStats) MeanDeviation() time.Duration { return r.meanDeviation }

// HasMeasurement reports whether any valid RTT sample was recorded.
func (r *RTTStats) HasMeasurement() bool { return r.hasMeasurement }

// UpdateRTT updates the RTT based on a new sample. Non-positive samples
// are discarded.
func (r *RTTStats) UpdateRTT(sample time.Duration) {
	if sample <= 0 {
		return
	}

	if r.minRTT == 0 || r.minRTT > sample {
		r.minRTT = sample
	}

	r.latestRTT = sample
	if !r.hasMeasurement {
		r.hasMeasurement = true
		r.smoothedRTT = sample
		r.meanDeviation = sample / 2
		return
	}
	deviation := r.smoothedRTT - sample
	if deviation < 0 {
		deviation = -deviation
	}
	r.meanDeviation = time.Duration((1-rttBeta)*float64(r.meanDeviation) + rttBeta*float64(deviation))
	r.smoothedRTT = time.Duration((1-rttAlpha)*float64(r.smoothedRTT) + rttAlpha*float64(sample))
}

// Reset clears all measurements, e.g. when the subflow migrates paths.
func (r *RTTStats) Reset() {
	r.hasMeasurement = false
	r.minRTT = 0
	r.latestRTT = 0
	r.smoothedRTT = 0
	r.meanDeviation = 0
}
