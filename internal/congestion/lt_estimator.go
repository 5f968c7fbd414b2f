package congestion

import "time"

// Token-bucket traffic policers are common (see "An Internet-Wide
// Analysis of Traffic Policing", SIGCOMM 2016). The engine detects one
// by finding two consecutive sampling intervals with consistent
// throughput and high packet loss, and then explicitly models the
// policed rate instead of chasing an unreachable higher bandwidth,
// which would only produce drops.

// resetLtInterval starts a new long-term sampling interval at the
// current cumulative counters.
func (s *Sender) resetLtInterval(now time.Time, conn *AckState) {
	s.ltLastStamp = now
	s.ltLastDelivered = conn.Delivered
	s.ltLastLost = conn.Lost
	s.ltRoundCount = 0
}

// resetLtSampling completely resets long-term bandwidth sampling.
func (s *Sender) resetLtSampling(now time.Time, conn *AckState) {
	s.ltBw = 0
	s.ltUseBw = false
	s.ltSampling = false
	s.resetLtInterval(now, conn)
}

// ltIntervalDone closes a sampling interval with its average delivery
// rate and judges whether we are policed: two consecutive intervals
// whose rates differ by at most 1/8 relative or 500 bytes/sec absolute
// are consistent, and their average becomes the policed-rate estimate.
func (s *Sender) ltIntervalDone(now time.Time, conn *AckState, bw Bandwidth) {
	if s.ltBw > 0 { // is there a rate from a previous interval?
		diff := s.ltBw - bw
		if bw > s.ltBw {
			diff = bw - s.ltBw
		}
		if uint64(diff)*GainUnit <= ltBwRatio*uint64(s.ltBw) ||
			rateBytesPerSecond(diff, s.mss, GainUnit) <= ltBwDiffBytesPerSecond {
			// Consistent throughput under heavy loss: estimate that we
			// are policed and pace at the average of the two intervals.
			s.ltBw = (bw + s.ltBw) / 2
			s.ltUseBw = true
			s.pacingGain = GainUnit // try to avoid further drops
			s.ltRoundCount = 0
			s.logger.Debugf("long-term mode on, policed rate %d bytes/s", rateBytesPerSecond(s.ltBw, s.mss, GainUnit))
			if s.tracer != nil {
				s.tracer.EnteredLongTermMode(rateBytesPerSecond(s.ltBw, s.mss, GainUnit))
			}
			return
		}
	}
	s.ltBw = bw
	s.resetLtInterval(now, conn)
}

// ltSample advances long-term sampling by one delivery-rate sample.
// While the policed-rate estimate is in use, it only counts down the
// rounds until normal gain cycling resumes.
func (s *Sender) ltSample(now time.Time, rs *RateSample, conn *AckState) {
	if s.ltUseBw {
		if s.mode == ModeProbeBW && s.roundStart {
			s.ltRoundCount++
			if s.ltRoundCount >= ltBwMaxRounds {
				s.resetLtSampling(now, conn) // stop using the LT rate
				if s.tracer != nil {
					s.tracer.ExitedLongTermMode()
				}
				s.enterProbeBW(now) // restart gain cycling
			}
		}
		return
	}

	// Wait for the first loss before sampling, so the policer's token
	// reserve is exhausted and the steady policed rate is what gets
	// measured. Earlier samples include the burst allowance and
	// over-estimate.
	if !s.ltSampling {
		if rs.Losses == 0 {
			return
		}
		s.resetLtInterval(now, conn)
		s.ltSampling = true
	}

	// App-limited intervals under-estimate the policed rate; abort and
	// start over.
	if rs.IsAppLimited {
		s.resetLtSampling(now, conn)
		return
	}

	if s.roundStart {
		s.ltRoundCount++ // count round trips in this interval
	}
	if s.ltRoundCount < ltIntervalMinRounds {
		return // the sampling interval needs to be longer
	}
	if s.ltRoundCount > 4*ltIntervalMinRounds {
		s.resetLtSampling(now, conn) // interval too long to be policed
		return
	}

	// Close the interval on a loss, when the policer tokens are
	// estimated to be exhausted. Closing earlier would under-estimate
	// the policed rate.
	if rs.Losses == 0 {
		return
	}

	lost := conn.Lost - s.ltLastLost
	delivered := conn.Delivered - s.ltLastDelivered
	// Is the loss ratio lost/delivered at least ltLossThresh?
	if delivered == 0 || uint64(lost)<<GainScale < ltLossThresh*uint64(delivered) {
		return
	}

	elapsed := now.Sub(s.ltLastStamp)
	if elapsed < time.Millisecond {
		return // interval too short to judge the average rate; wait
	}
	s.ltIntervalDone(now, conn, bandwidthFromSample(int64(delivered), elapsed))
}
