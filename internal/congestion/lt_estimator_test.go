package congestion

import (
	"testing"
	"time"

	"github.com/mpflow/wbbr/internal/protocol"
	"github.com/mpflow/wbbr/internal/utils"

	"github.com/stretchr/testify/require"
)

// newPolicedTestSender uses a 1000-byte MSS so policed rates come out in
// round numbers.
func newPolicedTestSender() *testSender {
	clock := &mockClock{}
	rttStats := &utils.RTTStats{}
	rttStats.UpdateRTT(50 * time.Millisecond)
	return &testSender{
		clock:    clock,
		rttStats: rttStats,
		sender: NewSender(Config{
			Clock:    clock,
			RTTStats: rttStats,
			MSS:      1000,
		}),
	}
}

// startSampling feeds the first lossy acknowledgment, exhausting the
// policer's token reserve.
func (ts *testSender) startSampling() {
	ts.ack(ackEvent{delivered: 10, interval: 10 * time.Millisecond, rtt: 50 * time.Millisecond, losses: 1, inFlight: 50})
}

// lossyInterval feeds one four-round sampling interval delivering total
// packets with the given per-round losses, at 250ms per round.
func (ts *testSender) lossyInterval(total [4]protocol.PacketCount, losses protocol.PacketCount) {
	for _, delivered := range total {
		ts.ack(ackEvent{delivered: delivered, interval: 250 * time.Millisecond, rtt: 50 * time.Millisecond, losses: losses, inFlight: 50})
	}
}

func TestPolicerDetection(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()
	require.True(t, ts.sender.ltSampling)

	// Two consecutive intervals at a consistent ~1000 packets/s with
	// over 20% loss: a token-bucket policer.
	ts.lossyInterval([4]protocol.PacketCount{250, 250, 250, 250}, 65)
	require.False(t, ts.sender.InLongTermMode())
	ts.lossyInterval([4]protocol.PacketCount{263, 263, 262, 262}, 70)
	require.True(t, ts.sender.InLongTermMode())

	// Pace at the average of the two intervals, without probing above
	// it.
	require.Equal(t, uint32(GainUnit), ts.sender.PacingGain())
	require.InDelta(t, 1_025_000, float64(ts.sender.BandwidthEstimate()), 500)
}

func TestPolicerEstimateAbandonedAfterMaxRounds(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()
	ts.lossyInterval([4]protocol.PacketCount{250, 250, 250, 250}, 65)
	ts.lossyInterval([4]protocol.PacketCount{263, 263, 262, 262}, 70)
	require.True(t, ts.sender.InLongTermMode())
	require.Equal(t, ModeProbeBW, ts.sender.Mode())

	// The policed-rate estimate goes stale after 48 round trips and
	// normal gain cycling resumes.
	lossFree := ackEvent{delivered: 250, interval: 250 * time.Millisecond, rtt: 50 * time.Millisecond, inFlight: 50}
	for i := 0; i < 47; i++ {
		ts.ack(lossFree)
		require.True(t, ts.sender.InLongTermMode())
	}
	ts.ack(lossFree)
	require.False(t, ts.sender.InLongTermMode())
	require.Equal(t, ModeProbeBW, ts.sender.Mode())
}

func TestPolicerNotDetectedOnInconsistentIntervals(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()

	// Heavy loss, but the rate tripled between the intervals: that is
	// congestion, not a policer.
	ts.lossyInterval([4]protocol.PacketCount{250, 250, 250, 250}, 65)
	ts.lossyInterval([4]protocol.PacketCount{750, 750, 750, 750}, 200)
	require.False(t, ts.sender.InLongTermMode())
	require.Equal(t, Bandwidth(50331), ts.sender.ltBw)
}

func TestLongTermSamplingAbortsOnAppLimited(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()
	require.True(t, ts.sender.ltSampling)

	// An app-limited interval under-estimates the policed rate.
	ts.ack(ackEvent{delivered: 10, interval: 250 * time.Millisecond, rtt: 50 * time.Millisecond, inFlight: 50, appLimited: true})
	require.False(t, ts.sender.ltSampling)
}

func TestProbeRTTDipAbortsLongTermSampling(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()
	require.True(t, ts.sender.ltSampling)

	// Long loss-free rounds keep the sampling interval open while the
	// min-RTT window runs out.
	slow := ackEvent{delivered: 250, interval: 3 * time.Second, rtt: 60 * time.Millisecond, inFlight: 50}
	for i := 0; i < 4; i++ {
		ts.ack(slow)
	}
	require.Equal(t, ModeProbeRTT, ts.sender.Mode())
	require.True(t, ts.sender.ShouldMarkAppLimited())
	require.True(t, ts.sender.ltSampling)

	// During the dip the stack marks the connection app-limited, and
	// the first such sample aborts the open sampling interval.
	dip := ackEvent{delivered: 10, interval: 10 * time.Millisecond, rtt: 60 * time.Millisecond, inFlight: minCwndTarget, appLimited: true}
	ts.ack(dip)
	require.False(t, ts.sender.ltSampling)

	ts.ack(dip)
	late := dip
	late.interval = 250 * time.Millisecond
	ts.ack(late)
	require.NotEqual(t, ModeProbeRTT, ts.sender.Mode())
	require.False(t, ts.sender.ShouldMarkAppLimited())

	// Once the dip is over, the next loss starts sampling afresh.
	ts.ack(ackEvent{delivered: 250, interval: 250 * time.Millisecond, rtt: 60 * time.Millisecond, losses: 1, inFlight: 50})
	require.True(t, ts.sender.ltSampling)
}

func TestLongTermSamplingAbortsOnOverlongInterval(t *testing.T) {
	ts := newPolicedTestSender()
	ts.startSampling()

	// 16 loss-free rounds: whatever caused the first loss, it was not a
	// policer running out of tokens.
	for i := 0; i < 16; i++ {
		ts.ack(ackEvent{delivered: 250, interval: 250 * time.Millisecond, rtt: 50 * time.Millisecond, inFlight: 50})
	}
	require.False(t, ts.sender.ltSampling)
}
