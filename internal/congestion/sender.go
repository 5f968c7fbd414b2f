// Package congestion implements a model-based congestion-control
// decision engine for subflows of a multipath transport.
//
// On each acknowledgment the engine updates its model of the path:
//
//	bottleneckBandwidth = windowedMax(delivered / elapsed, 10 round trips)
//	minRTT = windowedMin(rtt, 10 seconds)
//
// and derives a pacing rate, a congestion window and a burst-size goal
// from gain-scheduled multiples of that model. The core does not react
// directly to individual losses or delays, but it detects token-bucket
// traffic policers and paces at the policed rate while one is present,
// and it scales the pacing gain by the subflow's measured share of the
// aggregate rate across its multipath group.
package congestion

import (
	"sync/atomic"
	"time"

	"github.com/mpflow/wbbr/internal/protocol"
	"github.com/mpflow/wbbr/internal/utils"
)

// A Mode decides how fast to send.
type Mode uint8

const (
	// ModeStartup ramps up the sending rate rapidly to fill the pipe.
	ModeStartup Mode = iota
	// ModeDrain drains the queue created during startup.
	ModeDrain
	// ModeProbeBW discovers and shares bandwidth by pacing around the
	// estimated rate.
	ModeProbeBW
	// ModeProbeRTT cuts the window to the minimum to probe min RTT.
	ModeProbeRTT
)

func (m Mode) String() string {
	switch m {
	case ModeStartup:
		return "Startup"
	case ModeDrain:
		return "Drain"
	case ModeProbeBW:
		return "ProbeBW"
	case ModeProbeRTT:
		return "ProbeRTT"
	default:
		return "Invalid"
	}
}

const cycleLen = 8 // number of phases in a pacing gain cycle

const (
	// Window length of the max-bandwidth filter, in rounds.
	bwWindowRounds = cycleLen + 2
	// Window length of the min-RTT filter.
	minRTTWindow = 10 * time.Second
	// Minimum time spent at minCwndTarget in ProbeRTT mode.
	probeRTTDuration = 200 * time.Millisecond
	// Use a single-segment burst goal below this pacing rate (bit/s).
	minBurstRate = 1200000
	// Never aim for more segments per burst than this.
	maxBurstSegments = 127

	// 2/ln(2), the smallest pacing gain that still doubles the sending
	// rate each round trip during startup.
	highGain = GainUnit*2885/1000 + 1
	// 1/highGain drains the queue built during startup in about one
	// round.
	drainGain = GainUnit * 1000 / 2885
	// The steady-state window gain tolerates delayed and stretched
	// acks.
	cwndGain = GainUnit * 2
	// Randomize the initial gain-cycle phase over this many phases.
	cycleRand = 7

	// Keep at least this many packets in flight. A sliding window
	// acking every other packet needs 4 for smooth operation.
	minCwndTarget protocol.PacketCount = 4

	// Startup is considered to have filled the pipe when the bandwidth
	// estimate grows by less than fullBwThresh (25%) for fullBwRounds
	// consecutive non-app-limited rounds.
	fullBwThresh = GainUnit * 5 / 4
	fullBwRounds = 3
)

// Long-term ("LT") bandwidth estimator parameters.
const (
	// Minimum number of rounds in an LT sampling interval.
	ltIntervalMinRounds = 4
	// An interval is lossy, and we may be policed, above this
	// lost/delivered ratio (50/256 ≈ 20%).
	ltLossThresh = 50
	// Two intervals are consistent if their rates differ by at most
	// 1/8...
	ltBwRatio = GainUnit / 8
	// ...or by at most this many bytes per second.
	ltBwDiffBytesPerSecond = 500
	// Once policed, use the LT estimate for this many round trips.
	ltBwMaxRounds = 48
)

// The pacing-gain cycle used in ProbeBW: probe above the estimate for
// one phase, drain below it for one, then cruise.
var pacingGainCycle = [cycleLen]uint32{
	GainUnit * 5 / 4,
	GainUnit * 3 / 4,
	GainUnit, GainUnit, GainUnit,
	GainUnit, GainUnit, GainUnit,
}

// A Config configures a Sender. The zero value of every field selects
// a default.
type Config struct {
	Clock    Clock
	RTTStats *utils.RTTStats
	// InitialCongestionWindow in packets.
	InitialCongestionWindow protocol.PacketCount
	// MaxCongestionWindow is the global clamp, in packets.
	MaxCongestionWindow protocol.PacketCount
	// MaxPacingRate caps the pacing rate, in bytes per second. Zero
	// means no cap.
	MaxPacingRate uint64
	// MSS is the maximum segment size in bytes.
	MSS    protocol.ByteCount
	Logger utils.Logger
	Tracer Tracer
}

// A Sender is the decision engine for one subflow. It is created at
// subflow establishment, mutated exclusively by that subflow's
// acknowledgment processing, and discarded when the subflow closes.
// Siblings of the same Group only ever read the published
// instantaneous rate.
type Sender struct {
	clock    Clock
	rttStats *utils.RTTStats
	logger   utils.Logger
	tracer   Tracer
	group    *Group
	rand     utils.Rand

	initialCwnd   protocol.PacketCount
	maxCwnd       protocol.PacketCount
	maxPacingRate uint64
	mss           protocol.ByteCount

	mode       Mode
	pacingGain uint32 // current gain for the pacing rate, GainUnit-scaled
	cwndGain   uint32 // current gain for the congestion window

	maxBwFilter *WindowedFilter[Bandwidth]
	minRTT      minRTTFilter

	roundCount         int64
	nextRoundDelivered protocol.PacketCount
	roundStart         bool

	cycleIdx   int
	cycleStamp time.Time

	// Long-term sampling sub-state, see lt_estimator.go.
	ltSampling      bool
	ltUseBw         bool
	ltBw            Bandwidth
	ltRoundCount    int
	ltLastStamp     time.Time
	ltLastDelivered protocol.PacketCount
	ltLastLost      protocol.PacketCount

	priorState         ConnectionState
	packetConservation bool
	restoreCwnd        bool
	priorCwnd          protocol.PacketCount
	fullBw             Bandwidth
	fullBwCount        int

	probeRTTDoneStamp time.Time
	probeRTTRoundDone bool
	idleRestart       bool
	hasSeenRTT        bool

	cwnd       protocol.PacketCount
	pacingRate uint64 // bytes per second
	burstGoal  protocol.PacketCount

	instantRate atomic.Uint64
	sendable    atomic.Bool
}

// NewSender creates the engine for one subflow. If the transport stack
// already has a smoothed RTT for the path, the initial pacing rate is
// derived from it at the high gain.
func NewSender(conf Config) *Sender {
	if conf.Clock == nil {
		conf.Clock = DefaultClock{}
	}
	if conf.RTTStats == nil {
		conf.RTTStats = &utils.RTTStats{}
	}
	if conf.InitialCongestionWindow == 0 {
		conf.InitialCongestionWindow = protocol.InitialCongestionWindow
	}
	if conf.MaxCongestionWindow == 0 {
		conf.MaxCongestionWindow = protocol.DefaultMaxCongestionWindow
	}
	if conf.MSS == 0 {
		conf.MSS = protocol.DefaultMSS
	}
	if conf.Logger == nil {
		conf.Logger = utils.DefaultLogger
	}

	now := conf.Clock.Now()
	s := &Sender{
		clock:         conf.Clock,
		rttStats:      conf.RTTStats,
		logger:        conf.Logger,
		tracer:        conf.Tracer,
		initialCwnd:   conf.InitialCongestionWindow,
		maxCwnd:       conf.MaxCongestionWindow,
		maxPacingRate: conf.MaxPacingRate,
		mss:           conf.MSS,
		maxBwFilter:   NewWindowedMaxFilter[Bandwidth](bwWindowRounds),
		minRTT:        newMinRTTFilter(minRTTWindow, conf.RTTStats.MinRTT(), now),
		priorState:    StateOpen,
		cwnd:          conf.InitialCongestionWindow,
	}
	s.initPacingRateFromRTT()
	s.resetLtSampling(now, &AckState{})
	s.enterStartup()
	return s
}

// OnAck is the engine's single entry point, invoked once per
// acknowledgment with the delivery-rate sample and the ack-time
// connection facts. It never blocks and runs to completion
// synchronously.
func (s *Sender) OnAck(now time.Time, rs *RateSample, conn *AckState) {
	s.updateModel(now, rs, conn)

	bw := s.bandwidth()
	s.instantRate.Store(uint64(bw))

	weightedGain := uint32(uint64(s.pacingGain) * s.Weight() >> GainScale)
	s.setPacingRate(bw, weightedGain)
	s.setBurstGoal()
	s.setCwnd(rs, conn, bw, s.cwndGain)

	if s.tracer != nil {
		s.tracer.UpdatedMetrics(s.BandwidthEstimate(), s.MinRTT(), s.cwnd, s.pacingRate)
	}
}

func (s *Sender) updateModel(now time.Time, rs *RateSample, conn *AckState) {
	s.updateBandwidth(now, rs, conn)
	s.updateCyclePhase(now, rs)
	s.checkFullBwReached(rs)
	s.checkDrain(now, conn)
	s.updateMinRTT(now, rs, conn)
}

// maxBw returns the windowed-max recent bandwidth sample.
func (s *Sender) maxBw() Bandwidth {
	return s.maxBwFilter.GetBest()
}

// bandwidth returns the estimated bandwidth of the path: the policed
// rate while the long-term estimator is active, the windowed max
// otherwise.
func (s *Sender) bandwidth() Bandwidth {
	if s.ltUseBw {
		return s.ltBw
	}
	return s.maxBw()
}

// fullBwReached reports whether we estimate that startup filled the
// pipe.
func (s *Sender) fullBwReached() bool {
	return s.fullBwCount >= fullBwRounds
}

// updateBandwidth folds the delivery-rate sample into the model:
// round-trip boundary detection, long-term sampling, and the max
// filter.
func (s *Sender) updateBandwidth(now time.Time, rs *RateSample, conn *AckState) {
	s.roundStart = false
	// Sub-microsecond intervals truncate to zero in the rate division.
	if rs.Delivered < 0 || rs.Interval < time.Microsecond {
		return // not a valid observation
	}

	// A round trip has passed once the delivered counter overtakes the
	// marker set when the round began.
	if rs.PriorDelivered >= s.nextRoundDelivered {
		s.nextRoundDelivered = conn.Delivered
		s.roundCount++
		s.roundStart = true
		s.packetConservation = false
	}

	s.ltSample(now, rs, conn)

	bw := bandwidthFromSample(rs.Delivered, rs.Interval)

	// App-limited samples reflect application behavior rather than the
	// path, and would drag the estimate down. Only let one through if
	// it describes the path at least as well as the current model.
	if !rs.IsAppLimited || bw >= s.maxBw() {
		s.maxBwFilter.Update(bw, s.roundCount)
	}
}

// checkFullBwReached estimates whether startup filled the pipe, using
// the change in delivery rate across rounds. Three plateaued rounds
// are required: the first grows the receive window, the second fills
// it, the third yields the higher delivery-rate samples.
func (s *Sender) checkFullBwReached(rs *RateSample) {
	if s.fullBwReached() || !s.roundStart || rs.IsAppLimited {
		return
	}

	thresh := Bandwidth(uint64(s.fullBw) * fullBwThresh >> GainScale)
	if s.maxBw() >= thresh {
		s.fullBw = s.maxBw()
		s.fullBwCount = 0
		return
	}
	s.fullBwCount++
}

// checkDrain leaves startup once the pipe is estimated full, and
// leaves drain once the queue built during startup has emptied.
func (s *Sender) checkDrain(now time.Time, conn *AckState) {
	if s.mode == ModeStartup && s.fullBwReached() {
		s.switchMode(ModeDrain)
		s.pacingGain = drainGain // pace slowly to drain
		s.cwndGain = highGain    // but maintain the window
	}
	if s.mode == ModeDrain && conn.PacketsInFlight <= s.targetCwnd(s.maxBw(), GainUnit) {
		s.enterProbeBW(now) // queue is drained
	}
}

// updateMinRTT tracks the min-RTT filter and drives ProbeRTT: when the
// filter expires the engine dips the window to the minimum target for
// max(200ms, 1 round trip) so that competing subflows drain the
// bottleneck queue together and the true propagation delay becomes
// observable.
func (s *Sender) updateMinRTT(now time.Time, rs *RateSample, conn *AckState) {
	filterExpired := s.minRTT.Expired(now)
	s.minRTT.Update(now, rs.RTT)

	if filterExpired && !s.idleRestart && s.mode != ModeProbeRTT {
		s.switchMode(ModeProbeRTT)
		s.pacingGain = GainUnit
		s.cwndGain = GainUnit
		s.saveCwnd() // note the window so it can be restored
		s.probeRTTDoneStamp = time.Time{}
	}

	if s.mode == ModeProbeRTT {
		// The deliberate window starvation produces low-rate samples;
		// the stack marks the connection app-limited for the duration
		// (see ShouldMarkAppLimited) so they don't enter the model.
		if s.probeRTTDoneStamp.IsZero() {
			if conn.PacketsInFlight <= minCwndTarget {
				s.probeRTTDoneStamp = now.Add(probeRTTDuration)
				s.probeRTTRoundDone = false
				s.nextRoundDelivered = conn.Delivered
			}
		} else {
			if s.roundStart {
				s.probeRTTRoundDone = true
			}
			if s.probeRTTRoundDone && now.After(s.probeRTTDoneStamp) {
				s.minRTT.Refresh(now)
				s.restoreCwnd = true // snap back to the pre-dip window
				s.resetMode(now)
			}
		}
	}
	s.idleRestart = false
}

// ShouldMarkAppLimited reports whether the transport stack should mark
// the connection app-limited, suppressing the low-rate samples produced
// while the engine deliberately starves the window in ProbeRTT.
func (s *Sender) ShouldMarkAppLimited() bool {
	return s.mode == ModeProbeRTT
}

func (s *Sender) switchMode(mode Mode) {
	if mode == s.mode {
		return
	}
	s.logger.Debugf("mode %s -> %s (round %d)", s.mode, mode, s.roundCount)
	s.mode = mode
	if s.tracer != nil {
		s.tracer.UpdatedMode(mode)
	}
}

func (s *Sender) enterStartup() {
	s.switchMode(ModeStartup)
	s.pacingGain = highGain
	s.cwndGain = highGain
}

func (s *Sender) enterProbeBW(now time.Time) {
	s.switchMode(ModeProbeBW)
	s.pacingGain = GainUnit
	s.cwndGain = cwndGain
	// Start at a pseudo-random phase, excluding the probing phase, so
	// that flows sharing a bottleneck don't synchronize their cycles.
	s.cycleIdx = cycleLen - 1 - int(s.rand.Int31n(cycleRand))
	s.advanceCyclePhase(now)
}

// resetMode re-enters startup or steady-state probing depending on
// whether the pipe is already known to be full. Called on leaving
// ProbeRTT.
func (s *Sender) resetMode(now time.Time) {
	if !s.fullBwReached() {
		s.enterStartup()
	} else {
		s.enterProbeBW(now)
	}
}

// updateCyclePhase rotates the pacing gain to converge to a fair share
// of the available bandwidth. Only active in ProbeBW, and suspended
// while the long-term estimator pins the gain.
func (s *Sender) updateCyclePhase(now time.Time, rs *RateSample) {
	if s.mode == ModeProbeBW && !s.ltUseBw && s.isNextCyclePhase(now, rs) {
		s.advanceCyclePhase(now)
	}
}

// isNextCyclePhase ends a cycle phase when its wall-clock duration has
// elapsed and/or the phase's in-flight target was hit.
func (s *Sender) isNextCyclePhase(now time.Time, rs *RateSample) bool {
	isFullLength := now.Sub(s.cycleStamp) > s.minRTT.Get()

	// A gain of 1.0 paces at the estimated rate to use the pipe without
	// growing the queue; wall-clock time alone decides.
	if s.pacingGain == GainUnit {
		return isFullLength
	}

	// A gain above 1.0 probes for bandwidth by trying to raise inflight
	// to gain*BDP; that can take longer than one min RTT on short
	// paths. Don't persist once packets are lost, since a shallow
	// buffer may simply not hold that much.
	if s.pacingGain > GainUnit {
		return isFullLength &&
			(rs.Losses > 0 || rs.PriorInFlight >= s.targetCwnd(s.maxBw(), s.pacingGain))
	}

	// A gain below 1.0 drains the queue added by probing. Once inflight
	// matches the BDP the queue is empty; persisting would underuse the
	// pipe.
	return isFullLength || rs.PriorInFlight <= s.targetCwnd(s.maxBw(), GainUnit)
}

func (s *Sender) advanceCyclePhase(now time.Time) {
	s.cycleIdx = (s.cycleIdx + 1) & (cycleLen - 1)
	s.cycleStamp = now
	s.pacingGain = pacingGainCycle[s.cycleIdx]
}

// targetCwnd right-sizes the window from the BDP: bw * minRTT * gain,
// plus headroom for full bursts queued on both end hosts, rounded up to
// an even packet count to reduce sensitivity to delayed acks.
func (s *Sender) targetCwnd(bw Bandwidth, gain uint32) protocol.PacketCount {
	// Without a valid RTT sample ever, cap at the default initial
	// window and slow-start toward something safe.
	if s.minRTT.Get() == InfiniteRTT {
		return s.initialCwnd
	}

	w := uint64(bw) * uint64(s.minRTT.Get().Microseconds())
	cwnd := protocol.PacketCount(((w * uint64(gain) >> GainScale) + BwUnit - 1) / BwUnit)

	// Allow enough extra full-sized bursts in flight to keep the end
	// systems busy.
	cwnd += 3 * s.burstGoal

	// Round up to the next even number.
	cwnd = (cwnd + 1) &^ 1

	return cwnd
}

// saveCwnd records the last known good window so it can be restored
// after losses or a ProbeRTT dip.
func (s *Sender) saveCwnd() {
	if !s.priorState.inRecovery() && s.mode != ModeProbeRTT {
		s.priorCwnd = s.cwnd // this window is good enough
	} else { // recovery or ProbeRTT have temporarily cut the window
		s.priorCwnd = max(s.priorCwnd, s.cwnd)
	}
}

// OnEnterRecovery is called by the transport stack when the subflow
// enters loss recovery, before the acknowledgment that triggered it is
// processed. The saved window is restored when recovery ends.
func (s *Sender) OnEnterRecovery() {
	s.saveCwnd()
}

// OnConnectionStateChange is called when loss detection moves the
// subflow to a new state. An RTO (StateLoss) invalidates the full-pipe
// estimate and counts as both a round boundary and a lossy long-term
// sample.
func (s *Sender) OnConnectionStateChange(now time.Time, state ConnectionState, conn *AckState) {
	if state != StateLoss {
		return
	}
	s.priorState = StateLoss
	s.fullBw = 0
	s.roundStart = true // treat the RTO like the end of a round
	s.ltSample(now, &RateSample{Losses: 1}, conn)
}

// OnApplicationIdleRestart is called when transmission resumes after an
// app-limited idle period. Pacing snaps back to the estimated rate in
// steady state, since no extra speed is needed and bursting above it
// would only fill buffers.
func (s *Sender) OnApplicationIdleRestart() {
	s.idleRestart = true
	if s.mode == ModeProbeBW {
		s.setPacingRate(s.bandwidth(), GainUnit)
	}
}

// UndoCwnd returns the window to use when the stack undoes a spurious
// recovery. The engine doesn't always reduce the window on losses, so
// there is nothing to undo.
func (s *Sender) UndoCwnd() protocol.PacketCount {
	return s.cwnd
}

// applyRecoveryOrRestore adjusts the window for losses and recovery
// transitions before the model-based target is applied. During the
// first round of recovery, packet conservation releases exactly one
// packet per packet acked. Returns true if the conservation window was
// committed.
func (s *Sender) applyRecoveryOrRestore(rs *RateSample, conn *AckState, acked protocol.PacketCount, newCwnd *protocol.PacketCount) bool {
	state := conn.State
	cwnd := s.cwnd

	// An ack for P packets should release at most 2*P packets: first
	// deduct the losses here, then slow-start toward the target in
	// setCwnd.
	if rs.Losses > 0 {
		cwnd = protocol.PacketCount(max(int64(cwnd)-int64(rs.Losses), 1))
	}

	if state.inRecovery() && !s.priorState.inRecovery() {
		// Starting the first round of recovery.
		s.saveCwnd()
		s.packetConservation = true
		s.nextRoundDelivered = conn.Delivered // start the round now
		// Cut any window unused due to app behavior or send deferral.
		cwnd = conn.PacketsInFlight + acked
	} else if s.priorState.inRecovery() && !state.inRecovery() {
		// Exiting loss recovery.
		s.restoreCwnd = true
		s.packetConservation = false
	}
	s.priorState = state

	if s.restoreCwnd {
		// Restore the window saved before recovery or ProbeRTT.
		cwnd = max(cwnd, s.priorCwnd)
		s.restoreCwnd = false
	}

	if s.packetConservation {
		*newCwnd = max(cwnd, conn.PacketsInFlight+acked)
		return true
	}
	*newCwnd = cwnd
	return false
}

// setCwnd slow-starts the window toward the target (if the estimate is
// growing or losses drew it down), or snaps down to the target when
// above it.
func (s *Sender) setCwnd(rs *RateSample, conn *AckState, bw Bandwidth, gain uint32) {
	acked := rs.AckedPackets
	if acked == 0 {
		return
	}

	var cwnd protocol.PacketCount
	if !s.applyRecoveryOrRestore(rs, conn, acked, &cwnd) {
		target := s.targetCwnd(bw, gain)
		if s.fullBwReached() {
			// Only cut the window once the pipe was filled.
			cwnd = min(cwnd+acked, target)
		} else if cwnd < target || conn.Delivered < s.initialCwnd {
			cwnd += acked
		}
		cwnd = max(cwnd, minCwndTarget)
	}

	cwnd = min(cwnd, s.maxCwnd) // apply the global cap
	if s.mode == ModeProbeRTT { // drain the queue, refresh min RTT
		cwnd = min(cwnd, minCwndTarget)
	}
	s.cwnd = cwnd
}

// initPacingRateFromRTT bootstraps the pacing rate to
// highGain * initialCwnd / RTT, using a nominal 1ms RTT until the
// transport stack has a smoothed RTT sample.
func (s *Sender) initPacingRateFromRTT() {
	var rttUS uint64
	if srtt := s.rttStats.SmoothedRTT(); srtt > 0 {
		rttUS = uint64(max(srtt.Microseconds(), 1))
		s.hasSeenRTT = true
	} else {
		rttUS = 1000
	}
	bw := Bandwidth(uint64(s.cwnd) * BwUnit / rttUS)
	s.pacingRate = s.capPacingRate(rateBytesPerSecond(bw, s.mss, highGain))
}

func (s *Sender) capPacingRate(rate uint64) uint64 {
	if s.maxPacingRate > 0 && rate > s.maxPacingRate {
		return s.maxPacingRate
	}
	return rate
}

// setPacingRate paces using the current bandwidth estimate and a gain.
// The rate is never lowered until the pipe is estimated full, so a low
// early sample can't cap startup's ramp.
func (s *Sender) setPacingRate(bw Bandwidth, gain uint32) {
	rate := s.capPacingRate(rateBytesPerSecond(bw, s.mss, gain))
	if !s.hasSeenRTT && s.rttStats.SmoothedRTT() > 0 {
		// An RTT sample just became available; re-bootstrap.
		s.initPacingRateFromRTT()
	}
	if s.fullBwReached() || rate > s.pacingRate {
		s.pacingRate = rate
	}
}

// setBurstGoal aims each transmission burst at roughly 1ms worth of
// data at the current pacing rate, between 1 (2 above minBurstRate)
// and maxBurstSegments segments.
func (s *Sender) setBurstGoal() {
	var minSegments protocol.PacketCount = 2
	if s.pacingRate < minBurstRate/8 {
		minSegments = 1
	}
	goal := protocol.PacketCount(s.pacingRate / 1000 / uint64(s.mss))
	s.burstGoal = min(max(goal, minSegments), maxBurstSegments)
}

// Mode returns the engine's current mode.
func (s *Sender) Mode() Mode {
	return s.mode
}

// CongestionWindow returns the committed congestion window in packets.
func (s *Sender) CongestionWindow() protocol.PacketCount {
	return s.cwnd
}

// PacingRate returns the committed pacing rate in bytes per second.
func (s *Sender) PacingRate() uint64 {
	return s.pacingRate
}

// BurstSizeGoal returns the number of segments to aim for per
// transmission burst. Zero means the stack's default, before the first
// acknowledgment was processed.
func (s *Sender) BurstSizeGoal() protocol.PacketCount {
	return s.burstGoal
}

// BandwidthEstimate returns the modeled path bandwidth in bytes per
// second.
func (s *Sender) BandwidthEstimate() uint64 {
	return rateBytesPerSecond(s.bandwidth(), s.mss, GainUnit)
}

// MinRTT returns the current min-RTT estimate, InfiniteRTT before the
// first sample.
func (s *Sender) MinRTT() time.Duration {
	return s.minRTT.Get()
}

// PacingGain returns the current GainUnit-scaled pacing gain.
func (s *Sender) PacingGain() uint32 {
	return s.pacingGain
}

// CwndGain returns the current GainUnit-scaled window gain.
func (s *Sender) CwndGain() uint32 {
	return s.cwndGain
}

// InLongTermMode reports whether the policer detector currently pins
// the bandwidth estimate.
func (s *Sender) InLongTermMode() bool {
	return s.ltUseBw
}

// Close releases the tracer. The sender must not be used afterwards.
func (s *Sender) Close() {
	if s.tracer != nil {
		s.tracer.Close()
	}
}
