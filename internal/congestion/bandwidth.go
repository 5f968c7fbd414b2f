package congestion

import (
	"time"

	"github.com/mpflow/wbbr/internal/protocol"
)

// Scale factor for rates in packets/µs, to avoid truncation in the
// bandwidth estimate. The rate unit is roughly (1500 bytes / 1 µs /
// 2^24) ≈ 715 bit/s, which handles rates from 715 bit/s up to about
// 3 Tbit/s. Since the minimum window is 4 packets, the lower bound is
// not a concern.
const (
	BwScale = 24
	BwUnit  = 1 << BwScale
)

// Fractions such as gains are fixed point with unit 256.
const (
	GainScale = 8
	GainUnit  = 1 << GainScale
)

// Bandwidth is a delivery-rate estimate in packets per microsecond,
// left-shifted by BwScale.
type Bandwidth uint64

// bandwidthFromSample computes a delivery-rate sample from a packet
// count and the interval it was observed over. delivered/interval is
// below 1 for most connections, so delivered is scaled up first. The
// interval must be at least one microsecond.
func bandwidthFromSample(delivered int64, interval time.Duration) Bandwidth {
	return Bandwidth(uint64(delivered) * BwUnit / uint64(interval.Microseconds()))
}

// rateBytesPerSecond converts a bandwidth and a gain into bytes per
// second. The multiplication order is chosen carefully so the
// intermediate values fit in a uint64 for rates up to 2.9 Tbit/s and
// gains up to 2.89x.
func rateBytesPerSecond(bw Bandwidth, mss protocol.ByteCount, gain uint32) uint64 {
	rate := uint64(bw)
	rate *= uint64(mss)
	rate *= uint64(gain)
	rate >>= GainScale
	rate *= uint64(time.Second / time.Microsecond)
	return rate >> BwScale
}
