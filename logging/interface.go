// Package logging defines the tracing interface for congestion-engine
// events. This package should not be considered stable.
package logging

import (
	"github.com/mpflow/wbbr/internal/congestion"
	"github.com/mpflow/wbbr/internal/protocol"
)

// A PacketCount counts packets.
type PacketCount = protocol.PacketCount

// A ByteCount counts bytes.
type ByteCount = protocol.ByteCount

// A Mode is a congestion-engine mode.
type Mode = congestion.Mode

const (
	ModeStartup  = congestion.ModeStartup
	ModeDrain    = congestion.ModeDrain
	ModeProbeBW  = congestion.ModeProbeBW
	ModeProbeRTT = congestion.ModeProbeRTT
)

// InfiniteRTT is reported as the min RTT until the first valid sample.
const InfiniteRTT = congestion.InfiniteRTT

// A SubflowTracer records the decisions the engine commits for one
// subflow. Implementations must not block: callbacks run synchronously
// on the acknowledgment path.
type SubflowTracer = congestion.Tracer
