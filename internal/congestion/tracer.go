package congestion

import (
	"time"

	"github.com/mpflow/wbbr/internal/protocol"
)

// A Tracer records engine decisions for the diagnostics collaborator.
// All callbacks run synchronously on the acknowledgment path and must
// not block.
type Tracer interface {
	// UpdatedMode is called on every mode transition.
	UpdatedMode(Mode)
	// UpdatedMetrics is called after every processed acknowledgment
	// with the committed outputs. Bandwidth and pacing rate are in
	// bytes per second, the congestion window in packets.
	UpdatedMetrics(bandwidth uint64, minRTT time.Duration, cwnd protocol.PacketCount, pacingRate uint64)
	// EnteredLongTermMode is called when the policer detector activates
	// with the policed-rate estimate in bytes per second.
	EnteredLongTermMode(bandwidth uint64)
	// ExitedLongTermMode is called when long-term mode is abandoned and
	// gain cycling resumes.
	ExitedLongTermMode()
	// Close is called when the subflow closes.
	Close()
}
