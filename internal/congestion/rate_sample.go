package congestion

import (
	"time"

	"github.com/mpflow/wbbr/internal/protocol"
)

// A RateSample summarizes what happened on the wire between the
// previous acknowledgment and this one. It is built by the transport
// stack and handed to the engine once per acknowledgment.
type RateSample struct {
	// Delivered is the number of packets delivered over Interval.
	// Negative if no valid sample could be taken.
	Delivered int64
	// Interval is the send or ack interval the delivery was measured
	// over, whichever is longer. Non-positive if invalid.
	Interval time.Duration
	// RTT is the round-trip time sampled from the most recently acked
	// packet. Non-positive if unavailable.
	RTT time.Duration
	// Losses is the number of packets marked lost upon this ack.
	Losses protocol.PacketCount
	// AckedPackets is the number of packets newly (s)acked upon this
	// ack.
	AckedPackets protocol.PacketCount
	// PriorInFlight is the number of packets that were in flight before
	// this ack was processed.
	PriorInFlight protocol.PacketCount
	// PriorDelivered is the value of the cumulative delivered counter
	// when the most recently acked packet was sent. Used to detect
	// round-trip boundaries.
	PriorDelivered protocol.PacketCount
	// IsAppLimited reports that the sample was taken while the sender
	// had no more data to send, making it a poor estimate of path
	// capacity.
	IsAppLimited bool
}

// ConnectionState is the loss-recovery sub-state of the subflow, as
// tracked by the transport stack's loss detection.
type ConnectionState uint8

const (
	StateOpen ConnectionState = iota
	StateDisorder
	StateCWR
	StateRecovery
	StateLoss
)

func (s ConnectionState) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateDisorder:
		return "Disorder"
	case StateCWR:
		return "CWR"
	case StateRecovery:
		return "Recovery"
	case StateLoss:
		return "Loss"
	default:
		return "Invalid"
	}
}

// inRecovery reports whether the state is loss recovery or RTO loss.
func (s ConnectionState) inRecovery() bool {
	return s >= StateRecovery
}

// An AckState carries the connection-wide facts observed when the
// acknowledgment arrived.
type AckState struct {
	// Delivered is the cumulative count of packets delivered so far.
	Delivered protocol.PacketCount
	// Lost is the cumulative count of packets marked lost so far.
	Lost protocol.PacketCount
	// PacketsInFlight is the current number of packets in flight.
	PacketsInFlight protocol.PacketCount
	// State is the current loss-recovery sub-state.
	State ConnectionState
}
