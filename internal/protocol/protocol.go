// Package protocol holds the counting types and connection-wide defaults
// shared by the congestion packages.
package protocol

// A ByteCount counts bytes.
type ByteCount uint64

// A PacketCount counts packets. Congestion windows are maintained in
// packets, matching the granularity at which the transport stack
// reports delivery and loss.
type PacketCount uint64

// DefaultMSS is the maximum segment size assumed when the transport
// stack doesn't report one.
const DefaultMSS ByteCount = 1460

// InitialCongestionWindow is the default initial congestion window.
// It also caps the target window as long as no valid RTT sample has
// been obtained.
const InitialCongestionWindow PacketCount = 10

// DefaultMaxCongestionWindow is the default clamp applied to every
// computed congestion window.
const DefaultMaxCongestionWindow PacketCount = 10000
