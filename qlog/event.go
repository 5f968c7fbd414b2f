package qlog

import (
	"time"

	"github.com/mpflow/wbbr/logging"

	"github.com/francoispqt/gojay"
)

// An event is one line of the trace:
// [relative time in ms, category, name, data].
type event struct {
	RelativeTime time.Duration
	eventDetails
}

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(float64(e.RelativeTime.Nanoseconds()) / 1e6)
	enc.String("congestion")
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

type eventModeUpdated struct {
	mode logging.Mode
}

var _ eventDetails = eventModeUpdated{}

func (e eventModeUpdated) Name() string { return "mode_updated" }
func (e eventModeUpdated) IsNil() bool  { return false }
func (e eventModeUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("mode", e.mode.String())
}

type eventMetricsUpdated struct {
	bandwidth  uint64
	minRTT     time.Duration
	cwnd       logging.PacketCount
	pacingRate uint64
}

var _ eventDetails = eventMetricsUpdated{}

func (e eventMetricsUpdated) Name() string { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool  { return false }
func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("bandwidth_bytes_per_second", e.bandwidth)
	if e.minRTT != logging.InfiniteRTT {
		enc.Float64Key("min_rtt_ms", float64(e.minRTT.Nanoseconds())/1e6)
	}
	enc.Uint64Key("congestion_window_packets", uint64(e.cwnd))
	enc.Uint64Key("pacing_rate_bytes_per_second", e.pacingRate)
}

type eventLongTermEntered struct {
	bandwidth uint64
}

var _ eventDetails = eventLongTermEntered{}

func (e eventLongTermEntered) Name() string { return "long_term_mode_entered" }
func (e eventLongTermEntered) IsNil() bool  { return false }
func (e eventLongTermEntered) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("policed_rate_bytes_per_second", e.bandwidth)
}

type eventLongTermExited struct{}

var _ eventDetails = eventLongTermExited{}

func (e eventLongTermExited) Name() string                         { return "long_term_mode_exited" }
func (e eventLongTermExited) IsNil() bool                          { return false }
func (e eventLongTermExited) MarshalJSONObject(enc *gojay.Encoder) {}
