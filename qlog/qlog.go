// Package qlog exports congestion-engine traces in a qlog-inspired
// newline-delimited JSON format, one event array per line.
package qlog

import (
	"io"
	"time"

	"github.com/mpflow/wbbr/logging"

	"github.com/francoispqt/gojay"
)

type tracer struct {
	w             io.WriteCloser
	referenceTime time.Time
}

// NewSubflowTracer creates a SubflowTracer writing events to w.
// Event timestamps are relative to the tracer's creation.
func NewSubflowTracer(w io.WriteCloser) logging.SubflowTracer {
	return &tracer{
		w:             w,
		referenceTime: time.Now(),
	}
}

var _ logging.SubflowTracer = &tracer{}

func (t *tracer) record(details eventDetails) {
	ev := event{
		RelativeTime: time.Since(t.referenceTime),
		eventDetails: details,
	}
	enc := gojay.NewEncoder(t.w)
	if err := enc.EncodeArray(ev); err != nil {
		return
	}
	t.w.Write([]byte{'\n'})
}

func (t *tracer) UpdatedMode(mode logging.Mode) {
	t.record(eventModeUpdated{mode: mode})
}

func (t *tracer) UpdatedMetrics(bandwidth uint64, minRTT time.Duration, cwnd logging.PacketCount, pacingRate uint64) {
	t.record(eventMetricsUpdated{
		bandwidth:  bandwidth,
		minRTT:     minRTT,
		cwnd:       cwnd,
		pacingRate: pacingRate,
	})
}

func (t *tracer) EnteredLongTermMode(bandwidth uint64) {
	t.record(eventLongTermEntered{bandwidth: bandwidth})
}

func (t *tracer) ExitedLongTermMode() {
	t.record(eventLongTermExited{})
}

func (t *tracer) Close() {
	t.w.Close()
}
