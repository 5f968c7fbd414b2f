package logging

import "time"

// The NullSubflowTracer is a SubflowTracer that does nothing.
// It is useful for embedding when only some callbacks are of interest.
type NullSubflowTracer struct{}

var _ SubflowTracer = &NullSubflowTracer{}

func (n NullSubflowTracer) UpdatedMode(Mode) {}
func (n NullSubflowTracer) UpdatedMetrics(bandwidth uint64, minRTT time.Duration, cwnd PacketCount, pacingRate uint64) {
}
func (n NullSubflowTracer) EnteredLongTermMode(bandwidth uint64) {}
func (n NullSubflowTracer) ExitedLongTermMode()                  {}
func (n NullSubflowTracer) Close()                               {}
