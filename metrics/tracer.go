// Package metrics implements a Prometheus exporter for
// congestion-engine events.
package metrics

import (
	"time"

	"github.com/mpflow/wbbr/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "wbbr"

var (
	modeTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "mode_transitions_total",
			Help:      "Congestion mode transitions",
		},
		[]string{"subflow", "mode"},
	)
	longTermActivations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "long_term_mode_activations_total",
			Help:      "Activations of the policed-rate estimator",
		},
		[]string{"subflow"},
	)
	bandwidthEstimate = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "bandwidth_estimate_bytes_per_second",
			Help:      "Modeled path bandwidth",
		},
		[]string{"subflow"},
	)
	minRTT = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "min_rtt_seconds",
			Help:      "Windowed minimum round-trip time",
		},
		[]string{"subflow"},
	)
	congestionWindow = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "congestion_window_packets",
			Help:      "Committed congestion window",
		},
		[]string{"subflow"},
	)
	pacingRate = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "pacing_rate_bytes_per_second",
			Help:      "Committed pacing rate",
		},
		[]string{"subflow"},
	)
)

// NewSubflowTracer creates a tracer for one subflow, registering the
// collectors with the default Prometheus registerer. The tracer should
// be set on the congestion Config of the subflow's sender.
func NewSubflowTracer(subflow string) logging.SubflowTracer {
	return NewSubflowTracerWithRegisterer(prometheus.DefaultRegisterer, subflow)
}

// NewSubflowTracerWithRegisterer creates a tracer for one subflow using
// a given Prometheus registerer.
func NewSubflowTracerWithRegisterer(registerer prometheus.Registerer, subflow string) logging.SubflowTracer {
	for _, c := range [...]prometheus.Collector{
		modeTransitions,
		longTermActivations,
		bandwidthEstimate,
		minRTT,
		congestionWindow,
		pacingRate,
	} {
		if err := registerer.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	return &tracer{subflow: subflow}
}

type tracer struct {
	subflow string
}

var _ logging.SubflowTracer = &tracer{}

func (t *tracer) UpdatedMode(mode logging.Mode) {
	modeTransitions.WithLabelValues(t.subflow, mode.String()).Inc()
}

func (t *tracer) UpdatedMetrics(bandwidth uint64, rtt time.Duration, cwnd logging.PacketCount, rate uint64) {
	bandwidthEstimate.WithLabelValues(t.subflow).Set(float64(bandwidth))
	if rtt != logging.InfiniteRTT {
		minRTT.WithLabelValues(t.subflow).Set(rtt.Seconds())
	}
	congestionWindow.WithLabelValues(t.subflow).Set(float64(cwnd))
	pacingRate.WithLabelValues(t.subflow).Set(float64(rate))
}

func (t *tracer) EnteredLongTermMode(uint64) {
	longTermActivations.WithLabelValues(t.subflow).Inc()
}

func (t *tracer) ExitedLongTermMode() {}

func (t *tracer) Close() {
	bandwidthEstimate.DeleteLabelValues(t.subflow)
	minRTT.DeleteLabelValues(t.subflow)
	congestionWindow.DeleteLabelValues(t.subflow)
	pacingRate.DeleteLabelValues(t.subflow)
}
