package qlog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mpflow/wbbr/logging"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	*bytes.Buffer
	closed bool
}

func (c *nopWriteCloser) Close() error {
	c.closed = true
	return nil
}

func TestTracerWritesOneEventPerLine(t *testing.T) {
	buf := &nopWriteCloser{Buffer: &bytes.Buffer{}}
	tr := NewSubflowTracer(buf)

	tr.UpdatedMode(logging.ModeStartup)
	tr.UpdatedMetrics(1_000_000, 10*time.Millisecond, 42, 1_250_000)
	tr.EnteredLongTermMode(500_000)
	tr.ExitedLongTermMode()
	tr.Close()
	require.True(t, buf.closed)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	require.Contains(t, lines[0], `"congestion","mode_updated"`)
	require.Contains(t, lines[0], `"mode":"Startup"`)

	require.Contains(t, lines[1], `"metrics_updated"`)
	require.Contains(t, lines[1], `"bandwidth_bytes_per_second":1000000`)
	require.Contains(t, lines[1], `"min_rtt_ms":10`)
	require.Contains(t, lines[1], `"congestion_window_packets":42`)
	require.Contains(t, lines[1], `"pacing_rate_bytes_per_second":1250000`)

	require.Contains(t, lines[2], `"long_term_mode_entered"`)
	require.Contains(t, lines[2], `"policed_rate_bytes_per_second":500000`)

	require.Contains(t, lines[3], `"long_term_mode_exited"`)
}

func TestTracerOmitsUnknownMinRTT(t *testing.T) {
	buf := &nopWriteCloser{Buffer: &bytes.Buffer{}}
	tr := NewSubflowTracer(buf)

	tr.UpdatedMetrics(0, logging.InfiniteRTT, 10, 42_000_000)
	require.NotContains(t, buf.String(), "min_rtt_ms")
}
