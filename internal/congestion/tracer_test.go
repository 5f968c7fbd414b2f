package congestion_test

import (
	"testing"
	"time"

	"github.com/mpflow/wbbr/internal/congestion"
	mocklogging "github.com/mpflow/wbbr/internal/mocks/logging"
	"github.com/mpflow/wbbr/internal/protocol"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTracerSeesModeTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mocklogging.NewMockTracer(ctrl)

	tr.EXPECT().UpdatedMode(congestion.ModeStartup)
	s := congestion.NewSender(congestion.Config{Tracer: tr})

	var lastCwnd uint64
	tr.EXPECT().UpdatedMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(bandwidth uint64, minRTT time.Duration, cwnd protocol.PacketCount, pacingRate uint64) {
			lastCwnd = uint64(cwnd)
		},
	)
	s.OnAck(time.Now(), &congestion.RateSample{
		Delivered:    10,
		Interval:     10 * time.Millisecond,
		RTT:          10 * time.Millisecond,
		AckedPackets: 10,
	}, &congestion.AckState{Delivered: 10, PacketsInFlight: 10})
	require.Equal(t, uint64(s.CongestionWindow()), lastCwnd)

	tr.EXPECT().Close()
	s.Close()
}
