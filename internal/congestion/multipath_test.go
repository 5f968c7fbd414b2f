package congestion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newGroupedSender(g *Group, rate uint64) *Sender {
	s := NewSender(Config{Clock: &mockClock{}})
	s.instantRate.Store(rate)
	s.SetSendable(true)
	g.Add(s)
	return s
}

func TestWeightIsShareOfAggregateRate(t *testing.T) {
	g := NewGroup()
	fast := newGroupedSender(g, 3_000_000)
	slow := newGroupedSender(g, 1_000_000)

	require.Equal(t, 2, g.Len())
	require.Equal(t, uint64(192), fast.Weight())
	require.Equal(t, uint64(64), slow.Weight())
}

func TestWeightOfLoneSubflow(t *testing.T) {
	g := NewGroup()
	s := newGroupedSender(g, 3_000_000)
	require.Equal(t, uint64(GainUnit), s.Weight())
}

func TestWeightWithoutGroup(t *testing.T) {
	s := NewSender(Config{Clock: &mockClock{}})
	require.Equal(t, uint64(GainUnit), s.Weight())
}

func TestWeightIgnoresUnsendableSiblings(t *testing.T) {
	g := NewGroup()
	fast := newGroupedSender(g, 3_000_000)
	slow := newGroupedSender(g, 1_000_000)

	// A sibling the scheduler won't use doesn't dilute anyone's share.
	slow.SetSendable(false)
	require.Equal(t, uint64(GainUnit), fast.Weight())
}

func TestWeightBeforeFirstRateSample(t *testing.T) {
	g := NewGroup()
	fresh := newGroupedSender(g, 0)
	busy := newGroupedSender(g, 2_000_000)

	// Until a subflow has measured anything, it gets the full gain.
	require.Equal(t, uint64(GainUnit), fresh.Weight())
	require.Equal(t, uint64(GainUnit), busy.Weight())
}

func TestGroupRemove(t *testing.T) {
	g := NewGroup()
	fast := newGroupedSender(g, 3_000_000)
	slow := newGroupedSender(g, 1_000_000)

	g.Remove(slow)
	require.Equal(t, 1, g.Len())
	require.Equal(t, uint64(GainUnit), fast.Weight())
	require.Equal(t, uint64(GainUnit), slow.Weight())
}
