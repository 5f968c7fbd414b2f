package congestion

import (
	"sync"
	"sync/atomic"
)

// A Group is the registry of sibling subflows composing one logical
// multipath connection. It is owned by the transport stack, which adds
// a subflow's sender at establishment and removes it on close.
//
// The subflow list is copy-on-write: senders iterate a snapshot on
// every acknowledgment without taking a lock. Sibling rates are read
// through atomics; a value stale by one update is acceptable since the
// weight is recomputed on every acknowledgment and self-corrects.
type Group struct {
	mu       sync.Mutex // serializes Add / Remove
	subflows atomic.Pointer[[]*Sender]
}

// NewGroup creates an empty multipath group.
func NewGroup() *Group {
	g := &Group{}
	g.subflows.Store(&[]*Sender{})
	return g
}

// Add registers a subflow's sender with the group.
func (g *Group) Add(s *Sender) {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := *g.subflows.Load()
	subflows := make([]*Sender, 0, len(old)+1)
	subflows = append(subflows, old...)
	subflows = append(subflows, s)
	g.subflows.Store(&subflows)
	s.group = g
}

// Remove unregisters a subflow's sender from the group.
func (g *Group) Remove(s *Sender) {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := *g.subflows.Load()
	subflows := make([]*Sender, 0, len(old))
	for _, sub := range old {
		if sub != s {
			subflows = append(subflows, sub)
		}
	}
	g.subflows.Store(&subflows)
	s.group = nil
}

// Len returns the number of registered subflows.
func (g *Group) Len() int {
	return len(*g.subflows.Load())
}

func (g *Group) snapshot() []*Sender {
	return *g.subflows.Load()
}

// Weight returns the subflow's fractional share of the aggregate
// instantaneous rate across all sendable siblings, as a GainUnit-scaled
// fraction. A lone subflow, or one in a group with no measurable rate,
// gets the full unit.
func (s *Sender) Weight() uint64 {
	g := s.group
	if g == nil {
		return GainUnit
	}

	var totalRate uint64
	for _, sub := range g.snapshot() {
		if sub.Sendable() {
			totalRate += sub.instantRate.Load()
		}
	}

	ownRate := s.instantRate.Load()
	if totalRate == 0 || ownRate == 0 {
		return GainUnit
	}
	return ownRate * GainUnit / totalRate
}

// SetSendable flags whether the transport stack considers this subflow
// currently eligible to send. Siblings read it when computing weights.
func (s *Sender) SetSendable(sendable bool) {
	s.sendable.Store(sendable)
}

// Sendable reports whether the subflow is eligible to send.
func (s *Sender) Sendable() bool {
	return s.sendable.Load()
}
