package testutil

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/udisondev/bqsolo/internal/protocol"
)

// RecordingSink stores every pushed batch. Safe for concurrent use.
type RecordingSink struct {
	mu      sync.Mutex
	batches [][]protocol.Event
	notify  chan struct{}
}

// NewRecordingSink creates an empty sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{notify: make(chan struct{}, 1)}
}

// Push implements protocol.Sink.
func (s *RecordingSink) Push(batch []protocol.Event) {
	s.mu.Lock()
	s.batches = append(s.batches, slices.Clone(batch))
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Batches returns a copy of the recorded batches.
func (s *RecordingSink) Batches() [][]protocol.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.batches)
}

// Events returns every recorded event, flattened in push order.
func (s *RecordingSink) Events() []protocol.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []protocol.Event
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

// OfType returns recorded events with message type mt.
func (s *RecordingSink) OfType(mt protocol.MessageType) []protocol.Event {
	var out []protocol.Event
	for _, e := range s.Events() {
		if e.Type() == mt {
			out = append(out, e)
		}
	}
	return out
}

// Len returns number of recorded batches.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

// Reset drops everything recorded so far.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	s.batches = nil
	s.mu.Unlock()
}

// WaitFor blocks until cond holds for the recorded events or timeout
// elapses, then fails the test.
func (s *RecordingSink) WaitFor(t testing.TB, timeout time.Duration, cond func([]protocol.Event) bool) {
	t.Helper()

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		if cond(s.Events()) {
			return
		}
		select {
		case <-s.notify:
		case <-deadline.C:
			t.Fatalf("condition not met within %v; recorded %d batches", timeout, s.Len())
		}
	}
}
