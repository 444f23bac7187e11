package testutil

import (
	"testing"

	"github.com/udisondev/bqsolo/internal/protocol"
)

// AssertEventTypes проверяет, что batch состоит из событий указанных типов в том же порядке.
func AssertEventTypes(t testing.TB, batch []protocol.Event, want ...protocol.MessageType) {
	t.Helper()

	got := make([]protocol.MessageType, len(batch))
	for i, e := range batch {
		got[i] = e.Type()
	}

	if len(got) != len(want) {
		t.Fatalf("event types mismatch: expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event #%d type mismatch: expected %v, got %v (batch %v)", i, want[i], got[i], got)
		}
	}
}
