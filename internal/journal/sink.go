package journal

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/protocol"
)

// Sink records every batch before passing it to the next sink.
// Journal failures are logged and never block delivery.
type Sink struct {
	w      *Writer
	source string
	next   protocol.Sink
}

// NewSink wraps next. next may be nil.
func NewSink(w *Writer, source string, next protocol.Sink) *Sink {
	if next == nil {
		next = protocol.Discard
	}
	return &Sink{w: w, source: source, next: next}
}

// Push implements protocol.Sink.
func (s *Sink) Push(batch []protocol.Event) {
	if err := s.w.Write(s.source, batch); err != nil {
		slog.Error("writing journal", "source", s.source, "error", err)
	}
	s.next.Push(batch)
}
