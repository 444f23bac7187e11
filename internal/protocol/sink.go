package protocol

// Sink receives event batches produced outside of a command reply
// (AI actions, regeneration, respawns).
type Sink interface {
	Push(batch []Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(batch []Event)

// Push calls f(batch).
func (f SinkFunc) Push(batch []Event) {
	f(batch)
}

// Discard drops every batch.
var Discard Sink = SinkFunc(func([]Event) {})
