package main

import (
	"io"
	"log/slog"
	"sync"

	"github.com/udisondev/bqsolo/internal/config"
	"github.com/udisondev/bqsolo/internal/protocol"
)

func newLogHandler(cfg config.Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// batchWriter writes event batches as JSON lines. Replies and pushes
// arrive from different goroutines.
type batchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newBatchWriter(w io.Writer) *batchWriter {
	return &batchWriter{w: w}
}

func (b *batchWriter) Push(batch []protocol.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := protocol.WriteBatch(b.w, batch); err != nil {
		slog.Error("writing batch", "error", err)
	}
}
