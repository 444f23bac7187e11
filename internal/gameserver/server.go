package gameserver

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bqsolo/internal/config"
	"github.com/udisondev/bqsolo/internal/game/geo"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
)

// pushQueueSize bounds batches waiting for delivery to the sink.
const pushQueueSize = 256

// Server runs a World on a serial loop goroutine.
//
// Commands, timers and tickers all execute on the loop, so the world is
// never touched concurrently. Pushed batches are delivered to the sink
// from a separate goroutine in the order they were produced.
type Server struct {
	loop  *schedule.Loop
	world *World
	sink  protocol.Sink

	pushes  chan []protocol.Event
	stopped atomic.Bool
}

// NewServer creates a server with a populated world. The world starts
// ticking once Run is called.
func NewServer(cfg config.World, templates model.WorldTemplates, geoMap geo.Map, sink protocol.Sink) *Server {
	if sink == nil {
		sink = protocol.Discard
	}

	s := &Server{
		loop:   schedule.NewLoop(schedule.DefaultQueueSize),
		sink:   sink,
		pushes: make(chan []protocol.Event, pushQueueSize),
	}
	s.world = NewWorld(cfg, templates, geoMap, s.loop, protocol.SinkFunc(s.enqueue))
	return s
}

// Run executes the world until ctx is cancelled or Close is called.
// The world is torn down before Run returns.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.loop.Run(ctx)
		s.teardown()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		s.deliver()
		return nil
	})

	slog.Info("server started")
	err := g.Wait()
	slog.Info("server stopped")
	return err
}

// Handle executes cmd on the loop and returns its reply batch.
// Returns schedule.ErrStopped after teardown.
func (s *Server) Handle(ctx context.Context, cmd protocol.Command) ([]protocol.Event, error) {
	if s.stopped.Load() {
		return nil, schedule.ErrStopped
	}

	var reply []protocol.Event
	if err := s.loop.Call(ctx, func() {
		reply = s.world.Handle(cmd)
	}); err != nil {
		return nil, err
	}
	return reply, nil
}

// Close stops the loop. Run returns after the world is torn down.
func (s *Server) Close() {
	s.loop.Stop()
}

// Done is closed once the loop has exited.
func (s *Server) Done() <-chan struct{} {
	return s.loop.Done()
}

// enqueue runs on the loop goroutine.
func (s *Server) enqueue(batch []protocol.Event) {
	if s.stopped.Load() {
		return
	}
	select {
	case s.pushes <- batch:
	case <-s.loop.Done():
	}
}

func (s *Server) deliver() {
	for batch := range s.pushes {
		if s.stopped.Load() {
			continue
		}
		s.sink.Push(batch)
	}
}

// teardown runs after the loop exited, so it owns the world.
func (s *Server) teardown() {
	s.stopped.Store(true)
	s.world.Close()
	close(s.pushes)
}
