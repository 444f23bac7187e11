package gameserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
	"github.com/udisondev/bqsolo/internal/testutil"
)

func startServer(t *testing.T) (*Server, *testutil.RecordingSink, chan error) {
	t.Helper()

	cfg := testConfig()
	cfg.TickRate = 10 * time.Millisecond
	cfg.RegenInterval = 20 * time.Millisecond

	sink := testutil.NewRecordingSink()
	srv := NewServer(cfg, testTemplates(30), nil, sink)

	ctx, cancel := testutil.ContextWithCancel(t)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-srv.Done()
	})
	return srv, sink, errCh
}

func TestServer_HandleAndPush(t *testing.T) {
	srv, sink, _ := startServer(t)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	reply, err := srv.Handle(ctx, protocol.NewCommand(protocol.MsgHello, "Hero", 0, 0))
	require.NoError(t, err)
	require.Len(t, reply, 3)
	assert.Equal(t, protocol.MsgWelcome, reply[0].Type())

	reply, err = srv.Handle(ctx, protocol.NewCommand(protocol.MsgAggro, ratID))
	require.NoError(t, err)
	assert.Empty(t, reply)

	sink.WaitFor(t, 2*time.Second, func(events []protocol.Event) bool {
		for _, e := range events {
			if e.Type() == protocol.MsgAttack {
				return true
			}
		}
		return false
	})
	assert.Equal(t, protocol.NewAttack(ratID, 1), sink.OfType(protocol.MsgAttack)[0])
}

func TestServer_RegenThroughLoop(t *testing.T) {
	srv, sink, _ := startServer(t)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	_, err := srv.Handle(ctx, protocol.NewCommand(protocol.MsgHello, "Hero", 0, 0))
	require.NoError(t, err)
	reply, err := srv.Handle(ctx, protocol.NewCommand(protocol.MsgHurt, ratID))
	require.NoError(t, err)
	require.Equal(t, []protocol.Event{protocol.NewHealth(94)}, reply)

	sink.WaitFor(t, 2*time.Second, func(events []protocol.Event) bool {
		for _, e := range events {
			if e.Type() == protocol.MsgHealth && len(e) == 3 && e[1] == int32(100) {
				return true
			}
		}
		return false
	})
}

func TestServer_CloseStopsRun(t *testing.T) {
	srv, _, errCh := startServer(t)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	_, err := srv.Handle(ctx, protocol.NewCommand(protocol.MsgZone))
	require.NoError(t, err)

	srv.Close()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}

	_, err = srv.Handle(ctx, protocol.NewCommand(protocol.MsgZone))
	assert.ErrorIs(t, err, schedule.ErrStopped)
}

func TestServer_ContextCancelStopsRun(t *testing.T) {
	sink := testutil.NewRecordingSink()
	srv := NewServer(testConfig(), testTemplates(30), nil, sink)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, srv.world.Closed())
}
