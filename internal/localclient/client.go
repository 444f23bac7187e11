// Package localclient adapts raw client messages to an in-process game
// server, standing in for a network connection.
package localclient

import (
	"context"
	"log/slog"
	"sync"

	"github.com/udisondev/bqsolo/internal/protocol"
)

// Handler executes a command and returns its reply batch.
// *gameserver.Server implements it.
type Handler interface {
	Handle(ctx context.Context, cmd protocol.Command) ([]protocol.Event, error)
}

// helloFirstBatch is the number of HELLO reply events delivered before
// the entity LIST: WELCOME and POPULATION.
const helloFirstBatch = 2

// Client forwards messages to a Handler and delivers replies and pushed
// batches to one receiver.
type Client struct {
	handler Handler

	mu        sync.Mutex
	receiver  protocol.Sink
	observer  protocol.Sink
	connected func()
}

// New creates a client. receiver gets every reply and pushed batch;
// nil drops them.
func New(handler Handler, receiver protocol.Sink) *Client {
	if receiver == nil {
		receiver = protocol.Discard
	}
	return &Client{
		handler:  handler,
		receiver: receiver,
		observer: protocol.Discard,
	}
}

// OnConnected sets the callback run by Connect.
func (c *Client) OnConnected(fn func()) {
	c.mu.Lock()
	c.connected = fn
	c.mu.Unlock()
}

// SetReplyObserver sets a sink that sees every reply batch before the
// receiver. Pushed batches are not observed.
func (c *Client) SetReplyObserver(s protocol.Sink) {
	if s == nil {
		s = protocol.Discard
	}
	c.mu.Lock()
	c.observer = s
	c.mu.Unlock()
}

// Connect reports the connection as established. The callback runs on
// its own goroutine, never inside Connect.
func (c *Client) Connect() {
	c.mu.Lock()
	fn := c.connected
	c.mu.Unlock()

	if fn == nil {
		return
	}
	go fn()
}

// SendMessage parses msg, runs it on the handler and delivers the reply.
// Malformed and unknown messages are dropped. The only error returned is
// the handler's.
func (c *Client) SendMessage(ctx context.Context, msg []any) error {
	cmd, err := protocol.ParseCommand(msg)
	if err != nil {
		slog.Warn("dropping malformed message", "error", err)
		return nil
	}
	if !isClientCommand(cmd.Type) {
		slog.Debug("unhandled message", "type", cmd.Type)
		return nil
	}

	reply, err := c.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Type == protocol.MsgHello && len(reply) > helloFirstBatch {
		c.reply(reply[:helloFirstBatch])
		c.reply(reply[helloFirstBatch:])
		return nil
	}
	c.reply(reply)
	return nil
}

// Push implements protocol.Sink for batches produced by the world.
func (c *Client) Push(batch []protocol.Event) {
	c.dispatch(batch)
}

func (c *Client) reply(batch []protocol.Event) {
	if len(batch) == 0 {
		return
	}
	c.mu.Lock()
	observer := c.observer
	c.mu.Unlock()

	observer.Push(batch)
	c.dispatch(batch)
}

func (c *Client) dispatch(batch []protocol.Event) {
	events := make([]protocol.Event, 0, len(batch))
	for _, e := range batch {
		if len(e) > 0 {
			events = append(events, e)
		}
	}
	if len(events) == 0 {
		return
	}

	c.mu.Lock()
	receiver := c.receiver
	c.mu.Unlock()
	receiver.Push(events)
}

func isClientCommand(t protocol.MessageType) bool {
	switch t {
	case protocol.MsgHello, protocol.MsgWho, protocol.MsgMove, protocol.MsgLootMove,
		protocol.MsgAggro, protocol.MsgAttack, protocol.MsgHit, protocol.MsgHurt,
		protocol.MsgLoot, protocol.MsgTeleport, protocol.MsgZone, protocol.MsgChat,
		protocol.MsgOpen, protocol.MsgCheck:
		return true
	default:
		return false
	}
}
