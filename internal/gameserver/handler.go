package gameserver

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/ai"
	"github.com/udisondev/bqsolo/internal/protocol"
)

// Handle executes one client command and returns the reply batch.
//
// Malformed, unknown or stale commands return nil and change nothing.
// Commands other than HELLO, WHO and ZONE are ignored before HELLO.
func (w *World) Handle(cmd protocol.Command) []protocol.Event {
	if w.closed {
		return nil
	}

	switch cmd.Type {
	case protocol.MsgHello:
		return w.handleHello(cmd)
	case protocol.MsgWho:
		return w.handleWho(cmd)
	case protocol.MsgZone:
		return w.handleZone()
	}

	if w.registry.Player() == nil {
		if ai.IsDebugEnabled() {
			slog.Debug("command before hello ignored", "type", cmd.Type)
		}
		return nil
	}

	switch cmd.Type {
	case protocol.MsgMove:
		return w.handleMove(cmd)
	case protocol.MsgLootMove:
		return w.handleLootMove(cmd)
	case protocol.MsgAggro:
		return w.handleAggro(cmd)
	case protocol.MsgAttack:
		return w.handleAttack(cmd)
	case protocol.MsgHit:
		return w.handleHit(cmd)
	case protocol.MsgHurt:
		return w.handleHurt(cmd)
	case protocol.MsgLoot:
		return w.handleLoot(cmd)
	case protocol.MsgTeleport:
		return w.handleTeleport(cmd)
	case protocol.MsgChat:
		return w.handleChat(cmd)
	case protocol.MsgOpen:
		return w.handleOpen(cmd)
	case protocol.MsgCheck:
		return w.handleCheck(cmd)
	default:
		if ai.IsDebugEnabled() {
			slog.Debug("unhandled command", "type", cmd.Type)
		}
		return nil
	}
}
