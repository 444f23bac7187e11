package gameserver

import (
	"github.com/udisondev/bqsolo/internal/protocol"
)

// handleMove walks the player to (x, y) if the tile is free and drops the
// player's target.
func (w *World) handleMove(cmd protocol.Command) []protocol.Event {
	x, okX := cmd.Int32(0)
	y, okY := cmd.Int32(1)
	if !okX || !okY || !w.isFree(x, y) {
		return nil
	}

	player := w.registry.Player()
	player.SetLocation(player.Location().WithCoordinates(x, y))
	player.ClearTarget()
	return []protocol.Event{protocol.NewMove(player.ObjectID(), x, y)}
}

// handleLootMove is a MOVE followed by LOOTMOVE when the item exists.
func (w *World) handleLootMove(cmd protocol.Command) []protocol.Event {
	events := w.handleMove(cmd)

	itemID, ok := cmd.ID(2)
	if !ok {
		return events
	}
	if _, exists := w.registry.Item(itemID); !exists {
		return events
	}
	return append(events, protocol.NewLootMove(w.registry.Player().ObjectID(), itemID))
}

func (w *World) handleTeleport(cmd protocol.Command) []protocol.Event {
	x, okX := cmd.Int32(0)
	y, okY := cmd.Int32(1)
	if !okX || !okY || !w.isFree(x, y) {
		return nil
	}

	player := w.registry.Player()
	player.SetLocation(player.Location().WithCoordinates(x, y))
	player.ClearTarget()
	return []protocol.Event{protocol.NewTeleport(player.ObjectID(), x, y)}
}
