package gameserver

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/protocol"
)

// handleLoot picks up a dropped item and applies it to the player.
//
// Events: DESTROY, then EQUIP and HP for armor, EQUIP for weapons,
// HEALTH(hp, regen) for healing items.
func (w *World) handleLoot(cmd protocol.Command) []protocol.Event {
	itemID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	item, ok := w.registry.Item(itemID)
	if !ok {
		return nil
	}
	player := w.registry.Player()
	if !item.IsVisibleTo(player.ObjectID()) {
		return nil
	}

	w.registry.Remove(item.ObjectID())
	events := []protocol.Event{protocol.NewDestroy(item.ObjectID())}
	return append(events, w.combat.Consume(item.Kind())...)
}

// handleOpen opens a chest: it despawns, drops its next loot entry for
// the player and schedules its respawn.
func (w *World) handleOpen(cmd protocol.Command) []protocol.Event {
	chestID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	chest, ok := w.registry.Chest(chestID)
	if !ok {
		return nil
	}

	events := []protocol.Event{protocol.NewDespawn(chest.ObjectID())}
	w.spawner.DespawnChest(chest)

	player := w.registry.Player()
	events = append(events, w.combat.DropLoot(chest.ObjectID(), chest.Location(), chest.Loot(), player.ObjectID())...)

	slog.Debug("chest opened",
		"objectID", chest.ObjectID(),
		"drops", len(events)-1)
	return events
}
