package gameserver

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/combat"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
)

// Population reported to the client. There is only ever one player.
const (
	worldPopulation = 1
	totalPopulation = 1
)

// handleHello creates the player at the world spawn.
// A repeated HELLO replaces the player.
//
// Args: name, armor kind, weapon kind. Missing or non-matching kinds fall
// back to CLOTHARMOR and SWORD1.
func (w *World) handleHello(cmd protocol.Command) []protocol.Event {
	name, _ := cmd.String(0)

	armor, ok := cmd.Kind(1)
	if !ok || !data.IsArmor(armor) {
		armor = data.KindClothArmor
	}
	weapon, ok := cmd.Kind(2)
	if !ok || !data.IsWeapon(weapon) {
		weapon = data.KindSword1
	}

	spawnPoint := w.combat.SpawnPoint()
	player := model.NewPlayer(sanitizeName(name), spawnPoint, armor, weapon, combat.PlayerMaxHP(armor))
	w.registry.SetPlayer(player)

	slog.Info("player entered world",
		"name", player.Name(),
		"armor", armor,
		"weapon", weapon,
		"hp", player.CurrentHP())

	return []protocol.Event{
		protocol.NewWelcome(player.ObjectID(), player.Name(), player.X(), player.Y(), player.CurrentHP()),
		protocol.NewPopulation(worldPopulation, totalPopulation),
		protocol.NewList(w.registry.ListIDs()),
	}
}

// handleWho returns spawn descriptors of the requested known entities.
func (w *World) handleWho(cmd protocol.Command) []protocol.Event {
	ids := cmd.IDs()
	events := make([]protocol.Event, 0, len(ids))
	for _, id := range ids {
		obj, ok := w.registry.Object(id)
		if !ok {
			continue
		}
		events = append(events, protocol.SpawnEntity(obj))
	}
	return events
}

func (w *World) handleZone() []protocol.Event {
	return []protocol.Event{protocol.NewList(w.registry.ListIDs())}
}

func (w *World) handleChat(cmd protocol.Command) []protocol.Event {
	raw, _ := cmd.String(0)
	text := sanitizeChat(raw)
	if text == "" {
		return nil
	}
	return []protocol.Event{protocol.NewChat(w.registry.Player().ObjectID(), text)}
}

// handleCheck records the last reached checkpoint. No events.
func (w *World) handleCheck(cmd protocol.Command) []protocol.Event {
	id, ok := cmd.Int32(0)
	if !ok {
		return nil
	}
	w.registry.Player().SetCheckpoint(id)
	return nil
}
