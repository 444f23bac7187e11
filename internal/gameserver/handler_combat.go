package gameserver

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/ai"
	"github.com/udisondev/bqsolo/internal/protocol"
)

// handleAggro makes a mob target the player. The ATTACK announcement is
// pushed through the sink; the reply is empty.
func (w *World) handleAggro(cmd protocol.Command) []protocol.Event {
	mobID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	mob, ok := w.registry.Monster(mobID)
	if !ok {
		return nil
	}

	player := w.registry.Player()
	mob.SetTarget(player.ObjectID())
	w.push([]protocol.Event{protocol.NewAttack(mob.ObjectID(), player.ObjectID())})

	if ai.IsDebugEnabled() {
		slog.Debug("mob aggroed by client", "objectID", mob.ObjectID())
	}
	return nil
}

// handleAttack locks the player and the mob on each other.
func (w *World) handleAttack(cmd protocol.Command) []protocol.Event {
	targetID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	mob, ok := w.registry.Monster(targetID)
	if !ok {
		return nil
	}

	player := w.registry.Player()
	player.SetTarget(mob.ObjectID())
	mob.SetTarget(player.ObjectID())
	return []protocol.Event{protocol.NewAttack(player.ObjectID(), mob.ObjectID())}
}

// handleHit applies one player hit to a live mob.
func (w *World) handleHit(cmd protocol.Command) []protocol.Event {
	targetID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	return w.combat.PlayerAttack(targetID)
}

// handleHurt applies one hit of the attacking mob to the player.
func (w *World) handleHurt(cmd protocol.Command) []protocol.Event {
	attackerID, ok := cmd.ID(0)
	if !ok {
		return nil
	}
	return w.combat.MobAttack(attackerID)
}
