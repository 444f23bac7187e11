package protocol

import "github.com/udisondev/bqsolo/internal/model"

// SpawnPlayer describes the player:
// SPAWN, id, kind, x, y, name, orientation, armor, weapon[, target].
func SpawnPlayer(p *model.Player) Event {
	e := Event{MsgSpawn, p.ObjectID(), p.Kind(), p.X(), p.Y(),
		p.Name(), p.Orientation(), p.Armor(), p.Weapon()}
	if p.Target() != 0 {
		e = append(e, p.Target())
	}
	return e
}

// SpawnMob describes a mob: SPAWN, id, kind, x, y, orientation[, target].
func SpawnMob(m *model.Monster) Event {
	e := Event{MsgSpawn, m.ObjectID(), m.Kind(), m.X(), m.Y(), m.Orientation()}
	if m.Target() != 0 {
		e = append(e, m.Target())
	}
	return e
}

// SpawnEntity describes any registered entity. Mobs and the player get
// their extended forms; everything else is SPAWN, id, kind, x, y.
func SpawnEntity(obj *model.WorldObject) Event {
	switch e := obj.Data.(type) {
	case *model.Player:
		return SpawnPlayer(e)
	case *model.Monster:
		return SpawnMob(e)
	default:
		return Event{MsgSpawn, obj.ObjectID(), obj.Kind(), obj.X(), obj.Y()}
	}
}
