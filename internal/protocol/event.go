package protocol

import "github.com/udisondev/bqsolo/internal/data"

// Event is an outgoing message tuple. Element 0 is the MessageType.
//
// Element types are fixed per constructor: entity ids are uint32,
// coordinates and hit points int32, kinds data.Kind.
type Event []any

// Type returns the message code of e.
func (e Event) Type() MessageType {
	if len(e) == 0 {
		return -1
	}
	t, _ := e[0].(MessageType)
	return t
}

// regenFlag marks a HEALTH update caused by healing rather than damage.
const regenFlag = 1

func NewWelcome(id uint32, name string, x, y, hp int32) Event {
	return Event{MsgWelcome, id, name, x, y, hp}
}

func NewPopulation(world, total int) Event {
	return Event{MsgPopulation, world, total}
}

// NewList builds a LIST event with every id as its own element.
func NewList(ids []uint32) Event {
	e := make(Event, 0, len(ids)+1)
	e = append(e, MsgList)
	for _, id := range ids {
		e = append(e, id)
	}
	return e
}

func NewMove(id uint32, x, y int32) Event {
	return Event{MsgMove, id, x, y}
}

func NewLootMove(id, itemID uint32) Event {
	return Event{MsgLootMove, id, itemID}
}

func NewAttack(attackerID, targetID uint32) Event {
	return Event{MsgAttack, attackerID, targetID}
}

func NewDamage(id uint32, damage int32) Event {
	return Event{MsgDamage, id, damage}
}

func NewKill(kind data.Kind) Event {
	return Event{MsgKill, kind}
}

func NewDespawn(id uint32) Event {
	return Event{MsgDespawn, id}
}

// NewDrop announces an item dropped by sourceID (a mob or chest),
// visible to the listed players only.
func NewDrop(sourceID, itemID uint32, kind data.Kind, visibleTo []uint32) Event {
	return Event{MsgDrop, sourceID, itemID, kind, visibleTo}
}

// NewHealth reports the player's HP after taking damage.
func NewHealth(hp int32) Event {
	return Event{MsgHealth, hp}
}

// NewHealthRegen reports the player's HP after healing.
func NewHealthRegen(hp int32) Event {
	return Event{MsgHealth, hp, regenFlag}
}

func NewEquip(id uint32, kind data.Kind) Event {
	return Event{MsgEquip, id, kind}
}

// NewHP reports a new maximum HP.
func NewHP(maxHP int32) Event {
	return Event{MsgHP, maxHP}
}

func NewTeleport(id uint32, x, y int32) Event {
	return Event{MsgTeleport, id, x, y}
}

func NewChat(id uint32, text string) Event {
	return Event{MsgChat, id, text}
}

func NewDestroy(id uint32) Event {
	return Event{MsgDestroy, id}
}
