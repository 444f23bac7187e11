package model

import "github.com/udisondev/bqsolo/internal/data"

// PlayerObjectID is permanently reserved for the single local player.
const PlayerObjectID uint32 = 1

// WorldObject - базовый тип для всех сущностей мира.
// Все объекты имеют ObjectID, Kind и Location.
//
// Objects are owned by the simulation goroutine and carry no locks.
type WorldObject struct {
	objectID uint32
	kind     data.Kind
	location Location
	Data     any // *Player, *Monster, *Npc, *DroppedItem or *Chest
}

// NewWorldObject создаёт новый объект в игровом мире.
func NewWorldObject(objectID uint32, kind data.Kind, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		kind:     kind,
		location: loc,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Kind возвращает тип сущности.
func (w *WorldObject) Kind() data.Kind {
	return w.kind
}

// Location возвращает копию координат объекта (value type).
func (w *WorldObject) Location() Location {
	return w.location
}

// SetLocation устанавливает новые координаты объекта.
func (w *WorldObject) SetLocation(loc Location) {
	w.location = loc
}

// X возвращает координату X.
func (w *WorldObject) X() int32 {
	return w.location.X
}

// Y возвращает координату Y.
func (w *WorldObject) Y() int32 {
	return w.location.Y
}
