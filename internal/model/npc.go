package model

import "github.com/udisondev/bqsolo/internal/data"

// Npc is a passive character. Never updated after creation.
type Npc struct {
	*WorldObject

	orientation data.Orientation
}

// NewNpc creates an NPC from its template.
func NewNpc(objectID uint32, template *NpcTemplate) *Npc {
	orientation := template.Orientation
	if !orientation.Valid() {
		orientation = data.OrientationDown
	}
	npc := &Npc{
		WorldObject: NewWorldObject(objectID, template.Kind, NewLocation(template.X, template.Y)),
		orientation: orientation,
	}
	npc.WorldObject.Data = npc
	return npc
}

// Orientation returns facing direction.
func (n *Npc) Orientation() data.Orientation {
	return n.orientation
}
