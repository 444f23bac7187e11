package model

import (
	"slices"

	"github.com/udisondev/bqsolo/internal/data"
)

// DroppedItem represents an item lying on the ground.
// Only players listed in visibleTo may see or loot it.
type DroppedItem struct {
	*WorldObject // embedded for position and ObjectID

	visibleTo []uint32
}

// NewDroppedItem creates a new dropped item at the given location.
func NewDroppedItem(objectID uint32, kind data.Kind, location Location, visibleTo []uint32) *DroppedItem {
	item := &DroppedItem{
		WorldObject: NewWorldObject(objectID, kind, location),
		visibleTo:   slices.Clone(visibleTo),
	}
	item.WorldObject.Data = item
	return item
}

// VisibleTo returns a copy of the player ids allowed to see the item.
func (d *DroppedItem) VisibleTo() []uint32 {
	return slices.Clone(d.visibleTo)
}

// IsVisibleTo reports whether playerID may see and loot the item.
func (d *DroppedItem) IsVisibleTo(playerID uint32) bool {
	return slices.Contains(d.visibleTo, playerID)
}
