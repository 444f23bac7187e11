package combat

import (
	"github.com/udisondev/bqsolo/internal/game/loot"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
)

// DropLoot draws the next entry from cycler and places one item per kind
// at loc, visible only to playerID. sourceID is the mob or chest that
// dropped the items.
//
// Events: one DROP per item.
func (m *CombatManager) DropLoot(sourceID uint32, loc model.Location, cycler *loot.Cycler, playerID uint32) []protocol.Event {
	if cycler == nil {
		return nil
	}
	entry := cycler.Next()
	if len(entry) == 0 {
		return nil
	}

	visibleTo := []uint32{playerID}
	events := make([]protocol.Event, 0, len(entry))
	for _, kind := range entry {
		item := model.NewDroppedItem(m.registry.NextID(), kind, loc, visibleTo)
		m.registry.Add(item.WorldObject)
		events = append(events, protocol.NewDrop(sourceID, item.ObjectID(), kind, item.VisibleTo()))
	}
	return events
}
