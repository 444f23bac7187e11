package world

import (
	"fmt"
	"slices"

	"github.com/udisondev/bqsolo/internal/model"
)

// Registry holds every live entity of a world instance.
//
// Each variant (player, mobs, npcs, items, chests) has its own index and
// all of them iterate in insertion order. Registry is not synchronized:
// it is owned by the simulation goroutine.
type Registry struct {
	ids *ObjectIDGenerator

	objects  index[*model.WorldObject]
	player   *model.Player
	monsters index[*model.Monster]
	npcs     index[*model.Npc]
	items    index[*model.DroppedItem]
	chests   index[*model.Chest]
}

// NewRegistry creates an empty registry with a fresh id counter.
func NewRegistry() *Registry {
	return &Registry{
		ids:      NewObjectIDGenerator(),
		objects:  newIndex[*model.WorldObject](),
		monsters: newIndex[*model.Monster](),
		npcs:     newIndex[*model.Npc](),
		items:    newIndex[*model.DroppedItem](),
		chests:   newIndex[*model.Chest](),
	}
}

// NextID allocates a fresh entity id.
func (r *Registry) NextID() uint32 {
	return r.ids.NextID()
}

// Add inserts obj into the registry. The concrete entity is taken from
// obj.Data. Panics on a duplicate id or unknown entity type.
func (r *Registry) Add(obj *model.WorldObject) {
	id := obj.ObjectID()
	if _, exists := r.objects.get(id); exists {
		panic(fmt.Sprintf("world: duplicate object id %d", id))
	}

	switch e := obj.Data.(type) {
	case *model.Player:
		if r.player != nil {
			panic("world: player already registered")
		}
		r.player = e
	case *model.Monster:
		r.monsters.put(id, e)
	case *model.Npc:
		r.npcs.put(id, e)
	case *model.DroppedItem:
		r.items.put(id, e)
	case *model.Chest:
		r.chests.put(id, e)
	default:
		panic(fmt.Sprintf("world: unsupported entity %T for object %d", obj.Data, id))
	}

	r.objects.put(id, obj)
}

// SetPlayer registers p as the player, replacing a previous one.
func (r *Registry) SetPlayer(p *model.Player) {
	r.player = p
	r.objects.put(p.ObjectID(), p.WorldObject)
}

// Remove deletes the entity with id. Returns false if it was not present.
// The player is never removed.
func (r *Registry) Remove(id uint32) bool {
	if id == model.PlayerObjectID {
		return false
	}
	if !r.objects.delete(id) {
		return false
	}
	r.monsters.delete(id)
	r.npcs.delete(id)
	r.items.delete(id)
	r.chests.delete(id)
	return true
}

// Object returns the entity with id.
func (r *Registry) Object(id uint32) (*model.WorldObject, bool) {
	return r.objects.get(id)
}

// Player returns the player or nil before HELLO.
func (r *Registry) Player() *model.Player {
	return r.player
}

// Monster returns the live mob with id.
func (r *Registry) Monster(id uint32) (*model.Monster, bool) {
	return r.monsters.get(id)
}

// Npc returns the npc with id.
func (r *Registry) Npc(id uint32) (*model.Npc, bool) {
	return r.npcs.get(id)
}

// Item returns the dropped item with id.
func (r *Registry) Item(id uint32) (*model.DroppedItem, bool) {
	return r.items.get(id)
}

// Chest returns the chest with id.
func (r *Registry) Chest(id uint32) (*model.Chest, bool) {
	return r.chests.get(id)
}

// Monsters returns live mobs in insertion order.
func (r *Registry) Monsters() []*model.Monster {
	return r.monsters.values()
}

// Npcs returns npcs in insertion order.
func (r *Registry) Npcs() []*model.Npc {
	return r.npcs.values()
}

// Items returns dropped items in insertion order.
func (r *Registry) Items() []*model.DroppedItem {
	return r.items.values()
}

// Chests returns chests in insertion order.
func (r *Registry) Chests() []*model.Chest {
	return r.chests.values()
}

// ListIDs returns every non-player id in insertion order.
func (r *Registry) ListIDs() []uint32 {
	return slices.DeleteFunc(slices.Clone(r.objects.order), func(id uint32) bool {
		return id == model.PlayerObjectID
	})
}

// ObjectCount returns the number of registered entities, player included.
func (r *Registry) ObjectCount() int {
	return r.objects.len()
}

// MonsterCount returns the number of live mobs.
func (r *Registry) MonsterCount() int {
	return r.monsters.len()
}
