package world

import (
	"sync/atomic"

	"github.com/udisondev/bqsolo/internal/model"
)

// ObjectIDGenerator generates unique object IDs for world entities.
//
// ID 1 is reserved for the player (model.PlayerObjectID); every other
// entity, including respawned mobs and chests, gets the next id from a
// strictly increasing counter starting at 2. IDs are never reused.
type ObjectIDGenerator struct {
	next atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.next.Store(model.PlayerObjectID)
	return gen
}

// NextID generates next unique object ID.
func (g *ObjectIDGenerator) NextID() uint32 {
	return g.next.Add(1)
}

// Last returns the most recently allocated ID (1 if none yet).
func (g *ObjectIDGenerator) Last() uint32 {
	return g.next.Load()
}
