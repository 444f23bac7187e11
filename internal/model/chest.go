package model

import (
	"time"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/loot"
)

// Chest is an openable loot container. Destroyed on open, respawned later.
type Chest struct {
	*WorldObject

	template *ChestTemplate
	loot     *loot.Cycler
}

// NewChest creates a chest from a resolved template.
func NewChest(objectID uint32, template *ChestTemplate, cycler *loot.Cycler) *Chest {
	c := &Chest{
		WorldObject: NewWorldObject(objectID, data.KindChest, template.Location()),
		template:    template,
		loot:        cycler,
	}
	c.WorldObject.Data = c
	return c
}

// Template returns the template this chest was spawned from.
func (c *Chest) Template() *ChestTemplate {
	return c.template
}

// Loot returns the loot cycler of the chest slot.
func (c *Chest) Loot() *loot.Cycler {
	return c.loot
}

// RespawnDelay returns how long the slot stays empty after opening.
func (c *Chest) RespawnDelay() time.Duration {
	return c.template.RespawnDelay
}
