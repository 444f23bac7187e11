package model

import (
	"time"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/loot"
)

// MobTemplate describes a mob spawn: species, home tile and stats.
// Zero-valued stats are filled from MobDefaults by Resolve.
type MobTemplate struct {
	Kind         data.Kind        `yaml:"kind"`
	X            int32            `yaml:"x"`
	Y            int32            `yaml:"y"`
	Orientation  data.Orientation `yaml:"orientation"`
	MaxHP        int32            `yaml:"max_hp"`
	Armor        int32            `yaml:"armor"`
	Damage       int32            `yaml:"damage"`
	Loot         loot.Table       `yaml:"loot"`
	RespawnDelay time.Duration    `yaml:"respawn_delay"`
	AggroRange   int32            `yaml:"aggro_range"`
	LeashRange   int32            `yaml:"leash_range"`
	AttackDelay  time.Duration    `yaml:"attack_delay"`
}

// MobDefaults holds the values used for unset template fields.
type MobDefaults struct {
	MaxHP        int32
	Armor        int32
	Damage       int32
	RespawnDelay time.Duration
	AggroRange   int32
	LeashRange   int32
	AttackDelay  time.Duration
}

// Resolve returns a copy of the template with every unset field taken from d.
func (t MobTemplate) Resolve(d MobDefaults) MobTemplate {
	if !t.Orientation.Valid() {
		t.Orientation = data.OrientationDown
	}
	if t.MaxHP <= 0 {
		t.MaxHP = d.MaxHP
	}
	if t.Armor <= 0 {
		t.Armor = d.Armor
	}
	if t.Damage <= 0 {
		t.Damage = d.Damage
	}
	if t.RespawnDelay <= 0 {
		t.RespawnDelay = d.RespawnDelay
	}
	if t.AggroRange <= 0 {
		t.AggroRange = d.AggroRange
	}
	if t.LeashRange <= 0 {
		t.LeashRange = d.LeashRange
	}
	if t.AttackDelay <= 0 {
		t.AttackDelay = d.AttackDelay
	}
	return t
}

// Home returns the template spawn tile.
func (t *MobTemplate) Home() Location {
	return NewLocation(t.X, t.Y)
}

// NpcTemplate describes a passive NPC.
type NpcTemplate struct {
	Kind        data.Kind        `yaml:"kind"`
	X           int32            `yaml:"x"`
	Y           int32            `yaml:"y"`
	Orientation data.Orientation `yaml:"orientation"`
}

// ChestTemplate describes a chest spawn.
type ChestTemplate struct {
	X            int32         `yaml:"x"`
	Y            int32         `yaml:"y"`
	Loot         loot.Table    `yaml:"loot"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`
}

// Resolve returns a copy with the respawn delay defaulted.
func (t ChestTemplate) Resolve(defaultDelay time.Duration) ChestTemplate {
	if t.RespawnDelay <= 0 {
		t.RespawnDelay = defaultDelay
	}
	return t
}

// Location returns the chest tile.
func (t *ChestTemplate) Location() Location {
	return NewLocation(t.X, t.Y)
}

// WorldTemplates is the static population of a world.
type WorldTemplates struct {
	Mobs   []MobTemplate   `yaml:"mobs"`
	Npcs   []NpcTemplate   `yaml:"npcs"`
	Chests []ChestTemplate `yaml:"chests"`
}
