package model

import (
	"time"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/loot"
)

// Monster represents a hostile mob.
type Monster struct {
	*Character // embedding Character

	template    *MobTemplate
	orientation data.Orientation
	home        Location
	loot        *loot.Cycler

	target         uint32 // 0 = no target
	nextAttackTime time.Time
	dead           bool
}

// NewMonster creates a mob from a resolved template at its home tile.
// The loot cycler belongs to the spawn slot and is shared by every
// incarnation of the template.
func NewMonster(objectID uint32, template *MobTemplate, cycler *loot.Cycler) *Monster {
	home := template.Home()
	m := &Monster{
		Character:   NewCharacter(objectID, template.Kind, home, template.MaxHP),
		template:    template,
		orientation: template.Orientation,
		home:        home,
		loot:        cycler,
	}
	m.WorldObject.Data = m
	return m
}

// Template returns the template this mob was spawned from.
func (m *Monster) Template() *MobTemplate {
	return m.template
}

// Orientation returns facing direction.
func (m *Monster) Orientation() data.Orientation {
	return m.orientation
}

// Home returns the spawn tile the mob walks back to.
func (m *Monster) Home() Location {
	return m.home
}

// AtHome reports whether the mob stands on its spawn tile.
func (m *Monster) AtHome() bool {
	return m.Location() == m.home
}

// Armor returns the mob armor value.
func (m *Monster) Armor() int32 {
	return m.template.Armor
}

// Damage returns base damage dealt per hit.
func (m *Monster) Damage() int32 {
	return m.template.Damage
}

// AggroRange returns the distance within which an idle mob engages.
func (m *Monster) AggroRange() int32 {
	return m.template.AggroRange
}

// LeashRange returns the distance beyond which an engaged mob gives up.
func (m *Monster) LeashRange() int32 {
	return m.template.LeashRange
}

// AttackDelay returns the cooldown between attacks.
func (m *Monster) AttackDelay() time.Duration {
	return m.template.AttackDelay
}

// RespawnDelay returns how long the slot stays empty after death.
func (m *Monster) RespawnDelay() time.Duration {
	return m.template.RespawnDelay
}

// Loot returns the loot cycler of the spawn slot.
func (m *Monster) Loot() *loot.Cycler {
	return m.loot
}

// Target returns current target objectID (0 if no target).
func (m *Monster) Target() uint32 {
	return m.target
}

// HasTarget reports whether the mob is engaged.
func (m *Monster) HasTarget() bool {
	return m.target != 0
}

// SetTarget sets current target objectID.
func (m *Monster) SetTarget(objectID uint32) {
	m.target = objectID
}

// ClearTarget clears current target and resets the attack cooldown.
func (m *Monster) ClearTarget() {
	m.target = 0
	m.nextAttackTime = time.Time{}
}

// NextAttackTime returns the earliest time of the next attack.
func (m *Monster) NextAttackTime() time.Time {
	return m.nextAttackTime
}

// SetNextAttackTime sets the attack cooldown deadline.
func (m *Monster) SetNextAttackTime(t time.Time) {
	m.nextAttackTime = t
}

// CanAttack reports whether the cooldown has elapsed at now.
func (m *Monster) CanAttack(now time.Time) bool {
	return m.nextAttackTime.IsZero() || !now.Before(m.nextAttackTime)
}

// IsDead reports whether the mob was killed. Dead mobs are skipped by AI.
func (m *Monster) IsDead() bool {
	return m.dead
}

// MarkDead flags the mob as killed.
func (m *Monster) MarkDead() {
	m.dead = true
}

// Intention derives the AI state from target and position.
func (m *Monster) Intention() Intention {
	switch {
	case m.target != 0:
		return IntentionEngaged
	case !m.AtHome():
		return IntentionReturning
	default:
		return IntentionIdle
	}
}
