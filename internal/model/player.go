package model

import "github.com/udisondev/bqsolo/internal/data"

// Player is the single local player. Created once on HELLO, never removed.
type Player struct {
	*Character // embedded

	name        string
	orientation data.Orientation
	armor       data.Kind
	weapon      data.Kind

	target        uint32 // 0 = no target
	checkpoint    int32
	hasCheckpoint bool
}

// NewPlayer creates the player with full HP.
func NewPlayer(name string, loc Location, armor, weapon data.Kind, maxHP int32) *Player {
	p := &Player{
		Character:   NewCharacter(PlayerObjectID, data.KindWarrior, loc, maxHP),
		name:        name,
		orientation: data.OrientationDown,
		armor:       armor,
		weapon:      weapon,
	}
	p.WorldObject.Data = p
	return p
}

// Name returns the sanitized player name.
func (p *Player) Name() string {
	return p.name
}

// Orientation returns facing direction.
func (p *Player) Orientation() data.Orientation {
	return p.orientation
}

// Armor returns equipped armor kind.
func (p *Player) Armor() data.Kind {
	return p.armor
}

// SetArmor equips armor. Callers recompute max HP.
func (p *Player) SetArmor(kind data.Kind) {
	p.armor = kind
}

// Weapon returns equipped weapon kind.
func (p *Player) Weapon() data.Kind {
	return p.weapon
}

// SetWeapon equips a weapon.
func (p *Player) SetWeapon(kind data.Kind) {
	p.weapon = kind
}

// Target returns current attack target objectID (0 if none).
func (p *Player) Target() uint32 {
	return p.target
}

// SetTarget sets current attack target.
func (p *Player) SetTarget(objectID uint32) {
	p.target = objectID
}

// ClearTarget clears current attack target.
func (p *Player) ClearTarget() {
	p.target = 0
}

// Checkpoint returns the last checkpoint reached, if any.
func (p *Player) Checkpoint() (int32, bool) {
	return p.checkpoint, p.hasCheckpoint
}

// SetCheckpoint records the last checkpoint reached.
func (p *Player) SetCheckpoint(id int32) {
	p.checkpoint = id
	p.hasCheckpoint = true
}
