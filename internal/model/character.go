package model

import "github.com/udisondev/bqsolo/internal/data"

// Character - базовый тип для живых существ (Player, Monster).
// Добавляет HP к WorldObject. Invariant: 0 <= currentHP <= maxHP.
type Character struct {
	*WorldObject // embedded

	currentHP int32
	maxHP     int32
}

// NewCharacter создаёт персонажа с полным HP.
func NewCharacter(objectID uint32, kind data.Kind, loc Location, maxHP int32) *Character {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Character{
		WorldObject: NewWorldObject(objectID, kind, loc),
		currentHP:   maxHP,
		maxHP:       maxHP,
	}
}

// CurrentHP возвращает текущее HP.
func (c *Character) CurrentHP() int32 {
	return c.currentHP
}

// MaxHP возвращает максимальное HP.
func (c *Character) MaxHP() int32 {
	return c.maxHP
}

// SetCurrentHP устанавливает текущее HP с валидацией (clamp 0..maxHP).
func (c *Character) SetCurrentHP(hp int32) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.maxHP {
		hp = c.maxHP
	}
	c.currentHP = hp
}

// SetMaxHP устанавливает максимальное HP и корректирует текущее если нужно.
func (c *Character) SetMaxHP(maxHP int32) {
	if maxHP < 1 {
		maxHP = 1
	}

	c.maxHP = maxHP

	// Если текущее HP больше нового максимума - обрезаем
	if c.currentHP > c.maxHP {
		c.currentHP = c.maxHP
	}
}

// ReduceHP subtracts damage and returns the resulting HP (never below 0).
func (c *Character) ReduceHP(damage int32) int32 {
	c.SetCurrentHP(c.currentHP - damage)
	return c.currentHP
}

// Heal adds amount and returns the resulting HP (never above maxHP).
func (c *Character) Heal(amount int32) int32 {
	c.SetCurrentHP(c.currentHP + amount)
	return c.currentHP
}

// RestoreHP fully heals the character.
func (c *Character) RestoreHP() {
	c.currentHP = c.maxHP
}

// IsDead returns true if HP reached zero.
func (c *Character) IsDead() bool {
	return c.currentHP <= 0
}
