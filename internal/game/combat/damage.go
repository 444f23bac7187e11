package combat

import "github.com/udisondev/bqsolo/internal/data"

// Formula constants.
const (
	basePlayerDamage  = 10
	weaponRankDamage  = 5
	armorRankMitigate = 2
	basePlayerHP      = 100
	armorRankHP       = 20
	minMobDamage      = 1
)

// PlayerDamage returns the damage the player deals to a mob with weapon.
// Mob armor is ignored.
func PlayerDamage(weapon data.Kind) int32 {
	return basePlayerDamage + weaponRankDamage*data.WeaponRank(weapon)
}

// MobDamage returns the damage a mob with base damage deals to a player
// wearing armor. Never below 1.
func MobDamage(base int32, armor data.Kind) int32 {
	return max(minMobDamage, base-armorRankMitigate*data.ArmorRank(armor))
}

// PlayerMaxHP returns the player's maximum HP for armor.
func PlayerMaxHP(armor data.Kind) int32 {
	return basePlayerHP + armorRankHP*data.ArmorRank(armor)
}

// HealingAmount returns how much HP consuming kind restores.
func HealingAmount(kind data.Kind) int32 {
	switch kind {
	case data.KindFlask:
		return 40
	case data.KindBurger:
		return 100
	case data.KindCake:
		return 60
	default:
		return 0
	}
}

// RegenAmount returns HP restored per regeneration tick.
func RegenAmount(maxHP int32) int32 {
	return max(1, maxHP/25)
}
