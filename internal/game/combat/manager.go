package combat

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/world"
)

// CombatManager resolves attacks between the player and mobs and applies
// the resulting deaths. Every method returns the ordered events it caused.
//
// It runs on the simulation goroutine only.
type CombatManager struct {
	registry   *world.Registry
	spawnPoint model.Location

	// mobDeathFunc is called after a killed mob left the registry.
	// Injected by the spawn manager to schedule the respawn.
	mobDeathFunc func(mob *model.Monster)
}

// NewCombatManager creates a combat manager. Dead players are sent back
// to spawnPoint.
func NewCombatManager(registry *world.Registry, spawnPoint model.Location) *CombatManager {
	return &CombatManager{
		registry:   registry,
		spawnPoint: spawnPoint,
	}
}

// SetMobDeathFunc sets the callback for mob death handling (respawn).
func (m *CombatManager) SetMobDeathFunc(fn func(mob *model.Monster)) {
	m.mobDeathFunc = fn
}

// SpawnPoint returns where the player appears and revives.
func (m *CombatManager) SpawnPoint() model.Location {
	return m.spawnPoint
}

// PlayerAttack applies one player hit to the mob with mobID.
//
// Events: DAMAGE, and on death KILL, DESPAWN and one DROP per looted item.
// Unknown or dead mobs produce nothing.
func (m *CombatManager) PlayerAttack(mobID uint32) []protocol.Event {
	player := m.registry.Player()
	mob, ok := m.registry.Monster(mobID)
	if player == nil || !ok || mob.IsDead() {
		return nil
	}

	damage := PlayerDamage(player.Weapon())
	mob.ReduceHP(damage)
	events := []protocol.Event{protocol.NewDamage(mob.ObjectID(), damage)}

	if mob.CurrentHP() > 0 {
		return events
	}
	return append(events, m.killMonster(mob, player)...)
}

func (m *CombatManager) killMonster(mob *model.Monster, killer *model.Player) []protocol.Event {
	mob.MarkDead()
	mob.ClearTarget()

	events := []protocol.Event{
		protocol.NewKill(mob.Kind()),
		protocol.NewDespawn(mob.ObjectID()),
	}

	m.registry.Remove(mob.ObjectID())
	if m.mobDeathFunc != nil {
		m.mobDeathFunc(mob)
	}

	events = append(events, m.DropLoot(mob.ObjectID(), mob.Location(), mob.Loot(), killer.ObjectID())...)

	slog.Debug("mob killed",
		"objectID", mob.ObjectID(),
		"kind", mob.Kind(),
		"events", len(events))
	return events
}

// MobAttack applies one hit from the mob with mobID to the player.
//
// Events: HEALTH(hp), and on death TELEPORT and HEALTH(maxHp, regen).
func (m *CombatManager) MobAttack(mobID uint32) []protocol.Event {
	player := m.registry.Player()
	mob, ok := m.registry.Monster(mobID)
	if player == nil || !ok {
		return nil
	}

	damage := MobDamage(mob.Damage(), player.Armor())
	hp := player.ReduceHP(damage)
	events := []protocol.Event{protocol.NewHealth(hp)}

	if hp > 0 {
		return events
	}
	return append(events, m.playerDeath(player)...)
}

func (m *CombatManager) playerDeath(player *model.Player) []protocol.Event {
	player.SetLocation(m.spawnPoint)
	player.RestoreHP()
	m.ResetMobTargets()

	slog.Info("player died", "respawnX", m.spawnPoint.X, "respawnY", m.spawnPoint.Y)

	return []protocol.Event{
		protocol.NewTeleport(player.ObjectID(), m.spawnPoint.X, m.spawnPoint.Y),
		protocol.NewHealthRegen(player.CurrentHP()),
	}
}

// ResetMobTargets clears the target and attack cooldown of every live mob.
func (m *CombatManager) ResetMobTargets() {
	for _, mob := range m.registry.Monsters() {
		mob.ClearTarget()
	}
}

// Consume applies a picked-up item to the player.
//
// Armor: equip, recompute max HP, full heal; EQUIP and HP.
// Weapon: equip; EQUIP. Healing item: heal; HEALTH(hp, regen).
// Anything else has no effect.
func (m *CombatManager) Consume(kind data.Kind) []protocol.Event {
	player := m.registry.Player()
	if player == nil {
		return nil
	}

	switch {
	case data.IsArmor(kind):
		player.SetArmor(kind)
		player.SetMaxHP(PlayerMaxHP(kind))
		player.RestoreHP()
		return []protocol.Event{
			protocol.NewEquip(player.ObjectID(), kind),
			protocol.NewHP(player.MaxHP()),
		}
	case data.IsWeapon(kind):
		player.SetWeapon(kind)
		return []protocol.Event{protocol.NewEquip(player.ObjectID(), kind)}
	case data.IsHealingItem(kind):
		player.Heal(HealingAmount(kind))
		return []protocol.Event{protocol.NewHealthRegen(player.CurrentHP())}
	default:
		return nil
	}
}

// Regenerate heals the player by one regeneration step if below max HP.
func (m *CombatManager) Regenerate() []protocol.Event {
	player := m.registry.Player()
	if player == nil || player.CurrentHP() >= player.MaxHP() {
		return nil
	}
	hp := player.Heal(RegenAmount(player.MaxHP()))
	return []protocol.Event{protocol.NewHealthRegen(hp)}
}
