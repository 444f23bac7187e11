package spawn

import (
	"log/slog"
	"time"

	"github.com/udisondev/bqsolo/internal/ai"
	"github.com/udisondev/bqsolo/internal/game/loot"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
	"github.com/udisondev/bqsolo/internal/world"
)

// ControllerFactory builds the AI controller of a freshly spawned mob.
type ControllerFactory func(mob *model.Monster) ai.Controller

// Manager creates and removes npcs, mobs and chests from templates.
//
// Loot cyclers belong to template slots, so a respawned mob or chest
// continues the rotation of its predecessor.
type Manager struct {
	registry  *world.Registry
	aiManager *ai.TickManager
	respawn   *RespawnTaskManager
	sink      protocol.Sink

	templates    model.WorldTemplates
	mobCyclers   map[*model.MobTemplate]*loot.Cycler
	chestCyclers map[*model.ChestTemplate]*loot.Cycler

	newController ControllerFactory
}

// NewManager creates a spawn manager. Templates are resolved against
// defaults and chestDelay; the manager keeps its own copy.
func NewManager(
	registry *world.Registry,
	aiManager *ai.TickManager,
	sched schedule.Scheduler,
	sink protocol.Sink,
	templates model.WorldTemplates,
	defaults model.MobDefaults,
	chestDelay time.Duration,
) *Manager {
	if sink == nil {
		sink = protocol.Discard
	}

	resolved := model.WorldTemplates{
		Mobs:   make([]model.MobTemplate, len(templates.Mobs)),
		Npcs:   make([]model.NpcTemplate, len(templates.Npcs)),
		Chests: make([]model.ChestTemplate, len(templates.Chests)),
	}
	for i, t := range templates.Mobs {
		resolved.Mobs[i] = t.Resolve(defaults)
	}
	copy(resolved.Npcs, templates.Npcs)
	for i, t := range templates.Chests {
		resolved.Chests[i] = t.Resolve(chestDelay)
	}

	mgr := &Manager{
		registry:     registry,
		aiManager:    aiManager,
		sink:         sink,
		templates:    resolved,
		mobCyclers:   make(map[*model.MobTemplate]*loot.Cycler, len(resolved.Mobs)),
		chestCyclers: make(map[*model.ChestTemplate]*loot.Cycler, len(resolved.Chests)),
	}
	mgr.respawn = NewRespawnTaskManager(mgr, sched)

	for i := range mgr.templates.Mobs {
		t := &mgr.templates.Mobs[i]
		mgr.mobCyclers[t] = loot.NewCycler(t.Loot)
	}
	for i := range mgr.templates.Chests {
		t := &mgr.templates.Chests[i]
		mgr.chestCyclers[t] = loot.NewCycler(t.Loot)
	}
	return mgr
}

// SetControllerFactory sets the AI factory used for every spawned mob.
// Without a factory mobs are spawned without AI.
func (m *Manager) SetControllerFactory(fn ControllerFactory) {
	m.newController = fn
}

// Templates returns the resolved templates.
func (m *Manager) Templates() model.WorldTemplates {
	return m.templates
}

// Respawns returns the respawn task manager.
func (m *Manager) Respawns() *RespawnTaskManager {
	return m.respawn
}

// SpawnAll populates the static world: npcs, then mobs, then chests.
func (m *Manager) SpawnAll() {
	for i := range m.templates.Npcs {
		m.SpawnNpc(&m.templates.Npcs[i])
	}
	for i := range m.templates.Mobs {
		m.SpawnMob(&m.templates.Mobs[i])
	}
	for i := range m.templates.Chests {
		m.SpawnChest(&m.templates.Chests[i])
	}

	slog.Info("world populated",
		"npcs", len(m.templates.Npcs),
		"mobs", len(m.templates.Mobs),
		"chests", len(m.templates.Chests))
}

// SpawnNpc creates an npc and adds it to the registry.
func (m *Manager) SpawnNpc(template *model.NpcTemplate) *model.Npc {
	npc := model.NewNpc(m.registry.NextID(), template)
	m.registry.Add(npc.WorldObject)
	return npc
}

// SpawnMob creates a mob at its template position with full stats,
// adds it to the registry and starts its AI.
func (m *Manager) SpawnMob(template *model.MobTemplate) *model.Monster {
	cycler, ok := m.mobCyclers[template]
	if !ok {
		cycler = loot.NewCycler(template.Loot)
		m.mobCyclers[template] = cycler
	}

	mob := model.NewMonster(m.registry.NextID(), template, cycler)
	m.registry.Add(mob.WorldObject)

	if m.newController != nil && m.aiManager != nil {
		m.aiManager.Register(mob.ObjectID(), m.newController(mob))
	}

	if ai.IsDebugEnabled() {
		slog.Debug("mob spawned",
			"objectID", mob.ObjectID(),
			"kind", mob.Kind(),
			"x", mob.X(),
			"y", mob.Y())
	}
	return mob
}

// SpawnChest creates a chest and adds it to the registry.
func (m *Manager) SpawnChest(template *model.ChestTemplate) *model.Chest {
	cycler, ok := m.chestCyclers[template]
	if !ok {
		cycler = loot.NewCycler(template.Loot)
		m.chestCyclers[template] = cycler
	}

	chest := model.NewChest(m.registry.NextID(), template, cycler)
	m.registry.Add(chest.WorldObject)
	return chest
}

// OnMobDeath stops the AI of a killed mob and schedules its respawn.
// The mob must already be removed from the registry.
func (m *Manager) OnMobDeath(mob *model.Monster) {
	if m.aiManager != nil {
		m.aiManager.Unregister(mob.ObjectID())
	}
	m.respawn.ScheduleMobRespawn(mob.Template(), mob.RespawnDelay())
}

// DespawnChest removes an opened chest and schedules its respawn.
func (m *Manager) DespawnChest(chest *model.Chest) {
	m.registry.Remove(chest.ObjectID())
	m.respawn.ScheduleChestRespawn(chest.Template(), chest.RespawnDelay())
}

// Close cancels every pending respawn.
func (m *Manager) Close() {
	m.respawn.CancelAll()
}

func (m *Manager) push(events ...protocol.Event) {
	m.sink.Push(events)
}
