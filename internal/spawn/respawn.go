package spawn

import (
	"log/slog"
	"time"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
)

// MobSlot identifies a mob spawn position.
type MobSlot struct {
	Kind data.Kind
	X, Y int32
}

// ChestSlot identifies a chest spawn position.
type ChestSlot struct {
	X, Y int32
}

// RespawnTaskManager keeps at most one pending respawn per slot.
type RespawnTaskManager struct {
	spawnManager *Manager
	sched        schedule.Scheduler

	mobTasks   map[MobSlot]schedule.Task
	chestTasks map[ChestSlot]schedule.Task
}

// NewRespawnTaskManager creates new respawn task manager
func NewRespawnTaskManager(spawnManager *Manager, sched schedule.Scheduler) *RespawnTaskManager {
	return &RespawnTaskManager{
		spawnManager: spawnManager,
		sched:        sched,
		mobTasks:     make(map[MobSlot]schedule.Task),
		chestTasks:   make(map[ChestSlot]schedule.Task),
	}
}

// ScheduleMobRespawn re-creates a mob from template after delay and
// announces it with a SPAWN event. A pending respawn of the same slot is
// replaced.
func (m *RespawnTaskManager) ScheduleMobRespawn(template *model.MobTemplate, delay time.Duration) {
	slot := MobSlot{Kind: template.Kind, X: template.X, Y: template.Y}
	if old, ok := m.mobTasks[slot]; ok {
		old.Cancel()
	}

	m.mobTasks[slot] = m.sched.AfterFunc(delay, func() {
		delete(m.mobTasks, slot)
		mob := m.spawnManager.SpawnMob(template)
		m.spawnManager.push(protocol.SpawnMob(mob))
	})

	slog.Debug("mob respawn scheduled",
		"kind", template.Kind,
		"x", template.X,
		"y", template.Y,
		"delay", delay)
}

// ScheduleChestRespawn re-creates a chest from template after delay.
func (m *RespawnTaskManager) ScheduleChestRespawn(template *model.ChestTemplate, delay time.Duration) {
	slot := ChestSlot{X: template.X, Y: template.Y}
	if old, ok := m.chestTasks[slot]; ok {
		old.Cancel()
	}

	m.chestTasks[slot] = m.sched.AfterFunc(delay, func() {
		delete(m.chestTasks, slot)
		chest := m.spawnManager.SpawnChest(template)
		m.spawnManager.push(protocol.SpawnEntity(chest.WorldObject))
	})

	slog.Debug("chest respawn scheduled",
		"x", template.X,
		"y", template.Y,
		"delay", delay)
}

// CancelAll cancels every pending respawn.
func (m *RespawnTaskManager) CancelAll() {
	for slot, task := range m.mobTasks {
		task.Cancel()
		delete(m.mobTasks, slot)
	}
	for slot, task := range m.chestTasks {
		task.Cancel()
		delete(m.chestTasks, slot)
	}
}

// TaskCount returns number of pending respawns.
func (m *RespawnTaskManager) TaskCount() int {
	return len(m.mobTasks) + len(m.chestTasks)
}

// HasMobTask reports whether a respawn is pending for slot.
func (m *RespawnTaskManager) HasMobTask(slot MobSlot) bool {
	_, ok := m.mobTasks[slot]
	return ok
}

// HasChestTask reports whether a respawn is pending for slot.
func (m *RespawnTaskManager) HasChestTask(slot ChestSlot) bool {
	_, ok := m.chestTasks[slot]
	return ok
}
