package gameserver

import (
	"log/slog"

	"github.com/udisondev/bqsolo/internal/ai"
	"github.com/udisondev/bqsolo/internal/config"
	"github.com/udisondev/bqsolo/internal/game/combat"
	"github.com/udisondev/bqsolo/internal/game/geo"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/schedule"
	"github.com/udisondev/bqsolo/internal/spawn"
	"github.com/udisondev/bqsolo/internal/world"
)

// World is the authoritative simulation of one single-player instance.
//
// World is not synchronized. Every method and every scheduler callback
// must run on the same goroutine; Server provides that for real time,
// schedule.Manual for tests.
type World struct {
	cfg      config.World
	registry *world.Registry
	geoMap   geo.Map
	sched    schedule.Scheduler
	sink     protocol.Sink

	combat    *combat.CombatManager
	aiManager *ai.TickManager
	spawner   *spawn.Manager
	ticks     *tickDriver

	closed bool
}

// NewWorld builds a populated world and starts its tickers.
// geoMap may be nil (no walls); sink may be nil (pushed events are dropped).
func NewWorld(cfg config.World, templates model.WorldTemplates, geoMap geo.Map, sched schedule.Scheduler, sink protocol.Sink) *World {
	if sink == nil {
		sink = protocol.Discard
	}

	w := &World{
		cfg:       cfg,
		registry:  world.NewRegistry(),
		geoMap:    geoMap,
		sched:     sched,
		sink:      sink,
		aiManager: ai.NewTickManager(),
	}

	w.combat = combat.NewCombatManager(w.registry, model.NewLocation(cfg.Spawn.X, cfg.Spawn.Y))
	w.spawner = spawn.NewManager(
		w.registry,
		w.aiManager,
		sched,
		protocol.SinkFunc(w.push),
		templates,
		mobDefaults(cfg),
		cfg.ChestRespawnDelay,
	)
	w.spawner.SetControllerFactory(w.newMobAI)
	w.combat.SetMobDeathFunc(w.spawner.OnMobDeath)

	w.spawner.SpawnAll()

	w.ticks = newTickDriver(w)
	w.ticks.start()

	slog.Info("world started",
		"objects", w.registry.ObjectCount(),
		"tickRate", cfg.TickRate,
		"regenInterval", cfg.RegenInterval)
	return w
}

func mobDefaults(cfg config.World) model.MobDefaults {
	return model.MobDefaults{
		MaxHP:        spawn.DefaultMobMaxHP,
		Armor:        spawn.DefaultMobArmor,
		Damage:       spawn.DefaultMobDamage,
		RespawnDelay: spawn.DefaultMobRespawnDelay,
		AggroRange:   cfg.MobAggroRange,
		LeashRange:   cfg.MobLeashRange,
		AttackDelay:  cfg.MobAttackDelay,
	}
}

func (w *World) newMobAI(mob *model.Monster) ai.Controller {
	controller := ai.NewAttackableAI(
		mob,
		w.registry.Player,
		func(m *model.Monster) []protocol.Event { return w.combat.MobAttack(m.ObjectID()) },
		w.push,
	)
	controller.SetMap(w.geoMap)
	return controller
}

// Registry returns the entity registry.
func (w *World) Registry() *world.Registry {
	return w.registry
}

// Player returns the player, or nil before HELLO.
func (w *World) Player() *model.Player {
	return w.registry.Player()
}

// Respawns returns the pending respawn timers.
func (w *World) Respawns() *spawn.RespawnTaskManager {
	return w.spawner.Respawns()
}

// AI returns the mob AI tick manager.
func (w *World) AI() *ai.TickManager {
	return w.aiManager
}

// Closed reports whether Close was called.
func (w *World) Closed() bool {
	return w.closed
}

// Close stops both tickers, every mob AI and every pending respawn.
// No events are pushed afterwards. Close is idempotent.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.closed = true

	w.ticks.stop()
	w.aiManager.StopAll()
	w.spawner.Close()
	w.sink = protocol.Discard

	slog.Info("world stopped")
}

// push forwards an unsolicited batch to the sink.
func (w *World) push(batch []protocol.Event) {
	if w.closed || len(batch) == 0 {
		return
	}
	w.sink.Push(batch)
}

func (w *World) isFree(x, y int32) bool {
	return geo.IsFree(w.geoMap, x, y)
}
