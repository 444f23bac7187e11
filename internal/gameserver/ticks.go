package gameserver

import (
	"github.com/udisondev/bqsolo/internal/schedule"
)

// tickDriver owns the main AI tick and the regeneration tick.
// Both are started and stopped together.
type tickDriver struct {
	world *World

	main  schedule.Task
	regen schedule.Task
}

func newTickDriver(w *World) *tickDriver {
	return &tickDriver{world: w}
}

func (d *tickDriver) start() {
	if d.main != nil {
		return
	}
	d.main = d.world.sched.Every(d.world.cfg.TickRate, d.tick)
	d.regen = d.world.sched.Every(d.world.cfg.RegenInterval, d.regenerate)
}

func (d *tickDriver) stop() {
	if d.main == nil {
		return
	}
	d.main.Cancel()
	d.regen.Cancel()
	d.main = nil
	d.regen = nil
}

func (d *tickDriver) running() bool {
	return d.main != nil
}

// tick advances every mob AI once.
func (d *tickDriver) tick() {
	w := d.world
	if w.closed || w.registry.Player() == nil {
		return
	}
	w.aiManager.TickAll(w.sched.Now())
}

// regenerate heals the player by one step when hurt.
func (d *tickDriver) regenerate() {
	w := d.world
	if w.closed {
		return
	}
	w.push(w.combat.Regenerate())
}
