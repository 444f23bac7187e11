package ai

import (
	"log/slog"
	"time"

	"github.com/udisondev/bqsolo/internal/game/geo"
	"github.com/udisondev/bqsolo/internal/model"
	"github.com/udisondev/bqsolo/internal/protocol"
)

// PlayerFunc returns the player, or nil before HELLO.
type PlayerFunc func() *model.Player

// AttackFunc resolves one hit of monster on the player and returns the
// resulting events. Injected by the world to avoid an import cycle with
// the combat package.
type AttackFunc func(monster *model.Monster) []protocol.Event

// EmitFunc publishes one batch of events produced by the AI.
type EmitFunc func(batch []protocol.Event)

// AttackableAI drives a hostile mob.
//
// Every tick runs three steps:
//  1. target: acquire the player within aggro range, drop it beyond leash range
//  2. movement: chase the player, or walk back home without a target
//  3. attack: hit an adjacent player once the cooldown elapsed
//
// Each step publishes its own batch.
type AttackableAI struct {
	monster   *model.Monster
	isRunning bool

	geoMap     geo.Map
	playerFunc PlayerFunc
	attackFunc AttackFunc
	emitFunc   EmitFunc
}

// NewAttackableAI creates an AI controller for a hostile mob.
func NewAttackableAI(monster *model.Monster, playerFunc PlayerFunc, attackFunc AttackFunc, emitFunc EmitFunc) *AttackableAI {
	return &AttackableAI{
		monster:    monster,
		playerFunc: playerFunc,
		attackFunc: attackFunc,
		emitFunc:   emitFunc,
	}
}

// SetMap sets the collision map used for movement. Nil means no walls.
func (ai *AttackableAI) SetMap(m geo.Map) {
	ai.geoMap = m
}

// Start starts the AI controller.
func (ai *AttackableAI) Start() {
	ai.isRunning = true

	if IsDebugEnabled() {
		slog.Debug("attackable AI started",
			"objectID", ai.monster.ObjectID(),
			"kind", ai.monster.Kind(),
			"aggroRange", ai.monster.AggroRange())
	}
}

// Stop stops the AI controller and drops the target.
func (ai *AttackableAI) Stop() {
	ai.isRunning = false
	ai.monster.ClearTarget()
}

// CurrentIntention returns current AI state.
func (ai *AttackableAI) CurrentIntention() model.Intention {
	return ai.monster.Intention()
}

// Monster returns the controlled mob.
func (ai *AttackableAI) Monster() *model.Monster {
	return ai.monster
}

// Tick performs one AI step.
func (ai *AttackableAI) Tick(now time.Time) {
	if !ai.isRunning || ai.monster.IsDead() {
		return
	}
	player := ai.playerFunc()
	if player == nil {
		return
	}

	ai.updateTarget(player)
	ai.updateMovement(player)
	ai.updateAttack(player, now)
}

func (ai *AttackableAI) updateTarget(player *model.Player) {
	mob := ai.monster
	distance := mob.Location().Distance(player.Location())

	switch {
	case !mob.HasTarget() && distance <= mob.AggroRange():
		mob.SetTarget(player.ObjectID())
		ai.emit(protocol.NewAttack(mob.ObjectID(), player.ObjectID()))

		if IsDebugEnabled() {
			slog.Debug("attackable AI acquired target",
				"objectID", mob.ObjectID(),
				"targetID", player.ObjectID(),
				"distance", distance)
		}

	case mob.HasTarget() && distance > mob.LeashRange():
		mob.ClearTarget()

		if IsDebugEnabled() {
			slog.Debug("attackable AI leashed",
				"objectID", mob.ObjectID(),
				"distance", distance)
		}
	}
}

func (ai *AttackableAI) updateMovement(player *model.Player) {
	mob := ai.monster

	var dest model.Location
	switch {
	case mob.Target() == player.ObjectID() && !player.IsDead():
		if mob.Location().Distance(player.Location()) <= 1 {
			return
		}
		dest = player.Location()
	case !mob.HasTarget() && !mob.AtHome():
		dest = mob.Home()
	default:
		return
	}

	next, ok := StepTowards(mob.Location(), dest, ai.geoMap)
	if !ok {
		return
	}
	mob.SetLocation(next)
	ai.emit(protocol.NewMove(mob.ObjectID(), next.X, next.Y))
}

func (ai *AttackableAI) updateAttack(player *model.Player, now time.Time) {
	mob := ai.monster
	if mob.Target() != player.ObjectID() || player.IsDead() {
		return
	}
	if mob.Location().Distance(player.Location()) > 1 {
		return
	}
	if !mob.CanAttack(now) {
		return
	}

	mob.SetNextAttackTime(now.Add(mob.AttackDelay()))
	if ai.attackFunc == nil {
		return
	}
	ai.emit(ai.attackFunc(mob)...)
}

func (ai *AttackableAI) emit(events ...protocol.Event) {
	if ai.emitFunc == nil || len(events) == 0 {
		return
	}
	ai.emitFunc(events)
}
