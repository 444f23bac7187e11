package ai

import (
	"github.com/udisondev/bqsolo/internal/game/geo"
	"github.com/udisondev/bqsolo/internal/model"
)

// StepTowards returns the next tile on a greedy axis-aligned path from
// `from` to `to`.
//
// The dominant axis is tried first (x on ties), then y, then x again on
// the original row. Returns false when already there or every candidate
// is blocked.
func StepTowards(from, to model.Location, m geo.Map) (model.Location, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return from, false
	}

	if abs(dx) >= abs(dy) {
		next := model.NewLocation(from.X+sign(dx), from.Y)
		if geo.IsFree(m, next.X, next.Y) {
			return next, true
		}
	}

	if dy != 0 {
		next := model.NewLocation(from.X, from.Y+sign(dy))
		if geo.IsFree(m, next.X, next.Y) {
			return next, true
		}
	}

	if dx != 0 {
		next := model.NewLocation(from.X+sign(dx), from.Y)
		if geo.IsFree(m, next.X, next.Y) {
			return next, true
		}
	}

	return from, false
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
