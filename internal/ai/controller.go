package ai

import (
	"time"

	"github.com/udisondev/bqsolo/internal/model"
)

// Controller represents AI controller interface for mobs
type Controller interface {
	// Start starts AI controller
	Start()

	// Stop stops AI controller
	Stop()

	// CurrentIntention returns current AI state
	CurrentIntention() model.Intention

	// Tick performs one AI step at now (called every main tick)
	Tick(now time.Time)
}
