package ai

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// TickManager ticks registered controllers in registration order.
// It is owned by the simulation goroutine and is not synchronized.
type TickManager struct {
	order       []uint32
	controllers map[uint32]Controller
}

// NewTickManager creates new AI tick manager
func NewTickManager() *TickManager {
	return &TickManager{
		controllers: make(map[uint32]Controller),
	}
}

// Register registers and starts the AI controller of a mob.
// Re-registering an objectID replaces the old controller.
func (m *TickManager) Register(objectID uint32, controller Controller) {
	if old, ok := m.controllers[objectID]; ok {
		old.Stop()
	} else {
		m.order = append(m.order, objectID)
	}
	m.controllers[objectID] = controller
	controller.Start()

	if IsDebugEnabled() {
		slog.Debug("AI controller registered",
			"objectID", objectID,
			"intention", controller.CurrentIntention())
	}
}

// Unregister stops and removes the AI controller of a mob.
func (m *TickManager) Unregister(objectID uint32) {
	controller, ok := m.controllers[objectID]
	if !ok {
		return
	}
	delete(m.controllers, objectID)
	if i := slices.Index(m.order, objectID); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	controller.Stop()

	if IsDebugEnabled() {
		slog.Debug("AI controller unregistered", "objectID", objectID)
	}
}

// TickAll ticks every controller once. Controllers unregistered by an
// earlier controller during the same pass are skipped.
func (m *TickManager) TickAll(now time.Time) {
	ids := slices.Clone(m.order)
	for _, id := range ids {
		if controller, ok := m.controllers[id]; ok {
			controller.Tick(now)
		}
	}
}

// StopAll stops and removes every controller.
func (m *TickManager) StopAll() {
	for _, id := range m.order {
		m.controllers[id].Stop()
	}
	m.order = nil
	clear(m.controllers)
}

// Count returns number of registered controllers
func (m *TickManager) Count() int {
	return len(m.controllers)
}

// GetController returns controller for a mob
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	controller, ok := m.controllers[objectID]
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return controller, nil
}
