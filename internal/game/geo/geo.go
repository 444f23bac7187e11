// Package geo answers tile collision queries for the world map.
package geo

// Map is the collision oracle. Implementations must be safe to call
// from the simulation goroutine and are never mutated by the world.
type Map interface {
	IsColliding(x, y int32) bool
}

// IsFree reports whether (x, y) is walkable. A nil map means every tile
// is free.
func IsFree(m Map, x, y int32) bool {
	if m == nil {
		return true
	}
	return !m.IsColliding(x, y)
}

// MapFunc adapts a function to the Map interface.
type MapFunc func(x, y int32) bool

// IsColliding calls f(x, y).
func (f MapFunc) IsColliding(x, y int32) bool {
	return f(x, y)
}
