package model

// Location представляет координаты тайла в игровом мире.
// Value type, передаётся по значению (immutable).
type Location struct {
	X int32
	Y int32
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y int32) Location {
	return Location{X: x, Y: y}
}

// WithCoordinates возвращает новый Location с обновлёнными координатами (immutable pattern).
func (l Location) WithCoordinates(x, y int32) Location {
	l.X = x
	l.Y = y
	return l
}

// Distance возвращает манхэттенское расстояние (|dx|+|dy|) до другой точки.
// Movement is axis-aligned, so this is the number of steps between tiles.
func (l Location) Distance(other Location) int32 {
	return abs32(l.X-other.X) + abs32(l.Y-other.Y)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
