package data

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Orientation is the facing direction of an entity.
type Orientation int32

const (
	OrientationUp    Orientation = 1
	OrientationDown  Orientation = 2
	OrientationLeft  Orientation = 3
	OrientationRight Orientation = 4
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	default:
		return strconv.Itoa(int(o))
	}
}

// Valid reports whether o is one of the four known directions.
func (o Orientation) Valid() bool {
	return o >= OrientationUp && o <= OrientationRight
}

// UnmarshalYAML accepts "up", "down", "left", "right" or the numeric value.
func (o *Orientation) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(node.Value)) {
	case "up":
		*o = OrientationUp
	case "down":
		*o = OrientationDown
	case "left":
		*o = OrientationLeft
	case "right":
		*o = OrientationRight
	default:
		n, err := strconv.Atoi(node.Value)
		if err != nil || !Orientation(n).Valid() {
			return fmt.Errorf("line %d: unknown orientation %q", node.Line, node.Value)
		}
		*o = Orientation(n)
	}
	return nil
}
