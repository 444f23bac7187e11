package protocol

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/udisondev/bqsolo/internal/data"
)

// Command is a parsed client message.
type Command struct {
	Type MessageType
	Args []any
}

// NewCommand builds a command from a code and raw arguments.
func NewCommand(t MessageType, args ...any) Command {
	return Command{Type: t, Args: args}
}

// ParseCommand splits a raw message into its code and arguments.
func ParseCommand(msg []any) (Command, error) {
	if len(msg) == 0 {
		return Command{}, ErrEmptyMessage
	}
	code, ok := toInt64(msg[0])
	if !ok {
		return Command{}, fmt.Errorf("invalid message code %v", msg[0])
	}
	return Command{Type: MessageType(code), Args: msg[1:]}, nil
}

// Int32 returns argument i as an int32.
func (c Command) Int32(i int) (int32, bool) {
	if i < 0 || i >= len(c.Args) {
		return 0, false
	}
	n, ok := toInt64(c.Args[i])
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

// ID returns argument i as a positive entity id.
func (c Command) ID(i int) (uint32, bool) {
	n, ok := c.Int32(i)
	if !ok || n <= 0 {
		return 0, false
	}
	return uint32(n), true
}

// Kind returns argument i as an entity kind.
func (c Command) Kind(i int) (data.Kind, bool) {
	n, ok := c.Int32(i)
	if !ok {
		return data.KindNone, false
	}
	return data.Kind(n), true
}

// String returns argument i if it is a string.
func (c Command) String(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	s, ok := c.Args[i].(string)
	return s, ok
}

// IDs returns every argument that parses as an entity id, in order.
func (c Command) IDs() []uint32 {
	ids := make([]uint32, 0, len(c.Args))
	for i := range c.Args {
		if id, ok := c.ID(i); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case MessageType:
		return int64(n), true
	case data.Kind:
		return int64(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
