package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/data"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		msg  []any
		want MessageType
	}{
		{"float64 code", []any{float64(4), float64(1), float64(2)}, MsgMove},
		{"json.Number code", []any{json.Number("8"), json.Number("5")}, MsgHit},
		{"int code", []any{0, "bob"}, MsgHello},
		{"numeric string code", []any{"21"}, MsgZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Type)
			assert.Len(t, cmd.Args, len(tt.msg)-1)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	_, err := ParseCommand(nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = ParseCommand([]any{"move"})
	assert.Error(t, err)
}

func TestCommand_Accessors(t *testing.T) {
	cmd := NewCommand(MsgLootMove, float64(70), json.Number("68"), "12", nil, -3)

	x, ok := cmd.Int32(0)
	assert.True(t, ok)
	assert.Equal(t, int32(70), x)

	y, ok := cmd.Int32(1)
	assert.True(t, ok)
	assert.Equal(t, int32(68), y)

	id, ok := cmd.ID(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(12), id)

	_, ok = cmd.Int32(3)
	assert.False(t, ok, "nil argument")

	_, ok = cmd.ID(4)
	assert.False(t, ok, "negative id")

	_, ok = cmd.Int32(10)
	assert.False(t, ok, "missing argument")

	assert.Equal(t, []uint32{70, 68, 12}, cmd.IDs())
}

func TestCommand_KindAndString(t *testing.T) {
	cmd := NewCommand(MsgHello, "bob", float64(23), data.KindAxe)

	name, ok := cmd.String(0)
	assert.True(t, ok)
	assert.Equal(t, "bob", name)

	_, ok = cmd.String(1)
	assert.False(t, ok)

	armor, ok := cmd.Kind(1)
	assert.True(t, ok)
	assert.Equal(t, data.KindMailArmor, armor)

	weapon, ok := cmd.Kind(2)
	assert.True(t, ok)
	assert.Equal(t, data.KindAxe, weapon)
}

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "HELLO", MsgHello.String())
	assert.Equal(t, "CHECK", MsgCheck.String())
	assert.Equal(t, "UNKNOWN(77)", MessageType(77).String())
}
