package protocol

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/model"
)

func TestEncodeBatch(t *testing.T) {
	b, err := EncodeBatch([]Event{
		NewMove(1, 66, 66),
		NewDrop(5, 12, data.KindFlask, []uint32{1}),
		NewList([]uint32{2, 3}),
	})
	require.NoError(t, err)
	assert.Equal(t, `[[4,1,66,66],[14,5,12,35,[1]],[19,2,3]]`, string(b))

	b, err = EncodeBatch(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestWriteBatch_OneLinePerBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, []Event{NewHealthRegen(50)}))
	require.NoError(t, WriteBatch(&buf, []Event{NewKill(data.KindRat)}))

	assert.Equal(t, "[[10,50,1]]\n[[18,2]]\n", buf.String())
}

func TestReadMessage(t *testing.T) {
	r := NewReader(strings.NewReader("[4, 70, 68]\n\n[0,\"bob\"]\n"))

	msg, err := r.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("4"), json.Number("70"), json.Number("68")}, msg)

	_, err = r.ReadMessage()
	assert.ErrorIs(t, err, ErrEmptyMessage)

	msg, err = r.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "bob", msg[1])

	_, err = r.ReadMessage()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessage_LastLineWithoutNewline(t *testing.T) {
	r := NewReader(strings.NewReader("[4, 70, 68]"))

	msg, err := r.ReadMessage()
	require.NoError(t, err)
	assert.Len(t, msg, 3)

	_, err = r.ReadMessage()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessage_OversizedLineSkipped(t *testing.T) {
	long := `[23,"` + strings.Repeat("a", 3*MaxMessageSize) + `"]`
	r := NewReader(strings.NewReader(long + "\n[0,\"bob\"]\n" + long))

	_, err := r.ReadMessage()
	assert.ErrorIs(t, err, ErrMalformedMessage)

	msg, err := r.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "bob", msg[1])

	_, err = r.ReadMessage()
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = r.ReadMessage()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeMessage_Invalid(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"type":"HELLO"}`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = DecodeMessage([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSpawnDescriptors(t *testing.T) {
	p := model.NewPlayer("bob", model.NewLocation(65, 66), data.KindClothArmor, data.KindSword1, 100)
	assert.Equal(t,
		Event{MsgSpawn, uint32(1), data.KindWarrior, int32(65), int32(66), "bob", data.OrientationDown, data.KindClothArmor, data.KindSword1},
		SpawnPlayer(p))

	p.SetTarget(7)
	assert.Len(t, SpawnPlayer(p), 10)

	npc := model.NewNpc(3, &model.NpcTemplate{Kind: data.KindGuard, X: 60, Y: 64})
	assert.Equal(t,
		Event{MsgSpawn, uint32(3), data.KindGuard, int32(60), int32(64)},
		SpawnEntity(npc.WorldObject))

	tmpl := model.MobTemplate{Kind: data.KindRat, X: 70, Y: 68, Orientation: data.OrientationLeft, MaxHP: 20}
	m := model.NewMonster(4, &tmpl, nil)
	assert.Equal(t,
		Event{MsgSpawn, uint32(4), data.KindRat, int32(70), int32(68), data.OrientationLeft},
		SpawnEntity(m.WorldObject))

	m.SetTarget(1)
	assert.Equal(t, uint32(1), SpawnMob(m)[6])
}
